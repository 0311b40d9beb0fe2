package future

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernhold/async/future/executors"
)

func TestAsync(t *testing.T) {
	f := Async(func() (int, error) {
		return 42, nil
	})

	val, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestAsyncError(t *testing.T) {
	wantErr := errors.New("work failed")
	f := Async(func() (int, error) {
		return 0, wantErr
	})

	_, err := f.Get()
	assert.ErrorIs(t, err, wantErr)
}

func TestAsyncPanicBecomesFailure(t *testing.T) {
	f := Async(func() (int, error) {
		panic("boom")
	})

	_, err := f.Get()
	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "boom")
}

func TestSubmitSyncExecutor(t *testing.T) {
	f := Submit(executors.SyncExecutor{}, func() (string, error) {
		return "inline", nil
	})

	// The work ran on this goroutine, so the future is done on return.
	require.True(t, f.IsDone())
	val, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, "inline", val)
}

func TestCtxSubmitPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "payload")

	f := CtxSubmit(ctx, executors.SyncExecutor{}, func(ctx context.Context) (string, error) {
		return ctx.Value(key{}).(string), nil
	})

	val, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, "payload", val)
}

func TestCtxAsync(t *testing.T) {
	f := CtxAsync(context.Background(), func(ctx context.Context) (int, error) {
		return 7, nil
	})

	val, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, val)
}

func TestResolved(t *testing.T) {
	f := Resolved("now")

	require.True(t, f.IsDone())
	val, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, "now", val)
}

func TestRejected(t *testing.T) {
	wantErr := errors.New("no")
	f := Rejected[int](wantErr)

	require.True(t, f.IsDone())
	_, err := f.Get()
	assert.ErrorIs(t, err, wantErr)
}

func TestCompleted(t *testing.T) {
	wantErr := errors.New("partial")
	f := Completed(3, wantErr)

	val, err := f.Get()
	assert.Equal(t, 3, val)
	assert.ErrorIs(t, err, wantErr)
}

func TestSetExecutor(t *testing.T) {
	defer SetExecutor(executors.GoExecutor{})

	SetExecutor(executors.SyncExecutor{})
	f := Async(func() (int, error) {
		return 1, nil
	})
	assert.True(t, f.IsDone())
}

func TestSetExecutorNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "executor is nil", func() {
		SetExecutor(nil)
	})
}
