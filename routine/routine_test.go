package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunSafe(t *testing.T) {
	ran := false
	RunSafe(func() {
		ran = true
	})
	assert.True(t, ran)
}

func TestRunSafeRecoversPanic(t *testing.T) {
	var got interface{}
	RunSafe(func() {
		panic("boom")
	}, func(r interface{}) {
		got = r
	})
	assert.Equal(t, "boom", got)
}

func TestRunSafeCleanupOrder(t *testing.T) {
	var order []int
	RunSafe(func() {
		panic("x")
	}, func(interface{}) {
		order = append(order, 1)
	}, func(interface{}) {
		order = append(order, 2)
	})
	assert.Equal(t, []int{1, 2}, order)
}

func TestGoSafe(t *testing.T) {
	done := make(chan interface{}, 1)
	GoSafe(func() {
		panic("async boom")
	}, func(r interface{}) {
		done <- r
	})
	assert.Equal(t, "async boom", <-done)
}

func TestRecoveredAsError(t *testing.T) {
	var nilRec *Recovered
	assert.NoError(t, nilRec.AsError())

	rec := NewRecovered(0, "broken invariant")
	err := rec.AsError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic: broken invariant")

	var recErr *RecoveredError
	require.ErrorAs(t, err, &recErr)
	assert.NotEmpty(t, recErr.StackTrace())
}
