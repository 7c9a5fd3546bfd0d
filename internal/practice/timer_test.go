package practice

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_Fires(t *testing.T) {
	var tm Timer
	done := make(chan struct{})
	tm.Schedule(5*time.Millisecond, func() { close(done) })
	assert.True(t, tm.Pending())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not fire")
	}
	assert.Eventually(t, func() bool { return !tm.Pending() }, time.Second, time.Millisecond)
}

func TestTimer_ScheduleReplaces(t *testing.T) {
	var tm Timer
	var first, second atomic.Int32
	tm.Schedule(20*time.Millisecond, func() { first.Add(1) })
	tm.Schedule(20*time.Millisecond, func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestTimer_Stop(t *testing.T) {
	var tm Timer
	var fired atomic.Bool
	tm.Schedule(10*time.Millisecond, func() { fired.Store(true) })
	tm.Stop()
	assert.False(t, tm.Pending())

	time.Sleep(40 * time.Millisecond)
	assert.False(t, fired.Load())
}
