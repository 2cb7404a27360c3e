package fsm

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerManager_Fires(t *testing.T) {
	var tm TimerManager
	fired := make(chan struct{}, 1)
	tm.Start(20*time.Millisecond, func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestTimerManager_StartReplacesPending(t *testing.T) {
	var tm TimerManager
	var first, second atomic.Int32
	tm.Start(60*time.Millisecond, func() { first.Add(1) })
	tm.Start(20*time.Millisecond, func() { second.Add(1) })

	require.Eventually(t, func() bool { return second.Load() == 1 },
		2*time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load(), "replaced timer must not fire")
	assert.Equal(t, int32(1), second.Load())
}

func TestTimerManager_Cancel(t *testing.T) {
	var tm TimerManager
	var fired atomic.Int32
	tm.Start(30*time.Millisecond, func() { fired.Add(1) })
	tm.Cancel()
	tm.Cancel() // idempotent

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestTimerManager_CancelWithoutStart(t *testing.T) {
	var tm TimerManager
	tm.Cancel()
}

func TestTimerManager_RapidRestart(t *testing.T) {
	var tm TimerManager
	var count atomic.Int32
	for i := 0; i < 50; i++ {
		tm.Start(time.Millisecond, func() { count.Add(1) })
	}

	require.Eventually(t, func() bool { return count.Load() >= 1 },
		2*time.Second, 5*time.Millisecond)

	// Once the surviving timer has fired, nothing stale fires after it.
	settled := count.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, settled, count.Load())
}

func TestTimerManager_RestartAfterFire(t *testing.T) {
	var tm TimerManager
	var count atomic.Int32
	tm.Start(10*time.Millisecond, func() { count.Add(1) })
	require.Eventually(t, func() bool { return count.Load() == 1 },
		2*time.Second, 5*time.Millisecond)

	tm.Start(10*time.Millisecond, func() { count.Add(1) })
	require.Eventually(t, func() bool { return count.Load() == 2 },
		2*time.Second, 5*time.Millisecond)
}
