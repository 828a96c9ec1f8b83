package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestCoalescesRapidTriggers(t *testing.T) {
	var fired int32
	d := New(30*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Errorf("expected exactly one invocation, got %d", got)
	}
}

func TestZeroDelayFiresImmediately(t *testing.T) {
	var fired int32
	d := New(0, func() { atomic.AddInt32(&fired, 1) })

	d.Trigger()
	d.Trigger()

	if got := atomic.LoadInt32(&fired); got != 2 {
		t.Errorf("expected synchronous invocations, got %d", got)
	}
}

func TestStopCancelsPending(t *testing.T) {
	var fired int32
	d := New(20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	d.Trigger()
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Errorf("stopped debouncer still fired %d times", got)
	}
	if d.Pending() {
		t.Error("nothing should be pending after Stop")
	}
}

func TestFlushFiresPendingNow(t *testing.T) {
	var fired int32
	d := New(time.Hour, func() { atomic.AddInt32(&fired, 1) })

	d.Flush() // nothing pending, nothing happens
	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Fatalf("flush without trigger fired %d times", got)
	}

	d.Trigger()
	d.Flush()
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Errorf("expected one invocation after flush, got %d", got)
	}
	if d.Pending() {
		t.Error("flush must clear the pending timer")
	}
}

func TestTriggerAfterFire(t *testing.T) {
	var fired int32
	d := New(10*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })

	d.Trigger()
	time.Sleep(40 * time.Millisecond)
	d.Trigger()
	time.Sleep(40 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 2 {
		t.Errorf("expected two separate invocations, got %d", got)
	}
}
