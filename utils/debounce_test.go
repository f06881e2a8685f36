package utils

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var fired int32
	d := NewDebouncer(30 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&fired, 1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("expected exactly one invocation after burst, got %d", got)
	}
}

func TestDebouncerFiresPerQuietPeriod(t *testing.T) {
	var fired int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	time.Sleep(60 * time.Millisecond)

	if got := atomic.LoadInt32(&fired); got != 2 {
		t.Fatalf("expected two invocations across two quiet periods, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var fired int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 0 {
		t.Fatalf("expected no invocation after Stop, got %d", got)
	}
}
