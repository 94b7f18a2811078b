package services

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchGuardDiscardsStaleGenerations(t *testing.T) {
	var g FetchGuard

	gen1 := g.Next()
	gen2 := g.Next()

	if g.Latest(gen1) {
		t.Fatal("superseded generation reported as latest")
	}
	if !g.Latest(gen2) {
		t.Fatal("newest generation reported as stale")
	}

	gen3 := g.Next()
	if g.Latest(gen2) || !g.Latest(gen3) {
		t.Fatal("generation ordering broken after third issue")
	}
}

func TestDebouncerFiresOnlyLastTrigger(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 5; i++ {
		i := int32(i)
		d.Trigger(func() {
			fired.Add(1)
			last.Store(i)
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)

	if got := fired.Load(); got != 1 {
		t.Fatalf("fired %d times, want 1", got)
	}
	if got := last.Load(); got != 5 {
		t.Fatalf("fired trigger %d, want 5 (the last)", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)

	if got := fired.Load(); got != 0 {
		t.Fatalf("fired %d times after Stop, want 0", got)
	}
}
