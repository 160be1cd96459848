package core

import (
	"context"
	"testing"
	"time"
)

// TestGate_SignalThenWait verifies a pre-signalled gate does not block
// Given: A gate with one pending signal
// When: Wait is called
// Then: It returns nil promptly
func TestGate_SignalThenWait(t *testing.T) {
	g := NewGate()
	g.Signal()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.Wait(ctx); err != nil {
		t.Errorf("Wait() = %v, want nil", err)
	}
}

// TestGate_WaitBlocksUntilSignal verifies the blocking decrement
// Given: A gate with a zero count and a goroutine parked in Wait
// When: Signal is called
// Then: The waiter unblocks
func TestGate_WaitBlocksUntilSignal(t *testing.T) {
	g := NewGate()

	released := make(chan error, 1)
	go func() {
		released <- g.Wait(context.Background())
	}()

	// The waiter must still be parked before the signal
	select {
	case <-released:
		t.Fatal("Wait() returned before Signal()")
	case <-time.After(50 * time.Millisecond):
	}

	g.Signal()

	select {
	case err := <-released:
		if err != nil {
			t.Errorf("Wait() = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait() did not return after Signal()")
	}
}

// TestGate_CountAccumulates verifies signals are counted, not coalesced
// Given: A gate signalled 5 times
// When: Wait is called 5 times
// Then: Every call returns nil without blocking, and a 6th blocks
func TestGate_CountAccumulates(t *testing.T) {
	g := NewGate()
	for i := 0; i < 5; i++ {
		g.Signal()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for i := 0; i < 5; i++ {
		if err := g.Wait(ctx); err != nil {
			t.Fatalf("Wait() #%d = %v, want nil", i, err)
		}
	}

	shortCtx, shortCancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer shortCancel()
	if err := g.Wait(shortCtx); err == nil {
		t.Error("Wait() #6 = nil, want error (count exhausted)")
	}
}

// TestGate_WaitCancelled verifies the fatal-wait error path
// Given: A gate with a zero count
// When: Wait's context is cancelled
// Then: Wait returns the context error
func TestGate_WaitCancelled(t *testing.T) {
	g := NewGate()

	ctx, cancel := context.WithCancel(context.Background())
	released := make(chan error, 1)
	go func() {
		released <- g.Wait(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-released:
		if err == nil {
			t.Error("Wait() = nil after cancel, want error")
		}
	case <-time.After(time.Second):
		t.Fatal("Wait() did not return after cancel")
	}
}
