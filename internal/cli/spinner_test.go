package cli

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Rendering 3 identicons...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Rendering...")
	s.Start()

	// Stop multiple times should not panic or block.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerSetMessage(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Rendering 3 identicons...")
	s.Start()
	defer s.Stop()

	// Swap messages the way a batch run does per input.
	for i, input := range []string{"banana", "kiwi", "grape"} {
		s.SetMessage(fmt.Sprintf("Rendering %d/3: %s", i+1, input))
		time.Sleep(20 * time.Millisecond)
	}

	s.mu.Lock()
	got := s.message
	s.mu.Unlock()
	if got != "Rendering 3/3: grape" {
		t.Errorf("message = %q, want last batch message", got)
	}
}

func TestSpinnerStopAfterContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Rendering...")
	s.Start()

	// An interrupted batch cancels the parent context before Stop runs;
	// Stop must still return promptly.
	cancel()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestSpinnerWidthTracksLongestMessage(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Rendering 1/2: some-rather-long-input")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	s.SetMessage("Rendering 2/2: x")
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	s.mu.Lock()
	width := s.width
	s.mu.Unlock()
	if want := len("Rendering 1/2: some-rather-long-input") + 4; width != want {
		t.Errorf("width = %d, want %d (longest message drawn)", width, want)
	}
}
