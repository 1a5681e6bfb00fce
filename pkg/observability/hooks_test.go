package observability

import (
	"context"
	"testing"
	"time"
)

type countingPipelineHooks struct {
	NoopPipelineHooks
	derives int
}

func (h *countingPipelineHooks) OnDeriveStart(ctx context.Context, input string) {
	h.derives++
}

type countingCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *countingCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.hits++
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Should not panic.
	Pipeline().OnDeriveStart(ctx, "banana")
	Pipeline().OnDeriveComplete(ctx, "banana", 9, time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, "png", 250)
	Pipeline().OnRenderComplete(ctx, "png", 1024, time.Millisecond, nil)
	Pipeline().OnPersistStart(ctx, "banana.png")
	Pipeline().OnPersistComplete(ctx, "banana.png", time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)
}

func TestSetPipelineHooks(t *testing.T) {
	Reset()
	defer Reset()

	h := &countingPipelineHooks{}
	SetPipelineHooks(h)

	Pipeline().OnDeriveStart(context.Background(), "banana")
	Pipeline().OnDeriveStart(context.Background(), "apple")
	if h.derives != 2 {
		t.Errorf("derives = %d, want 2", h.derives)
	}
}

func TestSetCacheHooks(t *testing.T) {
	Reset()
	defer Reset()

	h := &countingCacheHooks{}
	SetCacheHooks(h)

	Cache().OnCacheHit(context.Background(), "artifact")
	if h.hits != 1 {
		t.Errorf("hits = %d, want 1", h.hits)
	}
}

func TestSetNilKeepsDefaults(t *testing.T) {
	Reset()
	SetPipelineHooks(nil)
	SetCacheHooks(nil)

	if Pipeline() == nil || Cache() == nil {
		t.Error("nil registration should keep the no-op defaults")
	}
}
