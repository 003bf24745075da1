package observability

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	h := NoopOpHooks{}
	h.OnOpStart(ctx, "union", 4)
	h.OnOpComplete(ctx, "union", time.Millisecond, nil)
	h.OnOpComplete(ctx, "partition", time.Millisecond, context.Canceled)
}

type countingHooks struct {
	starts    atomic.Int64
	completes atomic.Int64
}

func (c *countingHooks) OnOpStart(context.Context, string, int) { c.starts.Add(1) }
func (c *countingHooks) OnOpComplete(context.Context, string, time.Duration, error) {
	c.completes.Add(1)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Ops().(NoopOpHooks); !ok {
		t.Error("Ops() should return NoopOpHooks by default")
	}

	h := &countingHooks{}
	SetOpHooks(h)
	defer Reset()

	Ops().OnOpStart(context.Background(), "linegraph", 1)
	Ops().OnOpComplete(context.Background(), "linegraph", time.Millisecond, nil)

	if h.starts.Load() != 1 || h.completes.Load() != 1 {
		t.Errorf("hook counts = %d starts, %d completes, want 1, 1", h.starts.Load(), h.completes.Load())
	}
}

func TestSetOpHooks_NilIgnored(t *testing.T) {
	Reset()
	SetOpHooks(nil)

	if _, ok := Ops().(NoopOpHooks); !ok {
		t.Error("Ops() should stay NoopOpHooks after SetOpHooks(nil)")
	}
}
