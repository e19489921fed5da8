package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRequestHooks{}
	r.OnRequestStart(ctx, "req-1", 500)
	r.OnRequestComplete(ctx, "req-1", 200, time.Second, nil)

	d := NoopDecodeHooks{}
	d.OnFieldTolerated("described")
	d.OnBatchDecoded(3)
}

type countingRequestHooks struct {
	starts, completes int
}

func (h *countingRequestHooks) OnRequestStart(context.Context, string, int) { h.starts++ }
func (h *countingRequestHooks) OnRequestComplete(context.Context, string, int, time.Duration, error) {
	h.completes++
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	// Verify defaults are noop
	if _, ok := Request().(NoopRequestHooks); !ok {
		t.Error("Request() should return NoopRequestHooks by default")
	}
	if _, ok := Decode().(NoopDecodeHooks); !ok {
		t.Error("Decode() should return NoopDecodeHooks by default")
	}

	h := &countingRequestHooks{}
	SetRequestHooks(h)

	Request().OnRequestStart(context.Background(), "req-1", 100)
	Request().OnRequestComplete(context.Background(), "req-1", 200, time.Second, nil)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 and 1", h.starts, h.completes)
	}

	// Nil registration is ignored
	SetRequestHooks(nil)
	if _, ok := Request().(*countingRequestHooks); !ok {
		t.Error("nil registration should not replace hooks")
	}

	Reset()
	if _, ok := Request().(NoopRequestHooks); !ok {
		t.Error("Reset() should restore noop hooks")
	}
}
