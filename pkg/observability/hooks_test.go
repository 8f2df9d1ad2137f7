package observability

import (
	"context"
	"testing"
	"time"
)

type countingCache struct {
	hits, misses, sets int
}

func (c *countingCache) OnCacheHit(context.Context, string)      { c.hits++ }
func (c *countingCache) OnCacheMiss(context.Context, string)     { c.misses++ }
func (c *countingCache) OnCacheSet(context.Context, string, int) { c.sets++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnLoad(ctx, "data.csv", 10, 2, nil)
	r.OnRenderStart(ctx, "svg")
	r.OnRenderComplete(ctx, "svg", 1024, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "k")
	c.OnCacheMiss(ctx, "k")
	c.OnCacheSet(ctx, "k", 1024)
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	h := &countingCache{}
	SetCacheHooks(h)
	Cache().OnCacheHit(context.Background(), "k")
	Cache().OnCacheSet(context.Background(), "k", 1)

	if h.hits != 1 || h.sets != 1 {
		t.Errorf("hooks not called: %+v", h)
	}

	SetCacheHooks(nil)
	if Cache() != CacheHooks(h) {
		t.Error("SetCacheHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore no-op hooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset should restore no-op render hooks")
	}
}
