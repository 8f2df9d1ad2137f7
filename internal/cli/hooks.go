package cli

import (
	"context"
	"time"

	"github.com/jetplot/jetplot/pkg/observability"
)

// logHooks reports render and cache events at debug level through the
// logger attached to the event's context.
type logHooks struct{}

var (
	_ observability.RenderHooks = logHooks{}
	_ observability.CacheHooks  = logHooks{}
)

func (logHooks) OnLoad(ctx context.Context, path string, rows, cols int, err error) {
	if err != nil {
		loggerFromContext(ctx).Debug("load failed", "path", path, "err", err)
		return
	}
	loggerFromContext(ctx).Debug("loaded data", "path", path, "rows", rows, "cols", cols)
}

func (logHooks) OnRenderStart(ctx context.Context, format string) {
	loggerFromContext(ctx).Debug("rendering", "format", format)
}

func (logHooks) OnRenderComplete(ctx context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		loggerFromContext(ctx).Debug("render failed", "format", format, "err", err)
		return
	}
	loggerFromContext(ctx).Debug("rendered", "format", format, "bytes", size, "took", d.Round(time.Microsecond))
}

func (logHooks) OnCacheHit(ctx context.Context, key string) {
	loggerFromContext(ctx).Debug("cache hit", "key", key)
}

func (logHooks) OnCacheMiss(ctx context.Context, key string) {
	loggerFromContext(ctx).Debug("cache miss", "key", key)
}

func (logHooks) OnCacheSet(ctx context.Context, key string, size int) {
	loggerFromContext(ctx).Debug("cache set", "key", key, "bytes", size)
}

// registerHooks installs the debug-logging hooks.
func registerHooks() {
	observability.SetRenderHooks(logHooks{})
	observability.SetCacheHooks(logHooks{})
}
