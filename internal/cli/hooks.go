package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ecbingo/ecbingo/pkg/observability"
)

// logHooks reports board, cache and HTTP events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetBoardHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnMark(_ context.Context, point, emote string, replaced bool) {
	h.logger.Debug("marked", "point", point, "emote", emote, "replaced", replaced)
}

func (h logHooks) OnUnmark(_ context.Context, point string) {
	h.logger.Debug("unmarked", "point", point)
}

func (h logHooks) OnRender(_ context.Context, markers int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "markers", markers, "err", err)
		return
	}
	h.logger.Debug("rendered", "markers", markers, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(_ context.Context, key string)  { h.logger.Debug("cache hit", "key", key) }
func (h logHooks) OnCacheMiss(_ context.Context, key string) { h.logger.Debug("cache miss", "key", key) }

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cached", "key", key, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, url string) {
	h.logger.Debug("request", "method", method, "url", url)
}

func (h logHooks) OnResponse(_ context.Context, method, url string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "url", url, "status", status, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, url string, err error) {
	h.logger.Debug("request failed", "method", method, "url", url, "err", err)
}
