package cli

import (
	"context"
	"image"

	"github.com/ecbingo/ecbingo/pkg/board"
	"github.com/ecbingo/ecbingo/pkg/buildinfo"
	"github.com/ecbingo/ecbingo/pkg/cache"
	"github.com/ecbingo/ecbingo/pkg/catalog"
	"github.com/ecbingo/ecbingo/pkg/config"
	"github.com/ecbingo/ecbingo/pkg/fonts"
	"github.com/ecbingo/ecbingo/pkg/httputil"
	"github.com/ecbingo/ecbingo/pkg/render"
)

// newRenderer loads the configured canvas and font. Missing files fail here,
// before any record is read.
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	f, err := fonts.Load(cfg.Font)
	if err != nil {
		return nil, err
	}

	grid := render.StandardGrid()
	var canvas image.Image
	if cfg.BaseImage != "" {
		if canvas, err = render.LoadCanvas(cfg.BaseImage); err != nil {
			return nil, err
		}
	} else {
		canvas = render.StandardCanvas(grid, f)
	}
	ink, err := cfg.Ink()
	if err != nil {
		return nil, err
	}
	return render.New(canvas, fonts.Face(f, cfg.FontSize),
		render.WithGrid(grid),
		render.WithWrapWidth(cfg.WrapWidth),
		render.WithTextColor(ink),
	), nil
}

// newCache picks the catalog cache backend: redis when configured, the file
// cache otherwise, nothing with noCache.
func newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	switch {
	case noCache:
		return cache.NewNullCache(), nil
	case cfg.RedisURL != "":
		rc, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		if err := rc.Ping(ctx); err != nil {
			loggerFromContext(ctx).Warn("redis unreachable, caching disabled", "err", err)
			rc.Close()
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		return cache.NewFileCache(cfg.CacheDir)
	}
}

// newCatalog builds the emote catalog client. The caller closes the cache.
func newCatalog(cfg *config.Config, store cache.Cache) *catalog.Client {
	return catalog.NewClient(cfg.CatalogURL,
		catalog.WithHTTPClient(httputil.NewClient(cfg.HTTPTimeout, buildinfo.UserAgent())),
		catalog.WithCache(store, cfg.CacheTTL),
		catalog.WithHeaders(cfg.CatalogHeaders),
	)
}

func loadPool(cfg *config.Config) ([]string, error) {
	return board.LoadPool(cfg.Categories)
}
