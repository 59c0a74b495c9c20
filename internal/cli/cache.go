package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecbingo/ecbingo/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or empty the emote image cache",
		Long: `Emote images fetched by "mark" are cached for cache_ttl, in cache_dir or in
redis when redis_url is set.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE:  c.runCachePath,
		},
		&cobra.Command{
			Use:     "rm <emote>...",
			Short:   "Drop cached images for the named emotes",
			Example: "  ecbingo cache rm Think Thonk",
			Args:    cobra.MinimumNArgs(1),
			RunE:    c.runCacheRemove,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every cached image in cache_dir",
			Args:  cobra.NoArgs,
			RunE:  c.runCacheClear,
		},
	)
	return cmd
}

func (c *CLI) runCachePath(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, cfg.CacheDir)
	return nil
}

func (c *CLI) runCacheRemove(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	store, err := newCache(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	defer store.Close()

	emotes := newCatalog(cfg, store)
	for _, name := range args {
		if err := emotes.Forget(cmd.Context(), name); err != nil {
			return err
		}
	}
	printSuccess(c.stderr, "Removed %d emotes from the cache", len(args))
	return nil
}

func (c *CLI) runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if cfg.RedisURL != "" {
		printWarning(c.stderr, "redis_url is set; only %s is cleared", cfg.CacheDir)
	}
	if _, err := os.Stat(cfg.CacheDir); os.IsNotExist(err) {
		printInfo(c.stderr, "Cache is empty")
		return nil
	}

	fc, err := cache.NewFileCache(cfg.CacheDir)
	if err != nil {
		return err
	}
	n, err := fc.Clear()
	if err != nil {
		return err
	}
	printSuccess(c.stderr, "Cleared %d cached entries", n)
	printDetail(c.stderr, "Directory: %s", fc.Dir())
	return nil
}
