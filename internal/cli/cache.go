package cli

import (
	"fmt"
	"os"

	"github.com/critique-dev/critique/internal/cache"
	"github.com/critique-dev/critique/internal/config"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage stored provider reviews",
}

func init() {
	cacheCmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Delete all stored provider reviews",
			RunE:  runCacheClear,
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show cache location and usage",
			RunE:  runCacheShow,
		},
	)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	c, err := openCache(true)
	if err != nil {
		return err
	}
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	fmt.Fprintln(os.Stdout, "Cache cleared.")
	return nil
}

func runCacheShow(cmd *cobra.Command, args []string) error {
	c, err := openCache(false)
	if err != nil {
		return err
	}
	if !c.Enabled() {
		fmt.Fprintln(os.Stdout, "Cache is disabled.")
		return nil
	}
	info, err := c.Stats()
	if err != nil {
		return fmt.Errorf("reading cache stats: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Directory: %s\n", info.Dir)
	fmt.Fprintf(os.Stdout, "Entries:   %d (%d expired)\n", info.Entries, info.Expired)
	fmt.Fprintf(os.Stdout, "Size:      %d bytes\n", info.TotalBytes)
	return nil
}

// openCache opens the configured cache. Clear forces it on so stale
// entries can be removed even when caching is currently disabled.
func openCache(force bool) (*cache.Cache, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, err
	}
	enabled := cfg.Cache.Enabled || force
	c, err := cache.New(enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	return c, nil
}
