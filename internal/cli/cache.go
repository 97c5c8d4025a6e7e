package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"reportdiff/internal/cache"
	"reportdiff/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the analysis cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all cached analysis results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		c, err := cache.New(true, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		if err := c.Clear(); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Analysis cache cleared.")
		return nil
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}
		c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		if !c.Enabled() {
			fmt.Fprintln(os.Stdout, "Analysis cache is disabled.")
			return nil
		}
		stats, err := c.GetStats()
		if err != nil {
			return fmt.Errorf("reading cache stats: %w", err)
		}
		fmt.Fprint(os.Stdout, renderCacheStats(stats, cfg.Cache.TTLSeconds))
		return nil
	},
}

func renderCacheStats(stats cache.Stats, ttlSeconds int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analysis cache: %s\n", stats.Dir)
	fmt.Fprintf(&b, "  cached analyses : %d\n", stats.Entries)
	fmt.Fprintf(&b, "  total size      : %d bytes\n", stats.TotalBytes)
	fmt.Fprintf(&b, "  past TTL        : %d\n", stats.Expired)
	fmt.Fprintf(&b, "  entry TTL       : %ds\n", ttlSeconds)
	return b.String()
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheShowCmd)
}
