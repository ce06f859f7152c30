package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// cacheCmd represents the cache command group
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the financials cache",
}

// cacheCleanCmd represents the cache clean command
var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove expired financials cache entries",
	Long: `Removes expired entries and stale temp files from the
on-disk financials cache.

Example:
  go run ./cmd/screener cache clean`,
	RunE: runCacheClean,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheCleanCmd)
}

func runCacheClean(cmd *cobra.Command, args []string) error {
	deps, err := buildStack()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	removed := deps.store.Expire(ctx)
	fmt.Printf("Removed %d expired cache entries from %s\n", removed, deps.cfg.Cache.Dir)
	return nil
}
