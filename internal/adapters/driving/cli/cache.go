package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the summary cache",
	Long:  `Inspect or clear the cached reference summaries.`,
	RunE:  runCacheInfo,
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache database location",
	RunE:  runCachePath,
}

var cacheCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of cached summaries",
	RunE:  runCacheCount,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached summary",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cachePathCmd)
	cacheCmd.AddCommand(cacheCountCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

var errCacheNotPersisted = errors.New("summary cache is running in memory; nothing persisted")

func runCacheInfo(cmd *cobra.Command, _ []string) error {
	if cacheStore == nil {
		return errCacheNotPersisted
	}

	count, err := cacheStore.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("count cache entries: %w", err)
	}

	cmd.Printf("Path: %s\n", cacheStore.Path())
	cmd.Printf("Entries: %d\n", count)
	return nil
}

func runCachePath(cmd *cobra.Command, _ []string) error {
	if cacheStore == nil {
		return errCacheNotPersisted
	}

	cmd.Println(cacheStore.Path())
	return nil
}

func runCacheCount(cmd *cobra.Command, _ []string) error {
	if cacheStore == nil {
		return errCacheNotPersisted
	}

	count, err := cacheStore.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("count cache entries: %w", err)
	}

	cmd.Println(count)
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if cacheStore == nil {
		return errCacheNotPersisted
	}

	if err := cacheStore.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	cmd.Println("Cache cleared.")
	return nil
}
