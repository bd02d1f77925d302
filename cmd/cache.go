package main

import (
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the response cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show durable cache entry count",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newResponseCache()
		if err != nil {
			return err
		}
		defer cache.Close()

		n, err := cache.DurableCount(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("%d cached response(s) in %s\n", n, cfg.Cache.Path)
		return nil
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired durable cache entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := newResponseCache()
		if err != nil {
			return err
		}
		defer cache.Close()

		n, err := cache.PurgeExpired(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("purged %d expired response(s)\n", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
