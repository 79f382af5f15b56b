package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the decoded-tree cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached tree",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	dc := openCache()
	if dc == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "cache is disabled")
		return nil
	}
	if err := dc.DropAll(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
	}
	return nil
}
