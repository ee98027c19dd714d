// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"

	"github.com/LeeDigitalWorks/zapmock/pkg/utils"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zapmock",
	Short: "ZapMock - An in-memory S3 object-storage emulator",
	Long: `ZapMock emulates S3-style object storage entirely in memory.
It supports buckets, versioned objects, delete markers, prefix listing,
and batch delete, and is meant for tests that need S3 semantics without
a running server.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&utils.ConfigurationFileDirectory, "config_dir", ".", "Directory for configuration files")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
