// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/LeeDigitalWorks/zapmock/pkg/client"
	"github.com/LeeDigitalWorks/zapmock/pkg/logger"
	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3types"
	"github.com/LeeDigitalWorks/zapmock/pkg/store"
	"github.com/LeeDigitalWorks/zapmock/pkg/utils"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DemoOpts holds configuration for the demo command
type DemoOpts struct {
	Endpoint string // Emulated endpoint identity (e.g., "localhost:9000")
	Bucket   string // Bucket name to seed
	Objects  int    // Number of object versions to write
}

var demoOpts DemoOpts

func init() {
	demoCmd.Flags().StringVar(&demoOpts.Endpoint, "endpoint", "localhost:9000", "Emulated endpoint identity")
	demoCmd.Flags().StringVar(&demoOpts.Bucket, "bucket", "demo-bucket", "Bucket name to seed")
	demoCmd.Flags().IntVar(&demoOpts.Objects, "objects", 3, "Object versions to write per key")

	viper.SetDefault("demo.endpoint", "localhost:9000")
	viper.SetDefault("demo.bucket", "demo-bucket")

	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed an in-memory endpoint and walk through the client API",
	RunE: func(cmd *cobra.Command, args []string) error {
		utils.LoadConfiguration("zapmock", false)

		loader := NewFlagLoader(cmd)
		demoOpts.Endpoint = loader.String("endpoint")
		if demoOpts.Endpoint == "" {
			demoOpts.Endpoint = viper.GetString("demo.endpoint")
		}

		return runDemo(cmd.Context(), demoOpts)
	},
}

func runDemo(ctx context.Context, opts DemoOpts) error {
	log := logger.Ctx(ctx)

	if err := store.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
		log.Warn().Err(err).Msg("failed to register store metrics")
	}

	registry := store.NewRegistry()
	c, err := client.New(registry, opts.Endpoint, client.Options{Region: "us-east-1"})
	if err != nil {
		return err
	}
	log.Info().Str("endpoint", opts.Endpoint).Msg("connected client")

	if err := c.MakeBucket(ctx, opts.Bucket, client.MakeBucketOptions{}); err != nil {
		return err
	}
	if err := c.SetBucketVersioning(ctx, opts.Bucket, s3types.VersioningConfiguration{
		Status: string(s3types.VersioningEnabled),
	}); err != nil {
		return err
	}
	log.Info().Str("bucket", opts.Bucket).Msg("created versioned bucket")

	var total int64
	for i := 0; i < opts.Objects; i++ {
		body := fmt.Sprintf("revision %d of the demo payload\n", i+1)
		info, err := c.PutObject(ctx, opts.Bucket, "docs/readme.txt",
			strings.NewReader(body), int64(len(body)), client.PutObjectOptions{
				UserMetadata: map[string]string{"revision": fmt.Sprint(i + 1)},
			})
		if err != nil {
			return err
		}
		total += info.Size
		log.Info().
			Str("version_id", info.VersionID).
			Str("etag", info.ETag).
			Msg("wrote object version")
	}
	fmt.Printf("Wrote %d versions, %s total\n", opts.Objects, humanize.Bytes(uint64(total)))

	fmt.Println("Versions of docs/readme.txt:")
	versions, err := c.ListObjects(ctx, opts.Bucket, client.ListObjectsOptions{
		Prefix:       "docs/",
		Recursive:    true,
		WithVersions: true,
	})
	if err != nil {
		return err
	}
	for obj := range versions {
		marker := ""
		if obj.IsDeleteMarker {
			marker = " (delete marker)"
		}
		fmt.Printf("  %-20s %-36s latest=%-5v %s%s\n",
			obj.Key, obj.VersionID, obj.IsLatest, humanize.Bytes(uint64(obj.Size)), marker)
	}

	if err := c.RemoveObject(ctx, opts.Bucket, "docs/readme.txt", client.RemoveObjectOptions{}); err != nil {
		return err
	}
	fmt.Println("After delete (non-recursive listing at root):")
	remaining, err := c.ListObjects(ctx, opts.Bucket, client.ListObjectsOptions{})
	if err != nil {
		return err
	}
	for obj := range remaining {
		fmt.Printf("  %s\n", obj.Key)
	}

	url, err := c.PresignedGetObject(ctx, opts.Bucket, "docs/readme.txt", client.DefaultPresignExpiry, "")
	if err != nil {
		return err
	}
	fmt.Printf("Presigned GET: %s\n", url)

	return nil
}
