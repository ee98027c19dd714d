// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyObject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := newTestClient(t)
	mustMakeBucket(t, c, "src")
	mustMakeBucket(t, c, "dst")
	_, err := c.PutObject(ctx, "src", "orig", strings.NewReader("payload"),
		7, PutObjectOptions{UserMetadata: map[string]string{"origin": "src", "kept": "yes"}})
	require.NoError(t, err)

	info, err := c.CopyObject(ctx,
		CopyDestOptions{Bucket: "dst", Object: "copy", UserMetadata: map[string]string{"origin": "dst"}},
		CopySrcOptions{Bucket: "src", Object: "orig"})
	require.NoError(t, err)
	assert.Equal(t, "dst", info.Bucket)
	assert.Equal(t, int64(7), info.Size)

	res, err := c.GetObject(ctx, "dst", "copy", GetObjectOptions{})
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))

	// Caller metadata overrides the source on collision, source fills the rest.
	want := map[string]string{"origin": "dst", "kept": "yes"}
	if diff := cmp.Diff(want, res.Info.UserMetadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyObjectVersionedSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := newTestClient(t)
	mustMakeBucket(t, c, "bucket")
	enableVersioning(t, c, "bucket")

	first, err := c.PutObject(ctx, "bucket", "key", strings.NewReader("old"), 3, PutObjectOptions{})
	require.NoError(t, err)
	_, err = c.PutObject(ctx, "bucket", "key", strings.NewReader("new"), 3, PutObjectOptions{})
	require.NoError(t, err)

	_, err = c.CopyObject(ctx,
		CopyDestOptions{Bucket: "bucket", Object: "restored"},
		CopySrcOptions{Bucket: "bucket", Object: "key", VersionID: first.VersionID})
	require.NoError(t, err)

	res, err := c.GetObject(ctx, "bucket", "restored", GetObjectOptions{})
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "old", string(body), "copy reads the addressed version, not the latest")
}

func TestCopyObjectErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := newTestClient(t)
	mustMakeBucket(t, c, "bucket")

	_, err := c.CopyObject(ctx,
		CopyDestOptions{Bucket: "bucket", Object: "copy"},
		CopySrcOptions{Bucket: "missing", Object: "orig"})
	assert.True(t, s3err.IsCode(err, s3err.ErrNoSuchBucket))

	_, err = c.CopyObject(ctx,
		CopyDestOptions{Bucket: "bucket", Object: "copy"},
		CopySrcOptions{Bucket: "bucket", Object: "missing"})
	assert.True(t, s3err.IsCode(err, s3err.ErrNoSuchKey))
}

func TestComposeObject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := newTestClient(t)
	mustMakeBucket(t, c, "bucket")
	_, err := c.PutObject(ctx, "bucket", "part1", strings.NewReader("hello "),
		6, PutObjectOptions{UserMetadata: map[string]string{"part": "1", "shared": "first"}})
	require.NoError(t, err)
	_, err = c.PutObject(ctx, "bucket", "part2", strings.NewReader("world"),
		5, PutObjectOptions{UserMetadata: map[string]string{"part": "2", "shared": "second"}})
	require.NoError(t, err)

	info, err := c.ComposeObject(ctx,
		CopyDestOptions{Bucket: "bucket", Object: "joined", UserMetadata: map[string]string{"part": "all"}},
		[]CopySrcOptions{
			{Bucket: "bucket", Object: "part1"},
			{Bucket: "bucket", Object: "part2"},
		})
	require.NoError(t, err)
	assert.Equal(t, int64(11), info.Size)

	res, err := c.GetObject(ctx, "bucket", "joined", GetObjectOptions{})
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(body))

	// Later sources win between themselves, destination metadata wins overall.
	want := map[string]string{"part": "all", "shared": "second"}
	if diff := cmp.Diff(want, res.Info.UserMetadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeObjectNoSources(t *testing.T) {
	t.Parallel()

	c := newTestClient(t)
	mustMakeBucket(t, c, "bucket")

	_, err := c.ComposeObject(context.Background(),
		CopyDestOptions{Bucket: "bucket", Object: "joined"}, nil)
	assert.True(t, s3err.IsCode(err, s3err.ErrInvalidArgument))
}
