// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"
)

// CopyObject reads the source's current payload and metadata, merges the
// destination's caller-supplied metadata over it (caller keys win), and
// writes the result as a new object/version at the destination under the
// destination bucket's current versioning mode.
func (c *Client) CopyObject(ctx context.Context, dst CopyDestOptions, src CopySrcOptions) (UploadInfo, error) {
	srcBucket, err := c.bucket(src.Bucket)
	if err != nil {
		return UploadInfo{}, err
	}
	v, err := srcBucket.Get(src.Object, src.VersionID)
	if err != nil {
		return UploadInfo{}, err
	}

	merged := mergeMetadata(v.Metadata(), dst.UserMetadata)
	return c.putComposed(ctx, dst, v.Payload(), merged)
}

// ComposeObject concatenates the sources' payloads in list order. Source
// metadata is merged left to right (later sources overwrite earlier on key
// collision), then the destination's caller-supplied metadata is applied on
// top.
func (c *Client) ComposeObject(ctx context.Context, dst CopyDestOptions, srcs []CopySrcOptions) (UploadInfo, error) {
	if len(srcs) == 0 {
		return UploadInfo{}, s3err.ErrInvalidArgument.NewWithMessage(
			s3err.ObjectResource(dst.Bucket, dst.Object), "compose requires at least one source")
	}

	var payload bytes.Buffer
	merged := make(map[string]string)
	for _, src := range srcs {
		srcBucket, err := c.bucket(src.Bucket)
		if err != nil {
			return UploadInfo{}, err
		}
		v, err := srcBucket.Get(src.Object, src.VersionID)
		if err != nil {
			return UploadInfo{}, err
		}
		payload.Write(v.Payload())
		merged = mergeMetadata(merged, v.Metadata())
	}
	merged = mergeMetadata(merged, dst.UserMetadata)

	return c.putComposed(ctx, dst, payload.Bytes(), merged)
}

func (c *Client) putComposed(ctx context.Context, dst CopyDestOptions, payload []byte, metadata map[string]string) (UploadInfo, error) {
	dstBucket, err := c.bucket(dst.Bucket)
	if err != nil {
		return UploadInfo{}, err
	}
	v := dstBucket.Put(dst.Object, payload, metadata)
	return UploadInfo{
		Bucket:       dst.Bucket,
		Key:          dst.Object,
		ETag:         v.ETag(),
		Size:         v.Size(),
		VersionID:    v.ID().Value(),
		LastModified: v.LastModified(),
	}, nil
}

// mergeMetadata overlays over onto base; over's keys win.
func mergeMetadata(base, over map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}
