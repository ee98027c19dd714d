// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"
)

// FPutObject uploads the contents of a local file as bucket/key.
func (c *Client) FPutObject(ctx context.Context, bucket, key, filePath string, opts PutObjectOptions) (UploadInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return UploadInfo{}, s3err.ErrInvalidArgument.NewWithMessage(
			s3err.ObjectResource(bucket, key), err.Error())
	}
	return c.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), opts)
}

// FGetObject downloads bucket/key into a local file, creating or
// truncating it.
func (c *Client) FGetObject(ctx context.Context, bucket, key, filePath string, opts GetObjectOptions) error {
	res, err := c.GetObject(ctx, bucket, key, opts)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	f, err := os.Create(filePath)
	if err != nil {
		return s3err.ErrInternalError.NewWithMessage(
			s3err.ObjectResource(bucket, key), err.Error())
	}
	if _, err := io.Copy(f, res.Body); err != nil {
		f.Close()
		return s3err.ErrInternalError.NewWithMessage(
			s3err.ObjectResource(bucket, key), err.Error())
	}
	return f.Close()
}
