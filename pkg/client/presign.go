// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"strings"
	"time"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"
)

// DefaultPresignExpiry mirrors the real client's seven-day default.
const DefaultPresignExpiry = 7 * 24 * time.Hour

// baseURL prepends a scheme when the endpoint was given as a bare host,
// matching the URL shape clients expect back from a presign call.
func (c *Client) baseURL() string {
	if strings.Contains(c.endpoint, "://") {
		return c.endpoint
	}
	if c.opts.Secure {
		return "https://" + c.endpoint
	}
	return "http://" + c.endpoint
}

var presignMethods = map[string]struct{}{
	"GET": {}, "PUT": {}, "POST": {}, "HEAD": {}, "DELETE": {},
	"PATCH": {}, "OPTIONS": {}, "CONNECT": {}, "TRACE": {},
}

// GetPresignedURL builds a presigned-URL string for bucket/key. Format
// fidelity only: no signature, no expiry enforcement; the expiry parameter
// is accepted for call compatibility.
func (c *Client) GetPresignedURL(ctx context.Context, method, bucket, key string, expires time.Duration, versionID string) (string, error) {
	if _, ok := presignMethods[method]; !ok {
		return "", s3err.ErrInvalidArgument.NewWithMessage(
			s3err.ObjectResource(bucket, key), "unsupported method "+method)
	}
	u := c.baseURL() + "/" + bucket + "/" + key
	if versionID != "" {
		u += "?versionId=" + versionID
	}
	return u, nil
}

// PresignedGetObject builds a presigned GET URL.
func (c *Client) PresignedGetObject(ctx context.Context, bucket, key string, expires time.Duration, versionID string) (string, error) {
	return c.GetPresignedURL(ctx, "GET", bucket, key, expires, versionID)
}

// PresignedPutObject builds a presigned PUT URL.
func (c *Client) PresignedPutObject(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	return c.GetPresignedURL(ctx, "PUT", bucket, key, expires, "")
}
