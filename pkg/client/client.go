// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

// Package client is the stateless facade over the store: it resolves bucket
// names, validates inputs at the call boundary, and delegates all stateful
// logic to the bucket and object layers.
package client

import (
	"bytes"
	"context"
	"io"
	"iter"
	"net"
	"net/url"
	"strings"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"
	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3types"
	"github.com/LeeDigitalWorks/zapmock/pkg/store"
)

// Client exposes the object-storage operations against one endpoint
// identity. Clients constructed against the same registry and endpoint share
// one bucket collection.
type Client struct {
	endpoint string
	server   *store.Server
	opts     Options
}

// New validates endpoint and connects it to a server in the registry.
func New(registry *store.Registry, endpoint string, opts Options) (*Client, error) {
	if endpoint == "" {
		return nil, s3err.ErrInvalidArgument.NewWithMessage("", "endpoint is empty")
	}
	if err := validateEndpoint(endpoint); err != nil {
		return nil, err
	}
	return &Client{
		endpoint: endpoint,
		server:   registry.Connect(endpoint),
		opts:     opts,
	}, nil
}

// validateEndpoint accepts "host", "host:port", or an http(s) URL.
func validateEndpoint(endpoint string) error {
	host := endpoint
	if strings.Contains(endpoint, "://") {
		u, err := url.Parse(endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return s3err.ErrInvalidArgument.NewWithMessage("", "endpoint "+endpoint+" is not valid")
		}
		host = u.Host
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" || strings.ContainsAny(host, " /?#") {
		return s3err.ErrInvalidArgument.NewWithMessage("", "endpoint "+endpoint+" is not valid")
	}
	return nil
}

// Endpoint returns the endpoint this client was constructed against.
func (c *Client) Endpoint() string { return c.endpoint }

func (c *Client) bucket(name string) (*store.Bucket, error) {
	return c.server.Bucket(name)
}

// MakeBucket creates bucket name with versioning Off.
func (c *Client) MakeBucket(ctx context.Context, name string, opts MakeBucketOptions) error {
	if name == "" {
		return s3err.ErrInvalidArgument.NewWithMessage("", "bucket name is empty")
	}
	c.server.MakeBucket(name, opts.Region, opts.ObjectLocking)
	return nil
}

// BucketExists reports whether name is a known bucket.
func (c *Client) BucketExists(ctx context.Context, name string) (bool, error) {
	return c.server.BucketExists(name), nil
}

// ListBuckets returns all buckets ordered by name.
func (c *Client) ListBuckets(ctx context.Context) ([]s3types.BucketInfo, error) {
	return c.server.ListBuckets(), nil
}

// SetBucketVersioning switches the bucket's versioning mode. All mode
// transitions are legal; only the status value itself is validated.
func (c *Client) SetBucketVersioning(ctx context.Context, bucket string, cfg s3types.VersioningConfiguration) error {
	if !cfg.Mode().Valid() {
		return s3err.ErrInvalidArgument.NewWithMessage(s3err.BucketResource(bucket),
			"versioning status must be Enabled, Suspended, or empty")
	}
	b, err := c.bucket(bucket)
	if err != nil {
		return err
	}
	b.SetVersioning(cfg.Mode())
	return nil
}

// GetBucketVersioning returns the bucket's current versioning configuration.
func (c *Client) GetBucketVersioning(ctx context.Context, bucket string) (s3types.VersioningConfiguration, error) {
	b, err := c.bucket(bucket)
	if err != nil {
		return s3types.VersioningConfiguration{}, err
	}
	return s3types.VersioningConfiguration{Status: string(b.Versioning())}, nil
}

// PutObject stores size bytes from r under bucket/key and returns the write
// receipt. A negative size means read to EOF.
func (c *Client) PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts PutObjectOptions) (UploadInfo, error) {
	b, err := c.bucket(bucket)
	if err != nil {
		return UploadInfo{}, err
	}

	var payload []byte
	if size < 0 {
		payload, err = io.ReadAll(r)
		if err != nil {
			return UploadInfo{}, s3err.ErrInternalError.NewWithMessage(s3err.ObjectResource(bucket, key), err.Error())
		}
	} else {
		payload, err = io.ReadAll(io.LimitReader(r, size))
		if err != nil {
			return UploadInfo{}, s3err.ErrInternalError.NewWithMessage(s3err.ObjectResource(bucket, key), err.Error())
		}
		if int64(len(payload)) < size {
			return UploadInfo{}, s3err.ErrIncompleteBody.New(s3err.ObjectResource(bucket, key))
		}
	}

	v := b.Put(key, payload, opts.UserMetadata)
	return UploadInfo{
		Bucket:       bucket,
		Key:          key,
		ETag:         v.ETag(),
		Size:         v.Size(),
		VersionID:    v.ID().Value(),
		LastModified: v.LastModified(),
	}, nil
}

// GetObject resolves bucket/key (and an optional version) to a readable
// byte stream over a copy of the stored payload.
func (c *Client) GetObject(ctx context.Context, bucket, key string, opts GetObjectOptions) (*GetObjectResult, error) {
	b, err := c.bucket(bucket)
	if err != nil {
		return nil, err
	}
	v, err := b.Get(key, opts.VersionID)
	if err != nil {
		return nil, err
	}
	return &GetObjectResult{
		Info: objectInfo(bucket, key, v),
		Body: io.NopCloser(bytes.NewReader(v.Payload())),
	}, nil
}

// StatObject returns size, timestamp, version id, and metadata for
// bucket/key without the payload.
func (c *Client) StatObject(ctx context.Context, bucket, key string, opts StatObjectOptions) (s3types.ObjectInfo, error) {
	b, err := c.bucket(bucket)
	if err != nil {
		return s3types.ObjectInfo{}, err
	}
	v, err := b.Stat(key, opts.VersionID)
	if err != nil {
		return s3types.ObjectInfo{}, err
	}
	return objectInfo(bucket, key, v), nil
}

// ListObjects returns the bucket's lazy listing sequence. The sequence is
// finite and not restartable; re-invoke ListObjects to re-scan current
// state.
func (c *Client) ListObjects(ctx context.Context, bucket string, opts ListObjectsOptions) (iter.Seq[s3types.ObjectInfo], error) {
	b, err := c.bucket(bucket)
	if err != nil {
		return nil, err
	}
	return b.ListObjects(opts.Prefix, opts.Recursive, opts.StartAfter, opts.WithVersions), nil
}

// RemoveObject deletes bucket/key or one of its versions.
func (c *Client) RemoveObject(ctx context.Context, bucket, key string, opts RemoveObjectOptions) error {
	b, err := c.bucket(bucket)
	if err != nil {
		return err
	}
	_, err = b.Remove(key, opts.VersionID)
	return err
}

func objectInfo(bucket, key string, v *store.ObjectVersion) s3types.ObjectInfo {
	return s3types.ObjectInfo{
		Bucket:       bucket,
		Key:          key,
		LastModified: v.LastModified(),
		ETag:         v.ETag(),
		Size:         v.Size(),
		VersionID:    v.ID().Value(),
		UserMetadata: v.Metadata(),
	}
}
