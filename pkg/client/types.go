// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"io"
	"time"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3types"
)

// Options configures a Client. Credentials and transport settings are
// accepted for signature compatibility with real clients but are inert.
type Options struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Region       string
	Secure       bool
}

// MakeBucketOptions carries bucket creation parameters. Region and object
// locking are stored for round-trip fidelity only.
type MakeBucketOptions struct {
	Region        string
	ObjectLocking bool
}

// PutObjectOptions carries optional put parameters. Only UserMetadata
// affects stored state; the rest are accepted as inert extras.
type PutObjectOptions struct {
	ContentType  string
	UserMetadata map[string]string
	UserTags     map[string]string
	LegalHold    bool
	NumThreads   uint
	PartSize     uint64
}

// GetObjectOptions selects a version for reads.
type GetObjectOptions struct {
	VersionID string
}

// StatObjectOptions selects a version for metadata reads.
type StatObjectOptions struct {
	VersionID string
}

// ListObjectsOptions controls bucket listings.
type ListObjectsOptions struct {
	Prefix       string
	Recursive    bool
	StartAfter   string
	WithVersions bool
}

// RemoveObjectOptions selects a version for deletes.
type RemoveObjectOptions struct {
	VersionID string
}

// CopySrcOptions names a copy/compose source.
type CopySrcOptions struct {
	Bucket    string
	Object    string
	VersionID string
}

// CopyDestOptions names a copy/compose destination. UserMetadata is merged
// over the source metadata, caller keys winning.
type CopyDestOptions struct {
	Bucket       string
	Object       string
	UserMetadata map[string]string
}

// UploadInfo is the write receipt returned by put, copy, and compose.
// VersionID is empty when the write landed in the null (unversioned) slot.
type UploadInfo struct {
	Bucket       string
	Key          string
	ETag         string
	Size         int64
	VersionID    string
	LastModified time.Time
}

// GetObjectResult carries a read: the resolved version's listing record plus
// a reader over a copy of its payload. The caller must close Body.
type GetObjectResult struct {
	Info s3types.ObjectInfo
	Body io.ReadCloser
}
