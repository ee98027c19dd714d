// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import "time"

// ObjectInfo is a single listing/stat record for an object version.
//
// For synthetic directory entries emitted by non-recursive listings only
// Bucket and Key are populated and Key ends with "/".
type ObjectInfo struct {
	Bucket       string
	Key          string
	LastModified time.Time
	ETag         string
	Size         int64

	// VersionID is empty for the null (unversioned) slot.
	VersionID      string
	IsLatest       bool
	IsDeleteMarker bool

	UserMetadata map[string]string
}

// IsDir reports whether this record is a synthetic directory entry.
func (o ObjectInfo) IsDir() bool {
	return len(o.Key) > 0 && o.Key[len(o.Key)-1] == '/' && o.LastModified.IsZero()
}
