// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import "time"

// BucketInfo represents bucket metadata
type BucketInfo struct {
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// ObjectLocking is carried for round-trip fidelity only; retention is
	// never enforced.
	ObjectLocking bool `json:"object_locking,omitempty"`

	// Versioning: "Enabled", "Suspended", or "" (never enabled)
	Versioning Versioning `json:"versioning,omitempty"`
}
