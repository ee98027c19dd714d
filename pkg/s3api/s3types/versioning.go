// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

// Versioning represents the versioning state of a bucket
type Versioning string

const (
	VersioningEnabled   Versioning = "Enabled"
	VersioningSuspended Versioning = "Suspended"
	VersioningOff       Versioning = "" // Never enabled
)

// Valid reports whether v is one of the three recognized states.
func (v Versioning) Valid() bool {
	switch v {
	case VersioningOff, VersioningEnabled, VersioningSuspended:
		return true
	}
	return false
}

// VersioningConfiguration is the bucket versioning request/response body
type VersioningConfiguration struct {
	Status    string // Enabled or Suspended
	MFADelete string // Disabled or Enabled (carried for fidelity, not enforced)
}

// Mode maps the configuration to a Versioning state.
func (c VersioningConfiguration) Mode() Versioning {
	return Versioning(c.Status)
}
