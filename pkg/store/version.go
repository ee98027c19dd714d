// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

// Package store holds the stateful core of the emulator: version records,
// per-key version histories, buckets, and the endpoint registry. All
// observable behavior (version resolution, delete markers, listing order)
// lives here; the client package is a stateless facade over it.
package store

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

// NullVersionValue is the wire representation of the null version sentinel.
const NullVersionValue = "null"

var errMalformedVersionID = errors.New("malformed version id")

// VersionID identifies one stored version of an object. It is a two-variant
// value: the "null" sentinel used when versioning has never produced a unique
// identifier for a write, or a generated UUID. The zero value is neither and
// must not be stored.
type VersionID struct {
	id     uuid.UUID
	isNull bool
}

// NullVersion is the sentinel identifier for the unversioned slot.
var NullVersion = VersionID{isNull: true}

// NewVersionID generates a fresh unique version identifier.
func NewVersionID() VersionID {
	return VersionID{id: uuid.New()}
}

// ParseVersionID maps a caller-supplied version string to a VersionID.
// Empty input reports specified=false, leaving resolution to the caller
// ("latest" or the null slot depending on the bucket's versioning mode).
// The literal "null" is the sentinel; anything else must be a UUID.
func ParseVersionID(s string) (v VersionID, specified bool, err error) {
	if s == "" {
		return VersionID{}, false, nil
	}
	if s == NullVersionValue {
		return NullVersion, true, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return VersionID{}, false, errMalformedVersionID
	}
	return VersionID{id: id}, true, nil
}

// IsNull reports whether v is the null sentinel.
func (v VersionID) IsNull() bool {
	return v.isNull
}

// String returns "null" for the sentinel, the UUID string otherwise.
func (v VersionID) String() string {
	if v.isNull {
		return NullVersionValue
	}
	return v.id.String()
}

// Value returns the identifier as surfaced in receipts and listing records:
// empty for the null sentinel, the UUID string otherwise.
func (v VersionID) Value() string {
	if v.isNull {
		return ""
	}
	return v.id.String()
}

// ObjectVersion is one immutable snapshot of an object's payload and
// metadata. The delete-marker flag is the single mutable exception: it may
// flip false to true once, for the suspended-mode soft delete.
type ObjectVersion struct {
	payload      []byte
	size         int64
	metadata     map[string]string
	lastModified time.Time
	id           VersionID
	etag         string
	deleteMarker bool

	// seq is the insertion sequence within the owning object, used to break
	// timestamp ties in version ordering.
	seq uint64
}

func newObjectVersion(payload []byte, metadata map[string]string, id VersionID, deleteMarker bool) *ObjectVersion {
	sum := md5.Sum(payload)
	return &ObjectVersion{
		payload:      payload,
		size:         int64(len(payload)),
		metadata:     copyMetadata(metadata),
		lastModified: time.Now(),
		id:           id,
		etag:         hex.EncodeToString(sum[:]),
		deleteMarker: deleteMarker,
	}
}

// Payload returns a copy of the stored bytes.
func (v *ObjectVersion) Payload() []byte {
	out := make([]byte, len(v.payload))
	copy(out, v.payload)
	return out
}

// Size returns the payload length in bytes.
func (v *ObjectVersion) Size() int64 {
	return v.size
}

// Metadata returns a copy of the version's metadata.
func (v *ObjectVersion) Metadata() map[string]string {
	return copyMetadata(v.metadata)
}

// LastModified returns the creation timestamp.
func (v *ObjectVersion) LastModified() time.Time {
	return v.lastModified
}

// ID returns the version identifier.
func (v *ObjectVersion) ID() VersionID {
	return v.id
}

// ETag returns the hex MD5 of the payload.
func (v *ObjectVersion) ETag() string {
	return v.etag
}

// IsDeleteMarker reports whether this version carries no payload semantics.
func (v *ObjectVersion) IsDeleteMarker() bool {
	return v.deleteMarker
}

// markDeleted flips the delete-marker flag. The transition is one-way.
func (v *ObjectVersion) markDeleted() {
	v.deleteMarker = true
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, val := range m {
		out[k] = val
	}
	return out
}
