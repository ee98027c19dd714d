// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"sort"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"
	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3types"
)

// Object is the version history of a single key within a bucket: an
// insertion-ordered set of ObjectVersions plus a pointer to the latest one.
//
// An Object always holds at least one version; a history emptied by deletes
// means the object is gone, and the owning Bucket drops the key. Callers
// must hold the owning Bucket's lock.
type Object struct {
	bucket string
	key    string

	versions map[VersionID]*ObjectVersion
	order    []VersionID // insertion order
	latest   VersionID
	nextSeq  uint64
}

func newObject(bucket, key string) *Object {
	return &Object{
		bucket:   bucket,
		key:      key,
		versions: make(map[VersionID]*ObjectVersion),
	}
}

// Bucket returns the owning bucket's name.
func (o *Object) Bucket() string { return o.bucket }

// Key returns the object key.
func (o *Object) Key() string { return o.key }

func (o *Object) empty() bool { return len(o.versions) == 0 }

func (o *Object) resource() string {
	return s3err.ObjectResource(o.bucket, o.key)
}

// put stores a new version according to the bucket's versioning mode and
// returns it. Under Off the whole history is replaced by a fresh null slot;
// under Suspended the write lands in the null slot; under Enabled it gets a
// generated identifier.
func (o *Object) put(payload []byte, metadata map[string]string, mode s3types.Versioning) *ObjectVersion {
	if mode == s3types.VersioningOff {
		// No history under Off: a fresh unversioned slot replaces it.
		o.versions = make(map[VersionID]*ObjectVersion)
		o.order = o.order[:0]
	}
	id := NullVersion
	if mode == s3types.VersioningEnabled {
		id = NewVersionID()
	}
	return o.insert(newObjectVersion(payload, metadata, id, false))
}

// insert adds v to the history and makes it latest. Re-inserting the null
// slot replaces the prior null version in place.
func (o *Object) insert(v *ObjectVersion) *ObjectVersion {
	if _, ok := o.versions[v.id]; ok {
		o.dropFromOrder(v.id)
	}
	v.seq = o.nextSeq
	o.nextSeq++
	o.versions[v.id] = v
	o.order = append(o.order, v.id)
	o.latest = v.id
	return v
}

// get resolves a requested version string to a concrete version per the
// bucket's mode. Delete markers never resolve to data: an explicitly
// requested marker fails with MethodNotAllowed, an implicit one with
// NoSuchKey flagged as deleted.
func (o *Object) get(requested string, mode s3types.Versioning) (*ObjectVersion, error) {
	if mode == s3types.VersioningOff {
		// Versioning Off means the bucket was never versioned; only the
		// null slot can exist, so any requested identifier is ignored.
		requested = ""
	}

	id, specified, err := ParseVersionID(requested)
	if err != nil {
		return nil, s3err.ErrInvalidVersionID.New(o.resource())
	}

	var v *ObjectVersion
	switch {
	case specified:
		var ok bool
		if v, ok = o.versions[id]; !ok {
			return nil, s3err.ErrNoSuchVersion.New(o.resource())
		}
	case mode == s3types.VersioningOff:
		var ok bool
		if v, ok = o.versions[NullVersion]; !ok {
			// Degenerate: the null slot was deleted out from under us.
			return nil, s3err.ErrNoSuchVersion.New(o.resource())
		}
	default:
		v = o.versions[o.latest]
	}

	if v.IsDeleteMarker() {
		if specified {
			return nil, s3err.ErrMethodNotAllowed.New(o.resource())
		}
		e := s3err.ErrNoSuchKey.New(o.resource())
		e.DeleteMarker = true
		return nil, e
	}
	return v, nil
}

// remove handles Enabled and Suspended deletes. Off-mode deletes never reach
// the Object; the Bucket removes the key outright.
//
// With an explicit identifier the version is hard-deleted (no-op when
// absent). Without one, Enabled appends a delete marker (no-op when the
// latest already is one) and Suspended soft-deletes the null slot in place.
func (o *Object) remove(requested string, mode s3types.Versioning) (s3types.DeletedObject, error) {
	id, specified, err := ParseVersionID(requested)
	if err != nil {
		return s3types.DeletedObject{}, s3err.ErrInvalidVersionID.New(o.resource())
	}

	if specified {
		o.deleteVersion(id)
		return s3types.DeletedObject{Key: o.key, VersionID: requested}, nil
	}

	switch mode {
	case s3types.VersioningEnabled:
		if latest := o.versions[o.latest]; latest != nil && latest.IsDeleteMarker() {
			// Latest is already a marker, nothing to do.
			return o.markerResult(), nil
		}
		o.insert(newObjectVersion(nil, nil, NewVersionID(), true))
		return o.markerResult(), nil

	case s3types.VersioningSuspended:
		if v, ok := o.versions[NullVersion]; ok {
			v.markDeleted()
		} else if latest := o.versions[o.latest]; latest != nil {
			latest.markDeleted()
		}
		return o.markerResult(), nil
	}

	return s3types.DeletedObject{Key: o.key}, nil
}

// markerResult reports the delete-marker outcome of a version-less delete:
// the new latest is a marker, so the record carries its identifier and no
// literal version id.
func (o *Object) markerResult() s3types.DeletedObject {
	res := s3types.DeletedObject{Key: o.key}
	if latest := o.versions[o.latest]; latest != nil && latest.IsDeleteMarker() {
		res.DeleteMarker = true
		res.DeleteMarkerVersionID = latest.ID().Value()
	}
	return res
}

// deleteVersion hard-deletes one version if present. When the deleted
// version was latest, latest moves to the most recently inserted survivor.
func (o *Object) deleteVersion(id VersionID) {
	if _, ok := o.versions[id]; !ok {
		return
	}
	delete(o.versions, id)
	o.dropFromOrder(id)
	if id == o.latest && len(o.order) > 0 {
		o.latest = o.order[len(o.order)-1]
	}
}

func (o *Object) dropFromOrder(id VersionID) {
	for i, v := range o.order {
		if v == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			return
		}
	}
}

// stat resolves exactly like get but is used for metadata-only reads.
func (o *Object) stat(requested string, mode s3types.Versioning) (*ObjectVersion, error) {
	return o.get(requested, mode)
}

// listVersions returns all versions, non-delete-markers before markers,
// newest first within each group. This is the enumeration order of
// version-inclusive listings.
func (o *Object) listVersions() []*ObjectVersion {
	out := make([]*ObjectVersion, 0, len(o.versions))
	for _, v := range o.versions {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].deleteMarker != out[j].deleteMarker {
			return !out[i].deleteMarker
		}
		if !out[i].lastModified.Equal(out[j].lastModified) {
			return out[i].lastModified.After(out[j].lastModified)
		}
		return out[i].seq > out[j].seq
	})
	return out
}

// getLatest returns the version the latest pointer designates.
func (o *Object) getLatest() *ObjectVersion {
	return o.versions[o.latest]
}
