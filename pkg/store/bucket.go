// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"iter"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"
	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3types"
)

// Bucket is a named collection of versioned objects plus a versioning mode.
// One exclusive-writer lock serializes all mutations; listings snapshot the
// sorted key set before iterating.
type Bucket struct {
	mu sync.RWMutex

	name       string
	objects    map[string]*Object
	versioning s3types.Versioning
	location   string
	objectLock bool
	createdAt  time.Time
}

// NewBucket creates a bucket. Versioning starts Off; location and object
// locking are carried for round-trip fidelity only.
func NewBucket(name, location string, objectLock bool) *Bucket {
	return &Bucket{
		name:       name,
		objects:    make(map[string]*Object),
		location:   location,
		objectLock: objectLock,
		createdAt:  time.Now(),
	}
}

// Name returns the bucket name.
func (b *Bucket) Name() string { return b.name }

// Info returns the bucket's metadata snapshot.
func (b *Bucket) Info() s3types.BucketInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return s3types.BucketInfo{
		Name:          b.name,
		Region:        b.location,
		CreatedAt:     b.createdAt,
		ObjectLocking: b.objectLock,
		Versioning:    b.versioning,
	}
}

// Versioning returns the current versioning mode.
func (b *Bucket) Versioning() s3types.Versioning {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.versioning
}

// SetVersioning updates the versioning mode. All transitions are legal.
func (b *Bucket) SetVersioning(v s3types.Versioning) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.versioning = v
}

// Put stores a new version of key and returns it, creating the object on
// first write.
func (b *Bucket) Put(key string, payload []byte, metadata map[string]string) *ObjectVersion {
	b.mu.Lock()
	defer b.mu.Unlock()

	obj, ok := b.objects[key]
	if !ok {
		obj = newObject(b.name, key)
		b.objects[key] = obj
	}
	v := obj.put(payload, metadata, b.versioning)
	opsTotal.WithLabelValues("put").Inc()
	bytesWrittenTotal.Add(float64(v.Size()))
	return v
}

// Get resolves key and an optional version string to a readable version.
func (b *Bucket) Get(key, versionID string) (*ObjectVersion, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, ok := b.objects[key]
	if !ok {
		return nil, s3err.ErrNoSuchKey.New(s3err.ObjectResource(b.name, key))
	}
	opsTotal.WithLabelValues("get").Inc()
	return obj.get(versionID, b.versioning)
}

// Stat resolves like Get but counts as a metadata read.
func (b *Bucket) Stat(key, versionID string) (*ObjectVersion, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, ok := b.objects[key]
	if !ok {
		return nil, s3err.ErrNoSuchKey.New(s3err.ObjectResource(b.name, key))
	}
	opsTotal.WithLabelValues("stat").Inc()
	return obj.stat(versionID, b.versioning)
}

// Remove deletes key (or one of its versions) according to the versioning
// mode. Removing an absent key is a no-op, matching at-least-once delete
// semantics. When the last version of a key is hard-deleted the key itself
// is dropped from the bucket.
func (b *Bucket) Remove(key, versionID string) (s3types.DeletedObject, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	opsTotal.WithLabelValues("remove").Inc()

	obj, ok := b.objects[key]
	if !ok {
		return s3types.DeletedObject{Key: key, VersionID: versionID}, nil
	}

	if b.versioning == s3types.VersioningOff {
		// Never versioned: the object is deleted completely.
		delete(b.objects, key)
		return s3types.DeletedObject{Key: key}, nil
	}

	res, err := obj.remove(versionID, b.versioning)
	if err != nil {
		return s3types.DeletedObject{}, err
	}
	if obj.empty() {
		delete(b.objects, key)
	}
	return res, nil
}

// ListObjects walks keys in natural string order, filtered to prefix and
// strictly after startAfter. Non-recursive listings collapse keys below the
// first path separator past the prefix into one synthetic directory entry
// each. With includeVersions every stored version is emitted in version
// order (markers last, newest first per group) and exactly the latest one is
// tagged current; otherwise only non-marker latest versions are emitted.
//
// The sequence is lazy: the sorted key set is snapshotted when iteration
// starts, and each key is resolved against live state as the walk reaches
// it. Keys deleted mid-walk are skipped.
func (b *Bucket) ListObjects(prefix string, recursive bool, startAfter string, includeVersions bool) iter.Seq[s3types.ObjectInfo] {
	return func(yield func(s3types.ObjectInfo) bool) {
		opsTotal.WithLabelValues("list").Inc()
		keys := b.snapshotKeys()

		seenDirs := make(map[string]struct{})
		for _, key := range keys {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			if startAfter != "" && key <= startAfter {
				continue
			}

			if !recursive {
				sub := strings.Trim(key[len(prefix):], "/")
				if i := strings.Index(sub, "/"); i >= 0 {
					dir := prefix + sub[:i+1]
					if _, ok := seenDirs[dir]; !ok {
						seenDirs[dir] = struct{}{}
						if !yield(s3types.ObjectInfo{Bucket: b.name, Key: dir}) {
							return
						}
					}
					// The full key is subsumed by its directory entry.
					continue
				}
			}

			for _, info := range b.keyRecords(key, includeVersions) {
				if !yield(info) {
					return
				}
			}
		}
	}
}

// snapshotKeys returns the bucket's keys sorted, as a point-in-time copy.
func (b *Bucket) snapshotKeys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.objects))
	for k := range b.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// keyRecords materializes the listing records for one key under the read
// lock, so the caller can yield them without holding it.
func (b *Bucket) keyRecords(key string, includeVersions bool) []s3types.ObjectInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, ok := b.objects[key]
	if !ok {
		return nil
	}

	if !includeVersions {
		latest := obj.getLatest()
		if latest == nil || latest.IsDeleteMarker() {
			return nil
		}
		info := b.objectInfo(key, latest)
		info.IsLatest = true
		return []s3types.ObjectInfo{info}
	}

	versions := obj.listVersions()
	out := make([]s3types.ObjectInfo, 0, len(versions))
	for _, v := range versions {
		info := b.objectInfo(key, v)
		info.IsLatest = v.ID() == obj.latest
		out = append(out, info)
	}
	return out
}

func (b *Bucket) objectInfo(key string, v *ObjectVersion) s3types.ObjectInfo {
	return s3types.ObjectInfo{
		Bucket:         b.name,
		Key:            key,
		LastModified:   v.LastModified(),
		ETag:           v.ETag(),
		Size:           v.Size(),
		VersionID:      v.ID().Value(),
		IsDeleteMarker: v.IsDeleteMarker(),
		UserMetadata:   v.Metadata(),
	}
}

// Len returns the number of keys currently in the bucket.
func (b *Bucket) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.objects)
}

// VersionCount returns the number of stored versions for key, zero when the
// key is absent.
func (b *Bucket) VersionCount(key string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	obj, ok := b.objects[key]
	if !ok {
		return 0
	}
	return len(obj.versions)
}
