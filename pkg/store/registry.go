// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"sort"
	"sync"

	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3err"
	"github.com/LeeDigitalWorks/zapmock/pkg/s3api/s3types"
)

// Server is the bucket collection behind one endpoint identity. Every client
// constructed against the same endpoint shares the same Server, so writes
// made through one handle are immediately visible through the others.
type Server struct {
	mu       sync.RWMutex
	endpoint string
	buckets  map[string]*Bucket
}

// Endpoint returns the endpoint string this server was registered under.
func (s *Server) Endpoint() string { return s.endpoint }

// MakeBucket creates (or replaces with a fresh) bucket under name.
func (s *Server) MakeBucket(name, location string, objectLock bool) *Bucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := NewBucket(name, location, objectLock)
	s.buckets[name] = b
	return b
}

// Bucket resolves name to its bucket.
func (s *Server) Bucket(name string) (*Bucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buckets[name]
	if !ok {
		return nil, s3err.ErrNoSuchBucket.NewWithMessage(s3err.BucketResource(name), "bucket does not exist")
	}
	return b, nil
}

// BucketExists reports whether name is a known bucket.
func (s *Server) BucketExists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.buckets[name]
	return ok
}

// ListBuckets returns metadata for all buckets, ordered by name.
func (s *Server) ListBuckets() []s3types.BucketInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]s3types.BucketInfo, 0, len(s.buckets))
	for _, b := range s.buckets {
		out = append(out, b.Info())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Registry maps endpoint identities to shared bucket collections. It is an
// explicit dependency handed to each client constructor, so independent test
// scenarios can run against isolated registries without reset calls.
type Registry struct {
	mu      sync.Mutex
	servers map[string]*Server
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{servers: make(map[string]*Server)}
}

// Connect returns the server registered under endpoint, creating it on first
// use. The returned server is shared state, not a copy.
func (r *Registry) Connect(endpoint string) *Server {
	r.mu.Lock()
	defer r.mu.Unlock()
	srv, ok := r.servers[endpoint]
	if !ok {
		srv = &Server{
			endpoint: endpoint,
			buckets:  make(map[string]*Bucket),
		}
		r.servers[endpoint] = srv
	}
	return srv
}

// Reset discards all servers and their buckets.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.servers = make(map[string]*Server)
}
