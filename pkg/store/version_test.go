// Copyright 2025 ZapMock Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionID(t *testing.T) {
	t.Parallel()

	unique := NewVersionID()

	tests := []struct {
		name          string
		input         string
		wantSpecified bool
		wantNull      bool
		wantErr       bool
	}{
		{
			name:          "empty is unspecified",
			input:         "",
			wantSpecified: false,
		},
		{
			name:          "null sentinel",
			input:         "null",
			wantSpecified: true,
			wantNull:      true,
		},
		{
			name:          "uuid round-trips",
			input:         unique.String(),
			wantSpecified: true,
		},
		{
			name:    "garbage is rejected",
			input:   "not-a-version",
			wantErr: true,
		},
		{
			name:    "truncated uuid is rejected",
			input:   "123e4567-e89b-12d3",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, specified, err := ParseVersionID(tc.input)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSpecified, specified)
			assert.Equal(t, tc.wantNull, v.IsNull())
			if specified {
				assert.Equal(t, tc.input, v.String())
			}
		})
	}
}

func TestVersionIDValue(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NullVersion.Value(), "null slot has no surfaced version id")
	assert.Equal(t, "null", NullVersion.String())

	v := NewVersionID()
	assert.Equal(t, v.String(), v.Value())
	assert.False(t, v.IsNull())
}

func TestNewVersionIDUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[VersionID]struct{})
	for i := 0; i < 100; i++ {
		v := NewVersionID()
		_, dup := seen[v]
		require.False(t, dup)
		seen[v] = struct{}{}
	}
}

func TestObjectVersionETag(t *testing.T) {
	t.Parallel()

	a := newObjectVersion([]byte("hello"), nil, NewVersionID(), false)
	b := newObjectVersion([]byte("hello"), nil, NewVersionID(), false)
	c := newObjectVersion([]byte("world"), nil, NewVersionID(), false)

	assert.Equal(t, a.ETag(), b.ETag(), "etag depends only on payload")
	assert.NotEqual(t, a.ETag(), c.ETag())
	assert.Equal(t, int64(5), a.Size())
}

func TestObjectVersionCopies(t *testing.T) {
	t.Parallel()

	meta := map[string]string{"k": "v"}
	v := newObjectVersion([]byte("data"), meta, NullVersion, false)

	meta["k"] = "mutated"
	assert.Equal(t, "v", v.Metadata()["k"], "stored metadata is insulated from the caller's map")

	p := v.Payload()
	p[0] = 'X'
	assert.Equal(t, []byte("data"), v.Payload(), "payload reads are copies")
}
