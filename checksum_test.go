// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_Checksum(t *testing.T) {
	a := Resource{Name: "a", Type: 10, Data: []byte("same bytes")}
	b := Resource{Name: "b", Type: 99, Data: []byte("same bytes")}
	c := Resource{Name: "a", Type: 10, Data: []byte("other bytes")}

	// the fingerprint depends on data only
	assert.Equal(t, a.Checksum(), b.Checksum())
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}

func TestDiff(t *testing.T) {
	before := New()
	require.NoError(t, before.Set("kept", 10, []byte("stable")))
	require.NoError(t, before.Set("edited", 2029, []byte("v1")))
	require.NoError(t, before.Set("dropped", 2009, []byte("gone soon")))

	after := New()
	require.NoError(t, after.Set("kept", 10, []byte("stable")))
	require.NoError(t, after.Set("edited", 2029, []byte("v2")))
	require.NoError(t, after.Set("fresh", 2014, []byte("new")))

	changes := Diff(before, after)
	require.Len(t, changes, 3)
	assert.Equal(t, Change{Name: "edited", Type: 2029, Kind: Modified}, changes[0])
	assert.Equal(t, Change{Name: "fresh", Type: 2014, Kind: Added}, changes[1])
	assert.Equal(t, Change{Name: "dropped", Type: 2009, Kind: Removed}, changes[2])
}

func TestDiff_Identical(t *testing.T) {
	a := testArchive(t)
	assert.Empty(t, Diff(a, a))
}
