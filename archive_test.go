// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_SetAndGet(t *testing.T) {
	a := New()
	require.Zero(t, a.Len())

	require.NoError(t, a.Set("Module", 2014, []byte{1, 2, 3}))
	require.Equal(t, 1, a.Len())

	// lookups are case-insensitive
	for _, name := range []string{"module", "Module", "MODULE"} {
		data, err := a.Get(name, 2014)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, data)
	}

	// same name under a different type is a different resource
	_, err := a.Get("module", 2009)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArchive_CaseInsensitiveReplace(t *testing.T) {
	a := New()
	require.NoError(t, a.Set("aaa", 10, []byte("first")))
	require.NoError(t, a.Set("Foo", 10, []byte("b1")))
	require.NoError(t, a.Set("zzz", 10, []byte("last")))

	require.NoError(t, a.Set("FOO", 10, []byte("b2")))

	require.Equal(t, 3, a.Len())
	resources := a.Resources()
	// the replaced resource keeps its position and lower-cased name
	assert.Equal(t, "foo", resources[1].Name)
	assert.Equal(t, []byte("b2"), resources[1].Data)

	data, err := a.Get("foo", 10)
	require.NoError(t, err)
	assert.Equal(t, []byte("b2"), data)
}

func TestArchive_SetCopiesData(t *testing.T) {
	a := New()
	buf := []byte("mutable")
	require.NoError(t, a.Set("res", 10, buf))

	buf[0] = 'X'
	data, err := a.Get("res", 10)
	require.NoError(t, err)
	assert.Equal(t, []byte("mutable"), data)
}

func TestArchive_NameTooLong(t *testing.T) {
	a := New()
	err := a.Set(strings.Repeat("n", MaxNameLen+1), 10, []byte{1})
	assert.ErrorIs(t, err, ErrNameTooLong)
	// the rejected set left the archive unchanged
	assert.Zero(t, a.Len())

	assert.NoError(t, a.Set(strings.Repeat("n", MaxNameLen), 10, []byte{1}))
}

func TestArchive_Remove(t *testing.T) {
	a := New()
	require.NoError(t, a.Set("a", 1, []byte("a")))
	require.NoError(t, a.Set("b", 1, []byte("b")))
	require.NoError(t, a.Set("c", 1, []byte("c")))

	assert.False(t, a.Remove("missing", 1))
	assert.True(t, a.Remove("B", 1))
	require.Equal(t, 2, a.Len())

	resources := a.Resources()
	assert.Equal(t, "a", resources[0].Name)
	assert.Equal(t, "c", resources[1].Name)

	// lookups still work after the reindex
	data, err := a.Get("c", 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), data)
	assert.False(t, a.Contains("b", 1))
}

func TestArchive_OrderPreserved(t *testing.T) {
	a := New()
	names := []string{"zeta", "alpha", "mid", "beta"}
	for i, name := range names {
		require.NoError(t, a.Set(name, uint32(i), nil))
	}

	resources := a.Resources()
	require.Len(t, resources, len(names))
	for i, name := range names {
		assert.Equal(t, name, resources[i].Name)
	}
}
