// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rim

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArchive(t *testing.T) *Archive {
	t.Helper()
	a := New()
	require.NoError(t, a.Set("module", 2014, []byte{0x01, 0x02, 0x03}))
	require.NoError(t, a.Set("intro", 2029, []byte("dialog bytes")))
	require.NoError(t, a.Set("empty", 10, nil))
	return a
}

func requireSameArchive(t *testing.T, want, got *Archive) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	wantRes, gotRes := want.Resources(), got.Resources()
	for i := range wantRes {
		assert.Equal(t, wantRes[i].Name, gotRes[i].Name)
		assert.Equal(t, wantRes[i].Type, gotRes[i].Type)
		assert.True(t, bytes.Equal(wantRes[i].Data, gotRes[i].Data))
	}
}

func TestRoundTrip(t *testing.T) {
	a := testArchive(t)

	img, err := WriteBytes(a)
	require.NoError(t, err)

	got, err := ReadBytes(img)
	require.NoError(t, err)
	requireSameArchive(t, a, got)
}

func TestRoundTrip_Empty(t *testing.T) {
	img, err := WriteBytes(New())
	require.NoError(t, err)

	got, err := ReadBytes(img)
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}

func TestWrite_Deterministic(t *testing.T) {
	a := testArchive(t)

	first, err := WriteBytes(a)
	require.NoError(t, err)
	second, err := WriteBytes(a)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReadBytes_Errors(t *testing.T) {
	_, err := ReadBytes([]byte("not an archive of any kind"))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	img, err := WriteBytes(testArchive(t))
	require.NoError(t, err)
	// claim more data for the first resource than the file holds
	truncated := img[:len(img)-2]
	_, err = ReadBytes(truncated)
	assert.ErrorIs(t, err, ErrTruncatedResource)
}

func TestFileRoundTrip(t *testing.T) {
	a := testArchive(t)
	path := filepath.Join(t.TempDir(), "module.rim")

	require.NoError(t, WriteFile(path, a))

	got, err := ReadFile(path)
	require.NoError(t, err)
	requireSameArchive(t, a, got)
}

func TestWriteFile_LeavesNoTempOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing-subdir", "module.rim")

	err := WriteFile(path, testArchive(t))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.rim"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
