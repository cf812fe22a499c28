// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ProjectSynchro/PyKotor-sub000/internal/mmap"
)

// ReadFile parses the RIM archive at path.  On platforms with mmap support
// the file is mapped read-only instead of being copied onto the heap first;
// resource data is copied out of the mapping, so the returned Archive does
// not pin the file.
func ReadFile(path string) (*Archive, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap.Open(%s): %w", path, err)
	}
	defer func() {
		_ = m.Close()
	}()

	return ReadBytes(m.Data())
}

// WriteFile serializes the archive to path.  The bytes go to a temp file in
// the destination directory first and are renamed into place only after a
// successful write and sync, so a failure never leaves a half-written
// archive at path.
func WriteFile(path string, a *Archive) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("filepath.Abs: %w", err)
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "rim-write.*.tmp")
	if err != nil {
		return fmt.Errorf("CreateTemp failed (may need permissions for dir %q): %w", dir, err)
	}

	if err := Write(f, a); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("f.Sync: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("f.Close: %w", err)
	}

	if err := os.Rename(f.Name(), path); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("os.Rename: %w", err)
	}
	return nil
}
