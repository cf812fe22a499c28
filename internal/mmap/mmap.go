// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package mmap opens files as read-only byte slices.  On unix the file is
// memory-mapped; elsewhere it is read onto the heap, with the same interface.
package mmap

// File is the read-only contents of an opened file.  Data must not be
// modified, and must not be used after Close.
type File struct {
	data   []byte
	mapped bool
}

// Data returns the file's contents.
func (f *File) Data() []byte {
	return f.data
}

// Len returns the file's length in bytes.
func (f *File) Len() int {
	return len(f.data)
}
