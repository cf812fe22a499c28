// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build !(darwin || linux || freebsd || netbsd || openbsd)

package mmap

import (
	"os"
)

// Open reads the file at path onto the heap.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{data: data}, nil
}

// Close releases the file's contents.
func (f *File) Close() error {
	f.data = nil
	return nil
}
