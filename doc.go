// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package rim reads and writes RIM resource archives: single files bundling
// many named, typed binary blobs (game assets).
//
// An Archive is an ordered collection of resources keyed case-insensitively
// by (name, type id).  Read and ReadFile parse a byte stream into an Archive;
// Write and WriteFile serialize one back out such that a read of the result
// reproduces the same order, names, type ids, and byte-exact data.
//
// Archives are plain values with no internal locking: parsing and writing run
// synchronously on the calling goroutine, and independent archives may be
// handled concurrently without coordination.  Mutating a single Archive from
// multiple goroutines requires external synchronization.
package rim
