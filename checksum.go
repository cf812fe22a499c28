// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rim

import (
	"github.com/dgryski/go-farm"
)

// Checksum returns a 64-bit fingerprint of the resource's data bytes.  Equal
// data always yields equal checksums; tools use this to spot changed
// resources between archive versions without holding both data buffers.
func (r Resource) Checksum() uint64 {
	return farm.Hash64(r.Data)
}

// ChangeKind classifies one entry of a Diff.
type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// Change describes one difference between two archives.
type Change struct {
	Name string
	Type uint32
	Kind ChangeKind
}

// Diff reports the resources added, removed, or modified going from old to
// new.  Additions and modifications come out in new's order, then removals in
// old's order.  Modification is detected by data fingerprint.
func Diff(old, new *Archive) []Change {
	var changes []Change
	for _, r := range new.resources {
		prev, err := old.Get(r.Name, r.Type)
		if err != nil {
			changes = append(changes, Change{Name: r.Name, Type: r.Type, Kind: Added})
			continue
		}
		if farm.Hash64(prev) != r.Checksum() {
			changes = append(changes, Change{Name: r.Name, Type: r.Type, Kind: Modified})
		}
	}
	for _, r := range old.resources {
		if !new.Contains(r.Name, r.Type) {
			changes = append(changes, Change{Name: r.Name, Type: r.Type, Kind: Removed})
		}
	}
	return changes
}
