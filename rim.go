// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rim

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/ProjectSynchro/PyKotor-sub000/internal/rimfile"
)

// Errors reported while parsing.  Returned errors carry added context; match
// them with errors.Is.
var (
	ErrInvalidFormat      = rimfile.ErrInvalidFormat
	ErrUnsupportedVersion = rimfile.ErrUnsupportedVersion
	ErrMalformedArchive   = rimfile.ErrMalformedArchive
	ErrTruncatedResource  = rimfile.ErrTruncatedResource
)

var (
	// ErrNameTooLong is returned by Set for names over 16 bytes, the fixed
	// width of the on-disk name field.
	ErrNameTooLong = errors.New("resource names are at most 16 bytes")

	// ErrNotFound is returned by Get when no resource matches.
	ErrNotFound = errors.New("resource not found")
)

// MaxNameLen is the widest encoded resource name the format can store.
const MaxNameLen = rimfile.NameSize

// Resource is one named, typed blob held by an Archive.  Name is stored
// lower-cased; Type is a 32-bit id that this package treats as opaque (the
// restype package maps ids to descriptors).
type Resource struct {
	Name string
	Type uint32
	Data []byte
}

type resourceKey struct {
	name string
	typ  uint32
}

// Archive is an ordered collection of resources, keyed case-insensitively by
// (name, type).  The zero value is not usable; call New.
type Archive struct {
	resources []Resource
	byKey     map[resourceKey]int
}

// New returns an empty Archive.
func New() *Archive {
	return &Archive{
		byKey: make(map[resourceKey]int),
	}
}

// Len reports the number of resources in the archive.
func (a *Archive) Len() int {
	return len(a.resources)
}

// Set inserts or replaces the resource identified by (name, typ).  The name
// comparison is case-insensitive and the stored name is lower-cased.
// Replacing keeps the resource's original position; the data is copied, so
// the caller's buffer stays the caller's.  If the name does not fit the
// format's 16-byte name field the archive is left unchanged.
func (a *Archive) Set(name string, typ uint32, data []byte) error {
	name = strings.ToLower(name)
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	a.put(name, typ, append([]byte(nil), data...))
	return nil
}

// put stores an already-normalized name without copying data.  The reader
// uses this path: its names are lower-cased and field-width-bounded by
// construction, and its buffers are freshly allocated.
func (a *Archive) put(name string, typ uint32, data []byte) {
	key := resourceKey{name: name, typ: typ}
	if i, ok := a.byKey[key]; ok {
		a.resources[i].Data = data
		return
	}
	a.byKey[key] = len(a.resources)
	a.resources = append(a.resources, Resource{Name: name, Type: typ, Data: data})
}

// Get returns the data of the resource identified by (name, typ), or
// ErrNotFound.  The returned slice is the archive's own buffer; callers must
// not modify it.
func (a *Archive) Get(name string, typ uint32) ([]byte, error) {
	i, ok := a.byKey[resourceKey{name: strings.ToLower(name), typ: typ}]
	if !ok {
		return nil, ErrNotFound
	}
	return a.resources[i].Data, nil
}

// Contains reports whether the archive holds a resource for (name, typ).
func (a *Archive) Contains(name string, typ uint32) bool {
	_, ok := a.byKey[resourceKey{name: strings.ToLower(name), typ: typ}]
	return ok
}

// Remove deletes the resource identified by (name, typ), preserving the
// order of the remaining resources.  It reports whether anything was removed.
func (a *Archive) Remove(name string, typ uint32) bool {
	key := resourceKey{name: strings.ToLower(name), typ: typ}
	i, ok := a.byKey[key]
	if !ok {
		return false
	}
	a.resources = append(a.resources[:i], a.resources[i+1:]...)
	delete(a.byKey, key)
	for j := i; j < len(a.resources); j++ {
		r := a.resources[j]
		a.byKey[resourceKey{name: r.Name, typ: r.Type}] = j
	}
	return true
}

// Resources returns the archive's resources in insertion order.  The slice
// is a copy and safe to hold; the Data buffers are shared with the archive.
func (a *Archive) Resources() []Resource {
	out := make([]Resource, len(a.resources))
	copy(out, a.resources)
	return out
}

// Read parses a RIM byte stream of the given total length into an Archive.
// Either a complete, internally consistent Archive is returned, or an error
// and no Archive.
func Read(src io.ReadSeeker, size int64) (*Archive, error) {
	recs, err := rimfile.Read(src, size)
	if err != nil {
		return nil, err
	}
	a := New()
	for _, r := range recs {
		a.put(r.Name, r.Type, r.Data)
	}
	return a, nil
}

// ReadBytes parses an in-memory RIM image.
func ReadBytes(b []byte) (*Archive, error) {
	return Read(bytes.NewReader(b), int64(len(b)))
}

// Write serializes the archive to w in the canonical layout.  Output depends
// only on the archive's resource sequence, so writing an unmodified archive
// twice yields byte-identical streams.  Sink errors abort the write.
func Write(w io.Writer, a *Archive) error {
	recs := make([]rimfile.Record, len(a.resources))
	for i, r := range a.resources {
		recs[i] = rimfile.Record{Name: r.Name, Type: r.Type, Data: r.Data}
	}
	return rimfile.Write(w, recs)
}

// WriteBytes serializes the archive to a fresh byte slice.
func WriteBytes(a *Archive) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, a); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
