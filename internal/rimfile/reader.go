// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rimfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Record is one named, typed blob as it appears in the key table.  Offsets,
// sizes, and numeric ids are deliberately absent: the writer derives all
// three from a record's position and data length, so carrying them in memory
// would only invite stale values.
type Record struct {
	Name string
	Type uint32
	Data []byte
}

// keyEntry holds one key record's transient on-disk bookkeeping between the
// key-table pass and the data pass.
type keyEntry struct {
	name    string
	typ     uint32
	dataOff uint32
	dataLen uint32
}

// Read parses a RIM byte stream into its records, in key-table order.  size
// is the total length of the stream; every offset the file claims is checked
// against it.  On error no records are returned.
func Read(src io.ReadSeeker, size int64) ([]Record, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to header: %w", err)
	}

	var headerBuf [headerFieldsSize]byte
	if _, err := io.ReadFull(src, headerBuf[:]); err != nil {
		return nil, fmt.Errorf("source is %d bytes, too short for a RIM header: %w", size, ErrInvalidFormat)
	}
	var h fileHeader
	if err := h.UnmarshalBytes(headerBuf[:]); err != nil {
		return nil, err
	}

	// an archive claiming entries but pointing its key table past end of
	// file is corrupt; an empty archive is fine whatever the offset says
	if h.entryCount > 0 && int64(h.keyTableOff) >= size {
		return nil, fmt.Errorf("key table offset %d out of bounds (source is %d bytes): %w", h.keyTableOff, size, ErrMalformedArchive)
	}
	if h.entryCount == 0 || int64(h.keyTableOff) >= size {
		return []Record{}, nil
	}

	keys, err := readKeyTable(src, h)
	if err != nil {
		return nil, err
	}

	recs := make([]Record, 0, len(keys))
	for i, k := range keys {
		if int64(k.dataOff)+int64(k.dataLen) > size {
			return nil, fmt.Errorf("resource %q (record %d): %d bytes at offset %d run past end of source (%d bytes): %w",
				k.name, i, k.dataLen, k.dataOff, size, ErrTruncatedResource)
		}
		if _, err := src.Seek(int64(k.dataOff), io.SeekStart); err != nil {
			return nil, fmt.Errorf("seek to resource %q: %w", k.name, err)
		}
		data := make([]byte, k.dataLen)
		if _, err := io.ReadFull(src, data); err != nil {
			return nil, fmt.Errorf("resource %q (record %d): %w", k.name, i, ErrTruncatedResource)
		}
		recs = append(recs, Record{Name: k.name, Type: k.typ, Data: data})
	}
	return recs, nil
}

func readKeyTable(src io.ReadSeeker, h fileHeader) ([]keyEntry, error) {
	if _, err := src.Seek(int64(h.keyTableOff), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to key table: %w", err)
	}

	keys := make([]keyEntry, 0, h.entryCount)
	var buf [KeyRecordSize]byte
	for i := uint32(0); i < h.entryCount; i++ {
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return nil, fmt.Errorf("key table ends after %d of %d records: %w", i, h.entryCount, ErrMalformedArchive)
		}
		// authoritative field order: name, type, numeric id, offset, size.
		// the numeric id at [20:24] is informational and dropped here; the
		// writer reassigns ids positionally.
		keys = append(keys, keyEntry{
			name:    decodeName(buf[:NameSize]),
			typ:     binary.LittleEndian.Uint32(buf[16:20]),
			dataOff: binary.LittleEndian.Uint32(buf[24:28]),
			dataLen: binary.LittleEndian.Uint32(buf[28:32]),
		})
	}
	return keys, nil
}

// decodeName converts the fixed name field to its in-memory form: trailing
// NUL padding dropped, ASCII letters folded to lowercase.  Bytes outside
// ASCII are kept verbatim -- garbage in a name field is a data-quality issue
// for the caller, never a parse failure.
func decodeName(b []byte) string {
	b = bytes.TrimRight(b, "\x00")
	name := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		name[i] = c
	}
	return string(name)
}
