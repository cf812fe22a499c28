// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rimfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	fileType    = "RIM "
	fileVersion = "V1.0"

	// HeaderSize is the fixed size of the file header; the key table starts
	// here when the header records an implicit (zero) offset.
	HeaderSize = 120

	// KeyRecordSize is the fixed size of one key-table record.
	KeyRecordSize = 32

	// NameSize is the fixed width of the name field in a key record.
	NameSize = 16

	// headerFieldsSize is how much of the header carries data; the rest is
	// zero padding out to HeaderSize.
	headerFieldsSize = 24
)

var (
	// ErrInvalidFormat means the signature tag did not match: the source is
	// not a RIM file at all.
	ErrInvalidFormat = errors.New("not a RIM file")

	// ErrUnsupportedVersion means the file is a RIM container, but of a
	// version this package does not read.
	ErrUnsupportedVersion = errors.New("unsupported RIM version")

	// ErrMalformedArchive means the header is internally inconsistent, e.g.
	// a non-empty archive whose key table lies past end of file.
	ErrMalformedArchive = errors.New("malformed RIM archive")

	// ErrTruncatedResource means a key record references data that does not
	// fit within the source's declared length.
	ErrTruncatedResource = errors.New("RIM resource truncated")
)

type fileHeader struct {
	entryCount  uint32
	keyTableOff uint32
}

// UnmarshalBytes decodes the leading header fields.  Only headerFieldsSize
// bytes are required: files shorter than the nominal 120-byte header still
// parse if they carry no entries, which matches what the original engine
// accepted.
func (h *fileHeader) UnmarshalBytes(b []byte) error {
	if len(b) < headerFieldsSize {
		return fmt.Errorf("header too short (%d < %d bytes): %w", len(b), headerFieldsSize, ErrInvalidFormat)
	}

	if tag := string(b[0:4]); tag != fileType {
		return fmt.Errorf("bad file type tag %q: %w", tag, ErrInvalidFormat)
	}
	if version := string(b[4:8]); version != fileVersion {
		return fmt.Errorf("version %q (only %q is supported): %w", version, fileVersion, ErrUnsupportedVersion)
	}

	// bytes 8-11 are reserved and ignored

	h.entryCount = binary.LittleEndian.Uint32(b[12:16])
	h.keyTableOff = binary.LittleEndian.Uint32(b[16:20])
	// vanilla producers write 0 here to mean "immediately after the header"
	if h.keyTableOff == 0 {
		h.keyTableOff = HeaderSize
	}

	return nil
}

// WriteTo emits the full 120-byte header.  Both table offsets are written as
// zero, the implicit-offset convention used by the widely deployed archives
// of this format.
func (h *fileHeader) WriteTo(w io.Writer) (n int64, err error) {
	var buf [HeaderSize]byte
	copy(buf[0:4], fileType)
	copy(buf[4:8], fileVersion)
	binary.LittleEndian.PutUint32(buf[12:16], h.entryCount)

	if _, err = w.Write(buf[:]); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	return HeaderSize, nil
}
