// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rimfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

const defaultBufferSize = 64 * 1024

// Write serializes records to w in order: header, one 32-byte key record per
// resource, then each resource's raw bytes back to back with no padding.
//
// Output is a pure function of the record sequence -- numeric ids and data
// offsets come from position and cumulative size alone -- so writing the same
// records twice produces byte-identical streams.  Sink errors abort the write
// and are returned wrapped with context.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriterSize(w, defaultBufferSize)

	h := fileHeader{entryCount: uint32(len(recs))}
	if _, err := h.WriteTo(bw); err != nil {
		return err
	}

	// data region starts right after the key table
	dataOff := uint32(HeaderSize + KeyRecordSize*len(recs))
	var rec [KeyRecordSize]byte
	for id, r := range recs {
		for i := range rec {
			rec[i] = 0
		}
		// names longer than the field are truncated; callers that care
		// reject long names before handing records to the writer
		copy(rec[:NameSize], r.Name)
		binary.LittleEndian.PutUint32(rec[16:20], r.Type)
		binary.LittleEndian.PutUint32(rec[20:24], uint32(id))
		binary.LittleEndian.PutUint32(rec[24:28], dataOff)
		binary.LittleEndian.PutUint32(rec[28:32], uint32(len(r.Data)))
		if _, err := bw.Write(rec[:]); err != nil {
			return fmt.Errorf("write key record %d: %w", id, err)
		}
		dataOff += uint32(len(r.Data))
	}

	for _, r := range recs {
		if _, err := bw.Write(r.Data); err != nil {
			return fmt.Errorf("write resource %q: %w", r.Name, err)
		}
	}

	return bw.Flush()
}
