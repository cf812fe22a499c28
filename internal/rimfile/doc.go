// Copyright 2025 The rim Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package rimfile encodes and decodes the on-disk RIM container layout.
//
// A RIM file looks like:
//
//	┌───────────────────┐
//	│ 120-byte header   │
//	├───────────────────┤
//	│ key table         │
//	│ (32 bytes/entry)  │
//	├───────────────────┤
//	│ raw resource data │
//	│                   │
//	│                   │
//	└───────────────────┘
//
// All integers are little-endian.  The header carries an 8-byte ASCII
// signature ("RIM " + "V1.0"), 4 reserved bytes, the entry count at offset
// 12, and the key table offset at offset 16.  Vanilla game archives write 0
// for the table offsets, meaning "immediately after the header"; readers must
// honor that rather than treat it as offset zero.
//
// Each 32-byte key record is:
//
//	 0    ...   15   16   ...  19   20  ...  23   24  ...  27   28  ...  31
//	+--------------+--------------+-------------+-------------+-------------+
//	| name, NUL-   | type id      | numeric id  | data offset | data size   |
//	| padded ASCII |              |             |             |             |
//	+--------------+--------------+-------------+-------------+-------------+
//
// This field order is authoritative for this implementation.  At least one
// other tool in the wider ecosystem reads the fields in a different order;
// that is a documented discrepancy between tools, not something to detect or
// adapt to here.
//
// Numeric ids are positional: the writer assigns them from each record's
// zero-based index, and the reader discards whatever ids a file carries.
// Resource data follows the key table back to back with no padding.
package rimfile
