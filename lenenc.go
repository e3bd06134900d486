// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import "encoding/binary"

// readLengthEncodedInt decodes a length-encoded integer from the start
// of data. It returns the value, whether the encoding was the
// SQL-NULL marker 0xFB, and the number of bytes consumed.
func readLengthEncodedInt(data []byte) (value uint64, isNull bool, n int, err error) {
	if len(data) == 0 {
		return 0, false, 0, newProtocolError("length-encoded integer: empty input")
	}

	switch first := data[0]; {
	case first <= 0xfa:
		return uint64(first), false, 1, nil
	case first == 0xfb:
		return 0, true, 1, nil
	case first == 0xfc:
		if len(data) < 3 {
			return 0, false, 0, newProtocolError("length-encoded integer: short 2-byte form")
		}
		return uint64(binary.LittleEndian.Uint16(data[1:3])), false, 3, nil
	case first == 0xfd:
		if len(data) < 4 {
			return 0, false, 0, newProtocolError("length-encoded integer: short 3-byte form")
		}
		v := uint64(data[1]) | uint64(data[2])<<8 | uint64(data[3])<<16
		return v, false, 4, nil
	case first == 0xfe:
		if len(data) < 9 {
			return 0, false, 0, newProtocolError("length-encoded integer: short 8-byte form")
		}
		return binary.LittleEndian.Uint64(data[1:9]), false, 9, nil
	default:
		return 0, false, 0, newProtocolError("length-encoded integer: invalid prefix 0xff")
	}
}

// writeLengthEncodedInt encodes n using the shortest valid form.
func writeLengthEncodedInt(n uint64) []byte {
	switch {
	case n <= 0xfa:
		return []byte{byte(n)}
	case n <= 0xffff:
		return []byte{0xfc, byte(n), byte(n >> 8)}
	case n <= 0xffffff:
		return []byte{0xfd, byte(n), byte(n >> 8), byte(n >> 16)}
	default:
		b := make([]byte, 9)
		b[0] = 0xfe
		binary.LittleEndian.PutUint64(b[1:], n)
		return b
	}
}

// readLengthEncodedString decodes a length-encoded string: a
// length-encoded integer followed by that many bytes, or the NULL
// marker. It returns the string bytes (nil if NULL), whether it was
// NULL, and the number of bytes consumed from data.
func readLengthEncodedString(data []byte) (s []byte, isNull bool, n int, err error) {
	length, isNull, n, err := readLengthEncodedInt(data)
	if err != nil || isNull {
		return nil, isNull, n, err
	}
	if uint64(len(data)-n) < length {
		return nil, false, n, newProtocolError("length-encoded string: truncated")
	}
	return data[n : n+int(length)], false, n + int(length), nil
}

// writeLengthEncodedString encodes s as a length-encoded string.
func writeLengthEncodedString(s []byte) []byte {
	prefix := writeLengthEncodedInt(uint64(len(s)))
	out := make([]byte, 0, len(prefix)+len(s))
	out = append(out, prefix...)
	out = append(out, s...)
	return out
}

// skipLengthEncodedString returns the number of bytes a length-encoded
// string at the start of data occupies, without allocating.
func skipLengthEncodedString(data []byte) (n int, err error) {
	length, isNull, n, err := readLengthEncodedInt(data)
	if err != nil || isNull {
		return n, err
	}
	if uint64(len(data)-n) < length {
		return n, newProtocolError("length-encoded string: truncated")
	}
	return n + int(length), nil
}
