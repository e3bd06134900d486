// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import (
	"bytes"
	"testing"
)

func TestLengthEncodedIntRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 250, 251, 65535, 65536, 16777215, 16777216, 1 << 40}
	for _, n := range cases {
		encoded := writeLengthEncodedInt(n)
		got, isNull, consumed, err := readLengthEncodedInt(encoded)
		if err != nil {
			t.Fatalf("n=%d: readLengthEncodedInt: %v", n, err)
		}
		if isNull {
			t.Fatalf("n=%d: unexpected NULL", n)
		}
		if got != n {
			t.Fatalf("n=%d: got %d", n, got)
		}
		if consumed != len(encoded) {
			t.Fatalf("n=%d: consumed %d, want %d", n, consumed, len(encoded))
		}
	}
}

func TestLengthEncodedIntNullMarker(t *testing.T) {
	_, isNull, n, err := readLengthEncodedInt([]byte{0xfb, 0xaa})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isNull {
		t.Fatal("expected NULL")
	}
	if n != 1 {
		t.Fatalf("consumed %d, want 1", n)
	}
}

func TestLengthEncodedIntShortForms(t *testing.T) {
	if _, _, _, err := readLengthEncodedInt([]byte{}); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, _, _, err := readLengthEncodedInt([]byte{0xfc, 0x01}); err == nil {
		t.Fatal("expected error for truncated 2-byte form")
	}
	if _, _, _, err := readLengthEncodedInt([]byte{0xff}); err == nil {
		t.Fatal("expected error for invalid 0xff prefix")
	}
}

func TestLengthEncodedStringRoundTrip(t *testing.T) {
	cases := [][]byte{nil, []byte(""), []byte("x"), bytes.Repeat([]byte("ab"), 200)}
	for _, s := range cases {
		encoded := writeLengthEncodedString(s)
		got, isNull, n, err := readLengthEncodedString(encoded)
		if err != nil {
			t.Fatalf("readLengthEncodedString: %v", err)
		}
		if isNull {
			t.Fatal("unexpected NULL")
		}
		if !bytes.Equal(got, s) && !(len(got) == 0 && len(s) == 0) {
			t.Fatalf("got %q, want %q", got, s)
		}
		if n != len(encoded) {
			t.Fatalf("consumed %d, want %d", n, len(encoded))
		}
	}
}

func TestSkipLengthEncodedString(t *testing.T) {
	encoded := writeLengthEncodedString([]byte("catalog-name"))
	rest := append(encoded, []byte("tail")...)
	n, err := skipLengthEncodedString(rest)
	if err != nil {
		t.Fatalf("skipLengthEncodedString: %v", err)
	}
	if n != len(encoded) {
		t.Fatalf("n = %d, want %d", n, len(encoded))
	}
}
