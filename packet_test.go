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

func TestOKPacketRoundTrip(t *testing.T) {
	want := OKPacket{AffectedRows: 3, InsertID: 7, StatusFlags: 2, Warnings: 1, Message: "ok"}
	frame := encodeOKPacket(want)

	got, err := decodeOKPacket(frame)
	if err != nil {
		t.Fatalf("decodeOKPacket: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !bytes.Equal(encodeOKPacket(got), frame) {
		t.Fatal("re-encoding decoded packet did not reproduce the original frame")
	}
}

func TestErrPacketRoundTrip(t *testing.T) {
	want := ErrPacket{Number: 1146, SQLState: "42S02", Message: "Table doesn't exist"}
	frame := encodeErrPacket(want)

	got, err := decodeErrPacket(frame)
	if err != nil {
		t.Fatalf("decodeErrPacket: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !bytes.Equal(encodeErrPacket(got), frame) {
		t.Fatal("re-encoding decoded packet did not reproduce the original frame")
	}
}

func TestEOFPacketRoundTrip(t *testing.T) {
	want := EOFPacket{Warnings: 4, StatusFlags: 2}
	frame := encodeEOFPacket(want)

	got, err := decodeEOFPacket(frame)
	if err != nil {
		t.Fatalf("decodeEOFPacket: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if !bytes.Equal(encodeEOFPacket(got), frame) {
		t.Fatal("re-encoding decoded packet did not reproduce the original frame")
	}
}

func TestColumnDefinitionRoundTrip(t *testing.T) {
	want := ColumnInfo{
		Name: "a", Table: "t", Schema: "db",
		Type: FieldTypeVarString, Length: 255, Flags: FlagNotNULL, Decimals: 0,
	}
	frame := encodeColumnDefinition(want)

	got, err := decodeColumnDefinition(frame)
	if err != nil {
		t.Fatalf("decodeColumnDefinition: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRowRoundTrip(t *testing.T) {
	cols := []*ColumnInfo{{Name: "a"}, {Name: "b"}}
	want := Row{
		{Raw: []byte("1"), Column: cols[0]},
		{IsNull: true, Column: cols[1]},
	}
	frame := encodeRow(want)

	got, err := decodeRow(frame, cols)
	if err != nil {
		t.Fatalf("decodeRow: %v", err)
	}
	for i := range want {
		if got[i].IsNull != want[i].IsNull || !bytes.Equal(got[i].Raw, want[i].Raw) {
			t.Fatalf("column %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodePacketDispatch(t *testing.T) {
	if _, err := decodePacket([]byte{0x00, 0x00, 0x00, 0x00, 0x00}, false); err != nil {
		t.Fatalf("OK dispatch: %v", err)
	}
	if _, err := decodePacket([]byte{0xff, 0x01, 0x00}, false); err != nil {
		t.Fatalf("Err dispatch: %v", err)
	}
	if _, err := decodePacket([]byte{0xfe, 0x00, 0x00, 0x00, 0x00}, false); err != nil {
		t.Fatalf("EOF dispatch: %v", err)
	}

	header, err := decodePacket([]byte{0x02}, true)
	if err != nil {
		t.Fatalf("header dispatch: %v", err)
	}
	h, ok := header.(ResultSetHeaderPacket)
	if !ok || h.FieldCount != 2 {
		t.Fatalf("got %+v, want ResultSetHeaderPacket{FieldCount: 2}", header)
	}
}

// TestDecodeGreeting exercises scenario 1's greeting layout: protocol
// 10, version "5.5.0", 20-byte salt split 8+12, capabilities 0xF7FF.
func TestDecodeGreeting(t *testing.T) {
	var payload []byte
	payload = append(payload, 10)
	payload = append(payload, []byte("5.5.0")...)
	payload = append(payload, 0x00)
	payload = append(payload, 1, 0, 0, 0) // connection id
	payload = append(payload, []byte("01234567")...)
	payload = append(payload, 0x00) // filler
	payload = append(payload, 0xff, 0xf7)
	payload = append(payload, 33)   // charset
	payload = append(payload, 0, 0) // status flags
	payload = append(payload, 0x00, 0x00)
	payload = append(payload, 21) // auth-plugin-data-len
	payload = append(payload, make([]byte, 10)...)
	payload = append(payload, []byte("89abcdefghij")...)
	payload = append(payload, 0x00)

	g, err := decodeGreeting(payload)
	if err != nil {
		t.Fatalf("decodeGreeting: %v", err)
	}
	if g.ServerVersion != "5.5.0" {
		t.Fatalf("ServerVersion = %q", g.ServerVersion)
	}
	if string(g.Seed) != "0123456789abcdefghij" {
		t.Fatalf("Seed = %q", g.Seed)
	}
	if !g.ServerCapability.Has(CapabilityProtocol41) || !g.ServerCapability.Has(CapabilitySecureConnection) {
		t.Fatalf("capability = %x, want Protocol41|SecureConnection set", g.ServerCapability)
	}
}
