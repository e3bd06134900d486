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
	"encoding/binary"
	"fmt"
)

// Packet is the closed set of decoded packet variants the codec
// produces: OKPacket, ErrPacket, EOFPacket, ResultSetHeaderPacket,
// ColumnDefinition, RowPacket, GreetingPacket, RawPacket. Callers
// switch on the concrete type; decodePacket is the dispatching
// producer, and it performs no I/O.
type Packet interface {
	isPacket()
}

// OKPacket is the generic success response.
type OKPacket struct {
	AffectedRows uint64
	InsertID     uint64
	StatusFlags  uint16
	Warnings     uint16
	Message      string
}

func (OKPacket) isPacket() {}

// ErrPacket is a server-reported error.
type ErrPacket struct {
	Number   uint16
	SQLState string
	Message  string
}

func (ErrPacket) isPacket() {}

// EOFPacket marks the end of a field-definition or row-data phase.
type EOFPacket struct {
	Warnings    uint16
	StatusFlags uint16
}

func (EOFPacket) isPacket() {}

// ResultSetHeaderPacket announces the number of columns to follow.
type ResultSetHeaderPacket struct {
	FieldCount uint64
}

func (ResultSetHeaderPacket) isPacket() {}

// ColumnDefinition wraps a decoded ColumnInfo as a Packet variant.
type ColumnDefinition struct {
	Info ColumnInfo
}

func (ColumnDefinition) isPacket() {}

// RowPacket is one row's raw, not-yet-split payload.
type RowPacket struct {
	Raw []byte
}

func (RowPacket) isPacket() {}

// GreetingPacket is the server's initial handshake packet.
type GreetingPacket struct {
	ProtocolVersion  byte
	ServerVersion    string
	ConnectionID     uint32
	Seed             []byte // 20-byte scramble, parts 1 and 2 concatenated
	ServerCapability Capability
	Charset          byte
	StatusFlags      uint16
}

func (GreetingPacket) isPacket() {}

// RawPacket wraps a payload the codec does not interpret. No decode
// path in this package returns it; BinlogStream.Next yields binlog
// event frames as plain []byte.
type RawPacket struct {
	Payload []byte
}

func (RawPacket) isPacket() {}

// decodePacket dispatches on the first payload byte to produce an OK,
// Error, or EOF packet; any other first byte is decoded as a result-set
// header's field count. With expectHeader set, 0x00 and short 0xFE
// payloads are also read as a header and an empty payload is an error.
// It never performs I/O.
func decodePacket(data []byte, expectHeader bool) (Packet, error) {
	if len(data) == 0 {
		if expectHeader {
			return nil, newProtocolError("empty packet where result header expected")
		}
		return OKPacket{}, nil
	}

	switch {
	case data[0] == 0x00 && !expectHeader:
		return decodeOKPacket(data)
	case data[0] == 0xff:
		return decodeErrPacket(data)
	case data[0] == 0xfe && len(data) < 9 && !expectHeader:
		return decodeEOFPacket(data)
	default:
		count, isNull, n, err := readLengthEncodedInt(data)
		if err != nil || isNull || n != len(data) {
			return nil, newProtocolError("malformed result-set header")
		}
		return ResultSetHeaderPacket{FieldCount: count}, nil
	}
}

func decodeOKPacket(data []byte) (OKPacket, error) {
	if len(data) < 1 || data[0] != 0x00 {
		return OKPacket{}, newProtocolError("not an OK packet")
	}
	pos := 1

	affected, _, n, err := readLengthEncodedInt(data[pos:])
	if err != nil {
		return OKPacket{}, err
	}
	pos += n

	insertID, _, n, err := readLengthEncodedInt(data[pos:])
	if err != nil {
		return OKPacket{}, err
	}
	pos += n

	var status, warnings uint16
	if len(data) >= pos+4 {
		status = binary.LittleEndian.Uint16(data[pos : pos+2])
		warnings = binary.LittleEndian.Uint16(data[pos+2 : pos+4])
		pos += 4
	}

	return OKPacket{
		AffectedRows: affected,
		InsertID:     insertID,
		StatusFlags:  status,
		Warnings:     warnings,
		Message:      string(data[pos:]),
	}, nil
}

// encodeOKPacket renders an OKPacket back to wire form. It always
// writes the 4-byte status/warnings trailer, matching the layout
// decodeOKPacket expects when len(data) >= pos+4.
func encodeOKPacket(p OKPacket) []byte {
	out := []byte{0x00}
	out = append(out, writeLengthEncodedInt(p.AffectedRows)...)
	out = append(out, writeLengthEncodedInt(p.InsertID)...)
	var trailer [4]byte
	binary.LittleEndian.PutUint16(trailer[0:2], p.StatusFlags)
	binary.LittleEndian.PutUint16(trailer[2:4], p.Warnings)
	out = append(out, trailer[:]...)
	out = append(out, p.Message...)
	return out
}

func decodeErrPacket(data []byte) (ErrPacket, error) {
	if len(data) < 3 || data[0] != 0xff {
		return ErrPacket{}, newProtocolError("not an Error packet")
	}
	number := binary.LittleEndian.Uint16(data[1:3])

	pos := 3
	sqlState := ""
	if len(data) >= 9 && data[3] == '#' {
		sqlState = string(data[4:9])
		pos = 9
	}

	return ErrPacket{
		Number:   number,
		SQLState: sqlState,
		Message:  string(data[pos:]),
	}, nil
}

// encodeErrPacket renders an ErrPacket back to wire form, always using
// the SQLSTATE-marker layout that decodeErrPacket recognizes.
func encodeErrPacket(p ErrPacket) []byte {
	out := []byte{0xff}
	var numBytes [2]byte
	binary.LittleEndian.PutUint16(numBytes[:], p.Number)
	out = append(out, numBytes[:]...)
	out = append(out, '#')
	state := p.SQLState
	for len(state) < 5 {
		state += " "
	}
	out = append(out, state[:5]...)
	out = append(out, p.Message...)
	return out
}

// encodeEOFPacket renders an EOFPacket back to wire form.
func encodeEOFPacket(p EOFPacket) []byte {
	out := make([]byte, 5)
	out[0] = 0xfe
	binary.LittleEndian.PutUint16(out[1:3], p.Warnings)
	binary.LittleEndian.PutUint16(out[3:5], p.StatusFlags)
	return out
}

func decodeEOFPacket(data []byte) (EOFPacket, error) {
	if len(data) < 1 || data[0] != 0xfe || len(data) >= 9 {
		return EOFPacket{}, newProtocolError("not an EOF packet")
	}
	if len(data) < 5 {
		return EOFPacket{}, nil
	}
	return EOFPacket{
		Warnings:    binary.LittleEndian.Uint16(data[1:3]),
		StatusFlags: binary.LittleEndian.Uint16(data[3:5]),
	}, nil
}

// encodeColumnDefinition renders a ColumnInfo back to wire form using
// "def" as the catalog and reusing Table/Name for org_table/org_name,
// since ColumnInfo does not retain those distinctions.
func encodeColumnDefinition(info ColumnInfo) []byte {
	out := writeLengthEncodedString([]byte("def"))
	out = append(out, writeLengthEncodedString([]byte(info.Schema))...)
	out = append(out, writeLengthEncodedString([]byte(info.Table))...)
	out = append(out, writeLengthEncodedString([]byte(info.Table))...)
	out = append(out, writeLengthEncodedString([]byte(info.Name))...)
	out = append(out, writeLengthEncodedString([]byte(info.Name))...)
	out = append(out, writeLengthEncodedInt(0x0c)...)

	var fixed [10]byte
	binary.LittleEndian.PutUint16(fixed[0:2], nativeAuthCharset)
	binary.LittleEndian.PutUint32(fixed[2:6], info.Length)
	fixed[6] = byte(info.Type)
	binary.LittleEndian.PutUint16(fixed[7:9], uint16(info.Flags))
	fixed[9] = info.Decimals
	out = append(out, fixed[:]...)
	return out
}

// decodeColumnDefinition parses one field-definition packet (classic
// protocol layout: catalog, schema, table, org_table, name, org_name,
// then the fixed-length block of charset/length/type/flags/decimals).
func decodeColumnDefinition(data []byte) (ColumnInfo, error) {
	pos := 0

	advance := func() error {
		n, err := skipLengthEncodedString(data[pos:])
		pos += n
		return err
	}

	if err := advance(); err != nil { // catalog
		return ColumnInfo{}, err
	}

	schema, _, n, err := readLengthEncodedString(data[pos:])
	if err != nil {
		return ColumnInfo{}, err
	}
	pos += n

	table, _, n, err := readLengthEncodedString(data[pos:])
	if err != nil {
		return ColumnInfo{}, err
	}
	pos += n

	if err := advance(); err != nil { // org_table
		return ColumnInfo{}, err
	}

	name, _, n, err := readLengthEncodedString(data[pos:])
	if err != nil {
		return ColumnInfo{}, err
	}
	pos += n

	if err := advance(); err != nil { // org_name
		return ColumnInfo{}, err
	}

	// length of fixed-length fields, always 0x0c
	_, _, n, err = readLengthEncodedInt(data[pos:])
	if err != nil {
		return ColumnInfo{}, err
	}
	pos += n

	if len(data) < pos+10 {
		return ColumnInfo{}, newProtocolError("column definition: truncated fixed block")
	}
	// charset [2 bytes], skipped
	length := binary.LittleEndian.Uint32(data[pos+2 : pos+6])
	fieldType := FieldType(data[pos+6])
	flags := FieldFlag(binary.LittleEndian.Uint16(data[pos+7 : pos+9]))
	decimals := data[pos+9]

	return ColumnInfo{
		Name:     string(name),
		Table:    string(table),
		Schema:   string(schema),
		Type:     fieldType,
		Length:   length,
		Flags:    flags,
		Decimals: decimals,
	}, nil
}

// Value is one column's value within a Row: the raw server-side
// textual representation plus the originating column's metadata
// Raw is nil iff IsNull is true.
type Value struct {
	Raw    []byte
	IsNull bool
	Column *ColumnInfo
}

// Row is one decoded row of a ResultSet.
type Row []Value

// encodeRow renders a Row back to wire form: one length-encoded
// string per column, with the NULL marker for IsNull values.
func encodeRow(row Row) []byte {
	var out []byte
	for _, v := range row {
		if v.IsNull {
			out = append(out, 0xfb)
			continue
		}
		out = append(out, writeLengthEncodedString(v.Raw)...)
	}
	return out
}

// decodeRow parses a textual-protocol row: one length-encoded string
// (or NULL marker) per column.
func decodeRow(data []byte, columns []*ColumnInfo) (Row, error) {
	row := make(Row, len(columns))
	pos := 0
	for i, col := range columns {
		s, isNull, n, err := readLengthEncodedString(data[pos:])
		if err != nil {
			return nil, fmt.Errorf("mysql: decoding column %d (%s): %w", i, col.Name, err)
		}
		pos += n
		if isNull {
			row[i] = Value{IsNull: true, Column: col}
			continue
		}
		row[i] = Value{Raw: s, Column: col}
	}
	return row, nil
}

// decodeGreeting parses the fixed-layout handshake initialization
// packet.
func decodeGreeting(data []byte) (GreetingPacket, error) {
	if len(data) < 1 {
		return GreetingPacket{}, newProtocolError("empty greeting packet")
	}
	protoVersion := data[0]
	if protoVersion != 10 {
		return GreetingPacket{}, newProtocolError(fmt.Sprintf("unsupported protocol version %d", protoVersion))
	}

	pos := 1
	nul := bytes.IndexByte(data[pos:], 0)
	if nul < 0 {
		return GreetingPacket{}, newProtocolError("greeting: unterminated server version")
	}
	version := string(data[pos : pos+nul])
	pos += nul + 1

	if len(data) < pos+4+8+1+2+1+2+2+1+10 {
		return GreetingPacket{}, newProtocolError("greeting: truncated fixed header")
	}

	connID := binary.LittleEndian.Uint32(data[pos : pos+4])
	pos += 4

	seed := make([]byte, 0, 20)
	seed = append(seed, data[pos:pos+8]...)
	pos += 8

	pos++ // filler

	capLow := binary.LittleEndian.Uint16(data[pos : pos+2])
	pos += 2

	charset := data[pos]
	pos++

	status := binary.LittleEndian.Uint16(data[pos : pos+2])
	pos += 2

	capHigh := binary.LittleEndian.Uint16(data[pos : pos+2])
	pos += 2

	authDataLen := data[pos]
	pos++

	pos += 10 // reserved

	capability := capabilityFromWire(capLow, capHigh)

	if capability.Has(CapabilityProtocol41) {
		part2Len := int(authDataLen) - 8
		if part2Len < 12 {
			part2Len = 12
		}
		if len(data) < pos+part2Len {
			return GreetingPacket{}, newProtocolError("greeting: truncated auth-plugin-data part 2")
		}
		part2 := data[pos : pos+part2Len]
		// drop the trailing NUL terminator
		if len(part2) > 0 && part2[len(part2)-1] == 0 {
			part2 = part2[:len(part2)-1]
		}
		seed = append(seed, part2...)
	}

	return GreetingPacket{
		ProtocolVersion:  protoVersion,
		ServerVersion:    version,
		ConnectionID:     connID,
		Seed:             seed,
		ServerCapability: capability,
		Charset:          charset,
		StatusFlags:      status,
	}, nil
}
