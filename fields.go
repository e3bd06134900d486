// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

// FieldType is the wire type code of a column, as sent in a column
// definition packet.
type FieldType byte

const (
	FieldTypeDecimal    FieldType = 0x00
	FieldTypeTiny       FieldType = 0x01
	FieldTypeShort      FieldType = 0x02
	FieldTypeLong       FieldType = 0x03
	FieldTypeFloat      FieldType = 0x04
	FieldTypeDouble     FieldType = 0x05
	FieldTypeNULL       FieldType = 0x06
	FieldTypeTimestamp  FieldType = 0x07
	FieldTypeLongLong   FieldType = 0x08
	FieldTypeInt24      FieldType = 0x09
	FieldTypeDate       FieldType = 0x0a
	FieldTypeTime       FieldType = 0x0b
	FieldTypeDateTime   FieldType = 0x0c
	FieldTypeYear       FieldType = 0x0d
	FieldTypeNewDate    FieldType = 0x0e
	FieldTypeVarChar    FieldType = 0x0f
	FieldTypeBit        FieldType = 0x10
	FieldTypeJSON       FieldType = 0xf5
	FieldTypeNewDecimal FieldType = 0xf6
	FieldTypeEnum       FieldType = 0xf7
	FieldTypeSet        FieldType = 0xf8
	FieldTypeTinyBLOB   FieldType = 0xf9
	FieldTypeMediumBLOB FieldType = 0xfa
	FieldTypeLongBLOB   FieldType = 0xfb
	FieldTypeBLOB       FieldType = 0xfc
	FieldTypeVarString  FieldType = 0xfd
	FieldTypeString     FieldType = 0xfe
	FieldTypeGeometry   FieldType = 0xff
)

// FieldFlag is a bitset of column flags carried in a column
// definition packet.
type FieldFlag uint16

const (
	FlagNotNULL FieldFlag = 1 << iota
	FlagPriKey
	FlagUniqueKey
	FlagMultipleKey
	FlagBLOB
	FlagUnsigned
	FlagZeroFill
	FlagBinary
	FlagEnum
	FlagAutoIncrement
	FlagTimestamp
	FlagSet
)

// ColumnInfo describes one column of a result set. It is built once
// per column at the start of the result set and shared by reference
// with every row.
type ColumnInfo struct {
	Name     string
	Table    string
	Schema   string
	Type     FieldType
	Length   uint32
	Flags    FieldFlag
	Decimals byte
}
