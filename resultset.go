// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

// readResultSet decodes the column-metadata phase then streams rows
// until EOF/ERR. It consumes exactly fieldCount+1+len(rows)+1 frames.
func (c *Conn) readResultSet(fieldCount int) (*ResultSet, error) {
	columns := make([]*ColumnInfo, fieldCount)
	for i := 0; i < fieldCount; i++ {
		data, err := c.fr.readFrame()
		if err != nil {
			c.poison(err)
			return nil, err
		}
		if len(data) > 0 && data[0] == 0xff {
			errPkt, err := decodeErrPacket(data)
			if err != nil {
				c.poison(err)
				return nil, err
			}
			return nil, &QueryError{Message: errPkt.Message, Number: errPkt.Number, SQLState: errPkt.SQLState}
		}
		info, err := decodeColumnDefinition(data)
		if err != nil {
			c.poison(err)
			return nil, err
		}
		columns[i] = &info
	}

	// EOF of the column-definition phase, discarded.
	if _, err := c.fr.readFrame(); err != nil {
		c.poison(err)
		return nil, err
	}

	var rows []Row
	for {
		data, err := c.fr.readLogicalRow()
		if err != nil {
			c.poison(err)
			return nil, err
		}

		if len(data) > 0 && data[0] == 0xff {
			errPkt, err := decodeErrPacket(data)
			if err != nil {
				c.poison(err)
				return nil, err
			}
			return nil, &QueryError{Message: errPkt.Message, Number: errPkt.Number, SQLState: errPkt.SQLState}
		}

		if len(data) > 0 && data[0] == 0xfe && len(data) < 9 {
			eof, err := decodeEOFPacket(data)
			if err != nil {
				c.poison(err)
				return nil, err
			}
			return &ResultSet{Columns: columns, Rows: rows, Warnings: eof.Warnings}, nil
		}

		row, err := decodeRow(data, columns)
		if err != nil {
			c.poison(err)
			return nil, err
		}
		rows = append(rows, row)
	}
}
