// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

// GetServerVariable issues "SELECT @@<name>" and returns its single
// cell as a string. A result with no rows or no columns raises
// ColumnLookupError.
func (c *Conn) GetServerVariable(name string) (string, error) {
	res, err := c.ExecuteQuery("SELECT @@" + name)
	if err != nil {
		return "", err
	}

	if res.ResultSet == nil || len(res.ResultSet.Columns) == 0 || len(res.ResultSet.Rows) == 0 {
		return "", &ColumnLookupError{Column: name}
	}

	val := res.ResultSet.Rows[0][0]
	if val.IsNull {
		return "", nil
	}
	return string(val.Raw), nil
}
