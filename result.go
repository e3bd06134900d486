// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

// QueryResult is the outcome of executing one query: either an
// UpdateResult (for statements with no result set) or a ResultSet.
type QueryResult struct {
	Update    *UpdateResult
	ResultSet *ResultSet
}

// IsResultSet reports whether this result carries rows rather than an
// update summary.
func (r QueryResult) IsResultSet() bool { return r.ResultSet != nil }

// UpdateResult summarizes a non-SELECT statement's effect.
type UpdateResult struct {
	AffectedRows uint64
	Warnings     uint16
	Message      string
	InsertID     uint64
}

// ResultSet holds column metadata and fully-materialized rows for a
// query that produced one.
type ResultSet struct {
	Columns  []*ColumnInfo
	Rows     []Row
	Warnings uint16
}
