// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

// AddToBatch appends a query string to the pending batch.
func (c *Conn) AddToBatch(query string) {
	c.batch = append(c.batch, query)
}

// ClearBatch empties the pending batch without executing it.
func (c *Conn) ClearBatch() {
	c.batch = nil
}

// ExecuteBatch issues each pending query in submission order via
// ExecuteQuery, collecting one result per entry. The batch is cleared
// regardless of outcome. If any query fails, the batch aborts: the
// QueryError propagates and the results produced so far are discarded.
func (c *Conn) ExecuteBatch() ([]QueryResult, error) {
	pending := c.batch
	c.batch = nil

	results := make([]QueryResult, 0, len(pending))
	for _, query := range pending {
		res, err := c.ExecuteQuery(query)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
