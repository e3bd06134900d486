// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

// Transactional helpers have no protocol-level primitive: each is
// realized as ordinary SQL text issued through ExecuteQuery.

// Commit issues COMMIT.
func (c *Conn) Commit() error {
	_, err := c.ExecuteQuery("COMMIT")
	return err
}

// Rollback issues ROLLBACK.
func (c *Conn) Rollback() error {
	_, err := c.ExecuteQuery("ROLLBACK")
	return err
}

// RollbackToSavepoint issues "ROLLBACK TO <name>".
func (c *Conn) RollbackToSavepoint(name string) error {
	_, err := c.ExecuteQuery("ROLLBACK TO " + name)
	return err
}

// SetSavepoint issues "SAVEPOINT <name>".
func (c *Conn) SetSavepoint(name string) error {
	_, err := c.ExecuteQuery("SAVEPOINT " + name)
	return err
}

// ReleaseSavepoint issues "RELEASE SAVEPOINT <name>".
func (c *Conn) ReleaseSavepoint(name string) error {
	_, err := c.ExecuteQuery("RELEASE SAVEPOINT " + name)
	return err
}
