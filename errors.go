// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import "fmt"

// TransportError reports a socket open/read/write/close failure. It
// poisons the owning connection.
type TransportError struct {
	SQLState string // always a "08000"-class connection-exception state
	Op       string // e.g. "read", "write", "dial", "close"
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mysql: transport error during %s: %v [%s]", e.Op, e.Err, e.SQLState)
}

func (e *TransportError) Unwrap() error { return e.Err }

func newTransportError(op string, err error) *TransportError {
	return &TransportError{SQLState: "08000", Op: op, Err: err}
}

// QueryError reports a server-sent Error packet. The connection
// remains usable afterwards.
type QueryError struct {
	Message  string
	Number   uint16
	SQLState string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("mysql: error %d (%s): %s", e.Number, e.SQLState, e.Message)
}

// ProtocolError reports an unexpected packet type, malformed length,
// bad sequence number, or unknown result type. It poisons the owning
// connection.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "mysql: protocol error: " + e.Reason
}

func newProtocolError(reason string) *ProtocolError {
	return &ProtocolError{Reason: reason}
}

// ConnectionError reports a handshake/authentication failure reported
// by the server's Error packet during Connect. The socket is already
// closed by the time this is returned.
type ConnectionError struct {
	Message  string
	Number   uint16
	SQLState string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("mysql: connection rejected: %d (%s): %s", e.Number, e.SQLState, e.Message)
}

// BinlogDumpError reports a transport failure during an in-progress
// binlog dump stream. There is no recovery; the caller must restart
// the dump.
type BinlogDumpError struct {
	Err error
}

func (e *BinlogDumpError) Error() string {
	return fmt.Sprintf("mysql: binlog dump stream failed: %v", e.Err)
}

func (e *BinlogDumpError) Unwrap() error { return e.Err }

// ColumnLookupError reports that a requested column is not present in
// a result set, raised by the single-column accessor path used by
// GetServerVariable.
type ColumnLookupError struct {
	Column string
}

func (e *ColumnLookupError) Error() string {
	return fmt.Sprintf("mysql: column %q not present in result", e.Column)
}
