// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

// Package mysql implements the client side of the MySQL wire
// protocol: a single TCP connection's handshake, authentication,
// textual query execution, result-set decoding, LOCAL INFILE uploads
// and binlog dump streaming.
//
// A Conn is bound to exactly one socket for its lifetime. It is not
// safe for concurrent use; serialize access externally (a connection
// pool, not provided here) if multiple goroutines share one Conn.
package mysql
