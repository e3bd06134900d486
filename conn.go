// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import (
	"fmt"
	"log"
	"net"
	"strings"
)

// Conn owns a single TCP connection to a MySQL-compatible server for
// its entire lifetime. It is not safe for concurrent use.
type Conn struct {
	host   string
	port   int
	user   string
	passwd string
	dbname string
	cfg    Config
	logger *log.Logger

	netConn net.Conn
	fr      *framer

	serverVersion      string
	serverCapabilities Capability
	clientCapabilities Capability

	state connState

	batch []string
}

// Connect dials host:port, performs the full handshake and
// authentication, and optionally creates/selects dbname, before
// returning. The returned Conn's Connected flag is true iff
// authentication succeeded. database, username and password may be
// empty. params selects the recognized configuration keys (createDB,
// enableBlobStreaming); unrecognized keys are ignored.
func Connect(host string, port int, database, username, password string, params map[string]string) (*Conn, error) {
	cfg := parseConfig(params)

	c := &Conn{
		host:   host,
		port:   port,
		user:   username,
		passwd: password,
		dbname: database,
		cfg:    cfg,
		logger: cfg.logger(),
	}

	netConn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, c.logError(newTransportError("dial", err))
	}
	c.netConn = netConn
	c.fr = newFramer(netConn, c.logger)

	if err := c.handshake(); err != nil {
		_ = c.netConn.Close()
		return nil, err
	}

	c.state.setConnected(true)
	return c, nil
}

// logError writes err to the connection's logger, the way the teacher
// logs every read/write/protocol fault through errLog.Print, and
// returns err unchanged so call sites can wrap it in a single
// expression.
func (c *Conn) logError(err error) error {
	if c.logger != nil {
		c.logger.Print(err)
	}
	return err
}

// poison marks the connection unusable after a transport- or
// protocol-level fault. Every subsequent operation returns a
// TransportError without touching the socket. The triggering error is
// retained and available through LastError, and logged immediately.
func (c *Conn) poison(err error) {
	c.state.poison(err)
	c.logError(err)
}

// LastError returns the error that poisoned this connection, or nil if
// the connection has not been poisoned.
func (c *Conn) LastError() error {
	return c.state.lastError()
}

// checkUsable returns a TransportError without any I/O if the
// connection has been poisoned or already closed.
func (c *Conn) checkUsable() error {
	if c.state.isPoisoned() {
		return newTransportError("use", fmt.Errorf("connection is poisoned: %w", c.state.lastError()))
	}
	if !c.state.isConnected() {
		return newTransportError("use", fmt.Errorf("connection is closed"))
	}
	return nil
}

// Close sends a COM_QUIT command, drains nothing further (the server
// sends no reply to COM_QUIT), and tears down the socket. The
// connection is single-use: a closed Conn is never reopened.
func (c *Conn) Close() error {
	if !c.state.isConnected() {
		return nil
	}
	c.state.setConnected(false)

	var sendErr error
	if !c.state.isPoisoned() {
		c.fr.resetSeq()
		sendErr = c.fr.writeFrame([]byte{comQuit})
		if sendErr == nil {
			sendErr = c.fr.flush()
		}
	}

	if err := c.netConn.Close(); err != nil {
		return c.logError(newTransportError("close", err))
	}
	return sendErr
}

// IsClosed reports whether Close has been called on this connection.
func (c *Conn) IsClosed() bool {
	return !c.state.isConnected()
}

// Host returns the configured server host.
func (c *Conn) Host() string { return c.host }

// Port returns the configured server port.
func (c *Conn) Port() int { return c.port }

// Database returns the currently selected schema name.
func (c *Conn) Database() string { return c.dbname }

// Username returns the authenticated username.
func (c *Conn) Username() string { return c.user }

// Password returns the password supplied at construction time.
func (c *Conn) Password() string { return c.passwd }

// ServerVersion returns the version string the server reported in its
// greeting.
func (c *Conn) ServerVersion() string { return c.serverVersion }

// ReadOnly reports whether this connection has been marked read-only.
func (c *Conn) ReadOnly() bool { return c.state.isReadOnly() }

// SetReadOnly marks this connection read-only or read-write. This is
// a pure client-side bookkeeping flag; it does not itself issue any
// SQL or protocol command.
func (c *Conn) SetReadOnly(ro bool) { c.state.setReadOnly(ro) }

// SupportsPBMS reports whether blob streaming was requested at
// construction time via the enableBlobStreaming configuration key.
func (c *Conn) SupportsPBMS() bool { return c.cfg.EnableBlobStreaming }

// DatabaseType tags the server family by inspecting the greeting's
// version string.
type DatabaseType int

const (
	DatabaseTypeUnknown DatabaseType = iota
	DatabaseTypeMySQL
	DatabaseTypeMariaDB
)

// GetDatabaseType parses ServerVersion to tag the server family.
func (c *Conn) GetDatabaseType() DatabaseType {
	switch {
	case c.serverVersion == "":
		return DatabaseTypeUnknown
	case strings.Contains(c.serverVersion, "MariaDB"):
		return DatabaseTypeMariaDB
	default:
		return DatabaseTypeMySQL
	}
}
