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
	"net"
	"time"
)

// mockConn implements net.Conn over two in-memory buffers: reads pull
// from a scripted server response stream, writes accumulate so a test
// can assert on what the client sent.
type mockConn struct {
	toClient   *bytes.Buffer
	fromClient bytes.Buffer
}

func newMockConn(serverBytes []byte) *mockConn {
	return &mockConn{toClient: bytes.NewBuffer(serverBytes)}
}

func (m *mockConn) Read(b []byte) (int, error)  { return m.toClient.Read(b) }
func (m *mockConn) Write(b []byte) (int, error) { return m.fromClient.Write(b) }
func (m *mockConn) Close() error                { return nil }
func (m *mockConn) LocalAddr() net.Addr         { return mockAddr("local") }
func (m *mockConn) RemoteAddr() net.Addr        { return mockAddr("remote") }
func (m *mockConn) SetDeadline(t time.Time) error      { return nil }
func (m *mockConn) SetReadDeadline(t time.Time) error  { return nil }
func (m *mockConn) SetWriteDeadline(t time.Time) error { return nil }

type mockAddr string

func (a mockAddr) Network() string { return "mock" }
func (a mockAddr) String() string  { return string(a) }

// newTestConn builds a *Conn wired directly to a mockConn's framer,
// bypassing Connect/handshake so tests can drive individual commands
// against scripted server byte streams.
func newTestConn(serverBytes []byte) (*Conn, *mockConn) {
	mc := newMockConn(serverBytes)
	c := &Conn{fr: newFramer(mc, nil), netConn: mc}
	c.state.setConnected(true)
	return c, mc
}

// frame builds one physical frame: 3-byte little-endian length, 1-byte
// sequence number, then payload.
func frame(seq byte, payload []byte) []byte {
	n := len(payload)
	out := []byte{byte(n), byte(n >> 8), byte(n >> 16), seq}
	return append(out, payload...)
}
