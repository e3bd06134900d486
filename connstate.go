// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import "sync/atomic"

// connState holds the lifecycle flags and the last poisoning error for
// a Conn. They live outside any lock because IsClosed, LastError and
// ReadOnly are meant to be read freely alongside the command methods
// that set them.
type connState struct {
	connected atomic.Bool
	poisoned  atomic.Bool
	readOnly  atomic.Bool
	lastErr   atomic.Pointer[error]
}

func (s *connState) setConnected(v bool) { s.connected.Store(v) }
func (s *connState) isConnected() bool   { return s.connected.Load() }

func (s *connState) setReadOnly(v bool) { s.readOnly.Store(v) }
func (s *connState) isReadOnly() bool   { return s.readOnly.Load() }

// poison records err as the fault that poisoned the connection.
func (s *connState) poison(err error) {
	s.poisoned.Store(true)
	s.lastErr.Store(&err)
}

func (s *connState) isPoisoned() bool { return s.poisoned.Load() }

// lastError returns the poisoning error, or nil if the connection was
// never poisoned.
func (s *connState) lastError() error {
	if !s.poisoned.Load() {
		return nil
	}
	if p := s.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}
