// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

// StartBinlogDump issues COM_BINLOG_DUMP and returns a BinlogStream
// that yields raw event frames one at a time until the server sends
// EOF. Frames are not interpreted here; the caller parses binary-log
// events downstream.
//
// Frames are pulled lazily through Next, never accumulated into an
// in-memory slice, so the caller controls memory. There is no
// background goroutine reading ahead.
func (c *Conn) StartBinlogDump(pos uint32, filename string) (*BinlogStream, error) {
	if err := c.checkUsable(); err != nil {
		return nil, err
	}

	payload := make([]byte, 0, 1+4+2+4+len(filename))
	payload = append(payload, comBinlogDump)
	payload = append(payload, byte(pos), byte(pos>>8), byte(pos>>16), byte(pos>>24))
	payload = append(payload, 0x00, 0x00) // flags
	var serverID uint32
	payload = append(payload, byte(serverID), byte(serverID>>8), byte(serverID>>16), byte(serverID>>24))
	payload = append(payload, filename...)

	c.fr.resetSeq()
	if err := c.fr.writeMessage(payload); err != nil {
		dumpErr := &BinlogDumpError{Err: err}
		c.poison(dumpErr)
		return nil, dumpErr
	}
	if err := c.fr.flush(); err != nil {
		dumpErr := &BinlogDumpError{Err: err}
		c.poison(dumpErr)
		return nil, dumpErr
	}

	return &BinlogStream{c: c}, nil
}

// BinlogStream is a pull-based iterator over a binlog dump's raw event
// frames.
type BinlogStream struct {
	c    *Conn
	done bool
	err  error
}

// Next fetches the next raw event frame. It returns ok=false once the
// server sends EOF or an error occurs; check Err afterwards to
// distinguish a clean end from a failure.
func (s *BinlogStream) Next() (frame []byte, ok bool) {
	if s.done {
		return nil, false
	}

	data, err := s.c.fr.readFrame()
	if err != nil {
		s.err = &BinlogDumpError{Err: err}
		s.done = true
		s.c.poison(s.err)
		return nil, false
	}

	if len(data) >= 1 && data[0] == 0xfe && len(data) < 9 {
		s.done = true
		return nil, false
	}

	if len(data) >= 1 && data[0] == 0xff {
		errPkt, decErr := decodeErrPacket(data)
		if decErr != nil {
			s.err = decErr
		} else {
			s.err = &QueryError{Message: errPkt.Message, Number: errPkt.Number, SQLState: errPkt.SQLState}
		}
		s.done = true
		return nil, false
	}

	return data, true
}

// Err returns the error, if any, that terminated the stream.
func (s *BinlogStream) Err() error { return s.err }
