// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import (
	"bufio"
	"io"
	"log"
)

// maxPayloadLen is 2^24-1, the largest payload a single physical frame
// can carry. A frame of exactly this length signals that the logical
// message continues in the next frame.
const maxPayloadLen = 1<<24 - 1

// framer reads and writes length-prefixed packets over a single
// net.Conn, owning the monotonically wrapping sequence counter shared
// by both directions.
type framer struct {
	rd     *bufio.Reader
	wr     *bufio.Writer
	seq    uint8
	logger *log.Logger
}

const defaultBufSize = 4096

// newFramer wraps rw for framing. logger may be nil, in which case
// framing faults are not logged; Conn always supplies its own logger.
func newFramer(rw io.ReadWriter, logger *log.Logger) *framer {
	return &framer{
		rd:     bufio.NewReaderSize(rw, defaultBufSize),
		wr:     bufio.NewWriterSize(rw, defaultBufSize),
		logger: logger,
	}
}

// transportError wraps err as a TransportError and logs it, mirroring
// the teacher's errLog.Print(err) on every read/write fault.
func (f *framer) transportError(op string, err error) error {
	wrapped := newTransportError(op, err)
	if f.logger != nil {
		f.logger.Print(wrapped)
	}
	return wrapped
}

// protocolError wraps reason as a ProtocolError and logs it.
func (f *framer) protocolError(reason string) error {
	wrapped := newProtocolError(reason)
	if f.logger != nil {
		f.logger.Print(wrapped)
	}
	return wrapped
}

// resetSeq starts a new client-initiated command exchange: the next
// packet sent or received is sequence 0.
func (f *framer) resetSeq() {
	f.seq = 0
}

// readFrame reads exactly one physical frame: a 4-byte header (3-byte
// little-endian length, 1-byte sequence number) followed by that many
// payload bytes. It refuses a frame whose sequence number is not the
// expected successor and never concatenates continuation frames
// itself — that is the caller's job at the result-set-row level.
func (f *framer) readFrame() (payload []byte, err error) {
	var header [4]byte
	if _, err := io.ReadFull(f.rd, header[:]); err != nil {
		return nil, f.transportError("read", err)
	}

	length := int(header[0]) | int(header[1])<<8 | int(header[2])<<16
	seq := header[3]
	if seq != f.seq {
		if f.logger != nil {
			f.logger.Print("unexpected packet sequence number, frame header:\n" + hexDump(header[:]))
		}
		return nil, f.protocolError("unexpected packet sequence number")
	}
	f.seq++

	payload = make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(f.rd, payload); err != nil {
			return nil, f.transportError("read", err)
		}
	}
	return payload, nil
}

// writeFrame writes one physical frame using the current sequence
// number, then advances it. payload must be no longer than
// maxPayloadLen; splitting a logical message into chunks is the
// caller's responsibility.
func (f *framer) writeFrame(payload []byte) error {
	if len(payload) > maxPayloadLen {
		return f.protocolError("frame payload exceeds maxPayloadLen")
	}
	var header [4]byte
	header[0] = byte(len(payload))
	header[1] = byte(len(payload) >> 8)
	header[2] = byte(len(payload) >> 16)
	header[3] = f.seq
	if _, err := f.wr.Write(header[:]); err != nil {
		return f.transportError("write", err)
	}
	if len(payload) > 0 {
		if _, err := f.wr.Write(payload); err != nil {
			return f.transportError("write", err)
		}
	}
	f.seq++
	return nil
}

// flush pushes any buffered outbound frames to the socket. The caller
// is responsible for flushing at command boundaries.
func (f *framer) flush() error {
	if err := f.wr.Flush(); err != nil {
		return f.transportError("write", err)
	}
	return nil
}

// writeMessage splits payload into maxPayloadLen chunks with
// successive sequence numbers, terminating with a final chunk strictly
// shorter than maxPayloadLen (possibly zero-length).
func (f *framer) writeMessage(payload []byte) error {
	for len(payload) >= maxPayloadLen {
		if err := f.writeFrame(payload[:maxPayloadLen]); err != nil {
			return err
		}
		payload = payload[maxPayloadLen:]
	}
	return f.writeFrame(payload)
}

// readLogicalRow reads one physical frame and, if it is exactly
// maxPayloadLen bytes long, keeps reading and concatenating
// subsequent frames until one shorter than maxPayloadLen arrives.
func (f *framer) readLogicalRow() ([]byte, error) {
	frame, err := f.readFrame()
	if err != nil {
		return nil, err
	}
	if len(frame) < maxPayloadLen {
		return frame, nil
	}

	full := make([]byte, len(frame))
	copy(full, frame)
	for {
		next, err := f.readFrame()
		if err != nil {
			return nil, err
		}
		full = append(full, next...)
		if len(next) < maxPayloadLen {
			return full, nil
		}
	}
}
