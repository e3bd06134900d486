// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import "testing"

func buildGreetingFrame(seq byte) []byte {
	var payload []byte
	payload = append(payload, 10)
	payload = append(payload, []byte("5.5.0")...)
	payload = append(payload, 0x00)
	payload = append(payload, 1, 0, 0, 0)
	payload = append(payload, []byte("01234567")...)
	payload = append(payload, 0x00)
	payload = append(payload, 0xff, 0xf7) // capLow = 0xF7FF
	payload = append(payload, 33)
	payload = append(payload, 0, 0)
	payload = append(payload, 0x00, 0x00) // capHigh
	payload = append(payload, 21)
	payload = append(payload, make([]byte, 10)...)
	payload = append(payload, []byte("89abcdefghij")...)
	payload = append(payload, 0x00)
	return frame(seq, payload)
}

// TestHandshakeEmptyPassword exercises scenario 1: an empty password
// yields a zero-length auth response, and the capability negotiation
// requires CLIENT_PROTOCOL_41 and CLIENT_SECURE_CONNECTION.
func TestHandshakeEmptyPassword(t *testing.T) {
	serverBytes := append(buildGreetingFrame(0), frame(2, []byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00})...)
	c, mc := newTestConn(serverBytes)

	if err := c.handshake(); err != nil {
		t.Fatalf("handshake: %v", err)
	}

	written := mc.fromClient.Bytes()
	// header(4) + capability word(4) + max-packet(4) + charset(1) + reserved(23) + username NUL + auth-len byte
	capWord := written[4:8]
	caps := capabilityFromWire(
		uint16(capWord[0])|uint16(capWord[1])<<8,
		uint16(capWord[2])|uint16(capWord[3])<<8,
	)
	if !caps.Has(CapabilityProtocol41) || !caps.Has(CapabilitySecureConnection) {
		t.Fatalf("client capabilities = %x, want Protocol41|SecureConnection", caps)
	}

	authLenPos := 4 + 4 + 4 + 1 + 23 + 1 // header + caps + maxpacket + charset + reserved + empty username NUL
	if written[authLenPos] != 0x00 {
		t.Fatalf("auth-response length byte = %d, want 0", written[authLenPos])
	}

	if c.IsClosed() {
		t.Fatal("IsClosed() = true after successful handshake")
	}
}

func TestHandshakeRejectsMissingProtocol41(t *testing.T) {
	var payload []byte
	payload = append(payload, 10)
	payload = append(payload, []byte("5.5.0")...)
	payload = append(payload, 0x00)
	payload = append(payload, 1, 0, 0, 0)
	payload = append(payload, []byte("01234567")...)
	payload = append(payload, 0x00)
	payload = append(payload, 0x00, 0x00) // capLow = 0 (no PROTOCOL_41)
	payload = append(payload, 33)
	payload = append(payload, 0, 0)
	payload = append(payload, 0x00, 0x00)
	payload = append(payload, 8)
	payload = append(payload, make([]byte, 10)...)

	c, _ := newTestConn(frame(0, payload))
	if err := c.handshake(); err == nil {
		t.Fatal("expected error when server omits CLIENT_PROTOCOL_41")
	}
}
