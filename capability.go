// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

// Capability is a single bit in the 4-byte MySQL client/server
// capability word. A Capability value also doubles as a bitset: ORing
// flags together yields the set containing them.
type Capability uint32

const (
	CapabilityLongPassword Capability = 1 << iota
	CapabilityFoundRows
	CapabilityLongFlag
	CapabilityConnectWithDB
	CapabilityNoSchema
	CapabilityCompress
	CapabilityODBC
	CapabilityLocalFiles
	CapabilityIgnoreSpace
	CapabilityProtocol41
	CapabilityInteractive
	CapabilitySSL
	CapabilityIgnoreSigpipe
	CapabilityTransactions
	CapabilityReserved
	CapabilitySecureConnection
	CapabilityMultiStatements
	CapabilityMultiResults
)

// Has reports whether every flag in want is present in the set.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// clientCapabilities is the fixed subset of capabilities this core
// always proposes to the server.
const clientCapabilities = CapabilityLongPassword |
	CapabilityIgnoreSpace |
	CapabilityProtocol41 |
	CapabilityTransactions |
	CapabilitySecureConnection |
	CapabilityLocalFiles

// capabilityFromWire reassembles the 4-byte capability word the server
// splits across the low 2 bytes (in the fixed part of the greeting) and
// the high 2 bytes (in the extended part).
func capabilityFromWire(low, high uint16) Capability {
	return Capability(low) | Capability(high)<<16
}

// wireBytes encodes the capability word as the 4-byte little-endian
// value sent in the client auth packet.
func (c Capability) wireBytes() [4]byte {
	var b [4]byte
	b[0] = byte(c)
	b[1] = byte(c >> 8)
	b[2] = byte(c >> 16)
	b[3] = byte(c >> 24)
	return b
}
