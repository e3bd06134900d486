// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

const nativeAuthCharset = 33 // utf8_general_ci

// handshake drives greeting -> capability negotiation -> authentication
// response -> result. It assumes c.netConn and c.fr are already set
// up and leaves the socket open on failure; Connect is responsible
// for closing it.
func (c *Conn) handshake() error {
	greetingData, err := c.fr.readFrame()
	if err != nil {
		return err
	}
	greeting, err := decodeGreeting(greetingData)
	if err != nil {
		return err
	}

	c.serverVersion = greeting.ServerVersion
	c.serverCapabilities = greeting.ServerCapability

	// The native-password hash and this core's wire format both depend
	// on these capabilities; refuse to trust the seed otherwise.
	if !c.serverCapabilities.Has(CapabilityProtocol41) {
		return c.logError(newProtocolError("server does not advertise CLIENT_PROTOCOL_41"))
	}
	if !c.serverCapabilities.Has(CapabilitySecureConnection) {
		return c.logError(newProtocolError("server does not advertise CLIENT_SECURE_CONNECTION"))
	}

	clientCaps := clientCapabilities
	if c.dbname != "" && !c.cfg.CreateDB {
		clientCaps |= CapabilityConnectWithDB
	}
	c.clientCapabilities = clientCaps

	authResponse := scrambleNativePassword(greeting.Seed, c.passwd)

	if err := c.writeAuthPacket(clientCaps, authResponse); err != nil {
		return err
	}
	if err := c.fr.flush(); err != nil {
		return err
	}

	replyData, err := c.fr.readFrame()
	if err != nil {
		return err
	}
	reply, err := decodePacket(replyData, false)
	if err != nil {
		return err
	}

	switch p := reply.(type) {
	case OKPacket:
		// authenticated; the createDB queries below need a usable Conn
		c.state.setConnected(true)
	case ErrPacket:
		return c.logError(&ConnectionError{Message: p.Message, Number: p.Number, SQLState: p.SQLState})
	default:
		return c.logError(newProtocolError("unexpected packet in handshake reply"))
	}

	if c.cfg.CreateDB && c.dbname != "" {
		if _, err := c.executeQuery("CREATE DATABASE IF NOT EXISTS "+c.dbname, nil); err != nil {
			return err
		}
		if _, err := c.executeQuery("USE "+c.dbname, nil); err != nil {
			return err
		}
	}

	return nil
}

// writeAuthPacket sends the client authentication response packet.
func (c *Conn) writeAuthPacket(caps Capability, authResponse []byte) error {
	capBytes := caps.wireBytes()

	payload := make([]byte, 0, 4+4+1+23+len(c.user)+1+1+len(authResponse)+len(c.dbname)+1)
	payload = append(payload, capBytes[:]...)
	payload = append(payload, 0x00, 0x00, 0x00, 0x01) // max packet size, 0x01000000 LE
	payload = append(payload, nativeAuthCharset)
	payload = append(payload, make([]byte, 23)...)
	payload = append(payload, []byte(c.user)...)
	payload = append(payload, 0x00)
	payload = append(payload, byte(len(authResponse)))
	payload = append(payload, authResponse...)

	if caps.Has(CapabilityConnectWithDB) {
		payload = append(payload, []byte(c.dbname)...)
		payload = append(payload, 0x00)
	}

	return c.fr.writeMessage(payload)
}
