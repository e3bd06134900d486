// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import "io"

// Command bytes for the subset of the command protocol this core
// implements.
const (
	comQuit       byte = 0x01
	comInitDB     byte = 0x02
	comQuery      byte = 0x03
	comPing       byte = 0x0e
	comBinlogDump byte = 0x12
)

// localInfileMarker is the first byte of a server reply asking the
// client to upload a local file.
const localInfileMarker = 0xfb

// ExecuteQuery sends a textual SQL command and decodes the response
// into an UpdateResult or a ResultSet.
func (c *Conn) ExecuteQuery(query string) (QueryResult, error) {
	return c.executeQuery(query, nil)
}

// ExecuteQueryWithFile is for queries expected to trigger a LOCAL
// INFILE request, such as "LOAD DATA LOCAL INFILE ... INTO TABLE ...".
// file is streamed in bounded chunks, never buffered whole.
func (c *Conn) ExecuteQueryWithFile(query string, file io.Reader) (QueryResult, error) {
	return c.executeQuery(query, file)
}

func (c *Conn) executeQuery(query string, file io.Reader) (QueryResult, error) {
	if err := c.checkUsable(); err != nil {
		return QueryResult{}, err
	}

	c.fr.resetSeq()
	if err := c.fr.writeMessage(append([]byte{comQuery}, query...)); err != nil {
		c.poison(err)
		return QueryResult{}, err
	}
	if err := c.fr.flush(); err != nil {
		c.poison(err)
		return QueryResult{}, err
	}

	data, err := c.fr.readFrame()
	if err != nil {
		c.poison(err)
		return QueryResult{}, err
	}

	if len(data) > 0 && data[0] == localInfileMarker {
		filename := string(data[1:])
		if file == nil {
			err := newProtocolError("server requested LOCAL INFILE '" + filename + "' but no file stream was supplied")
			c.poison(err)
			return QueryResult{}, err
		}
		if err := c.uploadLocalFile(file); err != nil {
			return QueryResult{}, err
		}
		data, err = c.fr.readFrame()
		if err != nil {
			c.poison(err)
			return QueryResult{}, err
		}
	}

	return c.decodeQueryReply(data)
}

func (c *Conn) decodeQueryReply(data []byte) (QueryResult, error) {
	pkt, err := decodePacket(data, false)
	if err != nil {
		c.poison(err)
		return QueryResult{}, err
	}

	switch p := pkt.(type) {
	case OKPacket:
		return QueryResult{Update: &UpdateResult{
			AffectedRows: p.AffectedRows,
			Warnings:     p.Warnings,
			Message:      p.Message,
			InsertID:     p.InsertID,
		}}, nil
	case ErrPacket:
		return QueryResult{}, &QueryError{Message: p.Message, Number: p.Number, SQLState: p.SQLState}
	case ResultSetHeaderPacket:
		rs, err := c.readResultSet(int(p.FieldCount))
		if err != nil {
			return QueryResult{}, err
		}
		return QueryResult{ResultSet: rs}, nil
	default:
		err := newProtocolError("unexpected packet in query reply")
		c.poison(err)
		return QueryResult{}, err
	}
}

// Ping issues COM_PING and reports whether the server replied OK.
func (c *Conn) Ping() (bool, error) {
	if err := c.checkUsable(); err != nil {
		return false, err
	}

	c.fr.resetSeq()
	if err := c.fr.writeFrame([]byte{comPing}); err != nil {
		c.poison(err)
		return false, err
	}
	if err := c.fr.flush(); err != nil {
		c.poison(err)
		return false, err
	}

	data, err := c.fr.readFrame()
	if err != nil {
		c.poison(err)
		return false, err
	}

	pkt, err := decodePacket(data, false)
	if err != nil {
		c.poison(err)
		return false, err
	}
	switch p := pkt.(type) {
	case OKPacket:
		return true, nil
	case ErrPacket:
		return false, &QueryError{Message: p.Message, Number: p.Number, SQLState: p.SQLState}
	default:
		err := newProtocolError("unexpected packet in ping reply")
		c.poison(err)
		return false, err
	}
}

// SelectDB issues COM_INIT_DB to change the connection's default
// schema, updating Database() on success.
func (c *Conn) SelectDB(name string) error {
	if err := c.checkUsable(); err != nil {
		return err
	}

	c.fr.resetSeq()
	if err := c.fr.writeMessage(append([]byte{comInitDB}, name...)); err != nil {
		c.poison(err)
		return err
	}
	if err := c.fr.flush(); err != nil {
		c.poison(err)
		return err
	}

	data, err := c.fr.readFrame()
	if err != nil {
		c.poison(err)
		return err
	}

	pkt, err := decodePacket(data, false)
	if err != nil {
		c.poison(err)
		return err
	}
	switch p := pkt.(type) {
	case OKPacket:
		c.dbname = name
		return nil
	case ErrPacket:
		return &QueryError{Message: p.Message, Number: p.Number, SQLState: p.SQLState}
	default:
		err := newProtocolError("unexpected packet in selectDB reply")
		c.poison(err)
		return err
	}
}
