// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import "encoding/hex"

// hexDump renders b as a human-readable hex dump for diagnostics. It
// is a pure function, independent of any connection state, and
// deliberately not wired into the hot path.
func hexDump(b []byte) string {
	return hex.Dump(b)
}
