// mysqlcore - a MySQL wire protocol client core
//
// Copyright 2024 The mysqlcore Authors. All rights reserved.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at http://mozilla.org/MPL/2.0/.

package mysql

import "crypto/sha1"

// scrambleNativePassword computes the mysql_native_password response:
// SHA1(password) XOR SHA1(seed + SHA1(SHA1(password))). An empty
// password yields a zero-length response.
func scrambleNativePassword(seed []byte, password string) []byte {
	if len(password) == 0 {
		return nil
	}

	stage1 := sha1.Sum([]byte(password))

	stage2 := sha1.Sum(stage1[:])

	h := sha1.New()
	h.Write(seed)
	h.Write(stage2[:])
	seedHash := h.Sum(nil)

	result := make([]byte, len(stage1))
	for i := range result {
		result[i] = seedHash[i] ^ stage1[i]
	}
	return result
}
