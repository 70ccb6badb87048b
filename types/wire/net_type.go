// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
)

// PawNet represents the four message start bytes that open every PawCoin
// peer-to-peer message, read as a little endian uint32.
type PawNet uint32

const (
	// MainNet represents the main PawCoin network.  On the wire it is the
	// byte sequence 4c 17 fe e9.
	MainNet PawNet = 0xe9fe174c

	// TestNet represents the test network.  It shares the message start
	// bytes of the main network.
	TestNet PawNet = MainNet
)

// String returns the PawNet in human-readable form.
func (n PawNet) String() string {
	if n == MainNet {
		return "MainNet"
	}

	return fmt.Sprintf("Unknown PawNet (%d)", uint32(n))
}

// Bytes returns the message start bytes in wire order.
func (n PawNet) Bytes() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(n))
	return b
}
