// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides abstracted hash functionality.
//
// This package provides a generic hash type and associated functions that
// allows the specific hash algorithm to be abstracted.
//
// Two algorithms are in use on the PawCoin chain:
//
//   - double SHA-256 identifies transactions and combines merkle branches;
//   - X11 identifies block headers and is the proof-of-work hash.
package chainhash
