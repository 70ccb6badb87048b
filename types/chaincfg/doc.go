// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// In addition to the main PawCoin network, which is intended for the transfer
// of monetary value, there also exists a test network.  The network is
// differentiated by its parameters: default ports, proof-of-work limit, the
// genesis block, bootstrap seeds and the version bytes of encoded addresses.
//
// Every parameter set is built once when the package is initialized.  The
// genesis block of each network is assembled from its raw inputs and checked
// against the hardcoded hash and merkle root.  A mismatch panics.
//
// A daemon owns one Registry and selects the active network exactly once,
// before any subsystem starts:
//
//	reg := chaincfg.NewRegistry(log)
//	params := reg.SelectFromFlags(cfg.TestNet)
//	// hand params to p2p, consensus and address encoding
//
// After selection the parameter set is read only and may be shared freely.
package chaincfg
