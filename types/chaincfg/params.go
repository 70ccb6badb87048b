// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/PawCoin/PawCoinMN/types/chainhash"
	"github.com/PawCoin/PawCoinMN/types/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a PawCoin block can
	// have for the main network.  It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// testNetPowLimit is the highest proof of work value a PawCoin block
	// can have for the test network.  It is the value 2^240 - 1.
	testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 240), bigOne)
)

// Network identifies one of the supported PawCoin networks.
type Network uint32

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet
)

var networkStrings = map[Network]string{
	MainNet: "mainnet",
	TestNet: "testnet",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := networkStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Network (%d)", uint32(n))
}

// AddressKind identifies what a base58 version prefix is prepended to.
type AddressKind int

const (
	PubKeyAddress AddressKind = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey
)

var addressKindStrings = map[AddressKind]string{
	PubKeyAddress: "PUBKEY_ADDRESS",
	ScriptAddress: "SCRIPT_ADDRESS",
	SecretKey:     "SECRET_KEY",
	ExtPublicKey:  "EXT_PUBLIC_KEY",
	ExtSecretKey:  "EXT_SECRET_KEY",
}

// AddressKinds lists every address kind in display order.
var AddressKinds = []AddressKind{PubKeyAddress, ScriptAddress, SecretKey, ExtPublicKey, ExtSecretKey}

func (k AddressKind) String() string {
	if s, ok := addressKindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Unknown AddressKind (%d)", int(k))
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the label of the seed.
	Name string

	// Host defines the hostname (or address) of the seed.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a PawCoin network by its parameters.  These parameters may
// be used by PawCoin applications to differentiate networks as well as
// addresses and keys for one network from those intended for use on another
// network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Network is the identity of the parameter set.
	Network Network

	// Net defines the magic bytes used to identify the network.
	Net wire.PawNet

	// AlertPubKey is the uncompressed key that signs network alerts.  It is
	// empty when the network has no alert system.
	AlertPubKey []byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// RPCPort defines the default RPC port for the network.
	RPCPort string

	// DataDirSuffix is appended to the data directory.  Empty keeps data in
	// the base directory.
	DataDirSuffix string

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// LastPoWHeight is the height of the last block that may be mined by
	// proof of work.  Later blocks are proof of stake.
	LastPoWHeight int32

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are bootstrap peers used when DNS seeding yields nothing.
	FixedSeeds []*wire.NetAddress

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// MessageStart returns the four bytes that open every peer-to-peer message
// on the network, in wire order.
func (p *Params) MessageStart() [4]byte {
	return p.Net.Bytes()
}

// Base58Prefix returns a copy of the version bytes prepended to base58
// encodings of kind.  Unknown kinds yield nil.
func (p *Params) Base58Prefix(kind AddressKind) []byte {
	switch kind {
	case PubKeyAddress:
		return []byte{p.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{p.ScriptHashAddrID}
	case SecretKey:
		return []byte{p.PrivateKeyID}
	case ExtPublicKey:
		return append([]byte(nil), p.HDPublicKeyID[:]...)
	case ExtSecretKey:
		return append([]byte(nil), p.HDPrivateKeyID[:]...)
	}
	return nil
}

// Base58Prefixes returns every version prefix of the network keyed by kind.
func (p *Params) Base58Prefixes() map[AddressKind][]byte {
	res := make(map[AddressKind][]byte, len(AddressKinds))
	for _, kind := range AddressKinds {
		res[kind] = p.Base58Prefix(kind)
	}
	return res
}

// IsProofOfWorkHeight reports whether a block at height may be mined.
func (p *Params) IsProofOfWorkHeight(height int32) bool {
	return height <= p.LastPoWHeight
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes hard-coded hex and panics on malformed input.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

