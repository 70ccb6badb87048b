// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/PawCoin/PawCoinMN/types/wire"
)

// mainNetMagic is shared by every PawCoin network.
const mainNetMagic = wire.MainNet

// mainGenesisOpts are the raw inputs of the main network genesis block.
var mainGenesisOpts = GenesisOpts{
	Message:   "06/03/2018 Pawcoin Masternodes",
	Extra:     42,
	Version:   1,
	Timestamp: time.Unix(1520363196, 0), // Tue  6 Mar 19:06:36 UTC 2018
	Bits:      0x1e0ffff0,               // 504365040 [00000ffff0000000000000000000000000000000000000000000000000000000]
	Nonce:     2084745091,
}

// mainGenesisHash is the hash of the first block in the block chain for the
// main network (genesis block).
var mainGenesisHash = *newHashFromStr("00000db25ffc0da6d4894dd1f597126a1c1b07de9f878cac4043ceb8fe9e0def")

// mainGenesisMerkleRoot is the hash of the first transaction in the genesis
// block for the main network.
var mainGenesisMerkleRoot = *newHashFromStr("3b4541236757005b3f543e502d34e325636e11244293b3dcd6e3c2c2e8377ac2")

// newMainNetParams builds the parameters of the main PawCoin network.
func newMainNetParams() *Params {
	genesis := mustBuildGenesis(MainNet, mainGenesisOpts, &mainGenesisHash, &mainGenesisMerkleRoot)
	genesisHash := genesis.BlockHash()
	merkleRoot := genesis.Header.MerkleRoot

	return &Params{
		Name:    "mainnet",
		Network: MainNet,
		Net:     mainNetMagic,
		AlertPubKey: hexDecode("046bcf8279df0f85f79b0bce7693011f45955bfd5645b1fd109cb300d4dc3f47e8" +
			"d0495808a73b31965a910fdf9a0ddef1c663788d08ea0d828a963a6e2ac9401e"),
		DefaultPort:   "32390",
		RPCPort:       "32391",
		DataDirSuffix: "",

		PowLimit:      mainPowLimit,
		PowLimitBits:  BigToCompact(mainPowLimit),
		LastPoWHeight: 1000,

		GenesisBlock:      genesis,
		GenesisHash:       &genesisHash,
		GenesisMerkleRoot: &merkleRoot,

		DNSSeeds: []DNSSeed{
			{Name: "n0", Host: "107.172.205.232"},
			{Name: "n1", Host: "23.95.214.48"},
			{Name: "n2", Host: "193.37.152.99"},
		},
		FixedSeeds: decodeSeedsNow(mainNetSeeds),

		// Address encoding magics
		PubKeyHashAddrID: 55,  // starts with P
		ScriptHashAddrID: 85,  // starts with b
		PrivateKeyID:     153, // starts with 6 (uncompressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
	}
}
