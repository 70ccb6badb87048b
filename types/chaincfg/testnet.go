// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// testNetGenesisOpts keeps the main network genesis inputs: the test network
// starts from the same block.
var testNetGenesisOpts = mainGenesisOpts

var (
	testNetGenesisHash       = mainGenesisHash
	testNetGenesisMerkleRoot = mainGenesisMerkleRoot
)

// newTestNetParams builds the parameters of the PawCoin test network.  It
// shares the message start bytes and the genesis inputs of the main network
// and overrides everything else.
func newTestNetParams() *Params {
	genesis := mustBuildGenesis(TestNet, testNetGenesisOpts, &testNetGenesisHash, &testNetGenesisMerkleRoot)
	genesisHash := genesis.BlockHash()
	merkleRoot := genesis.Header.MerkleRoot

	return &Params{
		Name:          "testnet",
		Network:       TestNet,
		Net:           mainNetMagic,
		AlertPubKey:   []byte{},
		DefaultPort:   "31979",
		RPCPort:       "21979",
		DataDirSuffix: "testnet",

		PowLimit:      testNetPowLimit,
		PowLimitBits:  BigToCompact(testNetPowLimit),
		LastPoWHeight: 20,

		GenesisBlock:      genesis,
		GenesisHash:       &genesisHash,
		GenesisMerkleRoot: &merkleRoot,

		DNSSeeds:   []DNSSeed{},
		FixedSeeds: decodeSeedsNow(testNetSeeds),

		// Address encoding magics
		PubKeyHashAddrID: 55,  // starts with P
		ScriptHashAddrID: 192, // starts with 2
		PrivateKeyID:     239, // starts with 9 (uncompressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	}
}
