// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
)

func TestMainNetParams(t *testing.T) {
	params := MainNetParams()

	assert.Equal(t, "mainnet", params.Name)
	assert.Equal(t, MainNet, params.Network)
	assert.Equal(t, [4]byte{0x4c, 0x17, 0xfe, 0xe9}, params.MessageStart())
	assert.Equal(t, "32390", params.DefaultPort)
	assert.Equal(t, "32391", params.RPCPort)
	assert.Equal(t, "", params.DataDirSuffix)
	assert.Equal(t, int32(1000), params.LastPoWHeight)
	assert.Len(t, params.AlertPubKey, 65)
	assert.Equal(t, byte(0x04), params.AlertPubKey[0])
	assert.Equal(t, uint32(0x1e0fffff), params.PowLimitBits)
	assert.Equal(t, 236, params.PowLimit.BitLen())

	assert.Equal(t, []DNSSeed{
		{Name: "n0", Host: "107.172.205.232"},
		{Name: "n1", Host: "23.95.214.48"},
		{Name: "n2", Host: "193.37.152.99"},
	}, params.DNSSeeds)
	assert.Len(t, params.FixedSeeds, len(mainNetSeeds))

	assert.Equal(t, []byte{55}, params.Base58Prefix(PubKeyAddress))
	assert.Equal(t, []byte{85}, params.Base58Prefix(ScriptAddress))
	assert.Equal(t, []byte{153}, params.Base58Prefix(SecretKey))
	assert.Equal(t, []byte{0x04, 0x88, 0xb2, 0x1e}, params.Base58Prefix(ExtPublicKey))
	assert.Equal(t, []byte{0x04, 0x88, 0xad, 0xe4}, params.Base58Prefix(ExtSecretKey))
}

func TestTestNetParams(t *testing.T) {
	params := TestNetParams()

	assert.Equal(t, "testnet", params.Name)
	assert.Equal(t, TestNet, params.Network)
	assert.Equal(t, "31979", params.DefaultPort)
	assert.Equal(t, "21979", params.RPCPort)
	assert.Equal(t, "testnet", params.DataDirSuffix)
	assert.Equal(t, int32(20), params.LastPoWHeight)
	assert.Empty(t, params.AlertPubKey)
	assert.Empty(t, params.DNSSeeds)
	assert.Len(t, params.FixedSeeds, len(testNetSeeds))
	assert.Equal(t, uint32(0x1f00ffff), params.PowLimitBits)
	assert.Equal(t, 240, params.PowLimit.BitLen())

	assert.Equal(t, []byte{55}, params.Base58Prefix(PubKeyAddress))
	assert.Equal(t, []byte{192}, params.Base58Prefix(ScriptAddress))
	assert.Equal(t, []byte{239}, params.Base58Prefix(SecretKey))
	assert.Equal(t, []byte{0x04, 0x35, 0x87, 0xcf}, params.Base58Prefix(ExtPublicKey))
	assert.Equal(t, []byte{0x04, 0x35, 0x83, 0x94}, params.Base58Prefix(ExtSecretKey))
}

func TestTestNetComposition(t *testing.T) {
	main, test := MainNetParams(), TestNetParams()

	// Shared with the main network.
	assert.Equal(t, main.Net, test.Net)
	assert.Equal(t, main.MessageStart(), test.MessageStart())
	assert.Equal(t, *main.GenesisHash, *test.GenesisHash)

	// Built independently.
	assert.NotSame(t, main.GenesisBlock, test.GenesisBlock)
	assert.NotSame(t, main.PowLimit, test.PowLimit)
	assert.True(t, test.PowLimit.Cmp(main.PowLimit) > 0)
	assert.NotEqual(t, main.DefaultPort, test.DefaultPort)
	assert.NotEqual(t, main.RPCPort, test.RPCPort)
}

func TestAddressPrefixesDiffer(t *testing.T) {
	main, test := MainNetParams(), TestNetParams()

	for _, kind := range AddressKinds {
		if kind == PubKeyAddress {
			// Both networks encode pubkey hash addresses with 55.
			assert.Equal(t, main.Base58Prefix(kind), test.Base58Prefix(kind))
			continue
		}
		assert.NotEqual(t, main.Base58Prefix(kind), test.Base58Prefix(kind), kind.String())
	}
}

func TestAddressLeadingCharacters(t *testing.T) {
	hash160 := make([]byte, 20)

	tests := []struct {
		name    string
		version byte
		want    byte
	}{
		{"main pubkey", MainNetParams().PubKeyHashAddrID, 'P'},
		{"main script", MainNetParams().ScriptHashAddrID, 'b'},
		{"test pubkey", TestNetParams().PubKeyHashAddrID, 'P'},
		{"test script", TestNetParams().ScriptHashAddrID, '2'},
	}

	for _, test := range tests {
		encoded := base58.CheckEncode(hash160, test.version)
		assert.Equal(t, test.want, encoded[0], "%s: %s", test.name, encoded)
	}

	assert.Equal(t, "P8bB9yPr3vVByqfmM5KXftyGckAtAdu6f8", base58.CheckEncode(hash160, 55))
}

func TestBase58PrefixIsCopy(t *testing.T) {
	params := MainNetParams()

	prefix := params.Base58Prefix(ExtPublicKey)
	prefix[0] = 0xff
	assert.Equal(t, byte(0x04), params.HDPublicKeyID[0])

	assert.Nil(t, params.Base58Prefix(AddressKind(42)))
	assert.Len(t, params.Base58Prefixes(), len(AddressKinds))
}

func TestIsProofOfWorkHeight(t *testing.T) {
	assert.True(t, MainNetParams().IsProofOfWorkHeight(1000))
	assert.False(t, MainNetParams().IsProofOfWorkHeight(1001))
	assert.True(t, TestNetParams().IsProofOfWorkHeight(20))
	assert.False(t, TestNetParams().IsProofOfWorkHeight(21))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "mainnet", MainNet.String())
	assert.Equal(t, "testnet", TestNet.String())
	assert.Equal(t, "Unknown Network (7)", Network(7).String())
	assert.Equal(t, "SCRIPT_ADDRESS", ScriptAddress.String())
	assert.Equal(t, "193.37.152.99", DNSSeed{Name: "n2", Host: "193.37.152.99"}.String())
}

func TestNewHashFromStr(t *testing.T) {
	hash := newHashFromStr("00000db25ffc0da6d4894dd1f597126a1c1b07de9f878cac4043ceb8fe9e0def")
	assert.Equal(t, byte(0xef), hash[0])
	assert.Equal(t, byte(0x00), hash[31])
	assert.Equal(t, mainGenesisHash, *hash)

	assert.Panics(t, func() { newHashFromStr("not hex") })
}
