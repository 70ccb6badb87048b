// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySelect(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	assert.Same(t, MainNetParams(), reg.Current(), "main network is active before selection")

	params := reg.Select(TestNet)
	assert.Same(t, TestNetParams(), params)
	assert.Same(t, params, reg.Current())
	assert.Equal(t, int32(20), reg.Current().LastPoWHeight)

	// Idempotent.
	again := reg.Select(TestNet)
	assert.Same(t, params, again)
	assert.Same(t, params, reg.Current())

	assert.Same(t, MainNetParams(), reg.Select(MainNet))
	assert.Equal(t, "32390", reg.Current().DefaultPort)
}

func TestRegistrySelectFromFlags(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	assert.Equal(t, TestNet, reg.SelectFromFlags(true).Network)
	assert.Equal(t, TestNet, reg.Current().Network)
	assert.Equal(t, MainNet, reg.SelectFromFlags(false).Network)
	assert.Equal(t, MainNet, reg.Current().Network)
}

func TestRegistrySelectUnknownPanics(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	reg.Select(TestNet)

	assert.PanicsWithValue(t, "unimplemented network Unknown Network (9)", func() {
		reg.Select(Network(9))
	})
}

func TestRegistryLogsSelection(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(zerolog.New(&buf))

	reg.Select(TestNet)
	assert.Contains(t, buf.String(), `"network":"testnet"`)
	assert.Contains(t, buf.String(), `"magic":"4c17fee9"`)
	assert.Contains(t, buf.String(), `"port":"31979"`)
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())

	params, err := reg.Lookup("testnet")
	require.NoError(t, err)
	assert.Same(t, TestNetParams(), params)

	_, err = reg.Lookup("regtest")
	assert.True(t, errors.Is(err, ErrUnknownNetwork))

	nets := reg.Networks()
	require.Len(t, nets, 2)
	assert.Equal(t, "mainnet", nets[0].Name)
	nets[0] = nil
	assert.NotNil(t, reg.Networks()[0])
}

func TestRegistryConcurrentReaders(t *testing.T) {
	reg := NewRegistry(zerolog.Nop())
	reg.SelectFromFlags(true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "testnet", reg.Current().Name)
			}
		}()
	}
	wg.Wait()
}

func TestRegister(t *testing.T) {
	assert.Equal(t, ErrDuplicateNet, Register(MainNetParams()))
	assert.Equal(t, ErrDuplicateNet, Register(TestNetParams()))

	assert.True(t, IsPubKeyHashAddrID(55))
	assert.False(t, IsPubKeyHashAddrID(0))
	assert.True(t, IsScriptHashAddrID(85))
	assert.True(t, IsScriptHashAddrID(192))
	assert.False(t, IsScriptHashAddrID(5))

	pub, err := HDPrivateKeyToPublicKeyID([]byte{0x04, 0x35, 0x83, 0x94})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x35, 0x87, 0xcf}, pub)

	_, err = HDPrivateKeyToPublicKeyID([]byte{0x01, 0x02, 0x03, 0x04})
	assert.Equal(t, ErrUnknownHDKeyID, err)
	_, err = HDPrivateKeyToPublicKeyID([]byte{0x04})
	assert.Equal(t, ErrUnknownHDKeyID, err)
}

func TestHDPublicKeyIDIsCopy(t *testing.T) {
	pub, err := HDPrivateKeyToPublicKeyID([]byte{0x04, 0x35, 0x83, 0x94})
	require.NoError(t, err)
	pub[0] = 0xff

	assert.Equal(t, [4]byte{0x04, 0x35, 0x87, 0xcf}, TestNetParams().HDPublicKeyID)
	assert.Equal(t, []byte{0x04, 0x35, 0x87, 0xcf}, TestNetParams().Base58Prefix(ExtPublicKey))

	again, err := HDPrivateKeyToPublicKeyID([]byte{0x04, 0x35, 0x83, 0x94})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x35, 0x87, 0xcf}, again)
}

func TestParamsFor(t *testing.T) {
	params, err := ParamsFor(NetworkFromFlags(true))
	require.NoError(t, err)
	assert.Same(t, TestNetParams(), params)

	params, err = ParamsFor(NetworkFromFlags(false))
	require.NoError(t, err)
	assert.Same(t, MainNetParams(), params)

	_, err = ParamsFor(Network(9))
	assert.True(t, errors.Is(err, ErrUnknownNetwork))
}
