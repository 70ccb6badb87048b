// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"
	"time"

	"github.com/PawCoin/PawCoinMN/types/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlock() *MsgBlock {
	tx := genesisLikeTx()
	root := chainhash.MerkleTreeRoot([]chainhash.Hash{tx.TxHash()})

	block := &MsgBlock{
		Header: BlockHeader{
			Version:    1,
			MerkleRoot: root,
			Timestamp:  time.Unix(1520363196, 0),
			Bits:       0x1e0ffff0,
			Nonce:      2084745091,
		},
	}
	block.AddTransaction(tx)
	return block
}

func TestBlockHeaderSerialize(t *testing.T) {
	block := testBlock()

	var buf bytes.Buffer
	require.NoError(t, block.Header.Serialize(&buf))
	require.Equal(t, MaxBlockHeaderPayload, buf.Len())

	var decoded BlockHeader
	require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, block.Header.Version, decoded.Version)
	assert.Equal(t, block.Header.MerkleRoot, decoded.MerkleRoot)
	assert.Equal(t, block.Header.Timestamp.Unix(), decoded.Timestamp.Unix())
	assert.Equal(t, block.Header.Bits, decoded.Bits)
	assert.Equal(t, block.Header.Nonce, decoded.Nonce)
	assert.Equal(t, block.BlockHash(), decoded.BlockHash())
}

func TestBlockHashUsesX11(t *testing.T) {
	block := testBlock()

	var buf bytes.Buffer
	require.NoError(t, block.Header.Serialize(&buf))

	assert.Equal(t, chainhash.X11HashH(buf.Bytes()), block.BlockHash())
	assert.NotEqual(t, chainhash.DoubleHashH(buf.Bytes()), block.BlockHash())
}

func TestBlockHashCoversHeaderFields(t *testing.T) {
	base := testBlock().BlockHash()

	mutations := map[string]func(h *BlockHeader){
		"version":   func(h *BlockHeader) { h.Version = 2 },
		"prevblock": func(h *BlockHeader) { h.PrevBlock[0] = 1 },
		"merkle":    func(h *BlockHeader) { h.MerkleRoot[31] ^= 0xff },
		"timestamp": func(h *BlockHeader) { h.Timestamp = h.Timestamp.Add(time.Second) },
		"bits":      func(h *BlockHeader) { h.Bits = 0x1e0fffff },
		"nonce":     func(h *BlockHeader) { h.Nonce++ },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			block := testBlock()
			mutate(&block.Header)
			assert.NotEqual(t, base, block.BlockHash())
		})
	}
}

func TestMsgBlockSerialize(t *testing.T) {
	block := testBlock()

	var buf bytes.Buffer
	require.NoError(t, block.Serialize(&buf))

	// header + tx count + coinbase + empty signature
	want := MaxBlockHeaderPayload + 1 + block.Transactions[0].SerializeSize() + 1
	assert.Equal(t, want, buf.Len())

	var decoded MsgBlock
	require.NoError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	require.Len(t, decoded.Transactions, 1)
	assert.Empty(t, decoded.Signature)
	assert.Equal(t, block.TxHashes(), decoded.TxHashes())
	assert.Equal(t, block.BlockHash(), decoded.BlockHash())
}
