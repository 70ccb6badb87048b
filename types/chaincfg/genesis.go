// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/PawCoin/PawCoinMN/txscript"
	"github.com/PawCoin/PawCoinMN/types/chainhash"
	"github.com/PawCoin/PawCoinMN/types/wire"
	"github.com/pkg/errors"
)

// GenesisOpts are the raw inputs a genesis block is assembled from.
type GenesisOpts struct {
	// Message is embedded in the coinbase unlocking script.
	Message string
	// Extra is the number pushed between the leading zero and the message.
	Extra int64

	Version   int32
	Timestamp time.Time
	Bits      uint32
	Nonce     uint32
}

// ConsistencyError is the panic value raised when a network's genesis block
// does not reproduce its hardcoded identity.
type ConsistencyError struct {
	Network Network
	Check   string
	Want    chainhash.Hash
	Got     chainhash.Hash
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s genesis %s mismatch: want %s, got %s",
		e.Network, e.Check, e.Want, e.Got)
}

// GenesisCoinbaseTx builds the single transaction of a genesis block.  Its
// input spends nothing and carries OP_0 <extra> <message>; its only output is
// empty and can never be spent.
func GenesisCoinbaseTx(opts GenesisOpts) (*wire.MsgTx, error) {
	script, err := txscript.NewScriptBuilder().
		AddInt64(0).
		AddInt64(opts.Extra).
		AddData([]byte(opts.Message)).
		Script()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build genesis coinbase script")
	}

	tx := wire.NewMsgTx(wire.TxVersion, opts.Timestamp)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.ZeroHash, wire.MaxPrevOutIndex), script))

	out := new(wire.TxOut)
	out.SetEmpty()
	tx.AddTxOut(out)
	return tx, nil
}

// BuildGenesisBlock assembles a genesis block from opts: the coinbase, the
// merkle root over it and the header.  It performs no proof-of-work search.
func BuildGenesisBlock(opts GenesisOpts) (*wire.MsgBlock, error) {
	tx, err := GenesisCoinbaseTx(opts)
	if err != nil {
		return nil, err
	}

	merkleRoot := chainhash.MerkleTreeRoot([]chainhash.Hash{tx.TxHash()})
	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    opts.Version,
			PrevBlock:  chainhash.ZeroHash,
			MerkleRoot: merkleRoot,
			Timestamp:  time.Unix(opts.Timestamp.Unix(), 0),
			Bits:       opts.Bits,
			Nonce:      opts.Nonce,
		},
		Signature: []byte{},
	}
	block.AddTransaction(tx)
	return block, nil
}

// mustBuildGenesis builds and verifies the genesis block of net.  It panics
// with a *ConsistencyError when the block does not reproduce wantHash and
// wantMerkle.
func mustBuildGenesis(net Network, opts GenesisOpts, wantHash, wantMerkle *chainhash.Hash) *wire.MsgBlock {
	block, err := BuildGenesisBlock(opts)
	if err != nil {
		panic(err)
	}

	mustVerifyGenesis(net, block, wantHash, wantMerkle)
	return block
}

// mustVerifyGenesis recomputes the merkle root and the block hash of block
// and panics on the first one that differs from the expected value.
func mustVerifyGenesis(net Network, block *wire.MsgBlock, wantHash, wantMerkle *chainhash.Hash) {
	if err := VerifyGenesis(net, block, wantHash, wantMerkle); err != nil {
		panic(err)
	}
}

// VerifyGenesis reports the first mismatch between block and the expected
// merkle root and block hash as a *ConsistencyError.
func VerifyGenesis(net Network, block *wire.MsgBlock, wantHash, wantMerkle *chainhash.Hash) error {
	merkle := chainhash.MerkleTreeRoot(block.TxHashes())
	if merkle != *wantMerkle || block.Header.MerkleRoot != *wantMerkle {
		got := merkle
		if merkle == *wantMerkle {
			got = block.Header.MerkleRoot
		}
		return &ConsistencyError{Network: net, Check: "merkle root", Want: *wantMerkle, Got: got}
	}

	hash := block.BlockHash()
	if hash != *wantHash {
		return &ConsistencyError{Network: net, Check: "block hash", Want: *wantHash, Got: hash}
	}

	return nil
}
