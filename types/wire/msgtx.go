// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/PawCoin/PawCoinMN/types/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// maxScriptSize bounds the scripts read from the wire.
	maxScriptSize = 10000

	// maxTxPerBlock bounds the number of inputs, outputs and transactions
	// read from the wire.
	maxTxPerBlock = MaxMessagePayload / 10
)

// OutPoint defines a PawCoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// IsNull reports whether the outpoint references no output, as coinbase
// inputs do.
func (o OutPoint) IsNull() bool {
	return o.Index == MaxPrevOutIndex && o.Hash.IsZero()
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.Hash, o.Index)
}

// TxIn defines a PawCoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new transaction input with the provided previous
// outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a PawCoin transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new transaction output with the provided transaction
// value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// SetEmpty marks the output as empty: zero value and no script.  Coinstake
// markers and the genesis output use this form.
func (t *TxOut) SetEmpty() {
	t.Value = 0
	t.PkScript = []byte{}
}

// IsEmpty reports whether the output has zero value and an empty script.
func (t *TxOut) IsEmpty() bool {
	return t.Value == 0 && len(t.PkScript) == 0
}

// MsgTx is a PawCoin transaction.  Unlike bitcoin transactions it carries
// its own creation time right after the version.
type MsgTx struct {
	Version  int32
	Time     time.Time
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new transaction message of the given version created at
// the given time.  The time is rounded to one second precision.
func NewMsgTx(version int32, created time.Time) *MsgTx {
	return &MsgTx{
		Version: version,
		Time:    time.Unix(created.Unix(), 0),
		TxIn:    make([]*TxIn, 0, 1),
		TxOut:   make([]*TxOut, 0, 1),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// IsCoinBase reports whether the transaction has a single input that
// references no previous output.
func (msg *MsgTx) IsCoinBase() bool {
	return len(msg.TxIn) == 1 && msg.TxIn[0].PreviousOutPoint.IsNull()
}

// TxHash generates the double sha256 hash of the serialized transaction.
func (msg *MsgTx) TxHash() chainhash.Hash {
	// Encode the transaction and calculate double sha256 on the result.
	// Ignore the error returns since the only way the encode could fail
	// is being out of memory or due to nil pointers, both of which would
	// cause a run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + Time 4 bytes + LockTime 4 bytes + serialized varint
	// size for the number of transaction inputs and outputs.
	n := 12 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes
		// + serialized varint size for the length of SignatureScript +
		// SignatureScript bytes.
		n += 40 + VarIntSerializeSize(uint64(len(txIn.SignatureScript))) +
			len(txIn.SignatureScript)
	}

	for _, txOut := range msg.TxOut {
		// Value 8 bytes + serialized varint size for the length of PkScript
		// + PkScript bytes.
		n += 8 + VarIntSerializeSize(uint64(len(txOut.PkScript))) +
			len(txOut.PkScript)
	}

	return n
}

// Serialize encodes the transaction to w in the format used on the wire and
// for hashing.
func (msg *MsgTx) Serialize(w io.Writer) error {
	err := WriteElements(w, msg.Version, Uint32Time(msg.Time))
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err = WriteElements(w, &ti.PreviousOutPoint.Hash, ti.PreviousOutPoint.Index)
		if err != nil {
			return err
		}
		err = WriteVarBytes(w, ti.SignatureScript)
		if err != nil {
			return err
		}
		err = WriteElement(w, ti.Sequence)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = WriteElement(w, to.Value)
		if err != nil {
			return err
		}
		err = WriteVarBytes(w, to.PkScript)
		if err != nil {
			return err
		}
	}

	return WriteElement(w, msg.LockTime)
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	var created Uint32Time
	err := ReadElements(r, &msg.Version, &created)
	if err != nil {
		return err
	}
	msg.Time = time.Time(created)

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxPerBlock {
		return Error("MsgTx.Deserialize", fmt.Sprintf(
			"too many input transactions [count %d, max %d]", count, maxTxPerBlock))
	}

	msg.TxIn = make([]*TxIn, count)
	for i := range msg.TxIn {
		ti := new(TxIn)
		err = ReadElements(r, &ti.PreviousOutPoint.Hash, &ti.PreviousOutPoint.Index)
		if err != nil {
			return err
		}
		ti.SignatureScript, err = ReadVarBytes(r, maxScriptSize, "signature script")
		if err != nil {
			return err
		}
		err = ReadElement(r, &ti.Sequence)
		if err != nil {
			return err
		}
		msg.TxIn[i] = ti
	}

	count, err = ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > maxTxPerBlock {
		return Error("MsgTx.Deserialize", fmt.Sprintf(
			"too many output transactions [count %d, max %d]", count, maxTxPerBlock))
	}

	msg.TxOut = make([]*TxOut, count)
	for i := range msg.TxOut {
		to := new(TxOut)
		err = ReadElement(r, &to.Value)
		if err != nil {
			return err
		}
		to.PkScript, err = ReadVarBytes(r, maxScriptSize, "public key script")
		if err != nil {
			return err
		}
		msg.TxOut[i] = to
	}

	return ReadElement(r, &msg.LockTime)
}
