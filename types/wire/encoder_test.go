// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"
	"time"

	"github.com/PawCoin/PawCoinMN/types/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementsRoundTrip(t *testing.T) {
	hash := chainhash.HashH([]byte("element"))
	ip := [16]byte{15: 1}
	stamp := time.Unix(1520363196, 0)

	var buf bytes.Buffer
	require.NoError(t, WriteElements(&buf, int32(-1), uint32(7), int64(-2),
		Uint32Time(stamp), SFNodeBloom, &hash, ip))
	require.Equal(t, 4+4+8+4+8+32+16, buf.Len())
	assert.Equal(t, "ffffffff07000000", hex.EncodeToString(buf.Bytes()[:8]))

	var (
		i32     int32
		u32     uint32
		i64     int64
		created Uint32Time
		flags   ServiceFlag
		gotHash chainhash.Hash
		gotIP   [16]byte
	)
	require.NoError(t, ReadElements(&buf, &i32, &u32, &i64, &created, &flags, &gotHash, &gotIP))

	assert.Equal(t, int32(-1), i32)
	assert.Equal(t, uint32(7), u32)
	assert.Equal(t, int64(-2), i64)
	assert.Equal(t, stamp.Unix(), time.Time(created).Unix())
	assert.Equal(t, SFNodeBloom, flags)
	assert.Equal(t, hash, gotHash)
	assert.Equal(t, ip, gotIP)
	assert.Zero(t, buf.Len())
}

func TestElementsUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	err := WriteElement(&buf, "text")
	require.Error(t, err)
	assert.IsType(t, &MessageError{}, err)
	assert.Zero(t, buf.Len())

	var f float64
	err = ReadElement(bytes.NewReader(make([]byte, 8)), &f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "float64")
}

func TestVarIntNonCanonical(t *testing.T) {
	tests := [][]byte{
		{0xfd, 0xfc, 0x00},
		{0xfe, 0xff, 0xff, 0x00, 0x00},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00},
	}

	for i, raw := range tests {
		_, err := ReadVarInt(bytes.NewReader(raw))
		assert.Error(t, err, "case %d", i)
	}
}

func TestVarBytesLimit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVarBytes(&buf, []byte{1, 2, 3}))

	_, err := ReadVarBytes(bytes.NewReader(buf.Bytes()), 2, "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload")

	got, err := ReadVarBytes(bytes.NewReader(buf.Bytes()), 3, "payload")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
