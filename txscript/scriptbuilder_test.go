// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScriptBuilderAddInt64 tests that pushing signed integers to a script via
// the ScriptBuilder API works as expected.
func TestScriptBuilderAddInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      int64
		expected []byte
	}{
		{name: "push -1", val: -1, expected: []byte{OP_1NEGATE}},
		{name: "push small int 0", val: 0, expected: []byte{OP_0}},
		{name: "push small int 1", val: 1, expected: []byte{OP_1}},
		{name: "push small int 16", val: 16, expected: []byte{OP_16}},
		{name: "push 17", val: 17, expected: []byte{OP_DATA_1, 0x11}},
		{name: "push 42", val: 42, expected: []byte{OP_DATA_1, 0x2a}},
		{name: "push 128", val: 128, expected: []byte{0x02, 0x80, 0x00}},
		{name: "push 256", val: 256, expected: []byte{0x02, 0x00, 0x01}},
		{name: "push 32768", val: 32768, expected: []byte{0x03, 0x00, 0x80, 0x00}},
		{name: "push -2", val: -2, expected: []byte{OP_DATA_1, 0x82}},
		{name: "push -128", val: -128, expected: []byte{0x02, 0x80, 0x80}},
	}

	builder := NewScriptBuilder()
	for _, test := range tests {
		builder.Reset().AddInt64(test.val)
		result, err := builder.Script()
		require.NoError(t, err, test.name)
		assert.Equal(t, test.expected, result, test.name)
	}
}

// TestScriptBuilderAddData tests that pushing data to a script via the
// ScriptBuilder API works as expected and conforms to BIP0062.
func TestScriptBuilderAddData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []byte
	}{
		{name: "push empty byte sequence", data: nil, expected: []byte{OP_0}},
		{name: "push 1 byte 0x00", data: []byte{0x00}, expected: []byte{OP_0}},
		{name: "push 1 byte 0x01", data: []byte{0x01}, expected: []byte{OP_1}},
		{name: "push 1 byte 0x10", data: []byte{0x10}, expected: []byte{OP_16}},
		{name: "push 1 byte 0x81", data: []byte{0x81}, expected: []byte{OP_1NEGATE}},
		{name: "push 1 byte 0x11", data: []byte{0x11}, expected: []byte{OP_DATA_1, 0x11}},
		{
			name:     "push data len 75",
			data:     bytes.Repeat([]byte{0x49}, 75),
			expected: append([]byte{OP_DATA_75}, bytes.Repeat([]byte{0x49}, 75)...),
		},
		{
			name:     "push data len 76",
			data:     bytes.Repeat([]byte{0x49}, 76),
			expected: append([]byte{OP_PUSHDATA1, 76}, bytes.Repeat([]byte{0x49}, 76)...),
		},
		{
			name:     "push data len 256",
			data:     bytes.Repeat([]byte{0x49}, 256),
			expected: append([]byte{OP_PUSHDATA2, 0x00, 0x01}, bytes.Repeat([]byte{0x49}, 256)...),
		},
	}

	builder := NewScriptBuilder()
	for _, test := range tests {
		result, err := builder.Reset().AddData(test.data).Script()
		require.NoError(t, err, test.name)
		assert.Equal(t, test.expected, result, test.name)
	}

	// Pushes above the element limit are rejected and leave the script as is.
	result, err := builder.Reset().AddOp(OP_RETURN).
		AddData(make([]byte, MaxScriptElementSize+1)).Script()
	assert.IsType(t, ErrScriptNotCanonical(""), err)
	assert.Equal(t, []byte{OP_RETURN}, result)
}

func TestGenesisCoinbaseScript(t *testing.T) {
	msg := []byte("06/03/2018 Pawcoin Masternodes")

	script, err := NewScriptBuilder().AddInt64(0).AddInt64(42).AddData(msg).Script()
	require.NoError(t, err)

	want := append([]byte{0x00, 0x01, 0x2a, 0x1e}, msg...)
	assert.Equal(t, want, script)

	pushes, err := PushedData(script)
	require.NoError(t, err)
	require.Len(t, pushes, 3)
	assert.Empty(t, pushes[0])
	assert.Equal(t, []byte{0x2a}, pushes[1])
	assert.Equal(t, msg, pushes[2])

	disasm, err := DisasmString(script)
	require.NoError(t, err)
	assert.Equal(t, "0 2a 30362f30332f3230313820506177636f696e204d61737465726e6f646573", disasm)
}

func TestDisasmString(t *testing.T) {
	tests := []struct {
		name    string
		script  []byte
		want    string
		wantErr bool
	}{
		{
			name:   "p2pkh",
			script: append(append([]byte{OP_DUP, OP_HASH160, 0x02}, 0xab, 0xcd), OP_EQUALVERIFY, OP_CHECKSIG),
			want:   "OP_DUP OP_HASH160 abcd OP_EQUALVERIFY OP_CHECKSIG",
		},
		{
			name:   "small ints",
			script: []byte{OP_1NEGATE, OP_1, OP_16},
			want:   "-1 OP_1 OP_16",
		},
		{
			name:    "short push",
			script:  []byte{0x05, 0x01},
			wantErr: true,
		},
		{
			name:    "short pushdata2",
			script:  []byte{OP_PUSHDATA2, 0x01},
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := DisasmString(test.script)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
