// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHashFromStr(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{
			in:   "00000db25ffc0da6d4894dd1f597126a1c1b07de9f878cac4043ceb8fe9e0def",
			want: "00000db25ffc0da6d4894dd1f597126a1c1b07de9f878cac4043ceb8fe9e0def",
		},
		{
			in:   "1",
			want: "0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			in:  "01234567890123456789012345678901234567890123456789012345678912345",
			err: ErrHashStrSize,
		},
	}

	for i, test := range tests {
		got, err := NewHashFromStr(test.in)
		if test.err != nil {
			assert.Equal(t, test.err, err, "case %d", i)
			continue
		}
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, test.want, got.String(), "case %d", i)
	}

	_, err := NewHashFromStr("banana")
	assert.Error(t, err)
}

func TestHashBytesRoundTrip(t *testing.T) {
	h, err := NewHashFromStr("3b4541236757005b3f543e502d34e325636e11244293b3dcd6e3c2c2e8377ac2")
	require.NoError(t, err)

	// Little-endian storage: the last hex byte is stored first.
	assert.Equal(t, byte(0xc2), h[0])
	assert.Equal(t, byte(0x3b), h[HashSize-1])

	clone, err := NewHash(h.CloneBytes())
	require.NoError(t, err)
	assert.True(t, clone.IsEqual(h))
	assert.False(t, clone.IsZero())

	_, err = NewHash([]byte{1, 2, 3})
	assert.Error(t, err)

	var nilHash *Hash
	assert.True(t, nilHash.IsEqual(nil))
	assert.False(t, nilHash.IsEqual(h))
}

func TestDoubleHash(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "56944c5d3f98413ef45cf54545538103cc9f298e0575820ad3591376e2e0f65d"},
		{"abc", "58636c3ec08c12d55aedda056d602d5bcca72d8df6a69b519b72d32dc2428b4f"},
	}

	for _, test := range tests {
		h := DoubleHashH([]byte(test.in))
		assert.Equal(t, test.want, h.String(), "input %q", test.in)
		assert.Equal(t, h[:], DoubleHashB([]byte(test.in)))
	}

	single := HashH([]byte("abc"))
	assert.Equal(t, single[:], HashB([]byte("abc")))
}

func TestX11HashH(t *testing.T) {
	a := X11HashH([]byte("pawcoin"))
	b := X11HashH([]byte("pawcoin"))
	c := X11HashH([]byte("pawcoim"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, DoubleHashH([]byte("pawcoin")), a)
}
