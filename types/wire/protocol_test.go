// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestPawNetStringer tests the stringized output for network magic values.
func TestPawNetStringer(t *testing.T) {
	tests := []struct {
		in   PawNet
		want string
	}{
		{MainNet, "MainNet"},
		{TestNet, "MainNet"},
		{0xffffffff, "Unknown PawNet (4294967295)"},
	}

	for i, test := range tests {
		assert.Equal(t, test.want, test.in.String(), "String #%d", i)
	}

	assert.Equal(t, [4]byte{0x4c, 0x17, 0xfe, 0xe9}, MainNet.Bytes())
}

// TestServiceFlagStringer tests the stringized output for service flag types.
func TestServiceFlagStringer(t *testing.T) {
	tests := []struct {
		in   ServiceFlag
		want string
	}{
		{0, "0x0"},
		{SFNodeNetwork, "SFNodeNetwork"},
		{SFNodeGetUTXO, "SFNodeGetUTXO"},
		{SFNodeBloom, "SFNodeBloom"},
		{SFNodeNetwork | SFNodeBloom, "SFNodeNetwork|SFNodeBloom"},
		{0xffffffff, "SFNodeNetwork|SFNodeGetUTXO|SFNodeBloom|0xfffffff8"},
	}

	for i, test := range tests {
		assert.Equal(t, test.want, test.in.String(), "String #%d", i)
	}
}

func TestNetAddress(t *testing.T) {
	ip := net.ParseIP("127.0.0.1")
	na := NewNetAddressTimestamp(time.Unix(0x495fab29, 999), 0, ip, 32390)

	assert.Equal(t, time.Unix(0x495fab29, 0), na.Timestamp)
	assert.False(t, na.HasService(SFNodeNetwork))

	na.AddService(SFNodeNetwork)
	assert.True(t, na.HasService(SFNodeNetwork))
	assert.Equal(t, "127.0.0.1:32390", na.String())

	na = NewNetAddressIPPort(net.ParseIP("::1"), 31979, SFNodeBloom)
	assert.Equal(t, "[::1]:31979", na.String())
	assert.True(t, na.HasService(SFNodeBloom))
}
