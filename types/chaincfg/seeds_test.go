// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/PawCoin/PawCoinMN/types/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSeeds(t *testing.T) {
	now := time.Unix(1700000000, 500)

	for seed := int64(0); seed < 20; seed++ {
		addrs := DecodeSeeds(mainNetSeeds, now, rand.New(rand.NewSource(seed)))
		require.Len(t, addrs, len(mainNetSeeds))

		for i, addr := range addrs {
			assert.True(t, addr.Timestamp.After(now.Add(-2*oneWeek)), "seed %d addr %d too old", seed, i)
			assert.False(t, addr.Timestamp.After(now.Add(-oneWeek)), "seed %d addr %d too new", seed, i)
			assert.Equal(t, addr.Timestamp, addr.Timestamp.Truncate(time.Second))
			assert.Equal(t, wire.SFNodeNetwork, addr.Services)
			assert.Equal(t, mainNetSeeds[i].Port, addr.Port)
		}
	}
}

func TestDecodeSeedsAddresses(t *testing.T) {
	addrs := DecodeSeeds(mainNetSeeds, time.Now(), rand.New(rand.NewSource(1)))

	want := []string{"107.172.205.232", "23.95.214.48", "193.37.152.99"}
	for i, addr := range addrs {
		assert.True(t, addr.IP.Equal(net.ParseIP(want[i])), "addr %d is %s", i, addr.IP)
		assert.NotNil(t, addr.IP.To4(), "IPv4-mapped seeds stay IPv4")
	}

	v6 := SeedSpec6{Addr: [16]byte{0x20, 0x01, 0x0d, 0xb8, 15: 0x01}, Port: 1}
	addrs = DecodeSeeds([]SeedSpec6{v6}, time.Now(), rand.New(rand.NewSource(1)))
	require.Len(t, addrs, 1)
	assert.True(t, addrs[0].IP.Equal(net.ParseIP("2001:db8::1")))
	assert.Nil(t, addrs[0].IP.To4())
}

func TestDecodeSeedsEmpty(t *testing.T) {
	addrs := DecodeSeeds(nil, time.Now(), rand.New(rand.NewSource(1)))
	assert.NotNil(t, addrs)
	assert.Empty(t, addrs)
}

func TestDecodeSeedsDoesNotShareBuffers(t *testing.T) {
	specs := []SeedSpec6{mainNetSeeds[0]}
	addrs := DecodeSeeds(specs, time.Now(), rand.New(rand.NewSource(1)))

	specs[0].Addr[15] = 0
	assert.Equal(t, "107.172.205.232", addrs[0].IP.String())
}

func TestFixedSeedsAgreeWithDNSSeeds(t *testing.T) {
	params := MainNetParams()
	require.Len(t, params.FixedSeeds, len(params.DNSSeeds))

	for i, addr := range params.FixedSeeds {
		assert.Equal(t, params.DNSSeeds[i].Host, addr.IP.String())
		assert.Equal(t, params.DefaultPort, strconv.Itoa(int(addr.Port)))
	}

	for _, addr := range TestNetParams().FixedSeeds {
		assert.Equal(t, uint16(31979), addr.Port)
	}
}
