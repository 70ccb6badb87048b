// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/PawCoin/PawCoinMN/types/wire"
)

// oneWeek is the width of the window seed "last seen" times are drawn from.
const oneWeek = 7 * 24 * time.Hour

// SeedSpec6 is a compiled-in bootstrap peer: a 16-byte IPv6 address (IPv4
// addresses are IPv4-mapped) and a port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// DecodeSeeds converts seed records into network addresses, one per record
// and in order.  Each address advertises a full node and gets a random "last
// seen" time between one and two weeks before now, so that addresses learned
// from live peers, which are newer, take precedence.
func DecodeSeeds(specs []SeedSpec6, now time.Time, rnd *rand.Rand) []*wire.NetAddress {
	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		age := oneWeek + time.Duration(rnd.Int63n(int64(oneWeek/time.Second)))*time.Second
		addrs = append(addrs, wire.NewNetAddressTimestamp(now.Add(-age), wire.SFNodeNetwork, ip, spec.Port))
	}
	return addrs
}

// decodeSeedsNow decodes specs against the wall clock.
func decodeSeedsNow(specs []SeedSpec6) []*wire.NetAddress {
	return DecodeSeeds(specs, time.Now(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

// mainNetSeeds are the fixed bootstrap peers of the main network.
var mainNetSeeds = []SeedSpec6{
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x6b, 0xac, 0xcd, 0xe8}, Port: 32390}, // 107.172.205.232
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x17, 0x5f, 0xd6, 0x30}, Port: 32390}, // 23.95.214.48
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xc1, 0x25, 0x98, 0x63}, Port: 32390}, // 193.37.152.99
}

// testNetSeeds are the fixed bootstrap peers of the test network.
var testNetSeeds = []SeedSpec6{
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x6b, 0xac, 0xcd, 0xe8}, Port: 31979}, // 107.172.205.232
	{Addr: [16]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x17, 0x5f, 0xd6, 0x30}, Port: 31979}, // 23.95.214.48
}
