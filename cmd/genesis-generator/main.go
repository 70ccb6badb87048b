// Copyright (c) 2021 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/big"
	"os"
	"runtime"
	"time"

	"github.com/PawCoin/PawCoinMN/types/chaincfg"
	"github.com/PawCoin/PawCoinMN/types/chainhash"
	"github.com/PawCoin/PawCoinMN/types/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type options struct {
	Message string `short:"m" long:"message" description:"Coinbase message" required:"true"`
	Time    int64  `long:"time" description:"Genesis timestamp, unix seconds (default: now)"`
	Bits    uint32 `long:"bits" description:"Compact difficulty target" default:"504365040"`
	Extra   int64  `long:"extra" description:"Number pushed after the zero in the coinbase script" default:"42"`
	Version int32  `long:"version" description:"Block version" default:"1"`
	Nonce   uint32 `long:"nonce" description:"First nonce to try"`
	TestNet bool   `long:"testnet" description:"Check against the test network proof of work limit"`
	Workers int    `long:"workers" description:"Number of search goroutines (default: number of CPUs)"`
	Verbose bool   `short:"v" long:"verbose" description:"Dump the resulting block"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(context.Background(), os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, opts options) error {
	if opts.Time == 0 {
		opts.Time = time.Now().Unix()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	params := chaincfg.MainNetParams()
	if opts.TestNet {
		params = chaincfg.TestNetParams()
	}

	genesisOpts := chaincfg.GenesisOpts{
		Message:   opts.Message,
		Extra:     opts.Extra,
		Version:   opts.Version,
		Timestamp: time.Unix(opts.Time, 0),
		Bits:      opts.Bits,
		Nonce:     opts.Nonce,
	}

	block, err := chaincfg.BuildGenesisBlock(genesisOpts)
	if err != nil {
		return err
	}

	started := time.Now()
	nonce, hash, err := searchNonce(ctx, block.Header, params.PowLimit, opts.Nonce, math.MaxUint32, opts.Workers)
	if err != nil {
		return err
	}
	block.Header.Nonce = nonce
	genesisOpts.Nonce = nonce

	fmt.Fprintf(out, "// found in %s\n", time.Since(started).Round(time.Millisecond))
	printGoLiteral(out, genesisOpts, hash, block.Header.MerkleRoot)

	if opts.Verbose {
		spew.Fdump(out, block)
	}
	return nil
}

// searchNonce splits [start, end] between workers and returns the first nonce
// whose header hash satisfies the header bits and powLimit.
func searchNonce(ctx context.Context, header wire.BlockHeader, powLimit *big.Int,
	start, end uint32, workers int) (uint32, chainhash.Hash, error) {
	if err := checkTarget(header.Bits, powLimit); err != nil {
		return 0, chainhash.Hash{}, err
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		nonce uint32
		hash  chainhash.Hash
	}
	found := make(chan result, workers)

	g, gctx := errgroup.WithContext(searchCtx)
	for w := 0; w < workers; w++ {
		first := uint64(start) + uint64(w)
		g.Go(func() error {
			h := header
			for n, i := first, 0; n <= uint64(end); n, i = n+uint64(workers), i+1 {
				if i%4096 == 0 {
					select {
					case <-gctx.Done():
						return nil
					default:
					}
				}

				h.Nonce = uint32(n)
				hash := h.BlockHash()
				if chaincfg.CheckProofOfWork(&hash, h.Bits, powLimit) == nil {
					found <- result{nonce: h.Nonce, hash: hash}
					cancel()
					return nil
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, chainhash.Hash{}, err
	}
	close(found)

	best, ok := <-found
	if !ok {
		if err := ctx.Err(); err != nil {
			return 0, chainhash.Hash{}, errors.Wrap(err, "nonce search stopped")
		}
		return 0, chainhash.Hash{}, errors.Errorf("no nonce in [%d, %d] satisfies bits %08x", start, end, header.Bits)
	}
	for r := range found {
		if r.nonce < best.nonce {
			best = r
		}
	}
	return best.nonce, best.hash, nil
}

func checkTarget(bits uint32, powLimit *big.Int) error {
	target := chaincfg.CompactToBig(bits)
	if target.Sign() <= 0 || target.Cmp(powLimit) > 0 {
		return errors.Errorf("bits %08x outside of (0, %064x]", bits, powLimit)
	}
	return nil
}

func printGoLiteral(w io.Writer, opts chaincfg.GenesisOpts, hash, merkleRoot chainhash.Hash) {
	fmt.Fprintf(w, "var genesisOpts = chaincfg.GenesisOpts{\n")
	fmt.Fprintf(w, "\tMessage:   %q,\n", opts.Message)
	fmt.Fprintf(w, "\tExtra:     %d,\n", opts.Extra)
	fmt.Fprintf(w, "\tVersion:   %d,\n", opts.Version)
	fmt.Fprintf(w, "\tTimestamp: time.Unix(%d, 0),\n", opts.Timestamp.Unix())
	fmt.Fprintf(w, "\tBits:      0x%08x,\n", opts.Bits)
	fmt.Fprintf(w, "\tNonce:     %d,\n", opts.Nonce)
	fmt.Fprintf(w, "}\n\n")

	printHashLiteral(w, "genesisHash", hash)
	printHashLiteral(w, "genesisMerkleRoot", merkleRoot)
}

func printHashLiteral(w io.Writer, name string, hash chainhash.Hash) {
	fmt.Fprintf(w, "// %s\n", hash)
	fmt.Fprintf(w, "var %s = chainhash.Hash([chainhash.HashSize]byte{\n", name)
	for i := 0; i < chainhash.HashSize; i += 8 {
		fmt.Fprintf(w, "\t0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x, 0x%02x,\n",
			hash[i], hash[i+1], hash[i+2], hash[i+3], hash[i+4], hash[i+5], hash[i+6], hash[i+7])
	}
	fmt.Fprintf(w, "})\n\n")
}
