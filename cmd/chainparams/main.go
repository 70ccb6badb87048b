// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/PawCoin/PawCoinMN/corelog"
	"github.com/PawCoin/PawCoinMN/txscript"
	"github.com/PawCoin/PawCoinMN/types/chaincfg"
	"github.com/PawCoin/PawCoinMN/types/wire"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const (
	flagTestNet = "testnet"
	flagFormat  = "format"
	flagHex     = "hex"
	flagAddrMsg = "addr-msg"
	flagVerbose = "verbose"
)

func main() {
	app := &App{}
	cliApp := &cli.App{
		Name:     "chainparams",
		Usage:    "inspect PawCoin network parameters",
		Flags:    app.InitFlags(),
		Before:   app.InitRegistry,
		Commands: app.getCommands(),
	}

	err := cliApp.Run(os.Args)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type App struct {
	chains *chaincfg.Registry
}

func (app *App) InitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    flagTestNet,
			Aliases: []string{"t"},
			Usage:   "use the test network parameters",
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Usage:   "output format: table, yaml or csv",
			Value:   formatTable,
		},
		&cli.BoolFlag{
			Name:    flagVerbose,
			Aliases: []string{"v"},
			Usage:   "log parameter selection",
		},
	}
}

func (app *App) InitRegistry(c *cli.Context) error {
	level := zerolog.WarnLevel
	if c.Bool(flagVerbose) {
		level = zerolog.InfoLevel
	}

	app.chains = chaincfg.NewRegistry(corelog.New("CHCF", level, corelog.Config{}.Default()))
	app.chains.SelectFromFlags(c.Bool(flagTestNet))
	return nil
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:   "show",
			Usage:  "print the selected parameter set",
			Action: app.showCmd,
		},
		{
			Name:  "genesis",
			Usage: "dump the genesis block of the selected network",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  flagHex,
					Usage: "print the serialized block as hex instead of a dump",
				},
			},
			Action: app.genesisCmd,
		},
		{
			Name:  "seeds",
			Usage: "list DNS and fixed seeds of the selected network",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  flagAddrMsg,
					Usage: "print the fixed seeds as a hex-encoded addr message",
				},
			},
			Action: app.seedsCmd,
		},
	}
}

func (app *App) showCmd(c *cli.Context) error {
	summary := newParamsSummary(app.chains.Current())
	if err := writeSummary(c.App.Writer, c.String(flagFormat), summary); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func (app *App) genesisCmd(c *cli.Context) error {
	params := app.chains.Current()
	block := params.GenesisBlock

	if c.Bool(flagHex) {
		var buf bytes.Buffer
		if err := block.Serialize(&buf); err != nil {
			return cli.NewExitError(errors.Wrap(err, "unable to serialize genesis block"), 1)
		}
		fmt.Fprintln(c.App.Writer, hex.EncodeToString(buf.Bytes()))
		return nil
	}

	fmt.Fprintf(c.App.Writer, "Network: %s\nHash: %s\nMerkleRoot: %s\n",
		params.Name, params.GenesisHash, params.GenesisMerkleRoot)

	for _, tx := range block.Transactions {
		for _, in := range tx.TxIn {
			disasm, err := txscript.DisasmString(in.SignatureScript)
			if err != nil {
				return cli.NewExitError(errors.Wrap(err, "unable to disassemble coinbase script"), 1)
			}
			fmt.Fprintf(c.App.Writer, "Coinbase: %s\n", disasm)
		}
	}

	spew.Fdump(c.App.Writer, block)
	return nil
}

func (app *App) seedsCmd(c *cli.Context) error {
	params := app.chains.Current()

	if c.Bool(flagAddrMsg) {
		encoded, err := encodeAddrMsg(params.FixedSeeds)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		fmt.Fprintln(c.App.Writer, encoded)
		return nil
	}

	if err := writeSeeds(c.App.Writer, c.String(flagFormat), seedRows(params)); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

// encodeAddrMsg packs the addresses into an addr message body.
func encodeAddrMsg(addrs []*wire.NetAddress) (string, error) {
	msg := wire.NewMsgAddr()
	if err := msg.AddAddresses(addrs...); err != nil {
		return "", errors.Wrap(err, "unable to build addr message")
	}

	var buf bytes.Buffer
	if err := msg.Encode(&buf); err != nil {
		return "", errors.Wrap(err, "unable to encode addr message")
	}
	return hex.EncodeToString(buf.Bytes()), nil
}
