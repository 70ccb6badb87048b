// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/PawCoin/PawCoinMN/types/chaincfg"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatCSV   = "csv"
)

type paramsSummary struct {
	Name              string            `yaml:"name" csv:"name"`
	Magic             string            `yaml:"magic" csv:"magic"`
	DefaultPort       string            `yaml:"default_port" csv:"default_port"`
	RPCPort           string            `yaml:"rpc_port" csv:"rpc_port"`
	DataDirSuffix     string            `yaml:"data_dir_suffix" csv:"data_dir_suffix"`
	PowLimitBits      string            `yaml:"pow_limit_bits" csv:"pow_limit_bits"`
	LastPoWHeight     int32             `yaml:"last_pow_height" csv:"last_pow_height"`
	GenesisHash       string            `yaml:"genesis_hash" csv:"genesis_hash"`
	GenesisMerkleRoot string            `yaml:"genesis_merkle_root" csv:"genesis_merkle_root"`
	GenesisTime       string            `yaml:"genesis_time" csv:"genesis_time"`
	AlertPubKey       string            `yaml:"alert_pub_key,omitempty" csv:"alert_pub_key"`
	DNSSeeds          []string          `yaml:"dns_seeds" csv:"-"`
	Base58Prefixes    map[string]string `yaml:"base58_prefixes" csv:"-"`
}

func newParamsSummary(params *chaincfg.Params) paramsSummary {
	magic := params.MessageStart()
	summary := paramsSummary{
		Name:              params.Name,
		Magic:             hex.EncodeToString(magic[:]),
		DefaultPort:       params.DefaultPort,
		RPCPort:           params.RPCPort,
		DataDirSuffix:     params.DataDirSuffix,
		PowLimitBits:      fmt.Sprintf("0x%08x", params.PowLimitBits),
		LastPoWHeight:     params.LastPoWHeight,
		GenesisHash:       params.GenesisHash.String(),
		GenesisMerkleRoot: params.GenesisMerkleRoot.String(),
		GenesisTime:       params.GenesisBlock.Header.Timestamp.UTC().Format(time.RFC3339),
		AlertPubKey:       hex.EncodeToString(params.AlertPubKey),
		Base58Prefixes:    make(map[string]string, len(chaincfg.AddressKinds)),
	}

	for _, seed := range params.DNSSeeds {
		summary.DNSSeeds = append(summary.DNSSeeds, seed.String())
	}
	for kind, prefix := range params.Base58Prefixes() {
		summary.Base58Prefixes[kind.String()] = hex.EncodeToString(prefix)
	}
	return summary
}

func writeSummary(w io.Writer, format string, summary paramsSummary) error {
	switch format {
	case formatYAML:
		return encodeYAML(w, summary)
	case formatCSV:
		return errors.Wrap(gocsv.Marshal([]paramsSummary{summary}, w), "unable to encode csv")
	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		rows := [][2]string{
			{"Name", summary.Name},
			{"Magic", summary.Magic},
			{"DefaultPort", summary.DefaultPort},
			{"RPCPort", summary.RPCPort},
			{"DataDirSuffix", summary.DataDirSuffix},
			{"PowLimitBits", summary.PowLimitBits},
			{"LastPoWHeight", strconv.Itoa(int(summary.LastPoWHeight))},
			{"GenesisHash", summary.GenesisHash},
			{"GenesisMerkleRoot", summary.GenesisMerkleRoot},
			{"GenesisTime", summary.GenesisTime},
		}
		for _, kind := range chaincfg.AddressKinds {
			rows = append(rows, [2]string{kind.String(), summary.Base58Prefixes[kind.String()]})
		}
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
		}
		return tw.Flush()
	}
	return errors.Errorf("unknown format %q", format)
}

type seedRow struct {
	Kind     string `yaml:"kind" csv:"kind"`
	Name     string `yaml:"name" csv:"name"`
	Address  string `yaml:"address" csv:"address"`
	LastSeen string `yaml:"last_seen,omitempty" csv:"last_seen"`
}

func seedRows(params *chaincfg.Params) []seedRow {
	rows := make([]seedRow, 0, len(params.DNSSeeds)+len(params.FixedSeeds))
	for _, seed := range params.DNSSeeds {
		rows = append(rows, seedRow{Kind: "dns", Name: seed.Name, Address: seed.Host})
	}
	for i, addr := range params.FixedSeeds {
		rows = append(rows, seedRow{
			Kind:     "fixed",
			Name:     "fixed" + strconv.Itoa(i),
			Address:  addr.String(),
			LastSeen: addr.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

func writeSeeds(w io.Writer, format string, rows []seedRow) error {
	switch format {
	case formatYAML:
		return encodeYAML(w, rows)
	case formatCSV:
		return errors.Wrap(gocsv.Marshal(rows, w), "unable to encode csv")
	case formatTable:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KIND\tNAME\tADDRESS\tLAST SEEN")
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Kind, row.Name, row.Address, row.LastSeen)
		}
		return tw.Flush()
	}
	return errors.Errorf("unknown format %q", format)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "unable to encode yaml")
	}
	return errors.Wrap(enc.Close(), "unable to encode yaml")
}
