// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/PawCoin/PawCoinMN/config"
	"github.com/PawCoin/PawCoinMN/node/metrics"
	"github.com/PawCoin/PawCoinMN/types/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	appVersion      = "0.1.0"
	metricsRoute    = "/metrics"
	metricsInterval = 15 * time.Second
)

func main() {
	// Work around defer not working after os.Exit()
	if err := pawcoindMain(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
}

// pawcoindMain is the real main function for pawcoind. It loads the
// configuration, selects the chain parameters and serves metrics until an
// interrupt signal arrives.
func pawcoindMain(args []string) error {
	cfg, _, err := config.LoadConfig(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Println(err)
			return nil
		}
		if errors.Is(err, config.ErrShowSubsystems) {
			fmt.Println("Supported subsystems", config.SupportedSubsystems())
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		fmt.Println("pawcoind version", appVersion)
		return nil
	}

	chains, params, err := selectChain(cfg)
	if err != nil {
		return err
	}

	log := config.UnitLogger(config.LogUnitPAWD)
	defer log.Info().Msg("Shutdown complete")

	log.Info().Msgf("Version %s", appVersion)
	log.Info().
		Str("data_dir", cfg.DataDir).
		Str("log_dir", cfg.LogDir).
		Int32("last_pow_height", params.LastPoWHeight).
		Int("fixed_seeds", len(params.FixedSeeds)).
		Msg("Node configured")

	ctx := withInterrupt(context.Background(), log.With().Str("ctx", "interruptListener").Logger())
	g, ctx := errgroup.WithContext(ctx)

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector())

	metricsLog := config.UnitLogger(config.LogUnitMETR)
	manager := metrics.NewManager(ctx, metricsInterval, reg, metricsLog)
	manager.Add(
		metrics.ParamsMetrics(chains, reg, metricsLog),
		metrics.NodeMetrics(cfg.DataDir, cfg.LogDir, reg, metricsLog),
	)

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return manager.Listen(ctx, metricsRoute, cfg.MetricsAddr)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("node stopped with error")
		return err
	}
	return nil
}

// selectChain namespaces the node directories for the configured network and
// then selects its parameters, so the selection is logged by the loggers of
// that network.
func selectChain(cfg *config.Config) (*chaincfg.Registry, *chaincfg.Params, error) {
	netParams, err := chaincfg.ParamsFor(chaincfg.NetworkFromFlags(cfg.TestNet))
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.EnsureNetDirs(netParams); err != nil {
		return nil, nil, err
	}

	chains := chaincfg.NewRegistry(config.UnitLogger(config.LogUnitCHCF))
	return chains, chains.SelectFromFlags(cfg.TestNet), nil
}
