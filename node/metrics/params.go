// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"strconv"

	"github.com/PawCoin/PawCoinMN/types/chaincfg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const namespace = "chainparams"

type paramsProvider interface {
	Current() *chaincfg.Params
}

type paramsMetrics struct {
	gauges   *gaugeSet
	provider paramsProvider
	logger   zerolog.Logger
}

// ParamsMetrics publishes the active parameter set of the provider as
// chainparams_<network>_* gauges.
func ParamsMetrics(provider paramsProvider, registerer prometheus.Registerer, logger zerolog.Logger) IMetric {
	logger = logger.With().Str("ctx", "metrics").Logger()
	return &paramsMetrics{
		gauges:   newGaugeSet(registerer, logger),
		provider: provider,
		logger:   logger,
	}
}

func (s *paramsMetrics) Read() {
	params := s.provider.Current()
	gauge := func(name, help string, value float64) {
		s.gauges.updateGauge(prometheus.BuildFQName(namespace, params.Name, name), help, value)
	}

	gauge("p2p_port", "Default P2P listen port", s.port(params.DefaultPort))
	gauge("rpc_port", "Default RPC listen port", s.port(params.RPCPort))
	gauge("last_pow_height", "Last block height mined by proof of work", float64(params.LastPoWHeight))
	gauge("pow_limit_bits", "Compact form of the proof of work limit", float64(params.PowLimitBits))
	gauge("genesis_time", "Genesis block timestamp", float64(params.GenesisBlock.Header.Timestamp.Unix()))
	gauge("dns_seeds", "Number of DNS seeds", float64(len(params.DNSSeeds)))
	gauge("fixed_seeds", "Number of fixed seed addresses", float64(len(params.FixedSeeds)))
}

func (s *paramsMetrics) port(port string) float64 {
	value, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		s.logger.Error().Err(err).Str("port", port).Msg("can't parse port")
		return 0
	}
	return float64(value)
}
