// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type nodeMetrics struct {
	gauges  *gaugeSet
	dataDir string
	logDir  string
	logger  zerolog.Logger
}

// NodeMetrics reports the size of the node's data and log directories.
func NodeMetrics(dataDir, logDir string, registerer prometheus.Registerer, logger zerolog.Logger) IMetric {
	return &nodeMetrics{
		gauges:  newGaugeSet(registerer, logger),
		dataDir: dataDir,
		logDir:  logDir,
		logger:  logger,
	}
}

func (s *nodeMetrics) Read() {
	dSize, err := dirSize(s.dataDir)
	if err != nil {
		s.logger.Error().Err(err).Msg("can't calculate data dir size")
		return
	}
	s.gauges.updateGauge(prometheus.BuildFQName("node", "status", "data_size"), "Size of the data directory in bytes", float64(dSize))

	logSize, err := dirSize(s.logDir)
	if err != nil && !os.IsNotExist(err) {
		s.logger.Error().Err(err).Msg("can't calculate log dir size")
	}
	s.gauges.updateGauge(prometheus.BuildFQName("node", "status", "log_size"), "Size of the log directory in bytes", float64(logSize))
}

func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return err
	})
	return size, err
}
