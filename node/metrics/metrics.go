// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// IMetric metric reader
type IMetric interface {
	Read()
}

// Manager periodically reads the added metrics and serves the registry they
// are published on.
type Manager struct {
	mtx      sync.Mutex
	metrics  []IMetric
	interval time.Duration
	gatherer prometheus.Gatherer
	logger   zerolog.Logger
}

// NewManager creates metric manager. The collector loop runs until ctx is
// done.
func NewManager(ctx context.Context, interval time.Duration, gatherer prometheus.Gatherer, logger zerolog.Logger) *Manager {
	m := &Manager{
		interval: interval,
		gatherer: gatherer,
		logger:   logger,
	}

	go m.collector(ctx)
	return m
}

// Add registers readers and reads them once so gauges exist before the
// first tick.
func (m *Manager) Add(metrics ...IMetric) {
	m.mtx.Lock()
	m.metrics = append(m.metrics, metrics...)
	m.mtx.Unlock()

	for _, metric := range metrics {
		metric.Read()
	}
}

func (m *Manager) collector(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.readAll()
		}
	}
}

func (m *Manager) readAll() {
	m.mtx.Lock()
	metrics := append([]IMetric(nil), m.metrics...)
	m.mtx.Unlock()

	for _, v := range metrics {
		v.Read()
	}
}

// Listen serves the gathered metrics on route until ctx is done.
func (m *Manager) Listen(ctx context.Context, route, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(route, promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		if err := srv.Close(); err != nil {
			m.logger.Error().Err(err).Msg("can't close metrics server")
		}
	}()

	m.logger.Info().Str("addr", addr).Str("route", route).Msg("Metrics server listening")
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return errors.Wrap(err, "metrics server failed")
}

// gaugeSet lazily creates and registers gauges by fully qualified name.
type gaugeSet struct {
	sync.Mutex
	metricsByName map[string]prometheus.Gauge
	registerer    prometheus.Registerer
	logger        zerolog.Logger
}

func newGaugeSet(registerer prometheus.Registerer, logger zerolog.Logger) *gaugeSet {
	return &gaugeSet{
		metricsByName: make(map[string]prometheus.Gauge),
		registerer:    registerer,
		logger:        logger,
	}
}

func (s *gaugeSet) updateGauge(name, help string, value float64) {
	s.Lock()
	defer s.Unlock()

	m, ok := s.metricsByName[name]
	if !ok {
		m = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		})
		if err := s.registerer.Register(m); err != nil {
			s.logger.Error().Err(err).Str("metric", name).Msg("can't register metric")
		}
		s.metricsByName[name] = m
	}
	m.Set(value)
}
