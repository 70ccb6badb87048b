// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"sort"
	"sync"

	"github.com/PawCoin/PawCoinMN/corelog"
	"github.com/rs/zerolog"
)

// Log units. Every subsystem logs through the logger of its unit.
const (
	LogUnitPAWD = "PAWD"
	LogUnitCHCF = "CHCF"
	LogUnitMETR = "METR"
)

var (
	unitLogsMtx sync.RWMutex

	// unitLogs maps each unit identifier to its logger. Loggers stay
	// disabled until LoadConfig applies the configured levels.
	unitLogs = map[string]zerolog.Logger{
		LogUnitPAWD: corelog.Disabled,
		LogUnitCHCF: corelog.Disabled,
		LogUnitMETR: corelog.Disabled,
	}
)

// UnitLogger returns the logger of the unit or a disabled logger for an
// unknown unit.
func UnitLogger(unit string) zerolog.Logger {
	unitLogsMtx.RLock()
	defer unitLogsMtx.RUnlock()

	logger, ok := unitLogs[unit]
	if !ok {
		return corelog.Disabled
	}
	return logger
}

func hasUnit(unit string) bool {
	unitLogsMtx.RLock()
	defer unitLogsMtx.RUnlock()

	_, ok := unitLogs[unit]
	return ok
}

// SupportedSubsystems returns a sorted slice of the supported log units.
func SupportedSubsystems() []string {
	unitLogsMtx.RLock()
	defer unitLogsMtx.RUnlock()

	subsystems := make([]string, 0, len(unitLogs))
	for subsysID := range unitLogs {
		subsystems = append(subsystems, subsysID)
	}

	sort.Strings(subsystems)
	return subsystems
}

// setLogLevel sets the logging level for provided subsystem. Invalid
// subsystems are ignored.
func setLogLevel(subsystemID string, level zerolog.Level, logConfig corelog.Config) {
	unitLogsMtx.Lock()
	defer unitLogsMtx.Unlock()

	if _, ok := unitLogs[subsystemID]; !ok {
		return
	}
	unitLogs[subsystemID] = corelog.New(subsystemID, level, logConfig)
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(level zerolog.Level, logConfig corelog.Config) {
	for _, subsystemID := range SupportedSubsystems() {
		setLogLevel(subsystemID, level, logConfig)
	}
}
