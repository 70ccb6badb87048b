// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The PawCoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/PawCoin/PawCoinMN/corelog"
	"github.com/PawCoin/PawCoinMN/types/chaincfg"
	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "pawcoind.toml"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"

	// DataDirEnv overrides the default home directory.
	DataDirEnv = "PAWCOIN_DATA_DIR"
)

var defaultHomeDir = btcutil.AppDataDir("pawcoind", false)

// ErrShowSubsystems is returned by LoadConfig for --debuglevel=show.
var ErrShowSubsystems = errors.New("show supported log subsystems")

// Config defines the configuration options for pawcoind.
//
// See LoadConfig for details on the configuration load process.
type Config struct {
	ShowVersion bool   `yaml:"-" toml:"-" short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `yaml:"-" toml:"-" short:"C" long:"configfile" description:"Path to configuration file (.toml or .yaml)"`
	DataDir     string `yaml:"data_dir" toml:"data_dir" short:"b" long:"datadir" description:"Directory to store data"`
	LogDir      string `yaml:"log_dir" toml:"log_dir" long:"logdir" description:"Directory to log output"`
	TestNet     bool   `yaml:"testnet" toml:"testnet" long:"testnet" description:"Use the test network"`
	DebugLevel  string `yaml:"debug_level" toml:"debug_level" short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	MetricsAddr string `yaml:"metrics_addr" toml:"metrics_addr" long:"metricsaddr" description:"Address to serve Prometheus metrics on, empty to disable"`

	LogConfig corelog.Config `yaml:"log_config" toml:"log_config" no-flag:"true"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string, logConfig corelog.Config) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		level, err := corelog.ParseLevel(debugLevel)
		if err != nil {
			return errors.Wrap(err, "the specified debug level is invalid")
		}

		setLogLevels(level, logConfig)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	levels := make(map[string]zerolog.Level)
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return errors.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%v]", logLevelPair)
		}

		subsysID, logLevel := fields[0], fields[1]
		if !hasUnit(subsysID) {
			return errors.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, SupportedSubsystems())
		}

		level, err := corelog.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrapf(err, "the specified debug level for %s is invalid", subsysID)
		}
		levels[subsysID] = level
	}

	// Units left out of the list keep the default level.
	setLogLevels(corelog.DefaultLevel, logConfig)
	for subsysID, level := range levels {
		setLogLevel(subsysID, level, logConfig)
	}
	return nil
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// NetDataDir namespaces base by the network's data directory suffix. The main
// network has an empty suffix and keeps the base directory itself.
func NetDataDir(base string, params *chaincfg.Params) string {
	if params.DataDirSuffix == "" {
		return base
	}
	return filepath.Join(base, params.DataDirSuffix)
}

func defaultConfig() Config {
	dataDir := os.Getenv(DataDirEnv)
	if dataDir == "" {
		dataDir = defaultHomeDir
	}

	return Config{
		ConfigFile: filepath.Join(dataDir, defaultConfigFilename),
		DataDir:    dataDir,
		DebugLevel: defaultLogLevel,
		LogConfig:  corelog.Config{}.Default(),
	}
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// The above results in pawcoind functioning properly without any config
// settings while still allowing the user to override settings with config
// files and command line options.  Command line options always take precedence.
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := defaultConfig()
	defaultConfigFile := cfg.ConfigFile

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	switch {
	case fileExists(configFile):
		if err := decodeConfigFile(configFile, &cfg); err != nil {
			return nil, nil, err
		}
	case preCfg.ConfigFile != defaultConfigFile:
		return nil, nil, errors.Errorf("config file %s does not exist", configFile)
	}
	cfg.ConfigFile = configFile

	// Parse command line options again to ensure they take precedence.
	parser := flags.NewParser(&cfg, flags.Default&^flags.PrintErrors)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		return nil, nil, ErrShowSubsystems
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.DataDir, defaultLogDirname)
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	if cfg.LogConfig.Directory == "" {
		cfg.LogConfig.Directory = cfg.LogDir
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel, cfg.LogConfig); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// decodeConfigFile overwrites cfg with the options of the file. The format is
// picked by extension.
func decodeConfigFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "unable to open config file")
	}
	defer file.Close()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(cfg)
	case ".toml":
		err = toml.NewDecoder(file).Decode(cfg)
	default:
		return errors.Errorf("invalid config file extension %q, must be .toml or .yaml",
			filepath.Ext(path))
	}

	return errors.Wrapf(err, "unable to parse config file %s", path)
}

// EnsureNetDirs namespaces the data and log directories by the selected
// network, creates them and reopens the unit loggers so file logging lands in
// the network's log directory.
func (cfg *Config) EnsureNetDirs(params *chaincfg.Params) error {
	if cfg.LogConfig.Directory == cfg.LogDir {
		cfg.LogConfig.Directory = NetDataDir(cfg.LogDir, params)
	}
	cfg.DataDir = NetDataDir(cfg.DataDir, params)
	cfg.LogDir = NetDataDir(cfg.LogDir, params)

	for _, dir := range []string{cfg.DataDir, cfg.LogDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrapf(err, "unable to create directory %s", dir)
		}
	}

	return parseAndSetDebugLevels(cfg.DebugLevel, cfg.LogConfig)
}
