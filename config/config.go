package config

import (
	"math"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/bjstrat/chromosome"
	"github.com/domino14/bjstrat/dataloaders"
	"github.com/domino14/bjstrat/strategy"
)

const (
	ConfigDebug          = "debug"
	ConfigConfigFile     = "config"
	ConfigChromosomePath = "chromosome-path"
	ConfigEvolvedPath    = "evolved-path"
	ConfigBasicPath      = "basic-path"
	ConfigSamplePath     = "sample-path"
	ConfigThreshold      = "threshold"
	ConfigSeed           = "seed"
)

type Config struct {
	sync.Mutex
	viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigChromosomePath, dataloaders.MeanChromosomeFilename)
	c.SetDefault(ConfigEvolvedPath, dataloaders.EvolvedChromosomeFilename)
	c.SetDefault(ConfigBasicPath, "basic_strategy_chromosome.csv")
	c.SetDefault(ConfigSamplePath, "sampled_chromosome.csv")
	c.SetDefault(ConfigThreshold, chromosome.DefaultThreshold)
	c.SetDefault(ConfigSeed, "")
}

// Flags registers the command-line flags that override configuration
// values.
func Flags(fs *pflag.FlagSet) {
	fs.Bool(ConfigDebug, false, "enable debug logging")
	fs.String(ConfigConfigFile, "", "optional config file (yaml, toml or json)")
	fs.String(ConfigChromosomePath, dataloaders.MeanChromosomeFilename, "mean chromosome written by the optimizer")
	fs.String(ConfigEvolvedPath, dataloaders.EvolvedChromosomeFilename, "where the thresholded chromosome is written")
	fs.String(ConfigBasicPath, "basic_strategy_chromosome.csv", "where the basic strategy chromosome is written")
	fs.String(ConfigSamplePath, "sampled_chromosome.csv", "where a sampled strategy chromosome is written")
	fs.Float64(ConfigThreshold, chromosome.DefaultThreshold, "cutoff for turning mean values into decisions")
	fs.String(ConfigSeed, "", "32-byte hex seed for sampling; random if empty")
}

// Load binds the parsed flags, the environment and an optional config
// file. Flags take precedence over the environment, which takes
// precedence over the file.
func (c *Config) Load(fs *pflag.FlagSet) error {
	c.Lock()
	defer c.Unlock()
	c.SetEnvPrefix("bjstrat")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	if cfgFile := c.GetString(ConfigConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	a := c.GetFloat64(ConfigThreshold)
	if !(a > 0) || math.IsInf(a, 0) {
		return strategy.ErrInvalidThreshold
	}
	return nil
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
