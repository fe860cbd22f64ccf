// Package config loads application configuration from an optional
// config.yaml plus TIMBER_* environment variables, and initializes the
// global logger.
package config

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data     DataConfig     `yaml:"data" mapstructure:"data"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the source extracts and the output directory. File
// names default to the vendor deliverable names and rarely change;
// directories are the knobs analysts actually turn.
type DataConfig struct {
	RawDir       string `yaml:"raw_dir" mapstructure:"raw_dir"`
	ProcessedDir string `yaml:"processed_dir" mapstructure:"processed_dir"`

	SouthPrices     string `yaml:"south_prices" mapstructure:"south_prices"`
	GLPrices        string `yaml:"gl_prices" mapstructure:"gl_prices"`
	MerchBiomass    string `yaml:"merch_biomass" mapstructure:"merch_biomass"`
	PremerchBiomass string `yaml:"premerch_biomass" mapstructure:"premerch_biomass"`
	TMSCounties     string `yaml:"tms_counties" mapstructure:"tms_counties"`
	TMNCounties     string `yaml:"tmn_counties" mapstructure:"tmn_counties"`
	FIAUnits        string `yaml:"fia_units" mapstructure:"fia_units"`
	Harvest         string `yaml:"harvest" mapstructure:"harvest"`
}

// PipelineConfig holds the valuation assumptions.
type PipelineConfig struct {
	DiscountRate    float64 `yaml:"discount_rate" mapstructure:"discount_rate"`
	MerchantableAge float64 `yaml:"merchantable_age" mapstructure:"merchantable_age"`
	BucketConfig    string  `yaml:"bucket_config" mapstructure:"bucket_config"`
}

// StoreConfig configures the run-history database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures the global zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml (optional) and the
// environment with prefix TIMBER.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("TIMBER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.raw_dir", "data/raw")
	v.SetDefault("data.processed_dir", "data/processed")
	v.SetDefault("data.south_prices", "prices_south.csv")
	v.SetDefault("data.gl_prices", "TMN_Price_Series.xlsx")
	v.SetDefault("data.merch_biomass", "Merch_Bio.xlsx")
	v.SetDefault("data.premerch_biomass", "Premerch_Bio.xlsx")
	v.SetDefault("data.tms_counties", "tmsCounties.csv")
	v.SetDefault("data.tmn_counties", "tmnCounties.csv")
	v.SetDefault("data.fia_units", "fiaUnits.csv")
	v.SetDefault("data.harvest", "harvest_removals.csv")
	v.SetDefault("pipeline.discount_rate", 0.05)
	v.SetDefault("pipeline.merchantable_age", 15.0)
	v.SetDefault("store.path", "data/timber.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// RawPath returns the full path of a raw source file.
func (c DataConfig) RawPath(name string) string {
	return filepath.Join(c.RawDir, name)
}

// ProcessedPath returns the full path of an output file.
func (c DataConfig) ProcessedPath(name string) string {
	return filepath.Join(c.ProcessedDir, name)
}

// InitLogger builds the global zap logger from LogConfig.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
