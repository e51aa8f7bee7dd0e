// Package config loads the demo command's configuration.
//
// Values are resolved in increasing priority: built-in defaults, an optional
// YAML file, an optional .env file, LINQDEMO_* environment variables, and
// finally command-line flags bound through pflag.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-linq-utils/internal/logger"
)

// EnvPrefix is prepended to every environment override, e.g. LINQDEMO_SEED
// or LINQDEMO_LOG_LEVEL.
const EnvPrefix = "LINQDEMO"

// Config holds the runtime configuration of the demo.
type Config struct {
	// Seed for the random sample data. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`

	// Numbers controls section 2: how many random values to draw and their
	// exclusive upper bound.
	Numbers RangeConfig `yaml:"numbers" mapstructure:"numbers"`

	// Prices controls section 4.
	Prices RangeConfig `yaml:"prices" mapstructure:"prices"`

	// Take is how many results sections 3 and 4 print.
	Take int `yaml:"take" mapstructure:"take"`

	// Locale and Currency select how prices are rendered.
	Locale   string `yaml:"locale" mapstructure:"locale"`
	Currency string `yaml:"currency" mapstructure:"currency"`

	Log logger.Config `yaml:"log" mapstructure:"log"`
}

// RangeConfig describes a random sample: a length drawn from
// [MinCount, MaxCount) and values drawn from [0, MaxValue).
type RangeConfig struct {
	MinCount int `yaml:"min_count" mapstructure:"min_count"`
	MaxCount int `yaml:"max_count" mapstructure:"max_count"`
	MaxValue int `yaml:"max_value" mapstructure:"max_value"`
}

// Options selects optional inputs for [Load].
type Options struct {
	ConfigFile string         // YAML file, optional
	EnvFile    string         // .env file, optional
	Flags      *pflag.FlagSet // parsed flags to bind, optional
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Numbers:  RangeConfig{MinCount: 50, MaxCount: 150, MaxValue: 100},
		Prices:   RangeConfig{MinCount: 50, MaxCount: 100, MaxValue: 100},
		Take:     5,
		Locale:   "en-US",
		Currency: "USD",
		Log:      logger.Config{Level: "info", Format: logger.FormatConsole},
	}
}

// Load resolves the configuration and validates it.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
	}
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", opts.EnvFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Log.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("seed", d.Seed)
	v.SetDefault("numbers.min_count", d.Numbers.MinCount)
	v.SetDefault("numbers.max_count", d.Numbers.MaxCount)
	v.SetDefault("numbers.max_value", d.Numbers.MaxValue)
	v.SetDefault("prices.min_count", d.Prices.MinCount)
	v.SetDefault("prices.max_count", d.Prices.MaxCount)
	v.SetDefault("prices.max_value", d.Prices.MaxValue)
	v.SetDefault("take", d.Take)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("currency", d.Currency)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.no_color", d.Log.NoColor)
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"seed":       "seed",
	"take":       "take",
	"locale":     "locale",
	"currency":   "currency",
	"log-level":  "log.level",
	"log-format": "log.format",
	"no-color":   "log.no_color",
}

// RegisterFlags declares the flags understood by [Load] on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Uint64("seed", d.Seed, "random seed for sample data (0 = time based)")
	fs.Int("take", d.Take, "number of results printed by the take sections")
	fs.String("locale", d.Locale, "BCP 47 locale used to format prices")
	fs.String("currency", d.Currency, "ISO 4217 currency code used to format prices")
	fs.String("log-level", d.Log.Level, "log level (trace, debug, info, warn, error)")
	fs.String("log-format", d.Log.Format, "log format (console, json)")
	fs.Bool("no-color", d.Log.NoColor, "disable colored console logs")
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Validate checks ranges, the locale and the currency code.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Numbers.validate("numbers"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Prices.validate("prices"); err != nil {
		errs = append(errs, err)
	}
	if c.Take < 0 {
		errs = append(errs, fmt.Errorf("take must not be negative (got: %d)", c.Take))
	}
	if _, err := language.Parse(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale %q: %w", c.Locale, err))
	}
	if _, err := currency.ParseISO(c.Currency); err != nil {
		errs = append(errs, fmt.Errorf("currency %q: %w", c.Currency, err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (r RangeConfig) validate(name string) error {
	if r.MinCount < 0 || r.MaxCount <= r.MinCount {
		return fmt.Errorf("%s: need 0 <= min_count < max_count (got: %d, %d)", name, r.MinCount, r.MaxCount)
	}
	if r.MaxValue <= 0 {
		return fmt.Errorf("%s.max_value must be positive (got: %d)", name, r.MaxValue)
	}
	return nil
}
