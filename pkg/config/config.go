package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/hdwallet"
	"hdwallet-core/pkg/validator"
)

// EnvPrefix prefixes environment overrides: HDWALLET_DERIVATION_CURVE sets
// derivation.curve.
const EnvPrefix = "HDWALLET"

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Derivation DerivationConfig `mapstructure:"derivation"`
	Output     OutputConfig     `mapstructure:"output"`
}

type AppConfig struct {
	Env      string `mapstructure:"env" validate:"required,oneof=development production"`
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

type DerivationConfig struct {
	Curve   string `mapstructure:"curve"`
	Path    string `mapstructure:"path"`
	Network string `mapstructure:"network" validate:"oneof=mainnet testnet3 testnet regtest signet"` // chaincfg network for bitcoin addresses
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// New returns a viper instance with the defaults and environment binding in
// place. Callers bind their flags on it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("hdwallet")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// Load reads cfgFile (or hdwallet.yaml from the search path when cfgFile is
// empty), decodes it and validates it. A missing default file
// is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = New()
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings. Curve and path errors keep their
// derivation error codes.
func (c *Config) Validate() error {
	if _, err := hdwallet.ParseCurve(c.Derivation.Curve); err != nil {
		return fmt.Errorf("derivation.curve: %w", err)
	}
	if _, err := bip32.ParsePath(c.Derivation.Path); err != nil {
		return fmt.Errorf("derivation.path: %w", err)
	}
	return validator.Struct(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "warn")

	v.SetDefault("derivation.curve", string(hdwallet.Secp256k1))
	v.SetDefault("derivation.path", "m")
	v.SetDefault("derivation.network", "mainnet")

	v.SetDefault("output.format", "text")
}
