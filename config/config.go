package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/linlinbupt123-crypto/hdkey_service/utils"
)

type Config struct {
	Port            string           `mapstructure:"port"`
	Network         string           `mapstructure:"network"`
	Wordlist        string           `mapstructure:"wordlist"`
	DefaultStrength int              `mapstructure:"default_strength"`
	Derivation      DerivationConfig `mapstructure:"derivation"`
	Log             LogConfig        `mapstructure:"log"`
	Mongo           MongoConfig      `mapstructure:"mongo"`
}

type DerivationConfig struct {
	Path       string `mapstructure:"path"`
	IndexOrder string `mapstructure:"index_order"` // little | big
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// MongoConfig enables the address ledger when URI is set.
type MongoConfig struct {
	URI      string        `mapstructure:"uri"`
	Database string        `mapstructure:"database"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("network", "mainnet")
	v.SetDefault("wordlist", "english")
	v.SetDefault("default_strength", 128)
	v.SetDefault("derivation.path", utils.AddressPath(utils.BTC_DERIVATION_PATH_PREFIX, 0))
	v.SetDefault("derivation.index_order", "little")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.database", "hdkey_service")
	v.SetDefault("mongo.timeout", 3*time.Second)
}

// Load reads the YAML file at path. An empty path uses defaults and the
// environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// ENV 覆盖 YAML
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
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

func (c *Config) Validate() error {
	switch strings.ToLower(c.Network) {
	case "mainnet", "testnet":
	default:
		return fmt.Errorf("config: unknown network %q", c.Network)
	}
	switch strings.ToLower(c.Derivation.IndexOrder) {
	case "", "little", "big":
	default:
		return fmt.Errorf("config: unknown derivation.index_order %q", c.Derivation.IndexOrder)
	}
	if c.Port == "" {
		return fmt.Errorf("config: port is required")
	}
	return nil
}

// MongoEnabled reports whether the address ledger should be opened.
func (c *Config) MongoEnabled() bool {
	return c.Mongo.URI != ""
}
