package ledgersim

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Checking struct {
		WithdrawalLimit string `yaml:"withdrawal_limit"`
		MaxWithdrawals  int    `yaml:"max_withdrawals"`
	} `yaml:"checking"`
	IDs struct {
		Node int64 `yaml:"node"`
	} `yaml:"ids"`
	Statements struct {
		Dir string `yaml:"dir"`
	} `yaml:"statements"`
	Seed string `yaml:"seed"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Checking.WithdrawalLimit = "500"
	cfg.Checking.MaxWithdrawals = 3
	cfg.IDs.Node = 1
	cfg.Statements.Dir = "."
	return cfg
}

// LoadConfig decodes the YAML file at path over the defaults. An empty
// path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err = yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file settings with LEDGERSIM_* environment variables.
func (c *Config) ApplyEnv() {
	c.Log.Level = getEnv("LEDGERSIM_LOG_LEVEL", c.Log.Level)
	c.Statements.Dir = getEnv("LEDGERSIM_STATEMENTS_DIR", c.Statements.Dir)
	c.Seed = getEnv("LEDGERSIM_SEED", c.Seed)
}

func (c *Config) CheckingLimits() (CheckingLimits, error) {
	lim, err := decimal.NewFromString(c.Checking.WithdrawalLimit)
	if err != nil {
		return CheckingLimits{}, ErrBadRequest{Fields: map[string]string{"checking.withdrawal_limit": "invalid decimal"}}
	}
	return CheckingLimits{
		WithdrawalLimit: lim,
		MaxWithdrawals:  c.Checking.MaxWithdrawals,
	}, nil
}

func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
