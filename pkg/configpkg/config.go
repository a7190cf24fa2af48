// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/go-petr/pet-ledger/pkg/currencypkg"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment          string `mapstructure:"GO_ENV"`
	Currency             string `mapstructure:"CURRENCY"`
	UniqueAccountNumbers bool   `mapstructure:"UNIQUE_ACCOUNT_NUMBERS"`
	Prompt               string `mapstructure:"PROMPT"`
}

// Load reads configuration from file or environment variables.
//
// A missing app.env is not an error, the defaults and the environment are
// used instead.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("GO_ENV", "production")
	v.SetDefault("CURRENCY", currencypkg.BRL)
	v.SetDefault("UNIQUE_ACCOUNT_NUMBERS", false)
	v.SetDefault("PROMPT", "Choose: ")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	if !currencypkg.IsSupportedCurrency(c.Currency) {
		return c, fmt.Errorf("unsupported currency %q", c.Currency)
	}

	return c, nil
}
