package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InventoryConfig carries operator-tunable inventory defaults loaded from
// inventory.yml. New items and bulk creation fall back to these values.
type InventoryConfig struct {
	GSTRates          []float64 `mapstructure:"gstRates"`
	DefaultGSTRate    float64   `mapstructure:"defaultGstRate"`
	DefaultUnit       string    `mapstructure:"defaultUnit"`
	LowStockThreshold float64   `mapstructure:"lowStockThreshold"`
}

func DefaultInventoryConfig() InventoryConfig {
	return InventoryConfig{
		GSTRates:          []float64{0, 5, 12, 18, 28},
		DefaultGSTRate:    18,
		DefaultUnit:       "pcs",
		LowStockThreshold: 10,
	}
}

type InventoryConfigHolder struct {
	current atomic.Value // holds InventoryConfig
}

func NewInventoryConfigHolder() (*InventoryConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("inventory")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/hardwarepoint")
	v.AddConfigPath(".") // dev mode

	v.SetEnvPrefix("HARDWAREPOINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultInventoryConfig()
		v.SetDefault("inventory.gstRates", defaults.GSTRates)
		v.SetDefault("inventory.defaultGstRate", defaults.DefaultGSTRate)
		v.SetDefault("inventory.defaultUnit", defaults.DefaultUnit)
		v.SetDefault("inventory.lowStockThreshold", defaults.LowStockThreshold)
	}

	var cfg InventoryConfig
	if err := v.UnmarshalKey("inventory", &cfg); err != nil {
		return nil, err
	}
	if err := validateInventoryConfig(cfg); err != nil {
		return nil, err
	}

	holder := &InventoryConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated InventoryConfig
		if err := v.UnmarshalKey("inventory", &updated); err != nil {
			log.Printf("[inventory-config] reload failed: %v", err)
			return
		}
		if err := validateInventoryConfig(updated); err != nil {
			log.Printf("[inventory-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[inventory-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *InventoryConfigHolder) Get() InventoryConfig {
	return h.current.Load().(InventoryConfig)
}

// StaticInventoryConfigHolder wraps a fixed config with no file watching.
func StaticInventoryConfigHolder(cfg InventoryConfig) *InventoryConfigHolder {
	holder := &InventoryConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func validateInventoryConfig(cfg InventoryConfig) error {
	if cfg.DefaultGSTRate < 0 || cfg.DefaultGSTRate > 100 {
		return errors.New("inventory.defaultGstRate must be between 0 and 100")
	}
	if cfg.LowStockThreshold < 0 {
		return errors.New("inventory.lowStockThreshold cannot be negative")
	}
	for _, rate := range cfg.GSTRates {
		if rate < 0 || rate > 100 {
			return errors.New("inventory.gstRates entries must be between 0 and 100")
		}
	}
	return nil
}
