package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type StorageConfig struct {
	Path string
}

type PushConfig struct {
	Enabled        bool
	VAPIDPublicKey string
}

type LocaleConfig struct {
	Default string
}

type RefillConfig struct {
	PollSchedule string
}

type AppConfig struct {
	Environment string
	Backend     BackendConfig
	Storage     StorageConfig
	Push        PushConfig
	Locale      LocaleConfig
	Refill      RefillConfig
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".wateen"))
	}

	v.SetEnvPrefix("WATEEN")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("backend.baseurl", "http://localhost:8000/api")
	v.SetDefault("backend.requesttimeout", "15s")

	v.SetDefault("storage.path", defaultStoragePath())

	v.SetDefault("push.enabled", true)
	v.SetDefault("push.vapidpublickey", "")

	v.SetDefault("locale.default", "en")

	v.SetDefault("refill.pollschedule", "0 */15 * * * *") // every 15 minutes
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wateen"
	}
	return filepath.Join(home, ".wateen")
}
