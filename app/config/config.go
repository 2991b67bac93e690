package config

import (
	"github.com/spf13/viper"
)

// Config app configuration
type Config struct {
	SecretKey string `mapstructure:"secretKey"`
	JWTKey    string `mapstructure:"jwtKey"`

	// live push stream tuning
	StreamLifetimeMinutes    int `mapstructure:"streamLifetimeMinutes"`
	StreamSendTimeoutSeconds int `mapstructure:"streamSendTimeoutSeconds"`

	// event dispatcher tuning
	DispatchWorkers   int `mapstructure:"dispatchWorkers"`
	DispatchQueueSize int `mapstructure:"dispatchQueueSize"`
}

// InitConfig initialize app configuration
func InitConfig() (*Config, error) {
	config := &Config{}
	subv := viper.Sub("app")
	if err := subv.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.StreamLifetimeMinutes <= 0 {
		config.StreamLifetimeMinutes = 360
	}
	if config.StreamSendTimeoutSeconds <= 0 {
		config.StreamSendTimeoutSeconds = 5
	}
	if config.DispatchWorkers <= 0 {
		config.DispatchWorkers = 4
	}
	if config.DispatchQueueSize <= 0 {
		config.DispatchQueueSize = 256
	}
	return config, nil
}
