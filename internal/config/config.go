package config

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the service settings
type Config struct {
	Port            string
	MaxQubits       int
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
}

// Load reads settings from QSIM_* environment variables, an optional config
// file and built-in defaults. PORT is honoured for platform compatibility.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("max_qubits", 10)
	v.SetDefault("session_ttl_minutes", 60)
	v.SetDefault("cleanup_interval", "5m")
	v.SetDefault("log_level", "info")
	v.SetDefault("read_timeout", "15s")
	v.SetDefault("write_timeout", "15s")
	v.SetDefault("idle_timeout", "60s")

	v.SetEnvPrefix("qsim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", "QSIM_PORT", "PORT"); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return &Config{
		Port:            v.GetString("port"),
		MaxQubits:       v.GetInt("max_qubits"),
		SessionTTL:      time.Duration(v.GetInt("session_ttl_minutes")) * time.Minute,
		CleanupInterval: v.GetDuration("cleanup_interval"),
		LogLevel:        v.GetString("log_level"),
		ReadTimeout:     v.GetDuration("read_timeout"),
		WriteTimeout:    v.GetDuration("write_timeout"),
		IdleTimeout:     v.GetDuration("idle_timeout"),
	}, nil
}

// Level maps LogLevel onto a logger level, defaulting to info
func (c *Config) Level() log.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
