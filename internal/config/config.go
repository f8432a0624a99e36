package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type AppConfig struct {
	API          *APIConfig          `mapstructure:"api" validate:"required"`
	Gin          *GinConfig          `mapstructure:"gin" validate:"required"`
	Postgres     *PostgresConfig     `mapstructure:"postgres" validate:"required"`
	Scoring      *ScoringConfig      `mapstructure:"scoring" validate:"required"`
	Certificates *CertificatesConfig `mapstructure:"certificates" validate:"required"`
	Scheduler    *SchedulerConfig    `mapstructure:"scheduler" validate:"required"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment" validate:"required,oneof=development staging production test"`
	Port               string   `mapstructure:"port" validate:"required,numeric"`
	BaseURL            string   `mapstructure:"base_url" validate:"required"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	LogLevel           string   `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required,numeric"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db" validate:"required"`
	SSLMode  string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	Migrate  bool   `mapstructure:"migrate"`
	TimeZone string `mapstructure:"time_zone"`
}

type ScoringConfig struct {
	// CompositePairs links department actions to the member action granted
	// with them.
	CompositePairs []scoring.Pairing `mapstructure:"composite_pairs" validate:"dive"`
	// UpdateConcurrency bounds the in-flight point detail updates.
	UpdateConcurrency int `mapstructure:"update_concurrency" validate:"gte=1,lte=64"`
	// TimeZone is the IANA zone in which event days are counted.
	TimeZone string `mapstructure:"time_zone" validate:"required,timezone"`
}

// Location loads TimeZone.
func (c *ScoringConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation -> %w", err)
	}
	return loc, nil
}

type CertificatesConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	AMQPURL    string `mapstructure:"amqp_url" validate:"required_if=Enabled true"`
	Exchange   string `mapstructure:"exchange" validate:"required_if=Enabled true"`
	Queue      string `mapstructure:"queue" validate:"required_if=Enabled true"`
	RoutingKey string `mapstructure:"routing_key"`
}

type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// ActivationSpec is the cron spec of the job that starts attendance for
	// open events whose start time has passed.
	ActivationSpec string `mapstructure:"activation_spec" validate:"required_if=Enabled true"`
}

func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.log_level", "info")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("scoring.update_concurrency", 8)
	v.SetDefault("scoring.time_zone", "UTC")
	v.SetDefault("scheduler.activation_spec", "@every 1m")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		reloaded, err := decode(v)
		if err != nil {
			zap.L().Warn("ignoring invalid config change", zap.String("file", e.Name), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
		for _, fn := range reloadHooks {
			fn(reloaded)
		}
	})
	v.WatchConfig()

	return conf, nil
}

var reloadHooks []func(*AppConfig)

// OnReload registers fn to run after a valid config change was read.
func OnReload(fn func(*AppConfig)) {
	reloadHooks = append(reloadHooks, fn)
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := validator.New().Struct(&conf); err != nil {
		return nil, fmt.Errorf("invalid config -> %w", err)
	}

	return &conf, nil
}

func (c *PostgresConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode)
	if c.TimeZone != "" {
		dsn += " TimeZone=" + c.TimeZone
	}
	return dsn
}
