package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	pkgconfig "github.com/wekeepgrowing/mollie-gateway/pkg/config"
	"github.com/wekeepgrowing/mollie-gateway/pkg/logger"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ServiceName is the config file name and the environment variable prefix.
const ServiceName = "gateway"

type Config struct {
	Service ServiceConfig `yaml:"service"`
	Server  ServerConfig  `yaml:"server"`
	Mollie  MollieConfig  `yaml:"mollie"`
	Log     LogConfig     `yaml:"log"`
}

// defaults applied before the config file and environment.
var defaults = map[string]interface{}{
	"service.name":            "mollie-gateway",
	"service.version":         "dev",
	"service.environment":     "development",
	"server.host":             "",
	"server.port":             8080,
	"server.shutdown_timeout": "10s",
	"server.allow_origins":    []string{"*"},
	"mollie.base_url":         "https://api.mollie.com/v2",
	"mollie.timeout":          "30s",
	"log.level":               "info",
	"log.format":              "json",
	"log.output":              "stdout",
}

// Load reads the layered configuration. A missing config file is fine;
// MOLLIE_API_KEY and MOLLIE_BASE_URL override the file.
func Load() (*Config, error) {
	cfg, err := pkgconfig.Load(ServiceName,
		pkgconfig.WithOptionalFile(),
		pkgconfig.WithDefaults(defaults),
		pkgconfig.WithEnvBinding("mollie.api_key", "MOLLIE_API_KEY", "GATEWAY_MOLLIE_API_KEY"),
		pkgconfig.WithEnvBinding("mollie.base_url", "MOLLIE_BASE_URL", "GATEWAY_MOLLIE_BASE_URL"),
	)
	if err != nil {
		return nil, err
	}

	appConfig := FromSource(cfg)
	if err := appConfig.Validate(); err != nil {
		return nil, err
	}
	return appConfig, nil
}

// FromSource builds the typed config from a key/value source.
func FromSource(cfg pkgconfig.Config) *Config {
	appConfig := &Config{}

	// 서비스 정보
	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")
	appConfig.Service.Environment = cfg.GetString("service.environment")

	// HTTP 서버 설정
	appConfig.Server.Host = cfg.GetString("server.host")
	appConfig.Server.Port = cfg.GetInt("server.port")
	appConfig.Server.ShutdownTimeout = cfg.GetDuration("server.shutdown_timeout")
	appConfig.Server.AllowOrigins = cfg.GetStringSlice("server.allow_origins")
	appConfig.Server.JWTSecret = cfg.GetString("server.jwt_secret")

	// Mollie 설정
	appConfig.Mollie.APIKey = cfg.GetString("mollie.api_key")
	appConfig.Mollie.BaseURL = cfg.GetString("mollie.base_url")
	appConfig.Mollie.Timeout = cfg.GetDuration("mollie.timeout")

	// 로그 설정
	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")
	appConfig.Log.FilePath = cfg.GetString("log.file_path")
	appConfig.Log.Development = cfg.GetBool("log.development")

	return appConfig
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks ranges and enums. The API key is not required here:
// a missing key fails each operation, not startup.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NewLogger builds the zap logger described by the log section.
func (c *Config) NewLogger() (*zap.Logger, error) {
	return logger.NewZapLogger(logger.Config{
		Level:       c.Log.Level,
		Format:      c.Log.Format,
		Output:      c.Log.Output,
		FilePath:    c.Log.FilePath,
		Development: c.Log.Development,
		Service:     c.Service.Name,
		Version:     c.Service.Version,
	})
}

// Redacted returns a copy with secrets masked.
func (c *Config) Redacted() *Config {
	out := *c
	out.Mollie.APIKey = mask(c.Mollie.APIKey)
	out.Server.JWTSecret = mask(c.Server.JWTSecret)
	out.Server.AllowOrigins = append([]string(nil), c.Server.AllowOrigins...)
	return &out
}

// YAML renders the redacted config.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c.Redacted())
}

// mask keeps the Mollie key mode prefix (test_/live_) visible.
func mask(secret string) string {
	switch {
	case secret == "":
		return ""
	case len(secret) > 5 && (secret[:5] == "test_" || secret[:5] == "live_"):
		return secret[:5] + "****"
	default:
		return "****"
	}
}
