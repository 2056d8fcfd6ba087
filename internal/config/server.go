package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
	AllowOrigins    []string      `yaml:"allow_origins"`
	// JWTSecret enables the bearer token guard on /api/mollie when set.
	JWTSecret string `yaml:"jwt_secret"`
}

// Address is host:port for echo.Start.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
