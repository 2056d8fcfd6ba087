package config

import "time"

type ServiceConfig struct {
	Name        string `yaml:"name" validate:"required"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

type MollieConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

type LogConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	Format      string `yaml:"format" validate:"omitempty,oneof=json console"`
	Output      string `yaml:"output" validate:"omitempty,oneof=stdout stderr file"`
	FilePath    string `yaml:"file_path" validate:"required_if=Output file"`
	Development bool   `yaml:"development"`
}
