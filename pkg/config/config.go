// Package config는 애플리케이션 설정을 관리하는 패키지입니다.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 인터페이스는 설정 값에 액세스하기 위한 메서드를 정의합니다.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	IsSet(key string) bool
	GetAll() map[string]interface{}
	// ConfigFile은 실제로 읽은 설정 파일 경로를 반환합니다. (없으면 빈 문자열)
	ConfigFile() string
}

// viperConfig는 viper를 사용하여 Config 인터페이스를 구현합니다.
type viperConfig struct {
	v *viper.Viper
}

func (c *viperConfig) GetString(key string) string { return c.v.GetString(key) }
func (c *viperConfig) GetInt(key string) int { return c.v.GetInt(key) }
func (c *viperConfig) GetBool(key string) bool { return c.v.GetBool(key) }
func (c *viperConfig) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }
func (c *viperConfig) GetStringSlice(key string) []string { return c.v.GetStringSlice(key) }
func (c *viperConfig) IsSet(key string) bool { return c.v.IsSet(key) }
func (c *viperConfig) GetAll() map[string]interface{} { return c.v.AllSettings() }
func (c *viperConfig) ConfigFile() string { return c.v.ConfigFileUsed() }

// 설정 디렉토리 경로
const configDir = "configs"

// options Load 동작을 조정하는 옵션 모음입니다.
type options struct {
	envPrefix    string
	defaults     map[string]interface{}
	envBindings  map[string][]string
	optionalFile bool
}

// Option Load 옵션 함수 타입입니다.
type Option func(*options)

// WithEnvPrefix 자동 환경 변수 바인딩의 접두사를 지정합니다. (기본값: 서비스 이름 대문자)
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithDefaults 키별 기본값을 설정합니다.
func WithDefaults(defaults map[string]interface{}) Option {
	return func(o *options) {
		for k, v := range defaults {
			o.defaults[k] = v
		}
	}
}

// WithEnvBinding 키를 접두사 없는 환경 변수에 직접 바인딩합니다.
// 앞에 있는 환경 변수가 우선합니다.
func WithEnvBinding(key string, envVars ...string) Option {
	return func(o *options) {
		o.envBindings[key] = append(o.envBindings[key], envVars...)
	}
}

// WithOptionalFile 설정 파일이 없어도 기본값과 환경 변수만으로 로드합니다.
func WithOptionalFile() Option {
	return func(o *options) {
		o.optionalFile = true
	}
}

// Load는 지정된 서비스 이름에 해당하는 설정 파일을 로드합니다.
// 우선순위: 환경 변수 > 설정 파일 > 기본값
func Load(serviceName string, opts ...Option) (Config, error) {
	o := &options{
		envPrefix:   strings.ToUpper(serviceName),
		defaults:    map[string]interface{}{},
		envBindings: map[string][]string{},
	}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	for k, val := range o.defaults {
		v.SetDefault(k, val)
	}

	// 환경 변수 바인딩 설정
	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envVars := range o.envBindings {
		args := append([]string{key}, envVars...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("환경 변수 바인딩 실패 (%s): %w", key, err)
		}
	}

	if err := readConfigFile(v, serviceName); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !(o.optionalFile && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist))) {
			return nil, fmt.Errorf("설정 파일 로드 실패: %w", err)
		}
	}

	return &viperConfig{v: v}, nil
}

// readConfigFile 설정 파일을 찾아 읽습니다.
// CONFIG_PATH가 파일이면 그대로, 디렉토리면 그 안에서 찾고,
// 없으면 configs/{APP_ENV} 다음 configs/example 순으로 찾습니다.
func readConfigFile(v *viper.Viper, serviceName string) error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			v.SetConfigFile(configPath)
			return v.ReadInConfig()
		}
		v.SetConfigName(serviceName)
		v.AddConfigPath(configPath)
		return v.ReadInConfig()
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev" // 기본 환경은 dev
	}

	v.SetConfigName(serviceName)
	v.AddConfigPath(filepath.Join(configDir, env))
	v.AddConfigPath(filepath.Join(configDir, "example"))
	return v.ReadInConfig()
}
