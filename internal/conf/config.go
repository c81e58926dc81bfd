package conf

import (
	"github.com/avagut/authhub/utils"
)

var Conf *Config

//nolint:tagliatelle
type Config struct {
	// Log
	Log LogConfig `yaml:"log"`

	// Server
	Server ServerConfig `yaml:"server"`

	// Jwt
	Jwt JwtConfig `yaml:"jwt"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// OAuth2
	OAuth2 OAuth2Config `yaml:"oauth2"`

	// RateLimit
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

func (c *Config) Save(file string) error {
	return utils.WriteYaml(file, c)
}

func DefaultConfig() *Config {
	return &Config{
		Log:       DefaultLogConfig(),
		Server:    DefaultServerConfig(),
		Jwt:       DefaultJwtConfig(),
		Database:  DefaultDatabaseConfig(),
		OAuth2:    DefaultOAuth2Config(),
		RateLimit: DefaultRateLimitConfig(),
	}
}
