package conf

type RateLimitConfig struct {
	Enable             bool   `yaml:"enable" lc:"default: false" env:"SERVER_RATE_LIMIT_ENABLE"`
	Period             string `yaml:"period" env:"SERVER_RATE_LIMIT_PERIOD"`
	Limit              int64  `yaml:"limit"  env:"SERVER_RATE_LIMIT_LIMIT"`
	TrustForwardHeader bool   `yaml:"trust_forward_header" lc:"default: false" hc:"trust X-Real-IP and X-Forwarded-For headers, only enable it behind a trusted reverse proxy" env:"SERVER_TRUST_FORWARD_HEADER"`
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enable:             false,
		Period:             "1m",
		Limit:              300,
		TrustForwardHeader: false,
	}
}
