package conf

//nolint:tagliatelle
type ServerConfig struct {
	Listen string `env:"SERVER_LISTEN" yaml:"listen"`
	Port   uint16 `env:"SERVER_PORT"   yaml:"port"`

	Quic bool `env:"SERVER_QUIC" yaml:"quic" lc:"enable http3/quic, cert and key must be set"`

	CertPath string `env:"SERVER_CERT_PATH" yaml:"cert_path"`
	KeyPath  string `env:"SERVER_KEY_PATH"  yaml:"key_path"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Listen:   "0.0.0.0",
		Port:     8080,
		Quic:     false,
		CertPath: "",
		KeyPath:  "",
	}
}
