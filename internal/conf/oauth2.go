package conf

import (
	"github.com/avagut/authhub/internal/provider"
)

type OAuth2Config struct {
	Providers map[provider.OAuth2Provider]OAuth2ProviderConfig `yaml:"providers"`
}

type OAuth2ProviderConfig struct {
	ClientID     string `yaml:"client_id"     env:"CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"CLIENT_SECRET"`
	RedirectURL  string `yaml:"redirect_url"  env:"REDIRECT_URL"`
}

func DefaultOAuth2Config() OAuth2Config {
	return OAuth2Config{
		Providers: map[provider.OAuth2Provider]OAuth2ProviderConfig{
			"github": {
				ClientID:     "",
				ClientSecret: "",
				RedirectURL:  "",
			},
		},
	}
}
