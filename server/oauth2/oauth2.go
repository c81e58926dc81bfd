// Package auth serves the oauth2 login, callback and bind endpoints.
package auth

import (
	"time"

	"github.com/avagut/authhub/internal/conf"
	"github.com/avagut/authhub/internal/provider"
	"github.com/avagut/authhub/internal/provider/providers"
	"github.com/avagut/authhub/utils/synccache"
)

const stateExpire = time.Minute * 5

type stateMeta struct {
	Bind     bool
	UserID   string
	Redirect string
}

// Handlers carries the injected provider registry and the single-use
// state cache shared by the login and callback endpoints.
type Handlers struct {
	registry *providers.Registry
	states   *synccache.SyncCache[string, stateMeta]
}

func NewHandlers(registry *providers.Registry) *Handlers {
	return &Handlers{
		registry: registry,
		states:   synccache.NewSyncCache[string, stateMeta](time.Minute * 10),
	}
}

// NewRegistryFromConfig is the composition root for provider adapters:
// every provider configured with credentials is enabled explicitly, no
// adapter registers itself at import time.
func NewRegistryFromConfig(c map[provider.OAuth2Provider]conf.OAuth2ProviderConfig) (*providers.Registry, error) {
	registry := providers.NewRegistry()
	for p, pc := range c {
		if pc.ClientID == "" && pc.ClientSecret == "" {
			continue
		}
		err := registry.Enable(p, provider.Oauth2Option{
			ClientID:     pc.ClientID,
			ClientSecret: pc.ClientSecret,
			RedirectURL:  pc.RedirectURL,
		})
		if err != nil {
			return nil, err
		}
	}
	return registry, nil
}
