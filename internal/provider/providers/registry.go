package providers

import (
	"fmt"
	"sort"

	"github.com/avagut/authhub/internal/provider"
)

// Registry holds the provider adapter set. All known adapters are
// constructed by NewRegistry; only providers enabled with client
// credentials are served. There is no ambient registration, the
// composition root builds a registry and injects it where needed.
type Registry struct {
	allowed map[provider.OAuth2Provider]provider.Interface
	enabled map[provider.OAuth2Provider]provider.Interface
}

func NewRegistry() *Registry {
	r := &Registry{
		allowed: make(map[provider.OAuth2Provider]provider.Interface),
		enabled: make(map[provider.OAuth2Provider]provider.Interface),
	}
	r.register(
		newGithubProvider(),
		newGoogleProvider(),
		newTwitterProvider(),
		newFacebookProvider(),
	)
	return r
}

func (r *Registry) register(ps ...provider.Interface) {
	for _, p := range ps {
		r.allowed[p.Provider()] = p
	}
}

func (r *Registry) Enable(p provider.OAuth2Provider, opt provider.Oauth2Option) error {
	pi, ok := r.allowed[p]
	if !ok {
		return provider.FormatErrNotImplemented(p)
	}
	if opt.ClientID == "" || opt.ClientSecret == "" {
		return fmt.Errorf("%s client id or client secret is empty", p)
	}
	pi.Init(opt)
	r.enabled[pi.Provider()] = pi
	return nil
}

func (r *Registry) Get(p provider.OAuth2Provider) (provider.Interface, error) {
	pi, ok := r.enabled[p]
	if !ok {
		return nil, provider.FormatErrNotImplemented(p)
	}
	return pi, nil
}

func (r *Registry) Allowed() []provider.OAuth2Provider {
	ps := make([]provider.OAuth2Provider, 0, len(r.allowed))
	for p := range r.allowed {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}

func (r *Registry) Enabled() []provider.OAuth2Provider {
	ps := make([]provider.OAuth2Provider, 0, len(r.enabled))
	for p := range r.enabled {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	return ps
}
