package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/avagut/authhub/internal/provider"
)

func TestRegistryAllowed(t *testing.T) {
	r := NewRegistry()
	allowed := r.Allowed()
	want := []provider.OAuth2Provider{"facebook", "github", "google", "twitter"}
	if len(allowed) != len(want) {
		t.Fatalf("allowed = %v, want %v", allowed, want)
	}
	for i := range want {
		if allowed[i] != want[i] {
			t.Fatalf("allowed = %v, want %v", allowed, want)
		}
	}
}

func TestRegistryGetBeforeEnable(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("github"); err == nil {
		t.Error("a provider without credentials must not be served")
	}
	if len(r.Enabled()) != 0 {
		t.Errorf("enabled = %v, want empty", r.Enabled())
	}
}

func TestRegistryEnable(t *testing.T) {
	r := NewRegistry()
	err := r.Enable("github", provider.Oauth2Option{
		ClientID:     "id",
		ClientSecret: "secret",
	})
	if err != nil {
		t.Fatal(err)
	}

	pi, err := r.Get("github")
	if err != nil {
		t.Fatal(err)
	}
	if pi.Provider() != "github" {
		t.Errorf("provider = %s, want github", pi.Provider())
	}

	enabled := r.Enabled()
	if len(enabled) != 1 || enabled[0] != "github" {
		t.Errorf("enabled = %v, want [github]", enabled)
	}
}

func TestRegistryEnableUnknown(t *testing.T) {
	r := NewRegistry()
	err := r.Enable("myspace", provider.Oauth2Option{
		ClientID:     "id",
		ClientSecret: "secret",
	})
	if err == nil {
		t.Error("enabling an unknown provider should fail")
	}
}

func TestRegistryEnableEmptyCredentials(t *testing.T) {
	r := NewRegistry()
	if err := r.Enable("github", provider.Oauth2Option{ClientID: "id"}); err == nil {
		t.Error("enabling without a client secret should fail")
	}
	if err := r.Enable("github", provider.Oauth2Option{ClientSecret: "secret"}); err == nil {
		t.Error("enabling without a client id should fail")
	}
}

func TestNewAuthURL(t *testing.T) {
	r := NewRegistry()
	err := r.Enable("github", provider.Oauth2Option{
		ClientID:     "test-client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/oauth2/callback/github",
	})
	if err != nil {
		t.Fatal(err)
	}
	pi, err := r.Get("github")
	if err != nil {
		t.Fatal(err)
	}
	url, err := pi.NewAuthURL(context.Background(), "test-state")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(url, "state=test-state") {
		t.Errorf("auth url missing state: %s", url)
	}
	if !strings.Contains(url, "client_id=test-client") {
		t.Errorf("auth url missing client id: %s", url)
	}
}
