package provider

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// OAuth2Provider is the canonical name of an oauth2 identity source, e.g. "github".
type OAuth2Provider string

// UserInfo is the provider-defined profile of the authenticated principal.
// ProviderUserID is the provider's stable identifier, Username the
// human-readable handle the local account is derived from.
type UserInfo struct {
	Username       string
	ProviderUserID string
}

type Oauth2Option struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type Interface interface {
	Init(Oauth2Option)
	Provider() OAuth2Provider
	NewAuthURL(ctx context.Context, state string) (string, error)
	GetToken(ctx context.Context, code string) (*oauth2.Token, error)
	RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, tk *oauth2.Token) (*UserInfo, error)
}

type FormatErrNotImplemented string

func (f FormatErrNotImplemented) Error() string {
	return fmt.Sprintf("%s not implemented", string(f))
}
