// Package account maps provider identities to local users.
package account

import (
	"errors"
	"fmt"

	"github.com/avagut/authhub/internal/db"
	"github.com/avagut/authhub/internal/model"
	"github.com/avagut/authhub/internal/provider"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

var (
	ErrEmptyToken          = errors.New("oauth2 token is empty")
	ErrEmptyProviderUserID = errors.New("provider user id is empty")
	ErrEmptyUsername       = errors.New("provider did not return a username")
)

// IsProfileError reports whether err means the provider handed back an
// unusable token or profile, as opposed to a store failure.
func IsProfileError(err error) bool {
	return errors.Is(err, ErrEmptyToken) ||
		errors.Is(err, ErrEmptyProviderUserID) ||
		errors.Is(err, ErrEmptyUsername)
}

// Reconcile resolves a successful provider callback to the owning local
// user, creating the user and credential pair on first login. Repeated
// logins with the same (provider, provider user id) always yield the same
// user and exactly one credential; the stored token is refreshed each time.
func Reconcile(p provider.OAuth2Provider, ui *provider.UserInfo, tk *oauth2.Token) (*model.User, error) {
	if tk == nil || tk.AccessToken == "" {
		return nil, ErrEmptyToken
	}
	if ui == nil || ui.ProviderUserID == "" {
		return nil, ErrEmptyProviderUserID
	}

	user, err := db.GetUserByProvider(p, ui.ProviderUserID)
	if err == nil {
		if err := db.UpdateCredentialToken(p, ui.ProviderUserID, tk); err != nil {
			log.Warnf("account: refresh stored token for %s:%s: %v", p, ui.ProviderUserID, err)
		}
		return user, nil
	}
	if !errors.Is(err, db.ErrNotFound("user")) {
		return nil, fmt.Errorf("account: lookup credential: %w", err)
	}

	if ui.Username == "" {
		return nil, ErrEmptyUsername
	}

	user, err = db.CreateUserWithCredential(ui.Username, p, ui.ProviderUserID, tk)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// lost a concurrent-callback race for the same identity, the
		// winner's rows are authoritative
		user, err = db.GetUserByProvider(p, ui.ProviderUserID)
		if err != nil {
			return nil, fmt.Errorf("account: reload after duplicate credential: %w", err)
		}
		return user, nil
	}
	return nil, err
}
