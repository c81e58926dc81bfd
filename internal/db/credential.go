package db

import (
	"errors"
	"fmt"

	"github.com/avagut/authhub/internal/model"
	"github.com/avagut/authhub/internal/provider"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

func GetCredential(p provider.OAuth2Provider, puid string) (*model.Credential, error) {
	var credential model.Credential
	err := db.Where("provider = ? AND provider_user_id = ?", p, puid).First(&credential).Error
	return &credential, HandleNotFound(err, "credential")
}

func GetCredentialsByUserID(uid string) ([]*model.Credential, error) {
	var credentials []*model.Credential
	err := db.Where("user_id = ?", uid).Find(&credentials).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}
	return credentials, nil
}

// UpdateCredentialToken overwrites the stored token on every login so
// downstream provider API calls always see the freshest one.
func UpdateCredentialToken(p provider.OAuth2Provider, puid string, tk *oauth2.Token) error {
	result := db.Model(&model.Credential{}).
		Where("provider = ? AND provider_user_id = ?", p, puid).
		Updates(map[string]any{
			"access_token":  tk.AccessToken,
			"token_type":    tk.TokenType,
			"refresh_token": tk.RefreshToken,
			"expiry":        tk.Expiry,
		})
	return HandleUpdateResult(result, "credential")
}

func BindCredential(uid string, p provider.OAuth2Provider, puid string, tk *oauth2.Token) error {
	credential := &model.Credential{
		UserID:         uid,
		Provider:       p,
		ProviderUserID: puid,
	}
	credential.SetToken(tk)
	err := db.Create(credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.New("provider already bound")
		}
		return fmt.Errorf("failed to bind provider: %w", err)
	}
	return nil
}

func UnbindCredential(uid string, p provider.OAuth2Provider) error {
	return Transactional(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Preload("Credentials").Where("id = ?", uid).First(&user).Error; err != nil {
			return HandleNotFound(err, "user")
		}
		if user.RegisteredByProvider && len(user.Credentials) <= 1 {
			return errors.New("user must have at least one provider")
		}
		result := tx.Where("user_id = ? AND provider = ?", uid, p).Delete(&model.Credential{})
		return HandleUpdateResult(result, "credential")
	})
}
