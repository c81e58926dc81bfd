package model

import (
	"time"

	"github.com/avagut/authhub/internal/provider"
	"golang.org/x/oauth2"
)

// Credential links one provider identity to exactly one local user.
// (Provider, ProviderUserID) is unique across the whole store.
type Credential struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	UserID         string                  `gorm:"not null;type:char(32);index"`
	User           *User                   `gorm:"foreignKey:UserID"`
	Provider       provider.OAuth2Provider `gorm:"not null;type:varchar(32);uniqueIndex:idx_provider_user"`
	ProviderUserID string                  `gorm:"not null;type:varchar(128);uniqueIndex:idx_provider_user"`

	AccessToken  string `gorm:"not null;type:text"`
	TokenType    string `gorm:"type:varchar(32)"`
	RefreshToken string `gorm:"type:text"`
	Expiry       time.Time
}

func (c *Credential) SetToken(tk *oauth2.Token) {
	c.AccessToken = tk.AccessToken
	c.TokenType = tk.TokenType
	c.RefreshToken = tk.RefreshToken
	c.Expiry = tk.Expiry
}

func (c *Credential) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		TokenType:    c.TokenType,
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
	}
}
