package db

import (
	"errors"
	"fmt"

	"github.com/avagut/authhub/internal/model"
	"github.com/avagut/authhub/internal/provider"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type CreateUserConfig func(u *model.User)

func WithID(id string) CreateUserConfig {
	return func(u *model.User) {
		u.ID = id
	}
}

func WithRole(role model.Role) CreateUserConfig {
	return func(u *model.User) {
		u.Role = role
	}
}

// CreateUserWithCredential creates the local user and its first provider
// credential in one transaction. The username gets a random suffix when it
// is already taken by another identity.
func CreateUserWithCredential(
	username string,
	p provider.OAuth2Provider,
	puid string,
	tk *oauth2.Token,
	conf ...CreateUserConfig,
) (*model.User, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if puid == "" {
		return nil, errors.New("provider user id cannot be empty")
	}
	user := &model.User{
		Username:             username,
		Role:                 model.RoleUser,
		RegisteredByProvider: true,
		TokenVersion:         1,
	}
	for _, c := range conf {
		c(user)
	}
	user.EnableAutoAddUsernameSuffix()
	credential := &model.Credential{
		Provider:       p,
		ProviderUserID: puid,
	}
	credential.SetToken(tk)
	err := Transactional(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		credential.UserID = user.ID
		return tx.Create(credential).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.Credentials = []*model.Credential{credential}
	return user, nil
}

func GetUserByID(id string) (*model.User, error) {
	var user model.User
	err := db.Where("id = ?", id).First(&user).Error
	return &user, HandleNotFound(err, "user")
}

func GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	err := db.Where("username = ?", username).First(&user).Error
	return &user, HandleNotFound(err, "user")
}

func GetUserByProvider(p provider.OAuth2Provider, puid string) (*model.User, error) {
	var user model.User
	err := db.Joins("JOIN credentials ON users.id = credentials.user_id").
		Where("credentials.provider = ? AND credentials.provider_user_id = ?", p, puid).
		First(&user).Error
	return &user, HandleNotFound(err, "user")
}

func GetUserByIDOrUsernameLike(idOrUsername string, scopes ...func(*gorm.DB) *gorm.DB) ([]*model.User, error) {
	var users []*model.User
	err := db.Where("id = ? OR username LIKE ?", idOrUsername, fmt.Sprintf("%%%s%%", idOrUsername)).
		Scopes(scopes...).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

func AllUsers(scopes ...func(*gorm.DB) *gorm.DB) ([]*model.User, error) {
	var users []*model.User
	err := db.Scopes(scopes...).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func AllUserCount() (int64, error) {
	var count int64
	err := db.Model(&model.User{}).Count(&count).Error
	return count, err
}

func SetUserRole(id string, role model.Role) error {
	result := db.Model(&model.User{}).Where("id = ?", id).Update("role", role)
	return HandleUpdateResult(result, "user")
}

func BanUser(id string) error {
	return SetUserRole(id, model.RoleBanned)
}

func UnbanUser(id string) error {
	return SetUserRole(id, model.RoleUser)
}

// IncrUserTokenVersion invalidates every session token issued for the user.
func IncrUserTokenVersion(id string) error {
	result := db.Model(&model.User{}).
		Where("id = ?", id).
		Update("token_version", gorm.Expr("token_version + 1"))
	return HandleUpdateResult(result, "user")
}
