package model

import (
	"errors"

	dbModel "github.com/avagut/authhub/internal/model"
	"github.com/avagut/authhub/internal/provider"
)

var ErrInvalidID = errors.New("invalid id")

type UserInfoResp struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Role      dbModel.Role `json:"role"`
	CreatedAt int64        `json:"createdAt"`
}

type CredentialResp struct {
	Provider       provider.OAuth2Provider `json:"provider"`
	ProviderUserID string                  `json:"providerUserId"`
	CreatedAt      int64                   `json:"createdAt"`
}

type AdminUserRoleReq struct {
	ID   string       `json:"id"`
	Role dbModel.Role `json:"role"`
}

func (r *AdminUserRoleReq) Validate() error {
	if r.ID == "" {
		return ErrInvalidID
	}
	switch r.Role {
	case dbModel.RoleBanned, dbModel.RoleUser, dbModel.RoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
