package model

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/avagut/authhub/utils"
	"gorm.io/gorm"
)

type Role uint

const (
	RoleBanned Role = 1
	RoleUser   Role = 2
	RoleAdmin  Role = 3
	RoleRoot   Role = 4
)

func (r Role) String() string {
	switch r {
	case RoleBanned:
		return "banned"
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	case RoleRoot:
		return "root"
	default:
		return "unknown"
	}
}

type User struct {
	ID                   string `gorm:"primaryKey;type:char(32)" json:"id"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Username             string        `gorm:"not null;uniqueIndex;type:varchar(64)"`
	Role                 Role          `gorm:"not null;default:2"`
	RegisteredByProvider bool          `gorm:"not null;default:false"`
	TokenVersion         uint32        `gorm:"not null;default:1"`
	Credentials          []*Credential `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	autoAddUsernameSuffix bool `gorm:"-"`
}

func (u *User) EnableAutoAddUsernameSuffix() {
	u.autoAddUsernameSuffix = true
}

func (u *User) DisableAutoAddUsernameSuffix() {
	u.autoAddUsernameSuffix = false
}

// BeforeCreate resolves username collisions across providers: the first
// identity keeps the bare handle, later ones get a random numeric suffix.
// Candidates are re-drawn until one is free so a suffix clash cannot leak
// out as a duplicated-key error.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = utils.SortUUID()
	}
	if u.autoAddUsernameSuffix {
		base := u.Username
		for {
			var count int64
			err := tx.Model(&User{}).Where("username = ?", u.Username).Count(&count).Error
			if err != nil {
				return err
			}
			if count == 0 {
				break
			}
			u.Username = fmt.Sprintf("%s#%d", base, rand.Intn(9999))
		}
	}
	return nil
}

func (u *User) IsRoot() bool {
	return u.Role == RoleRoot
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsRoot()
}

func (u *User) IsBanned() bool {
	return u.Role == RoleBanned
}

func (u *User) CheckTokenVersion(version uint32) bool {
	return u.TokenVersion == version
}
