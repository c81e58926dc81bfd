package middlewares

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/avagut/authhub/internal/conf"
	"github.com/avagut/authhub/internal/db"
	"github.com/avagut/authhub/internal/model"
	"github.com/glebarez/sqlite"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

func setup(t *testing.T) *model.User {
	t.Helper()
	conf.Conf = conf.DefaultConfig()
	d, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Init(d); err != nil {
		t.Fatal(err)
	}
	user, err := db.CreateUserWithCredential("alice", "github", "1", &oauth2.Token{
		AccessToken: "tk",
		TokenType:   "bearer",
		Expiry:      time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	return user
}

func TestAuthUserTokenRoundTrip(t *testing.T) {
	user := setup(t)

	token, err := NewAuthUserToken(user)
	if err != nil {
		t.Fatal(err)
	}
	got, err := AuthUser(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != user.ID {
		t.Errorf("auth user id = %s, want %s", got.ID, user.ID)
	}

	// The Bearer prefix is optional.
	if _, err := AuthUser("Bearer " + token); err != nil {
		t.Errorf("bearer-prefixed token rejected: %v", err)
	}
}

func TestAuthUserGarbageToken(t *testing.T) {
	setup(t)

	if _, err := AuthUser("not-a-token"); !errors.Is(err, ErrAuthFailed) {
		t.Errorf("err = %v, want ErrAuthFailed", err)
	}
}

func TestAuthUserTokenVersionBump(t *testing.T) {
	user := setup(t)

	token, err := NewAuthUserToken(user)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.IncrUserTokenVersion(user.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := AuthUser(token); !errors.Is(err, ErrAuthExpired) {
		t.Errorf("err = %v, want ErrAuthExpired", err)
	}

	// A token issued after the bump is valid again.
	fresh, err := db.GetUserByID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	token, err = NewAuthUserToken(fresh)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := AuthUser(token); err != nil {
		t.Errorf("fresh token rejected: %v", err)
	}
}

func TestAuthUserBanned(t *testing.T) {
	user := setup(t)

	token, err := NewAuthUserToken(user)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.BanUser(user.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := AuthUser(token); err == nil {
		t.Error("banned user must not authenticate")
	}
}

func TestNewAuthUserTokenBanned(t *testing.T) {
	user := setup(t)
	user.Role = model.RoleBanned
	if _, err := NewAuthUserToken(user); err == nil {
		t.Error("must not issue tokens for banned users")
	}
}
