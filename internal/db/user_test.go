package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/avagut/authhub/internal/model"
	"github.com/glebarez/sqlite"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) {
	t.Helper()
	d, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := Init(d); err != nil {
		t.Fatal(err)
	}
}

func testToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: "tk",
		TokenType:   "bearer",
		Expiry:      time.Now().Add(time.Hour),
	}
}

func TestCreateUserWithCredential(t *testing.T) {
	newTestDB(t)

	u, err := CreateUserWithCredential("alice", "github", "1", testToken())
	if err != nil {
		t.Fatal(err)
	}
	if len(u.ID) != 32 {
		t.Errorf("user id length = %d, want 32", len(u.ID))
	}
	if u.Role != model.RoleUser {
		t.Errorf("role = %v, want user", u.Role)
	}

	got, err := GetUserByProvider("github", "1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID {
		t.Errorf("lookup user id = %s, want %s", got.ID, u.ID)
	}
}

func TestCreateUserWithCredentialDuplicate(t *testing.T) {
	newTestDB(t)

	if _, err := CreateUserWithCredential("alice", "github", "1", testToken()); err != nil {
		t.Fatal(err)
	}
	_, err := CreateUserWithCredential("alice2", "github", "1", testToken())
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestUsernameSuffixNeverCollides(t *testing.T) {
	newTestDB(t)

	// Many identities share one handle; every creation must succeed and
	// every suffixed username must come out unique, even when a drawn
	// suffix is already taken.
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		u, err := CreateUserWithCredential("avagut", "github", fmt.Sprintf("id-%d", i), testToken())
		if err != nil {
			t.Fatalf("identity %d: %v", i, err)
		}
		if _, ok := seen[u.Username]; ok {
			t.Fatalf("identity %d: username %s already taken", i, u.Username)
		}
		seen[u.Username] = struct{}{}
	}
}

func TestGetUserByProviderNotFound(t *testing.T) {
	newTestDB(t)

	_, err := GetUserByProvider("github", "missing")
	if !errors.Is(err, ErrNotFound("user")) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestBindAndUnbindCredential(t *testing.T) {
	newTestDB(t)

	u, err := CreateUserWithCredential("alice", "github", "1", testToken())
	if err != nil {
		t.Fatal(err)
	}
	if err := BindCredential(u.ID, "google", "2", testToken()); err != nil {
		t.Fatal(err)
	}

	credentials, err := GetCredentialsByUserID(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(credentials) != 2 {
		t.Fatalf("credential count = %d, want 2", len(credentials))
	}

	if err := UnbindCredential(u.ID, "google"); err != nil {
		t.Fatal(err)
	}
	if _, err := GetUserByProvider("google", "2"); !errors.Is(err, ErrNotFound("user")) {
		t.Errorf("unbound credential still resolves, err = %v", err)
	}

	// The account was registered through a provider, so the last
	// credential must stay.
	if err := UnbindCredential(u.ID, "github"); err == nil {
		t.Error("unbinding the last provider should fail")
	}
}

func TestBindCredentialAlreadyBound(t *testing.T) {
	newTestDB(t)

	u1, err := CreateUserWithCredential("alice", "github", "1", testToken())
	if err != nil {
		t.Fatal(err)
	}
	u2, err := CreateUserWithCredential("bob", "google", "2", testToken())
	if err != nil {
		t.Fatal(err)
	}

	if err := BindCredential(u2.ID, "github", "1", testToken()); err == nil {
		t.Error("binding an identity that belongs to another user should fail")
	}
	got, err := GetUserByProvider("github", "1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u1.ID {
		t.Errorf("identity moved to %s, want %s", got.ID, u1.ID)
	}
}

func TestUpdateCredentialToken(t *testing.T) {
	newTestDB(t)

	if _, err := CreateUserWithCredential("alice", "github", "1", testToken()); err != nil {
		t.Fatal(err)
	}
	refreshed := &oauth2.Token{
		AccessToken:  "tk-new",
		TokenType:    "bearer",
		RefreshToken: "rt-new",
		Expiry:       time.Now().Add(2 * time.Hour),
	}
	if err := UpdateCredentialToken("github", "1", refreshed); err != nil {
		t.Fatal(err)
	}

	credential, err := GetCredential("github", "1")
	if err != nil {
		t.Fatal(err)
	}
	if credential.AccessToken != "tk-new" || credential.RefreshToken != "rt-new" {
		t.Errorf("token not refreshed: %+v", credential)
	}
}

func TestIncrUserTokenVersion(t *testing.T) {
	newTestDB(t)

	u, err := CreateUserWithCredential("alice", "github", "1", testToken())
	if err != nil {
		t.Fatal(err)
	}
	before := u.TokenVersion
	if err := IncrUserTokenVersion(u.ID); err != nil {
		t.Fatal(err)
	}
	got, err := GetUserByID(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.TokenVersion != before+1 {
		t.Errorf("token version = %d, want %d", got.TokenVersion, before+1)
	}
}

func TestSetUserRole(t *testing.T) {
	newTestDB(t)

	u, err := CreateUserWithCredential("alice", "github", "1", testToken())
	if err != nil {
		t.Fatal(err)
	}
	if err := SetUserRole(u.ID, model.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	got, err := GetUserByID(u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsAdmin() {
		t.Errorf("role = %v, want admin", got.Role)
	}

	if err := SetUserRole("not-an-id", model.RoleAdmin); err == nil {
		t.Error("setting a role on a missing user should fail")
	}
}
