package account_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avagut/authhub/internal/account"
	"github.com/avagut/authhub/internal/db"
	"github.com/avagut/authhub/internal/model"
	"github.com/avagut/authhub/internal/provider"
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
	if err := db.Init(d); err != nil {
		t.Fatal(err)
	}
}

func newToken(access string) *oauth2.Token {
	return &oauth2.Token{
		AccessToken: access,
		TokenType:   "bearer",
		Expiry:      time.Now().Add(time.Hour),
	}
}

func TestReconcileFirstLogin(t *testing.T) {
	newTestDB(t)

	user, err := account.Reconcile("github", &provider.UserInfo{
		Username:       "avagut",
		ProviderUserID: "12345",
	}, newToken("tk-1"))
	if err != nil {
		t.Fatal(err)
	}
	if user.Username != "avagut" {
		t.Errorf("username = %s, want avagut", user.Username)
	}
	if !user.RegisteredByProvider {
		t.Error("user should be registered by provider")
	}

	credential, err := db.GetCredential("github", "12345")
	if err != nil {
		t.Fatal(err)
	}
	if credential.UserID != user.ID {
		t.Errorf("credential user id = %s, want %s", credential.UserID, user.ID)
	}
	if credential.AccessToken != "tk-1" {
		t.Errorf("credential access token = %s, want tk-1", credential.AccessToken)
	}
}

func TestReconcileRepeatLogin(t *testing.T) {
	newTestDB(t)

	first, err := account.Reconcile("github", &provider.UserInfo{
		Username:       "avagut",
		ProviderUserID: "12345",
	}, newToken("tk-1"))
	if err != nil {
		t.Fatal(err)
	}

	second, err := account.Reconcile("github", &provider.UserInfo{
		Username:       "avagut-renamed",
		ProviderUserID: "12345",
	}, newToken("tk-2"))
	if err != nil {
		t.Fatal(err)
	}

	if second.ID != first.ID {
		t.Errorf("repeat login user id = %s, want %s", second.ID, first.ID)
	}
	if second.Username != "avagut" {
		t.Errorf("repeat login must not rename the user, got %s", second.Username)
	}

	credentials, err := db.GetCredentialsByUserID(first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(credentials) != 1 {
		t.Fatalf("credential count = %d, want 1", len(credentials))
	}
	if credentials[0].AccessToken != "tk-2" {
		t.Errorf("stored token = %s, want the refreshed tk-2", credentials[0].AccessToken)
	}
}

func TestReconcileEmptyToken(t *testing.T) {
	newTestDB(t)

	_, err := account.Reconcile("github", &provider.UserInfo{
		Username:       "avagut",
		ProviderUserID: "12345",
	}, nil)
	if !errors.Is(err, account.ErrEmptyToken) {
		t.Fatalf("err = %v, want ErrEmptyToken", err)
	}
	_, err = account.Reconcile("github", &provider.UserInfo{
		Username:       "avagut",
		ProviderUserID: "12345",
	}, &oauth2.Token{})
	if !errors.Is(err, account.ErrEmptyToken) {
		t.Fatalf("err = %v, want ErrEmptyToken", err)
	}

	if _, err := db.GetCredential("github", "12345"); !errors.Is(err, db.ErrNotFound("credential")) {
		t.Errorf("a failed login must not write credentials, err = %v", err)
	}
}

func TestReconcileEmptyProviderUserID(t *testing.T) {
	newTestDB(t)

	_, err := account.Reconcile("github", &provider.UserInfo{Username: "avagut"}, newToken("tk-1"))
	if !errors.Is(err, account.ErrEmptyProviderUserID) {
		t.Fatalf("err = %v, want ErrEmptyProviderUserID", err)
	}
}

func TestReconcileUsernameCollision(t *testing.T) {
	newTestDB(t)

	github, err := account.Reconcile("github", &provider.UserInfo{
		Username:       "avagut",
		ProviderUserID: "12345",
	}, newToken("tk-1"))
	if err != nil {
		t.Fatal(err)
	}

	google, err := account.Reconcile("google", &provider.UserInfo{
		Username:       "avagut",
		ProviderUserID: "67890",
	}, newToken("tk-2"))
	if err != nil {
		t.Fatal(err)
	}

	if google.ID == github.ID {
		t.Fatal("distinct provider identities must map to distinct users")
	}
	if github.Username != "avagut" {
		t.Errorf("first user username = %s, want avagut", github.Username)
	}
	if google.Username == github.Username {
		t.Error("second user must get a suffixed username")
	}
}

func TestReconcileConcurrentFirstLogin(t *testing.T) {
	newTestDB(t)

	const workers = 8
	users := make([]*model.User, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			users[i], errs[i] = account.Reconcile("github", &provider.UserInfo{
				Username:       "avagut",
				ProviderUserID: "12345",
			}, newToken(fmt.Sprintf("tk-%d", i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if users[i].ID != users[0].ID {
			t.Fatalf("worker %d got user %s, worker 0 got %s", i, users[i].ID, users[0].ID)
		}
	}

	credentials, err := db.GetCredentialsByUserID(users[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(credentials) != 1 {
		t.Errorf("credential count = %d, want 1", len(credentials))
	}
}

func TestIsProfileError(t *testing.T) {
	for _, err := range []error{
		account.ErrEmptyToken,
		account.ErrEmptyProviderUserID,
		account.ErrEmptyUsername,
	} {
		if !account.IsProfileError(err) {
			t.Errorf("IsProfileError(%v) = false, want true", err)
		}
	}
	if account.IsProfileError(errors.New("connection reset")) {
		t.Error("store errors must not class as profile errors")
	}
	if account.IsProfileError(nil) {
		t.Error("IsProfileError(nil) = true")
	}
}

func TestReconcileDistinctProvidersSameID(t *testing.T) {
	newTestDB(t)

	github, err := account.Reconcile("github", &provider.UserInfo{
		Username:       "one",
		ProviderUserID: "12345",
	}, newToken("tk-1"))
	if err != nil {
		t.Fatal(err)
	}

	google, err := account.Reconcile("google", &provider.UserInfo{
		Username:       "two",
		ProviderUserID: "12345",
	}, newToken("tk-2"))
	if err != nil {
		t.Fatal(err)
	}

	if google.ID == github.ID {
		t.Error("the credential key is (provider, provider user id), not the id alone")
	}
}
