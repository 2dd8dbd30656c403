package auth

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"amorago/internal/config"
	"amorago/internal/logger"
	"amorago/internal/storage"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	cfg := &config.Config{
		Databases: map[string]config.DatabaseConfig{
			"sqlite3": {DSN: filepath.Join(t.TempDir(), "auth_test.db")},
		},
	}
	db, err := storage.Open("sqlite3", cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := storage.Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(db *sql.DB, ttl time.Duration) *Service {
	return NewService(db, nil, logger.NewNop(), "test-secret", ttl)
}

func TestGuestSignInProvisionsProfile(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := newTestService(db, time.Hour)

	session, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	if session.Token == "" || session.PrincipalID == "" || !session.IsGuest {
		t.Fatalf("unexpected session: %+v", session)
	}

	var isGuest bool
	var count int
	if err := db.QueryRow(
		`SELECT is_guest, message_count FROM profiles WHERE id = ?`, session.PrincipalID,
	).Scan(&isGuest, &count); err != nil {
		t.Fatalf("profile row missing: %v", err)
	}
	if !isGuest || count != 0 {
		t.Fatalf("expected fresh guest profile, got guest=%v count=%d", isGuest, count)
	}

	principalID, err := svc.VerifyToken(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if principalID != session.PrincipalID {
		t.Fatalf("principal mismatch: %s vs %s", principalID, session.PrincipalID)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := newTestService(db, time.Millisecond)

	session, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	time.Sleep(1100 * time.Millisecond)
	if _, err := svc.VerifyToken(context.Background(), session.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := newTestService(db, time.Hour)

	session, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	tampered := session.Token[:len(session.Token)-2] + "xx"
	if _, err := svc.VerifyToken(context.Background(), tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
	if _, err := svc.VerifyToken(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}

	other := newTestService(db, time.Hour)
	other.secret = []byte("different-secret")
	if _, err := other.VerifyToken(context.Background(), session.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestUpgradeAndLogin(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := newTestService(db, time.Hour)

	session, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}

	if err := svc.Upgrade(context.Background(), session.PrincipalID, "User@Example.com", "secret123"); err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}

	var isGuest bool
	var email string
	if err := db.QueryRow(
		`SELECT is_guest, email FROM profiles WHERE id = ?`, session.PrincipalID,
	).Scan(&isGuest, &email); err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if isGuest {
		t.Fatalf("profile still marked guest after upgrade")
	}
	if email != "user@example.com" {
		t.Fatalf("email not normalized: %q", email)
	}

	login, err := svc.Login(context.Background(), "user@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if login.PrincipalID != session.PrincipalID || login.IsGuest {
		t.Fatalf("unexpected login session: %+v", login)
	}

	if _, err := svc.Login(context.Background(), "user@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUpgradeDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := newTestService(db, time.Hour)

	first, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	if err := svc.Upgrade(context.Background(), first.PrincipalID, "taken@example.com", "secret123"); err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}

	second, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	if err := svc.Upgrade(context.Background(), second.PrincipalID, "taken@example.com", "secret456"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRevokeWithoutCacheIsNoop(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := newTestService(db, time.Hour)

	session, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	if err := svc.RevokeToken(context.Background(), session.Token); err != nil {
		t.Fatalf("RevokeToken without cache should be a no-op, got %v", err)
	}
	// Token still verifies; revocation requires the denylist cache.
	if _, err := svc.VerifyToken(context.Background(), session.Token); err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
}

func TestTokenCarriesAnonClaim(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := newTestService(db, time.Hour)

	session, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	if parts := strings.Split(session.Token, "."); len(parts) != 3 {
		t.Fatalf("expected a JWT, got %q", session.Token)
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()
	svc := newTestService(db, time.Hour)

	readHash := func(id string) string {
		t.Helper()
		var hash string
		if err := db.QueryRow(`SELECT password_hash FROM profiles WHERE id = ?`, id).Scan(&hash); err != nil {
			t.Fatalf("read hash: %v", err)
		}
		return hash
	}

	first, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	if err := svc.Upgrade(context.Background(), first.PrincipalID, "one@example.com", "hunter2"); err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}
	second, err := svc.SignInGuest(context.Background())
	if err != nil {
		t.Fatalf("SignInGuest error: %v", err)
	}
	if err := svc.Upgrade(context.Background(), second.PrincipalID, "two@example.com", "hunter2"); err != nil {
		t.Fatalf("Upgrade error: %v", err)
	}

	firstHash := readHash(first.PrincipalID)
	secondHash := readHash(second.PrincipalID)
	if firstHash == "hunter2" || secondHash == "hunter2" {
		t.Fatalf("password stored in the clear")
	}
	// Salted hashing must not map identical passwords to identical digests.
	if firstHash == secondHash {
		t.Fatalf("identical passwords produced identical stored hashes")
	}

	if _, err := svc.Login(context.Background(), "one@example.com", "hunter2"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if _, err := svc.Login(context.Background(), "one@example.com", "Hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong case, got %v", err)
	}
}
