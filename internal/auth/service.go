package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"amorago/internal/logger"
	"amorago/internal/models"
	"amorago/internal/redis"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidToken covers malformed, expired, and revoked credentials.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidCredentials is returned on a failed email/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when upgrading to an email already in use.
	ErrEmailTaken = errors.New("email already registered")
)

const denylistKeyPrefix = "auth:denylist:"

// Service acts as the identity provider: it creates principals, issues signed
// bearer tokens, and resolves tokens back to principal ids.
type Service struct {
	db       *sql.DB
	cache    *redis.Client
	log      *logger.Logger
	secret   []byte
	tokenTTL time.Duration
}

// NewService constructs the auth service. The redis client may be nil, in
// which case logout cannot revoke tokens before they expire.
func NewService(db *sql.DB, cache *redis.Client, log *logger.Logger, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		db:       db,
		cache:    cache,
		log:      log,
		secret:   []byte(secret),
		tokenTTL: ttl,
	}
}

// Session is the result of a sign-in: a principal and its bearer token.
type Session struct {
	Token       string
	PrincipalID string
	IsGuest     bool
	ExpiresAt   time.Time
}

// SignInGuest provisions an anonymous principal with a fresh quota row and
// issues a token for it. The profile row and the identity are created
// together so a valid token always has a backing record.
func (s *Service) SignInGuest(ctx context.Context) (*Session, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, is_guest, message_count, created_at, updated_at) VALUES (?, 1, 0, ?, ?)`,
		id, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("create guest profile: %w", err)
	}
	return s.issueSession(id, true)
}

// Upgrade converts a guest principal into a permanent account by attaching
// credentials and clearing the guest flag. The message count carries over.
func (s *Service) Upgrade(ctx context.Context, principalID, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	var taken bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM profiles WHERE email = ? AND id != ?)`, email, principalID,
	).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET email = ?, password_hash = ?, is_guest = 0, updated_at = ? WHERE id = ?`,
		email, hash, time.Now().UTC(), principalID,
	)
	if err != nil {
		return fmt.Errorf("upgrade profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Login verifies credentials and issues a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var profile models.Profile
	var hash sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, is_guest, password_hash FROM profiles WHERE email = ?`, email,
	).Scan(&profile.ID, &profile.IsGuest, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	if !hash.Valid || bcrypt.CompareHashAndPassword([]byte(hash.String), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(profile.ID, profile.IsGuest)
}

// VerifyToken resolves a bearer token to its principal id. It returns
// ErrInvalidToken for anything wrong with the credential itself and a
// wrapped error for internal faults such as an unreachable denylist.
func (s *Service) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}

	if jti, _ := claims["jti"].(string); jti != "" && s.cache != nil {
		_, err := s.cache.Get(ctx, denylistKeyPrefix+jti)
		if err == nil {
			return "", ErrInvalidToken
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			return "", fmt.Errorf("denylist lookup: %w", err)
		}
	}
	return sub, nil
}

// RevokeToken denylists the token until its natural expiry. Without a redis
// client revocation is a logged no-op.
func (s *Service) RevokeToken(ctx context.Context, tokenString string) error {
	if s.cache == nil {
		s.log.Warn("token revocation skipped, no cache configured")
		return nil
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	jti, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if jti == "" || exp == 0 {
		return ErrInvalidToken
	}
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, denylistKeyPrefix+jti, "1", ttl); err != nil {
		return fmt.Errorf("denylist token: %w", err)
	}
	return nil
}

func (s *Service) issueSession(principalID string, isGuest bool) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":  principalID,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"anon": isGuest,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Session{
		Token:       signed,
		PrincipalID: principalID,
		IsGuest:     isGuest,
		ExpiresAt:   expiresAt,
	}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
