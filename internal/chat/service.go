package chat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"amorago/internal/logger"
	"amorago/internal/models"
)

// GuestMessageLimit is the number of messages an anonymous principal may send.
const GuestMessageLimit = 5

var (
	// ErrEmptyMessage is returned when the request carries no message text.
	ErrEmptyMessage = errors.New("message is required")
	// ErrLimitReached is returned when a guest has exhausted the quota.
	ErrLimitReached = errors.New("guest limit reached")
	// ErrProfileLookup wraps failures to resolve the principal's quota row.
	ErrProfileLookup = errors.New("fetch profile")
)

// Service enforces the per-principal message quota and records exchanges.
type Service struct {
	db  *sql.DB
	gen Generator
	log *logger.Logger
}

// NewService builds the chat service around a store and a reply generator.
func NewService(db *sql.DB, gen Generator, log *logger.Logger) *Service {
	return &Service{db: db, gen: gen, log: log}
}

// Exchange is the outcome of one accepted message. Remaining is nil for
// non-guest principals, who have no limit.
type Exchange struct {
	Reply     string
	Remaining *int
}

// TryConsumeQuota atomically increments the principal's message count unless
// the principal is a guest already at the limit. The check and the increment
// are a single conditional update so concurrent requests cannot both pass a
// stale check. Returns the count after the increment.
func (s *Service) TryConsumeQuota(ctx context.Context, principalID string) (newCount int, isGuest bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin quota tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE profiles SET message_count = message_count + 1, updated_at = ?
		 WHERE id = ? AND (is_guest = 0 OR message_count < ?)`,
		time.Now().UTC(), principalID, GuestMessageLimit,
	)
	if err != nil {
		return 0, false, fmt.Errorf("%w: consume quota: %v", ErrProfileLookup, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, false, fmt.Errorf("%w: rows affected: %v", ErrProfileLookup, err)
	}
	if affected == 0 {
		var exists bool
		if scanErr := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM profiles WHERE id = ?)`, principalID,
		).Scan(&exists); scanErr != nil {
			err = fmt.Errorf("%w: verify profile: %v", ErrProfileLookup, scanErr)
			return 0, false, err
		}
		if !exists {
			err = fmt.Errorf("%w: no profile for principal %s", ErrProfileLookup, principalID)
			return 0, false, err
		}
		err = ErrLimitReached
		return 0, true, err
	}

	if err = tx.QueryRowContext(ctx,
		`SELECT is_guest, message_count FROM profiles WHERE id = ?`, principalID,
	).Scan(&isGuest, &newCount); err != nil {
		err = fmt.Errorf("%w: read count: %v", ErrProfileLookup, err)
		return 0, false, err
	}
	if err = tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit quota tx: %w", err)
	}
	return newCount, isGuest, nil
}

// Send runs the full pipeline for one message: validate, consume quota,
// generate the reply, and record both sides of the exchange. The message log
// is best-effort; a failed write is logged but the reply is still returned.
func (s *Service) Send(ctx context.Context, principalID, message string) (*Exchange, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	newCount, isGuest, err := s.TryConsumeQuota(ctx, principalID)
	if err != nil {
		return nil, err
	}

	reply, err := s.gen.Generate(ctx, message, newCount)
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	if err := s.recordExchange(ctx, principalID, message, reply); err != nil {
		s.log.Error("record exchange failed", "principal_id", principalID, "err", err)
	}

	exchange := &Exchange{Reply: reply}
	if isGuest {
		remaining := GuestMessageLimit - newCount
		if remaining < 0 {
			remaining = 0
		}
		exchange.Remaining = &remaining
	}
	return exchange, nil
}

// recordExchange appends the user and assistant rows in one transaction so a
// partial exchange can never be observed in the log.
func (s *Service) recordExchange(ctx context.Context, principalID, message, reply string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin message tx: %w", err)
	}
	now := time.Now().UTC()
	for _, row := range []struct {
		role    models.Role
		content string
	}{
		{models.RoleUser, message},
		{models.RoleAssistant, reply},
	} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chat_messages (user_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
			principalID, row.role, row.content, now,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s message: %w", row.role, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit message tx: %w", err)
	}
	return nil
}

// History returns the principal's chat log in insertion order.
func (s *Service) History(ctx context.Context, principalID string) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, role, content, created_at FROM chat_messages WHERE user_id = ? ORDER BY id`,
		principalID,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
