package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/storage"
)

type notificationDTO struct {
	Recipient  string    `db:"recipient"`
	Cause      string    `db:"cause"`
	Sender     string    `db:"sender"`
	NotifiedAt time.Time `db:"notified_at"`
	PostPath   string    `db:"post_path"`
}

func (s pg) AddNotification(ctx context.Context, n *entities.Notification) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO notification(recipient, cause, sender, notified_at, post_path) VALUES($1, $2, $3, $4, $5)
		`, n.Recipient, string(n.Cause), n.Sender, n.NotifiedAt.UTC(), n.PostPath,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

// RemoveNotification deletes the single oldest record matching the whole
// notification by field equality, so duplicate timestamps can shadow each
// other.
func (s pg) RemoveNotification(ctx context.Context, n *entities.Notification) error {
	res, err := s.ext.ExecContext(ctx, `
			DELETE FROM notification WHERE id = (
				SELECT id FROM notification
				WHERE recipient=$1 AND cause=$2 AND sender=$3 AND post_path=$4
				ORDER BY id
				LIMIT 1
			)
		`, n.Recipient, string(n.Cause), n.Sender, n.PostPath,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListNotifications(ctx context.Context, recipient string) ([]*entities.Notification, error) {
	var n []*notificationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &n, `
			SELECT recipient, cause, sender, notified_at, post_path FROM notification
			WHERE recipient = $1
			ORDER BY notified_at DESC
		`, recipient,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Notification, len(n))
	for i, v := range n {
		out[i] = &entities.Notification{
			Recipient:  v.Recipient,
			Cause:      entities.NotificationCause(v.Cause),
			Sender:     v.Sender,
			NotifiedAt: v.NotifiedAt,
			PostPath:   v.PostPath,
		}
	}

	return out, nil
}

func (s pg) UnseenNotificationsCount(ctx context.Context, recipient string) (uint32, error) {
	var count uint32

	if err := sqlx.GetContext(ctx, s.ext, &count, `
			SELECT count(*) FROM notification
			WHERE recipient = $1
				AND notified_at > (SELECT notifications_opened_at FROM actor WHERE username = $1)
		`, recipient,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return count, nil
}

func (s pg) AppendLedger(ctx context.Context, e entities.LedgerEntry) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO ledger(actor, kind, post_path, recorded_at) VALUES($1, $2, $3, $4)
		`, e.Actor, string(e.Kind), e.PostPath, e.RecordedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

// RemoveLedger deletes the single oldest exactly matching entry.
func (s pg) RemoveLedger(ctx context.Context, e entities.LedgerEntry) error {
	res, err := s.ext.ExecContext(ctx, `
			DELETE FROM ledger WHERE id = (
				SELECT id FROM ledger
				WHERE actor=$1 AND kind=$2 AND post_path=$3
				ORDER BY id
				LIMIT 1
			)
		`, e.Actor, string(e.Kind), e.PostPath,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListLedger(ctx context.Context, actor string) ([]entities.LedgerEntry, error) {
	var l []struct {
		Actor      string    `db:"actor"`
		Kind       string    `db:"kind"`
		PostPath   string    `db:"post_path"`
		RecordedAt time.Time `db:"recorded_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &l, `
			SELECT actor, kind, post_path, recorded_at FROM ledger
			WHERE actor = $1
			ORDER BY recorded_at
		`, actor,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]entities.LedgerEntry, len(l))
	for i, v := range l {
		out[i] = entities.LedgerEntry{
			Actor:      v.Actor,
			Kind:       entities.LedgerKind(v.Kind),
			PostPath:   v.PostPath,
			RecordedAt: v.RecordedAt,
		}
	}

	return out, nil
}
