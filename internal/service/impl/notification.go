package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/service"
)

// project derives a notification from an interaction mutation. Apply
// appends to the recipient's log; undo removes the single record matching
// the interaction by field equality and fails when none is found. A
// self-action never notifies, in either direction.
func (s *srv) project(ctx context.Context, cause entities.NotificationCause, recipient, sender string, ts time.Time, apply bool, relatedPath string) error {
	if sender == recipient {
		return nil
	}

	n := &entities.Notification{
		Recipient:  recipient,
		Cause:      cause,
		Sender:     sender,
		NotifiedAt: ts,
		PostPath:   relatedPath,
	}

	if apply {
		if err := s.s.AddNotification(ctx, n); err != nil {
			return fmt.Errorf("failed to add notification: %w", err)
		}
		return nil
	}

	if err := s.s.RemoveNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to remove notification: %w", err)
	}

	return nil
}

func (s *srv) ListNotifications(ctx context.Context, recipient string) (*service.NotificationsView, error) {
	notifications, err := s.s.ListNotifications(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unseen, err := s.s.UnseenNotificationsCount(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to count unseen notifications: %w", err)
	}

	return &service.NotificationsView{
		Notifications: notifications,
		UnseenCount:   unseen,
	}, nil
}

// OpenNotifications advances the recipient's watermark to now, zeroing the
// unseen count.
func (s *srv) OpenNotifications(ctx context.Context, recipient string) error {
	if err := s.s.SetNotificationsOpenedAt(ctx, recipient, s.now()); err != nil {
		return fmt.Errorf("failed to set watermark: %w", err)
	}

	return nil
}
