package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/storage"
)

type subscriptionDTO struct {
	Actor        string    `db:"actor"`
	ProviderName string    `db:"provider_name"`
	StartsAt     time.Time `db:"starts_at"`
	EndsAt       time.Time `db:"ends_at"`
	Yield        int64     `db:"yield"`
	Archived     bool      `db:"archived"`
	ArchiveName  string    `db:"archive_name"`
}

func (s pg) GetCurrentSubscription(ctx context.Context, actor string) (*entities.Subscription, error) {
	var dto subscriptionDTO

	if err := sqlx.GetContext(ctx, s.ext, &dto, `
			SELECT actor, provider_name, starts_at, ends_at, yield, archived, archive_name
			FROM subscription
			WHERE actor = $1 AND NOT archived
		`, actor,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Subscription{
		Actor:        dto.Actor,
		ProviderName: dto.ProviderName,
		StartsAt:     dto.StartsAt,
		EndsAt:       dto.EndsAt,
		Yield:        dto.Yield,
		Archived:     dto.Archived,
		ArchiveName:  dto.ArchiveName,
	}, nil
}

func (s pg) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	dto := subscriptionDTO{
		Actor:        sub.Actor,
		ProviderName: sub.ProviderName,
		StartsAt:     sub.StartsAt.UTC(),
		EndsAt:       sub.EndsAt.UTC(),
		Yield:        sub.Yield,
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO subscription(actor, provider_name, starts_at, ends_at, yield)
			VALUES(:actor, :provider_name, :starts_at, :ends_at, :yield)
		`, dto,
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

// ArchiveSubscription inserts the archival copy of a subscription under its
// archive name. The current row is removed by a separate
// DeleteCurrentSubscription call; the two writes are intentionally not
// transactional.
func (s pg) ArchiveSubscription(ctx context.Context, sub *entities.Subscription) error {
	dto := subscriptionDTO{
		Actor:        sub.Actor,
		ProviderName: sub.ProviderName,
		StartsAt:     sub.StartsAt.UTC(),
		EndsAt:       sub.EndsAt.UTC(),
		Yield:        sub.Yield,
		Archived:     true,
		ArchiveName:  fmt.Sprintf("old-%s-%d", sub.ProviderName, sub.StartsAt.Unix()),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext, `
			INSERT INTO subscription(actor, provider_name, starts_at, ends_at, yield, archived, archive_name)
			VALUES(:actor, :provider_name, :starts_at, :ends_at, :yield, :archived, :archive_name)
		`, dto,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteCurrentSubscription(ctx context.Context, actor string) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM subscription WHERE actor = $1 AND NOT archived`,
		actor,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) AddUncollectedDebt(ctx context.Context, actor, providerName string, amount int64, t time.Time) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO uncollected_debt(actor, provider_name, amount, recorded_at) VALUES($1, $2, $3, $4)
		`, actor, providerName, amount, t.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
