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

type frenletDTO struct {
	ID         string    `db:"id"`
	Side       string    `db:"side"`
	Sender     string    `db:"sender"`
	Receiver   string    `db:"receiver"`
	Message    string    `db:"message"`
	Tag        string    `db:"tag"`
	LikeCount  uint32    `db:"like_count"`
	ReplyCount uint32    `db:"reply_count"`
	CreatedAt  time.Time `db:"created_at"`
}

func (s pg) CreateFrenletCopy(ctx context.Context, f *entities.Frenlet) error {
	dto := frenletDTO{
		ID:         f.ID,
		Side:       string(f.Side),
		Sender:     f.Sender,
		Receiver:   f.Receiver,
		Message:    f.Message,
		Tag:        f.Tag,
		LikeCount:  f.LikeCount,
		ReplyCount: f.ReplyCount,
		CreatedAt:  f.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO frenlet(id, side, sender, receiver, message, tag, like_count, reply_count, created_at)
			VALUES(:id, :side, :sender, :receiver, :message, :tag, :like_count, :reply_count, :created_at)
		`, dto,
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetFrenletCopy(ctx context.Context, id string, side entities.FrenletSide) (*entities.Frenlet, error) {
	var f frenletDTO

	if err := sqlx.GetContext(ctx, s.ext, &f, `
			SELECT id, side, sender, receiver, message, tag, like_count, reply_count, created_at
			FROM frenlet
			WHERE id = $1 AND side = $2
		`, id, string(side),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Frenlet{
		ID:         f.ID,
		Side:       entities.FrenletSide(f.Side),
		Sender:     f.Sender,
		Receiver:   f.Receiver,
		Message:    f.Message,
		Tag:        f.Tag,
		LikeCount:  f.LikeCount,
		ReplyCount: f.ReplyCount,
		CreatedAt:  f.CreatedAt,
	}, nil
}

func (s pg) DeleteFrenletCopy(ctx context.Context, id string, side entities.FrenletSide) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM frenlet WHERE id=$1 AND side=$2`,
		id, string(side),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) IncrementFrenletCounter(ctx context.Context, id string, side entities.FrenletSide, c storage.FrenletCounter, delta int32) error {
	switch c {
	case storage.FrenletLikeCount, storage.FrenletReplyCount:
	default:
		return fmt.Errorf("unknown frenlet counter %q", c)
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE frenlet SET %s = %s + $3 WHERE id = $1 AND side = $2`, c, c),
		id, string(side), delta,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) AddFrenletLike(ctx context.Context, id string, side entities.FrenletSide, l entities.FrenletLike) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO frenlet_like(frenlet_id, side, sender, liked_at) VALUES($1, $2, $3, $4)
		`, id, string(side), l.Sender, l.LikedAt.UTC(),
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) RemoveFrenletLike(ctx context.Context, id string, side entities.FrenletSide, sender string) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM frenlet_like WHERE frenlet_id=$1 AND side=$2 AND sender=$3`,
		id, string(side), sender,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) HasFrenletLike(ctx context.Context, id string, side entities.FrenletSide, sender string) (bool, error) {
	var exists bool

	if err := sqlx.GetContext(ctx, s.ext, &exists,
		`SELECT EXISTS(SELECT 1 FROM frenlet_like WHERE frenlet_id=$1 AND side=$2 AND sender=$3)`,
		id, string(side), sender,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return exists, nil
}

func (s pg) GetFrenletLikes(ctx context.Context, id string, side entities.FrenletSide) ([]entities.FrenletLike, error) {
	var likes []struct {
		Sender  string    `db:"sender"`
		LikedAt time.Time `db:"liked_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &likes, `
			SELECT sender, liked_at FROM frenlet_like
			WHERE frenlet_id=$1 AND side=$2
			ORDER BY liked_at
		`, id, string(side),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]entities.FrenletLike, len(likes))
	for i, v := range likes {
		out[i] = entities.FrenletLike{Sender: v.Sender, LikedAt: v.LikedAt}
	}

	return out, nil
}

func (s pg) AddFrenletReply(ctx context.Context, id string, side entities.FrenletSide, r entities.FrenletReply) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO frenlet_reply(frenlet_id, side, sender, message, replied_at) VALUES($1, $2, $3, $4, $5)
		`, id, string(side), r.Sender, r.Message, r.RepliedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetFrenletReplies(ctx context.Context, id string, side entities.FrenletSide) ([]entities.FrenletReply, error) {
	var replies []struct {
		Sender    string    `db:"sender"`
		Message   string    `db:"message"`
		RepliedAt time.Time `db:"replied_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &replies, `
			SELECT sender, message, replied_at FROM frenlet_reply
			WHERE frenlet_id=$1 AND side=$2
			ORDER BY id
		`, id, string(side),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]entities.FrenletReply, len(replies))
	for i, v := range replies {
		out[i] = entities.FrenletReply{Sender: v.Sender, Message: v.Message, RepliedAt: v.RepliedAt}
	}

	return out, nil
}
