// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

var errBeginCalledWithinTx = errors.New("can not run InTx within tx")

const uniqueViolation = "23505"

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

// Counters are scanned signed: concurrent partial failures can drive a
// denormalized count below zero, and such a row must stay readable.
type actorDTO struct {
	Username              string    `db:"username"`
	FullName              string    `db:"full_name"`
	Avatar                string    `db:"avatar"`
	Email                 string    `db:"email"`
	UserID                string    `db:"user_id"`
	Bio                   string    `db:"bio"`
	FollowerCount         int32     `db:"follower_count"`
	FollowingCount        int32     `db:"following_count"`
	FrenScore             int64     `db:"fren_score"`
	NFTCount              int32     `db:"nft_count"`
	NotificationsOpenedAt time.Time `db:"notifications_opened_at"`
	CreatedAt             time.Time `db:"created_at"`
}

type postDTO struct {
	Owner        string    `db:"owner"`
	UUID         string    `db:"uuid"`
	Description  string    `db:"description"`
	Image        string    `db:"image"`
	LikeCount    int32     `db:"like_count"`
	CommentCount int32     `db:"comment_count"`
	NFTConverted bool      `db:"nft_converted"`
	NFTPath      string    `db:"nft_path"`
	CreatedAt    time.Time `db:"created_at"`
}

func clampCount(v int32) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) CreateActor(ctx context.Context, a *entities.Actor) error {
	dto := actorDTO{
		Username:              a.Username,
		FullName:              a.FullName,
		Avatar:                a.Avatar,
		Email:                 a.Email,
		UserID:                a.UserID,
		Bio:                   a.Bio,
		FollowerCount:         int32(a.FollowerCount),
		FollowingCount:        int32(a.FollowingCount),
		FrenScore:             a.FrenScore,
		NFTCount:              int32(a.NFTCount),
		NotificationsOpenedAt: a.NotificationsOpenedAt.UTC(),
		CreatedAt:             a.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO actor(username, full_name, avatar, email, user_id, bio, follower_count, following_count,
				fren_score, nft_count, notifications_opened_at, created_at)
			VALUES(:username, :full_name, :avatar, :email, :user_id, :bio, :follower_count, :following_count,
				:fren_score, :nft_count, :notifications_opened_at, :created_at)
		`, dto,
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetActor(ctx context.Context, username string) (*entities.Actor, error) {
	var a actorDTO

	if err := sqlx.GetContext(ctx, s.ext, &a, `
			SELECT username, full_name, avatar, email, user_id, bio, follower_count, following_count,
				fren_score, nft_count, notifications_opened_at, created_at
			FROM actor
			WHERE username = $1
		`, username,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.Actor{
		Username:              a.Username,
		FullName:              a.FullName,
		Avatar:                a.Avatar,
		Email:                 a.Email,
		UserID:                a.UserID,
		Bio:                   a.Bio,
		FollowerCount:         clampCount(a.FollowerCount),
		FollowingCount:        clampCount(a.FollowingCount),
		FrenScore:             a.FrenScore,
		NFTCount:              clampCount(a.NFTCount),
		NotificationsOpenedAt: a.NotificationsOpenedAt,
		CreatedAt:             a.CreatedAt,
	}, nil
}

func (s pg) IncrementActorCounter(ctx context.Context, username string, c storage.ActorCounter, delta int32) error {
	switch c {
	case storage.FollowerCount, storage.FollowingCount, storage.FrenScore, storage.NFTCount:
	default:
		return fmt.Errorf("unknown actor counter %q", c)
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE actor SET %s = %s + $2 WHERE username = $1`, c, c),
		username, delta,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetNotificationsOpenedAt(ctx context.Context, username string, t time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE actor SET notifications_opened_at = $2 WHERE username = $1`,
		username, t.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	dto := postDTO{
		Owner:        p.ID.Owner,
		UUID:         p.ID.UUID,
		Description:  p.Description,
		Image:        p.Image,
		LikeCount:    int32(p.LikeCount),
		CommentCount: int32(p.CommentCount),
		NFTConverted: p.NFTConverted,
		NFTPath:      p.NFTPath,
		CreatedAt:    p.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO post(owner, uuid, description, image, like_count, comment_count, nft_converted, nft_path, created_at)
			VALUES(:owner, :uuid, :description, :image, :like_count, :comment_count, :nft_converted, :nft_path, :created_at)
		`, dto,
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetPost(ctx context.Context, id entities.PostID) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT owner, uuid, description, image, like_count, comment_count, nft_converted, nft_path, created_at
			FROM post
			WHERE owner = $1 AND uuid = $2 AND deleted_at IS NULL
		`, id.Owner, id.UUID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) GetPosts(ctx context.Context, ids []entities.PostID) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, 0, len(ids)*2)
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)
		args = append(args, id.Owner, id.UUID)
	}

	query := fmt.Sprintf(`
			SELECT owner, uuid, description, image, like_count, comment_count, nft_converted, nft_path, created_at
			FROM post
			WHERE (owner, uuid) IN (%s) AND deleted_at IS NULL
		`, strings.Join(placeholders, ", "))

	var p []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &p, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(p))
	for i, v := range p {
		out[i] = toPost(v)
	}

	return out, nil
}

func (s pg) ListRecentPosts(ctx context.Context, limit uint16) ([]*entities.Post, error) {
	var p []*postDTO

	if err := sqlx.SelectContext(ctx, s.ext, &p, `
			SELECT owner, uuid, description, image, like_count, comment_count, nft_converted, nft_path, created_at
			FROM post
			WHERE deleted_at IS NULL
			ORDER BY created_at DESC
			LIMIT $1
		`, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(p))
	for i, v := range p {
		out[i] = toPost(v)
	}

	return out, nil
}

func (s pg) DeletePost(ctx context.Context, id entities.PostID, timestamp time.Time, deletedBy string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE post SET deleted_at=$3, deleted_by=$4 WHERE owner=$1 AND uuid=$2 AND deleted_at IS NULL`,
		id.Owner, id.UUID, timestamp.UTC(), deletedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) IncrementPostCounter(ctx context.Context, id entities.PostID, c storage.PostCounter, delta int32) error {
	switch c {
	case storage.PostLikeCount, storage.PostCommentCount:
	default:
		return fmt.Errorf("unknown post counter %q", c)
	}

	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`UPDATE post SET %s = %s + $3 WHERE owner = $1 AND uuid = $2 AND deleted_at IS NULL`, c, c),
		id.Owner, id.UUID, delta,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) AddPostLike(ctx context.Context, id entities.PostID, l entities.PostLike) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO post_like(post_owner, post_uuid, sender, liked_at) VALUES($1, $2, $3, $4)
		`, id.Owner, id.UUID, l.Sender, l.LikedAt.UTC(),
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) RemovePostLike(ctx context.Context, id entities.PostID, sender string) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM post_like WHERE post_owner=$1 AND post_uuid=$2 AND sender=$3`,
		id.Owner, id.UUID, sender,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) HasPostLike(ctx context.Context, id entities.PostID, sender string) (bool, error) {
	var exists bool

	if err := sqlx.GetContext(ctx, s.ext, &exists,
		`SELECT EXISTS(SELECT 1 FROM post_like WHERE post_owner=$1 AND post_uuid=$2 AND sender=$3)`,
		id.Owner, id.UUID, sender,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return exists, nil
}

func (s pg) GetPostLikes(ctx context.Context, id entities.PostID) ([]entities.PostLike, error) {
	var likes []struct {
		Sender  string    `db:"sender"`
		LikedAt time.Time `db:"liked_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &likes, `
			SELECT sender, liked_at FROM post_like
			WHERE post_owner=$1 AND post_uuid=$2
			ORDER BY liked_at
		`, id.Owner, id.UUID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]entities.PostLike, len(likes))
	for i, v := range likes {
		out[i] = entities.PostLike{Sender: v.Sender, LikedAt: v.LikedAt}
	}

	return out, nil
}

func (s pg) AddPostComment(ctx context.Context, id entities.PostID, c entities.PostComment) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO post_comment(post_owner, post_uuid, sender, message, commented_at) VALUES($1, $2, $3, $4, $5)
		`, id.Owner, id.UUID, c.Sender, c.Message, c.CommentedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

// RemovePostComment deletes the single oldest comment matching the record by
// field equality, so duplicate records can shadow each other.
func (s pg) RemovePostComment(ctx context.Context, id entities.PostID, c entities.PostComment) error {
	res, err := s.ext.ExecContext(ctx, `
			DELETE FROM post_comment WHERE id = (
				SELECT id FROM post_comment
				WHERE post_owner=$1 AND post_uuid=$2 AND sender=$3 AND message=$4 AND commented_at=$5
				ORDER BY id
				LIMIT 1
			)
		`, id.Owner, id.UUID, c.Sender, c.Message, c.CommentedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) HasPostComment(ctx context.Context, id entities.PostID, c entities.PostComment) (bool, error) {
	var exists bool

	if err := sqlx.GetContext(ctx, s.ext, &exists, `
			SELECT EXISTS(
				SELECT 1 FROM post_comment
				WHERE post_owner=$1 AND post_uuid=$2 AND sender=$3 AND message=$4 AND commented_at=$5
			)
		`, id.Owner, id.UUID, c.Sender, c.Message, c.CommentedAt.UTC(),
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return exists, nil
}

func (s pg) GetPostComments(ctx context.Context, id entities.PostID) ([]entities.PostComment, error) {
	var comments []struct {
		Sender      string    `db:"sender"`
		Message     string    `db:"message"`
		CommentedAt time.Time `db:"commented_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &comments, `
			SELECT sender, message, commented_at FROM post_comment
			WHERE post_owner=$1 AND post_uuid=$2
			ORDER BY id
		`, id.Owner, id.UUID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]entities.PostComment, len(comments))
	for i, v := range comments {
		out[i] = entities.PostComment{Sender: v.Sender, Message: v.Message, CommentedAt: v.CommentedAt}
	}

	return out, nil
}

func (s pg) AddFollowing(ctx context.Context, e entities.FollowEdge) error {
	return s.addFollowEdge(ctx, "following", e)
}

func (s pg) RemoveFollowing(ctx context.Context, owner, target string) error {
	return s.removeFollowEdge(ctx, "following", owner, target)
}

func (s pg) AddFollower(ctx context.Context, e entities.FollowEdge) error {
	return s.addFollowEdge(ctx, "follower", e)
}

func (s pg) RemoveFollower(ctx context.Context, owner, target string) error {
	return s.removeFollowEdge(ctx, "follower", owner, target)
}

func (s pg) HasFollowing(ctx context.Context, owner, target string) (bool, error) {
	var exists bool

	if err := sqlx.GetContext(ctx, s.ext, &exists,
		`SELECT EXISTS(SELECT 1 FROM following WHERE owner=$1 AND target=$2)`,
		owner, target,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return exists, nil
}

func (s pg) addFollowEdge(ctx context.Context, table string, e entities.FollowEdge) error {
	if _, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s(owner, target, followed_at) VALUES($1, $2, $3)`, table),
		e.Owner, e.Target, e.FollowedAt.UTC(),
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) removeFollowEdge(ctx context.Context, table, owner, target string) error {
	res, err := s.ext.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE owner=$1 AND target=$2`, table),
		owner, target,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func toPost(p *postDTO) *entities.Post {
	return &entities.Post{
		ID:           entities.PostID{Owner: p.Owner, UUID: p.UUID},
		Description:  p.Description,
		Image:        p.Image,
		LikeCount:    clampCount(p.LikeCount),
		CommentCount: clampCount(p.CommentCount),
		NFTConverted: p.NFTConverted,
		NFTPath:      p.NFTPath,
		CreatedAt:    p.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
