// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/apidon/hermes/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists returned when a unique record is inserted twice, e.g. a
// duplicate like slipping past the advisory precondition read.
var ErrAlreadyExists = fmt.Errorf("already exists")

// ActorCounter is a closed set of denormalized counter fields on an actor.
type ActorCounter string

const (
	// FollowerCount ...
	FollowerCount ActorCounter = "follower_count"
	// FollowingCount ...
	FollowingCount ActorCounter = "following_count"
	// FrenScore ...
	FrenScore ActorCounter = "fren_score"
	// NFTCount ...
	NFTCount ActorCounter = "nft_count"
)

// PostCounter is a closed set of denormalized counter fields on a post.
type PostCounter string

const (
	// PostLikeCount ...
	PostLikeCount PostCounter = "like_count"
	// PostCommentCount ...
	PostCommentCount PostCounter = "comment_count"
)

// FrenletCounter is a closed set of denormalized counter fields on a frenlet copy.
type FrenletCounter string

const (
	// FrenletLikeCount ...
	FrenletLikeCount FrenletCounter = "like_count"
	// FrenletReplyCount ...
	FrenletReplyCount FrenletCounter = "reply_count"
)

// Storage provides methods for interacting with database.
//
// Every method is a single independent write or read; the fan-out writer
// issues them concurrently without a surrounding transaction, so a partial
// failure leaves the writes which succeeded in place. InTx is the supported
// atomic upgrade path for the few spots which require it.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error

	CreateActor(ctx context.Context, a *entities.Actor) error
	GetActor(ctx context.Context, username string) (*entities.Actor, error)
	IncrementActorCounter(ctx context.Context, username string, c ActorCounter, delta int32) error
	SetNotificationsOpenedAt(ctx context.Context, username string, t time.Time) error

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id entities.PostID) (*entities.Post, error)
	GetPosts(ctx context.Context, ids []entities.PostID) ([]*entities.Post, error)
	ListRecentPosts(ctx context.Context, limit uint16) ([]*entities.Post, error)
	DeletePost(ctx context.Context, id entities.PostID, timestamp time.Time, deletedBy string) error
	IncrementPostCounter(ctx context.Context, id entities.PostID, c PostCounter, delta int32) error

	AddPostLike(ctx context.Context, id entities.PostID, l entities.PostLike) error
	RemovePostLike(ctx context.Context, id entities.PostID, sender string) error
	HasPostLike(ctx context.Context, id entities.PostID, sender string) (bool, error)
	GetPostLikes(ctx context.Context, id entities.PostID) ([]entities.PostLike, error)

	AddPostComment(ctx context.Context, id entities.PostID, c entities.PostComment) error
	RemovePostComment(ctx context.Context, id entities.PostID, c entities.PostComment) error
	HasPostComment(ctx context.Context, id entities.PostID, c entities.PostComment) (bool, error)
	GetPostComments(ctx context.Context, id entities.PostID) ([]entities.PostComment, error)

	AddFollowing(ctx context.Context, e entities.FollowEdge) error
	RemoveFollowing(ctx context.Context, owner, target string) error
	AddFollower(ctx context.Context, e entities.FollowEdge) error
	RemoveFollower(ctx context.Context, owner, target string) error
	HasFollowing(ctx context.Context, owner, target string) (bool, error)

	CreateFrenletCopy(ctx context.Context, f *entities.Frenlet) error
	GetFrenletCopy(ctx context.Context, id string, side entities.FrenletSide) (*entities.Frenlet, error)
	DeleteFrenletCopy(ctx context.Context, id string, side entities.FrenletSide) error
	IncrementFrenletCounter(ctx context.Context, id string, side entities.FrenletSide, c FrenletCounter, delta int32) error

	AddFrenletLike(ctx context.Context, id string, side entities.FrenletSide, l entities.FrenletLike) error
	RemoveFrenletLike(ctx context.Context, id string, side entities.FrenletSide, sender string) error
	HasFrenletLike(ctx context.Context, id string, side entities.FrenletSide, sender string) (bool, error)
	GetFrenletLikes(ctx context.Context, id string, side entities.FrenletSide) ([]entities.FrenletLike, error)

	AddFrenletReply(ctx context.Context, id string, side entities.FrenletSide, r entities.FrenletReply) error
	GetFrenletReplies(ctx context.Context, id string, side entities.FrenletSide) ([]entities.FrenletReply, error)

	AddNotification(ctx context.Context, n *entities.Notification) error
	RemoveNotification(ctx context.Context, n *entities.Notification) error
	ListNotifications(ctx context.Context, recipient string) ([]*entities.Notification, error)
	UnseenNotificationsCount(ctx context.Context, recipient string) (uint32, error)

	AppendLedger(ctx context.Context, e entities.LedgerEntry) error
	RemoveLedger(ctx context.Context, e entities.LedgerEntry) error
	ListLedger(ctx context.Context, actor string) ([]entities.LedgerEntry, error)

	GetCurrentSubscription(ctx context.Context, actor string) (*entities.Subscription, error)
	CreateSubscription(ctx context.Context, s *entities.Subscription) error
	ArchiveSubscription(ctx context.Context, s *entities.Subscription) error
	DeleteCurrentSubscription(ctx context.Context, actor string) error
	AddUncollectedDebt(ctx context.Context, actor, providerName string, amount int64, t time.Time) error
}
