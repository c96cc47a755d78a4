// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/payment"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// Interaction state errors, reported to clients as illegal-state failures.
var (
	// ErrAlreadyLiked returned when an apply-like finds the actor in the like list.
	ErrAlreadyLiked = errors.New("already liked")
	// ErrNotLiked returned when an undo-like finds no like record for the actor.
	ErrNotLiked = errors.New("not liked")
	// ErrAlreadyFollowing ...
	ErrAlreadyFollowing = errors.New("already following")
	// ErrNotFollowing ...
	ErrNotFollowing = errors.New("not following")
	// ErrSelfTarget returned when an actor follows or frenlets themselves.
	ErrSelfTarget = errors.New("self target")
	// ErrNotMutualFrens returned when a frenlet is sent outside a mutual follow.
	ErrNotMutualFrens = errors.New("not mutual frens")
	// ErrNoComment returned when a comment delete matches no comment record.
	ErrNoComment = errors.New("no such comment")
	// ErrForbidden returned when an actor mutates another actor's resource.
	ErrForbidden = errors.New("forbidden")
)

// Provider lifecycle errors.
var (
	// ErrProviderActive returned when chooseProvider runs against an unexpired subscription.
	ErrProviderActive = errors.New("provider is active")
	// ErrPendingWithdraw returned when chooseProvider runs against an expired
	// but not yet withdrawn subscription.
	ErrPendingWithdraw = errors.New("previous subscription awaits withdraw")
	// ErrNoProvider ...
	ErrNoProvider = errors.New("no provider")
	// ErrSameProvider returned when changeProvider targets the current provider.
	ErrSameProvider = errors.New("same provider")
	// ErrNotExpired returned when withdraw or skip run before the window end.
	ErrNotExpired = errors.New("subscription is not expired")
	// ErrExpired returned when changeProvider runs after the window end.
	ErrExpired = errors.New("subscription is expired")
)

// ProviderPhase is a closed set of derived subscription states.
type ProviderPhase string

const (
	// NoProviderPhase ...
	NoProviderPhase ProviderPhase = "no-provider"
	// ActivePhase ...
	ActivePhase ProviderPhase = "active"
	// ExpiredPhase means the window has passed and yield awaits withdraw or skip.
	// Derived on read, never pushed by a background job.
	ExpiredPhase ProviderPhase = "expired"
)

// ProviderState ...
type ProviderState struct {
	Phase        ProviderPhase
	Subscription *entities.Subscription
}

// PostView is a post with its embedded interaction records.
type PostView struct {
	Post     *entities.Post
	Likes    []entities.PostLike
	Comments []entities.PostComment
}

// FrenletView is one frenlet copy with its embedded records.
type FrenletView struct {
	Frenlet *entities.Frenlet
	Likes   []entities.FrenletLike
	Replies []entities.FrenletReply
}

// NotificationsView ...
type NotificationsView struct {
	Notifications []*entities.Notification
	UnseenCount   uint32
}

// Service is the interaction consistency engine. Actor identity is always
// an explicit parameter, never ambient state.
type Service interface {
	GetProfile(ctx context.Context, username string) (*entities.Actor, error)

	CreatePost(ctx context.Context, owner, description, image string) (*entities.Post, error)
	GetPostView(ctx context.Context, id entities.PostID) (*PostView, error)
	DeletePost(ctx context.Context, actor string, id entities.PostID) error

	LikePost(ctx context.Context, actor string, id entities.PostID, action entities.LikeAction) error
	CommentPost(ctx context.Context, actor string, id entities.PostID, message string) error
	DeleteComment(ctx context.Context, actor string, id entities.PostID, c entities.PostComment) error

	Follow(ctx context.Context, actor, target string, op entities.FollowOpCode) error

	CreateFrenlet(ctx context.Context, sender, receiver, message, tag string) (*entities.Frenlet, error)
	GetFrenletView(ctx context.Context, id string) (*FrenletView, error)
	LikeFrenlet(ctx context.Context, actor, id string, action entities.LikeAction) error
	ReplyFrenlet(ctx context.Context, actor, id, message string) error
	DeleteFrenlet(ctx context.Context, actor, id string) error

	ListNotifications(ctx context.Context, recipient string) (*NotificationsView, error)
	OpenNotifications(ctx context.Context, recipient string) error

	GetProviderState(ctx context.Context, actor string) (*ProviderState, error)
	ChooseProvider(ctx context.Context, actor, providerName string) (*entities.Subscription, error)
	WithdrawYield(ctx context.Context, actor, payoutAddress string) (*payment.Receipt, error)
	SkipWithdraw(ctx context.Context, actor string) error
	ChangeProvider(ctx context.Context, actor, newProviderName string) (*entities.Subscription, error)

	GetFeed(ctx context.Context, actor string) ([]*entities.Post, error)
}
