// Package entities contains main entities of service.
package entities

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDiscriminator returned when a closed enum is built from an unknown wire value.
var ErrInvalidDiscriminator = errors.New("invalid discriminator")

// Actor is a registered user keyed by unique username.
type Actor struct {
	Username       string
	FullName       string
	Avatar         string
	Email          string
	UserID         string
	Bio            string
	FollowerCount  uint32
	FollowingCount uint32
	FrenScore      int64
	NFTCount       uint32
	// NotificationsOpenedAt is the watermark used to compute unseen count.
	NotificationsOpenedAt time.Time
	CreatedAt             time.Time
}

// PostID identifies a post by its owner and uuid.
type PostID struct {
	Owner string
	UUID  string
}

func (id PostID) String() string {
	return fmt.Sprintf("%s/%s", id.Owner, id.UUID)
}

// Post ...
type Post struct {
	ID           PostID
	Description  string
	Image        string
	LikeCount    uint32
	CommentCount uint32
	NFTConverted bool
	NFTPath      string
	CreatedAt    time.Time
}

// PostLike is a single like record embedded in a post.
type PostLike struct {
	Sender  string
	LikedAt time.Time
}

// PostComment ...
type PostComment struct {
	Sender      string
	Message     string
	CommentedAt time.Time
}

// FollowEdge is one side of the doubly materialized follow relation.
type FollowEdge struct {
	Owner      string
	Target     string
	FollowedAt time.Time
}

// FrenletSide marks which actor's space a frenlet copy is stored in.
type FrenletSide string

const (
	// OutgoingSide is the copy stored under the sender.
	OutgoingSide FrenletSide = "outgoing"
	// IncomingSide is the copy stored under the receiver.
	IncomingSide FrenletSide = "incoming"
)

// Sides lists both frenlet copies in storage order.
func Sides() []FrenletSide {
	return []FrenletSide{OutgoingSide, IncomingSide}
}

// Frenlet is a tagged message between mutual frens, stored twice.
// Both copies must stay structurally identical except for Side.
type Frenlet struct {
	ID         string
	Side       FrenletSide
	Sender     string
	Receiver   string
	Message    string
	Tag        string
	LikeCount  uint32
	ReplyCount uint32
	CreatedAt  time.Time
}

// FrenletLike ...
type FrenletLike struct {
	Sender  string
	LikedAt time.Time
}

// FrenletReply ...
type FrenletReply struct {
	Sender    string
	Message   string
	RepliedAt time.Time
}

// NotificationCause is a closed set of interaction kinds which produce notifications.
type NotificationCause string

const (
	// LikeCause ...
	LikeCause NotificationCause = "like"
	// CommentCause ...
	CommentCause NotificationCause = "comment"
	// FollowCause ...
	FollowCause NotificationCause = "follow"
	// FrenletCause ...
	FrenletCause NotificationCause = "frenlet"
)

// ParseNotificationCause ...
func ParseNotificationCause(s string) (NotificationCause, error) {
	switch c := NotificationCause(s); c {
	case LikeCause, CommentCause, FollowCause, FrenletCause:
		return c, nil
	default:
		return "", fmt.Errorf("%w: notification cause %q", ErrInvalidDiscriminator, s)
	}
}

// Notification is an append-only log entry owned by its recipient.
type Notification struct {
	Recipient  string
	Cause      NotificationCause
	Sender     string
	NotifiedAt time.Time
	// PostPath is set for like and comment causes.
	PostPath string
}

// LikeAction discriminates apply/undo for like operations.
type LikeAction string

const (
	// Like ...
	Like LikeAction = "like"
	// Delike ...
	Delike LikeAction = "delike"
)

// ParseLikeAction ...
func ParseLikeAction(s string) (LikeAction, error) {
	switch a := LikeAction(s); a {
	case Like, Delike:
		return a, nil
	default:
		return "", fmt.Errorf("%w: like action %q", ErrInvalidDiscriminator, s)
	}
}

// FollowOpCode discriminates follow/unfollow. Wire values are 1 and -1.
type FollowOpCode int8

const (
	// FollowOp ...
	FollowOp FollowOpCode = 1
	// UnfollowOp ...
	UnfollowOp FollowOpCode = -1
)

// ParseFollowOpCode ...
func ParseFollowOpCode(v int) (FollowOpCode, error) {
	switch op := FollowOpCode(v); op {
	case FollowOp, UnfollowOp:
		return op, nil
	default:
		return 0, fmt.Errorf("%w: follow opcode %d", ErrInvalidDiscriminator, v)
	}
}

// LedgerKind is a closed set of interaction ledger entry kinds.
type LedgerKind string

const (
	// UploadedLedgerKind ...
	UploadedLedgerKind LedgerKind = "uploaded"
	// LikedLedgerKind ...
	LikedLedgerKind LedgerKind = "liked"
	// CommentedLedgerKind ...
	CommentedLedgerKind LedgerKind = "commented"
)

// LedgerEntry is an element of the per-actor interaction ledger handed
// to the provider on deal negotiation.
type LedgerEntry struct {
	Actor      string
	Kind       LedgerKind
	PostPath   string
	RecordedAt time.Time
}

// Subscription is an actor's relation with a data provider.
// At most one unarchived subscription exists per actor.
type Subscription struct {
	Actor        string
	ProviderName string
	StartsAt     time.Time
	EndsAt       time.Time
	Yield        int64
	Archived     bool
	// ArchiveName is set on archived rows: "old-<provider>-<startUnix>".
	ArchiveName string
}

// Expired reports whether the subscription window has passed at now.
// Expiry is derived on read, there is no background expiry job.
func (s Subscription) Expired(now time.Time) bool {
	return !now.Before(s.EndsAt)
}
