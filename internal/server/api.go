package server

import (
	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/service"
)

const maxBodySize = 4096

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Profile ...
type Profile struct {
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	Avatar         string `json:"avatar"`
	Bio            string `json:"bio"`
	FollowerCount  uint32 `json:"followerCount"`
	FollowingCount uint32 `json:"followingCount"`
	FrenScore      int64  `json:"frenScore"`
	NFTCount       uint32 `json:"nftCount"`
	CreatedAt      int64  `json:"createdAt"`
}

// Post ...
type Post struct {
	Owner        string `json:"owner"`
	UUID         string `json:"uuid"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	LikeCount    uint32 `json:"likeCount"`
	CommentCount uint32 `json:"commentCount"`
	NFTConverted bool   `json:"nftConverted"`
	CreatedAt    int64  `json:"createdAt"`
}

// Like ...
type Like struct {
	Sender  string `json:"sender"`
	LikedAt int64  `json:"likedAt"`
}

// Comment ...
type Comment struct {
	Sender      string `json:"sender"`
	Message     string `json:"message"`
	CommentedAt int64  `json:"commentedAt"`
}

// PostResponse ...
// swagger:model
type PostResponse struct {
	Post     Post      `json:"post"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
}

// Frenlet ...
type Frenlet struct {
	ID         string `json:"id"`
	Sender     string `json:"sender"`
	Receiver   string `json:"receiver"`
	Message    string `json:"message"`
	Tag        string `json:"tag"`
	LikeCount  uint32 `json:"likeCount"`
	ReplyCount uint32 `json:"replyCount"`
	CreatedAt  int64  `json:"createdAt"`
}

// Reply ...
type Reply struct {
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	RepliedAt int64  `json:"repliedAt"`
}

// FrenletResponse ...
// swagger:model
type FrenletResponse struct {
	Frenlet Frenlet `json:"frenlet"`
	Likes   []Like  `json:"likes"`
	Replies []Reply `json:"replies"`
}

// Notification ...
type Notification struct {
	Cause      string `json:"cause"`
	Sender     string `json:"sender"`
	NotifiedAt int64  `json:"notifiedAt"`
	PostPath   string `json:"postPath,omitempty"`
}

// NotificationsResponse ...
// swagger:model
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	UnseenCount   uint32         `json:"unseenCount"`
}

// Subscription ...
type Subscription struct {
	ProviderName string `json:"providerName"`
	StartsAt     int64  `json:"startsAt"`
	EndsAt       int64  `json:"endsAt"`
	Yield        int64  `json:"yield"`
}

// ProviderStateResponse ...
// swagger:model
type ProviderStateResponse struct {
	Phase        string        `json:"phase"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// WithdrawResponse ...
// swagger:model
type WithdrawResponse struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
}

// FeedResponse ...
// swagger:model
type FeedResponse struct {
	Posts []Post `json:"posts"`
}

// CreatePostRequest ...
type CreatePostRequest struct {
	Description string `json:"description"`
	Image       string `json:"image"`
}

// LikeRequest ...
type LikeRequest struct {
	Action string `json:"action"`
}

// CommentRequest ...
type CommentRequest struct {
	Message string `json:"message"`
}

// DeleteCommentRequest identifies a comment by field equality.
type DeleteCommentRequest struct {
	Sender      string `json:"sender"`
	Message     string `json:"message"`
	CommentedAt int64  `json:"commentedAt"`
}

// FollowRequest ...
type FollowRequest struct {
	Target string `json:"target"`
	OpCode int    `json:"opCode"`
}

// CreateFrenletRequest ...
type CreateFrenletRequest struct {
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
	Tag      string `json:"tag"`
}

// ReplyRequest ...
type ReplyRequest struct {
	Message string `json:"message"`
}

// ChooseProviderRequest ...
type ChooseProviderRequest struct {
	ProviderName string `json:"providerName"`
}

// WithdrawRequest ...
type WithdrawRequest struct {
	PayoutAddress string `json:"payoutAddress"`
}

func toAPIProfile(a *entities.Actor) Profile {
	return Profile{
		Username:       a.Username,
		FullName:       a.FullName,
		Avatar:         a.Avatar,
		Bio:            a.Bio,
		FollowerCount:  a.FollowerCount,
		FollowingCount: a.FollowingCount,
		FrenScore:      a.FrenScore,
		NFTCount:       a.NFTCount,
		CreatedAt:      a.CreatedAt.Unix(),
	}
}

func toAPIPost(p *entities.Post) Post {
	return Post{
		Owner:        p.ID.Owner,
		UUID:         p.ID.UUID,
		Description:  p.Description,
		Image:        p.Image,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		NFTConverted: p.NFTConverted,
		CreatedAt:    p.CreatedAt.Unix(),
	}
}

func toAPIPostResponse(v *service.PostView) PostResponse {
	out := PostResponse{
		Post:     toAPIPost(v.Post),
		Likes:    make([]Like, len(v.Likes)),
		Comments: make([]Comment, len(v.Comments)),
	}

	for i, l := range v.Likes {
		out.Likes[i] = Like{Sender: l.Sender, LikedAt: l.LikedAt.Unix()}
	}
	for i, c := range v.Comments {
		out.Comments[i] = Comment{Sender: c.Sender, Message: c.Message, CommentedAt: c.CommentedAt.Unix()}
	}

	return out
}

func toAPIFrenlet(f *entities.Frenlet) Frenlet {
	return Frenlet{
		ID:         f.ID,
		Sender:     f.Sender,
		Receiver:   f.Receiver,
		Message:    f.Message,
		Tag:        f.Tag,
		LikeCount:  f.LikeCount,
		ReplyCount: f.ReplyCount,
		CreatedAt:  f.CreatedAt.Unix(),
	}
}

func toAPIFrenletResponse(v *service.FrenletView) FrenletResponse {
	out := FrenletResponse{
		Frenlet: toAPIFrenlet(v.Frenlet),
		Likes:   make([]Like, len(v.Likes)),
		Replies: make([]Reply, len(v.Replies)),
	}

	for i, l := range v.Likes {
		out.Likes[i] = Like{Sender: l.Sender, LikedAt: l.LikedAt.Unix()}
	}
	for i, r := range v.Replies {
		out.Replies[i] = Reply{Sender: r.Sender, Message: r.Message, RepliedAt: r.RepliedAt.Unix()}
	}

	return out
}

func toAPISubscription(sub *entities.Subscription) *Subscription {
	if sub == nil {
		return nil
	}

	return &Subscription{
		ProviderName: sub.ProviderName,
		StartsAt:     sub.StartsAt.Unix(),
		EndsAt:       sub.EndsAt.Unix(),
		Yield:        sub.Yield,
	}
}

func toAPINotifications(v *service.NotificationsView) NotificationsResponse {
	out := NotificationsResponse{
		Notifications: make([]Notification, len(v.Notifications)),
		UnseenCount:   v.UnseenCount,
	}

	for i, n := range v.Notifications {
		out.Notifications[i] = Notification{
			Cause:      string(n.Cause),
			Sender:     n.Sender,
			NotifiedAt: n.NotifiedAt.Unix(),
			PostPath:   n.PostPath,
		}
	}

	return out
}
