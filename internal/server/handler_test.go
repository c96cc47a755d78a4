package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/payment"
	"github.com/apidon/hermes/internal/provider"
	"github.com/apidon/hermes/internal/service"
	"github.com/apidon/hermes/internal/service/mock"
	"github.com/apidon/hermes/internal/storage"
)

var testSecret = []byte("secret")

func token(t *testing.T, username string) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: username,
	}).SignedString(testSecret)
	require.NoError(t, err)

	return s
}

func newTestRouter(t *testing.T) (chi.Router, *mock.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := mock.NewMockService(ctrl)

	r := chi.NewRouter()
	SetupRouter(s, r, testSecret, time.Second)

	return r, s
}

func doRequest(t *testing.T, router chi.Router, method, target, actor string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	r, err := http.NewRequest(method, target, bytes.NewReader(body))
	require.NoError(t, err)
	if actor != "" {
		r.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token(t, actor)))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	return w
}

func Test_auth(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("missing credential", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/v1/feed", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage credential", func(t *testing.T) {
		r, err := http.NewRequest(http.MethodGet, "/v1/feed", nil)
		require.NoError(t, err)
		r.Header.Set("Authorization", "Bearer garbage")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{Username: "actor"}).SignedString([]byte("other"))
		require.NoError(t, err)

		r, err := http.NewRequest(http.MethodGet, "/v1/feed", nil)
		require.NoError(t, err)
		r.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func Test_getProfile(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().GetProfile(gomock.Any(), "alice").Return(&entities.Actor{
		Username:       "alice",
		FullName:       "Alice",
		Avatar:         "avatar",
		Bio:            "about alice",
		FollowerCount:  2,
		FollowingCount: 3,
		FrenScore:      4,
		NFTCount:       5,
		CreatedAt:      time.Unix(100, 0),
	}, nil)

	w := doRequest(t, router, http.MethodGet, "/v1/profiles/alice", "actor", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"username": "alice",
	"fullName": "Alice",
	"avatar": "avatar",
	"bio": "about alice",
	"followerCount": 2,
	"followingCount": 3,
	"frenScore": 4,
	"nftCount": 5,
	"createdAt": 100
}
	`, w.Body.String())
}

func Test_getProfile_notFound(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().GetProfile(gomock.Any(), "nobody").Return(nil, fmt.Errorf("wrapped: %w", storage.ErrNotFound))

	w := doRequest(t, router, http.MethodGet, "/v1/profiles/nobody", "actor", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_createPost(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().CreatePost(gomock.Any(), "actor", "hello", "img").Return(&entities.Post{
		ID:          entities.PostID{Owner: "actor", UUID: "uuid"},
		Description: "hello",
		Image:       "img",
		CreatedAt:   time.Unix(100, 0),
	}, nil)

	w := doRequest(t, router, http.MethodPost, "/v1/posts", "actor", []byte(`{"description":"hello","image":"img"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"owner": "actor",
	"uuid": "uuid",
	"description": "hello",
	"image": "img",
	"likeCount": 0,
	"commentCount": 0,
	"nftConverted": false,
	"createdAt": 100
}
	`, w.Body.String())
}

func Test_createPost_empty(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/v1/posts", "actor", []byte(`{}`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_getPost(t *testing.T) {
	router, s := newTestRouter(t)

	id := entities.PostID{Owner: "owner", UUID: "uuid"}
	s.EXPECT().GetPostView(gomock.Any(), id).Return(&service.PostView{
		Post: &entities.Post{
			ID:          id,
			Description: "d",
			LikeCount:   1,
			CreatedAt:   time.Unix(100, 0),
		},
		Likes:    []entities.PostLike{{Sender: "a", LikedAt: time.Unix(100, 0)}},
		Comments: []entities.PostComment{{Sender: "b", Message: "m", CommentedAt: time.Unix(100, 0)}},
	}, nil)

	w := doRequest(t, router, http.MethodGet, "/v1/posts/owner/uuid", "actor", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"post": {
		"owner": "owner",
		"uuid": "uuid",
		"description": "d",
		"image": "",
		"likeCount": 1,
		"commentCount": 0,
		"nftConverted": false,
		"createdAt": 100
	},
	"likes": [{"sender": "a", "likedAt": 100}],
	"comments": [{"sender": "b", "message": "m", "commentedAt": 100}]
}
	`, w.Body.String())
}

func Test_likePost(t *testing.T) {
	router, s := newTestRouter(t)

	id := entities.PostID{Owner: "owner", UUID: "uuid"}

	s.EXPECT().LikePost(gomock.Any(), "actor", id, entities.Like).Return(nil)
	w := doRequest(t, router, http.MethodPost, "/v1/posts/owner/uuid/like", "actor", []byte(`{"action":"like"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	s.EXPECT().LikePost(gomock.Any(), "actor", id, entities.Like).Return(service.ErrAlreadyLiked)
	w = doRequest(t, router, http.MethodPost, "/v1/posts/owner/uuid/like", "actor", []byte(`{"action":"like"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, router, http.MethodPost, "/v1/posts/owner/uuid/like", "actor", []byte(`{"action":"smash"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_deletePost_forbidden(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().DeletePost(gomock.Any(), "actor", entities.PostID{Owner: "owner", UUID: "uuid"}).Return(service.ErrForbidden)

	w := doRequest(t, router, http.MethodDelete, "/v1/posts/owner/uuid", "actor", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_commentPost(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().CommentPost(gomock.Any(), "actor", entities.PostID{Owner: "owner", UUID: "uuid"}, "hi").Return(nil)
	w := doRequest(t, router, http.MethodPost, "/v1/posts/owner/uuid/comments", "actor", []byte(`{"message":"hi"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/v1/posts/owner/uuid/comments", "actor", []byte(`{"message":""}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_deleteComment(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().DeleteComment(gomock.Any(), "actor", entities.PostID{Owner: "owner", UUID: "uuid"}, entities.PostComment{
		Sender:      "actor",
		Message:     "hi",
		CommentedAt: time.Unix(100, 0),
	}).Return(nil)

	w := doRequest(t, router, http.MethodDelete, "/v1/posts/owner/uuid/comments", "actor",
		[]byte(`{"sender":"actor","message":"hi","commentedAt":100}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_deleteComment_missing(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().DeleteComment(gomock.Any(), "actor", gomock.Any(), gomock.Any()).Return(service.ErrNoComment)

	w := doRequest(t, router, http.MethodDelete, "/v1/posts/owner/uuid/comments", "actor",
		[]byte(`{"sender":"actor","message":"hi","commentedAt":100}`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_follow(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().Follow(gomock.Any(), "actor", "target", entities.FollowOp).Return(nil)
	w := doRequest(t, router, http.MethodPost, "/v1/follow", "actor", []byte(`{"target":"target","opCode":1}`))
	assert.Equal(t, http.StatusOK, w.Code)

	s.EXPECT().Follow(gomock.Any(), "actor", "target", entities.UnfollowOp).Return(service.ErrNotFollowing)
	w = doRequest(t, router, http.MethodPost, "/v1/follow", "actor", []byte(`{"target":"target","opCode":-1}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(t, router, http.MethodPost, "/v1/follow", "actor", []byte(`{"target":"target","opCode":2}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_createFrenlet(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().CreateFrenlet(gomock.Any(), "actor", "fren", "yo", "tag").Return(&entities.Frenlet{
		ID:        "id",
		Side:      entities.OutgoingSide,
		Sender:    "actor",
		Receiver:  "fren",
		Message:   "yo",
		Tag:       "tag",
		CreatedAt: time.Unix(100, 0),
	}, nil)

	w := doRequest(t, router, http.MethodPost, "/v1/frenlets", "actor",
		[]byte(`{"receiver":"fren","message":"yo","tag":"tag"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"id": "id",
	"sender": "actor",
	"receiver": "fren",
	"message": "yo",
	"tag": "tag",
	"likeCount": 0,
	"replyCount": 0,
	"createdAt": 100
}
	`, w.Body.String())
}

func Test_createFrenlet_notMutual(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().CreateFrenlet(gomock.Any(), "actor", "fren", "yo", "").Return(nil, service.ErrNotMutualFrens)

	w := doRequest(t, router, http.MethodPost, "/v1/frenlets", "actor", []byte(`{"receiver":"fren","message":"yo"}`))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_listNotifications(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().ListNotifications(gomock.Any(), "actor").Return(&service.NotificationsView{
		Notifications: []*entities.Notification{
			{Recipient: "actor", Cause: entities.LikeCause, Sender: "a", NotifiedAt: time.Unix(100, 0), PostPath: "posts/actor/uuid"},
			{Recipient: "actor", Cause: entities.FollowCause, Sender: "b", NotifiedAt: time.Unix(200, 0)},
		},
		UnseenCount: 1,
	}, nil)

	w := doRequest(t, router, http.MethodGet, "/v1/notifications", "actor", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"notifications": [
		{"cause": "like", "sender": "a", "notifiedAt": 100, "postPath": "posts/actor/uuid"},
		{"cause": "follow", "sender": "b", "notifiedAt": 200}
	],
	"unseenCount": 1
}
	`, w.Body.String())
}

func Test_openNotifications(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().OpenNotifications(gomock.Any(), "actor").Return(nil)

	w := doRequest(t, router, http.MethodPost, "/v1/notifications/open", "actor", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_getProviderState(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().GetProviderState(gomock.Any(), "actor").Return(&service.ProviderState{
		Phase: service.ActivePhase,
		Subscription: &entities.Subscription{
			ProviderName: "provider",
			StartsAt:     time.Unix(100, 0),
			EndsAt:       time.Unix(200, 0),
			Yield:        5,
		},
	}, nil)

	w := doRequest(t, router, http.MethodGet, "/v1/provider", "actor", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"phase": "active",
	"subscription": {
		"providerName": "provider",
		"startsAt": 100,
		"endsAt": 200,
		"yield": 5
	}
}
	`, w.Body.String())
}

func Test_chooseProvider(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().ChooseProvider(gomock.Any(), "actor", "provider").Return(&entities.Subscription{
		ProviderName: "provider",
		StartsAt:     time.Unix(100, 0),
		EndsAt:       time.Unix(200, 0),
	}, nil)
	w := doRequest(t, router, http.MethodPost, "/v1/provider/choose", "actor", []byte(`{"providerName":"provider"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	s.EXPECT().ChooseProvider(gomock.Any(), "actor", "provider").Return(nil, service.ErrProviderActive)
	w = doRequest(t, router, http.MethodPost, "/v1/provider/choose", "actor", []byte(`{"providerName":"provider"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func Test_withdraw(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().WithdrawYield(gomock.Any(), "actor", "0xaddr").Return(&payment.Receipt{
		TxHash:      "0xdead",
		BlockNumber: 7,
	}, nil)

	w := doRequest(t, router, http.MethodPost, "/v1/provider/withdraw", "actor", []byte(`{"payoutAddress":"0xaddr"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"txHash": "0xdead", "blockNumber": 7}`, w.Body.String())
}

func Test_withdraw_backendFailure(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().WithdrawYield(gomock.Any(), "actor", "0xaddr").
		Return(nil, fmt.Errorf("wrapped: %w", provider.ErrUnexpectedStatus))

	w := doRequest(t, router, http.MethodPost, "/v1/provider/withdraw", "actor", []byte(`{"payoutAddress":"0xaddr"}`))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func Test_getFeed(t *testing.T) {
	router, s := newTestRouter(t)

	s.EXPECT().GetFeed(gomock.Any(), "actor").Return([]*entities.Post{
		{ID: entities.PostID{Owner: "a", UUID: "1"}, CreatedAt: time.Unix(100, 0)},
	}, nil)

	w := doRequest(t, router, http.MethodGet, "/v1/feed", "actor", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"posts": [
		{
			"owner": "a",
			"uuid": "1",
			"description": "",
			"image": "",
			"likeCount": 0,
			"commentCount": 0,
			"nftConverted": false,
			"createdAt": 100
		}
	]
}
	`, w.Body.String())
}
