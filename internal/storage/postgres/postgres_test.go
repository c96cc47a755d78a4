//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(t *testing.M) {
	shutdown := setup()

	s = New(db)

	code := t.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return func() {
		if c != nil {
			c.Terminate(ctx) // nolint:errcheck
		}
	}
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	t.Helper()

	for _, table := range []string{
		"uncollected_debt", "subscription", "ledger", "notification",
		"frenlet_reply", "frenlet_like", "frenlet",
		"follower", "following",
		"post_comment", "post_like", "post",
		"actor",
	} {
		_, err := db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table))
		require.NoError(t, err)
	}
}

func mustCreateActor(t *testing.T, username string) {
	t.Helper()

	require.NoError(t, s.CreateActor(ctx, &entities.Actor{
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}))
}

func mustCreatePost(t *testing.T, id entities.PostID) {
	t.Helper()

	mustCreateActor(t, id.Owner)
	require.NoError(t, s.CreatePost(ctx, &entities.Post{
		ID:          id,
		Description: "description",
		CreatedAt:   time.Now().UTC(),
	}))
}

func TestPg_Actor(t *testing.T) {
	defer cleanup(t)

	mustCreateActor(t, "alice")

	require.ErrorIs(t, s.CreateActor(ctx, &entities.Actor{Username: "alice"}), storage.ErrAlreadyExists)

	require.NoError(t, s.CreateActor(ctx, &entities.Actor{
		Username:  "carol",
		Bio:       "about carol",
		CreatedAt: time.Now().UTC(),
	}))

	a, err := s.GetActor(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, "about carol", a.Bio)

	a, err = s.GetActor(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", a.Username)

	_, err = s.GetActor(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.IncrementActorCounter(ctx, "alice", storage.FollowerCount, 2))
	require.NoError(t, s.IncrementActorCounter(ctx, "alice", storage.FollowerCount, -1))
	assert.ErrorIs(t, s.IncrementActorCounter(ctx, "nobody", storage.FollowerCount, 1), storage.ErrNotFound)

	a, err = s.GetActor(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, a.FollowerCount)

	// drift below zero leaves the row readable
	require.NoError(t, s.IncrementActorCounter(ctx, "alice", storage.FollowerCount, -2))
	a, err = s.GetActor(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, a.FollowerCount)
}

func TestPg_Post(t *testing.T) {
	defer cleanup(t)

	id := entities.PostID{Owner: "alice", UUID: "uuid"}
	mustCreatePost(t, id)

	p, err := s.GetPost(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "description", p.Description)

	require.NoError(t, s.IncrementPostCounter(ctx, id, storage.PostLikeCount, 1))
	p, err = s.GetPost(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, p.LikeCount)

	// counter drift below zero must not make the row unreadable
	require.NoError(t, s.IncrementPostCounter(ctx, id, storage.PostCommentCount, -1))
	p, err = s.GetPost(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, p.CommentCount)

	require.NoError(t, s.DeletePost(ctx, id, time.Now().UTC(), "alice"))

	// a soft-deleted post is invisible to every read
	_, err = s.GetPost(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.IncrementPostCounter(ctx, id, storage.PostLikeCount, 1), storage.ErrNotFound)
	assert.ErrorIs(t, s.DeletePost(ctx, id, time.Now().UTC(), "alice"), storage.ErrNotFound)
}

func TestPg_GetPosts(t *testing.T) {
	defer cleanup(t)

	mustCreateActor(t, "alice")
	for _, uuid := range []string{"1", "2", "3"} {
		require.NoError(t, s.CreatePost(ctx, &entities.Post{
			ID:        entities.PostID{Owner: "alice", UUID: uuid},
			CreatedAt: time.Now().UTC(),
		}))
	}

	posts, err := s.GetPosts(ctx, []entities.PostID{
		{Owner: "alice", UUID: "1"},
		{Owner: "alice", UUID: "3"},
		{Owner: "alice", UUID: "missing"},
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	posts, err = s.GetPosts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, posts)

	recent, err := s.ListRecentPosts(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestPg_PostLike(t *testing.T) {
	defer cleanup(t)

	id := entities.PostID{Owner: "alice", UUID: "uuid"}
	mustCreatePost(t, id)
	mustCreateActor(t, "bob")

	ts := time.Unix(100, 0).UTC()
	require.NoError(t, s.AddPostLike(ctx, id, entities.PostLike{Sender: "bob", LikedAt: ts}))

	// the unique index backs up the advisory precondition read
	assert.ErrorIs(t, s.AddPostLike(ctx, id, entities.PostLike{Sender: "bob", LikedAt: ts}), storage.ErrAlreadyExists)

	has, err := s.HasPostLike(ctx, id, "bob")
	require.NoError(t, err)
	assert.True(t, has)

	likes, err := s.GetPostLikes(ctx, id)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, entities.PostLike{Sender: "bob", LikedAt: ts}, likes[0])

	require.NoError(t, s.RemovePostLike(ctx, id, "bob"))
	assert.ErrorIs(t, s.RemovePostLike(ctx, id, "bob"), storage.ErrNotFound)

	has, err = s.HasPostLike(ctx, id, "bob")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPg_PostComment(t *testing.T) {
	defer cleanup(t)

	id := entities.PostID{Owner: "alice", UUID: "uuid"}
	mustCreatePost(t, id)
	mustCreateActor(t, "bob")

	ts := time.Unix(100, 0).UTC()
	c := entities.PostComment{Sender: "bob", Message: "hi", CommentedAt: ts}

	has, err := s.HasPostComment(ctx, id, c)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.AddPostComment(ctx, id, c))
	require.NoError(t, s.AddPostComment(ctx, id, c))

	has, err = s.HasPostComment(ctx, id, c)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.HasPostComment(ctx, id, entities.PostComment{Sender: "bob", Message: "other", CommentedAt: ts})
	require.NoError(t, err)
	assert.False(t, has)

	comments, err := s.GetPostComments(ctx, id)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	// structural match removes exactly one duplicate per call
	require.NoError(t, s.RemovePostComment(ctx, id, c))
	comments, err = s.GetPostComments(ctx, id)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	require.NoError(t, s.RemovePostComment(ctx, id, c))
	assert.ErrorIs(t, s.RemovePostComment(ctx, id, c), storage.ErrNotFound)
}

func TestPg_Follow(t *testing.T) {
	defer cleanup(t)

	mustCreateActor(t, "alice")
	mustCreateActor(t, "bob")

	ts := time.Unix(100, 0).UTC()
	require.NoError(t, s.AddFollowing(ctx, entities.FollowEdge{Owner: "alice", Target: "bob", FollowedAt: ts}))
	require.NoError(t, s.AddFollower(ctx, entities.FollowEdge{Owner: "bob", Target: "alice", FollowedAt: ts}))

	assert.ErrorIs(t, s.AddFollowing(ctx, entities.FollowEdge{Owner: "alice", Target: "bob", FollowedAt: ts}), storage.ErrAlreadyExists)

	has, err := s.HasFollowing(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.HasFollowing(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.RemoveFollowing(ctx, "alice", "bob"))
	require.NoError(t, s.RemoveFollower(ctx, "bob", "alice"))
	assert.ErrorIs(t, s.RemoveFollowing(ctx, "alice", "bob"), storage.ErrNotFound)
}

func TestPg_Frenlet(t *testing.T) {
	defer cleanup(t)

	mustCreateActor(t, "alice")
	mustCreateActor(t, "bob")
	mustCreateActor(t, "carol")

	f := entities.Frenlet{
		ID:        "frenlet-id",
		Sender:    "alice",
		Receiver:  "bob",
		Message:   "yo",
		Tag:       "tag",
		CreatedAt: time.Unix(100, 0).UTC(),
	}

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		for _, side := range entities.Sides() {
			copy := f
			copy.Side = side
			if err := tx.CreateFrenletCopy(ctx, &copy); err != nil {
				return err
			}
		}
		return nil
	}))

	for _, side := range entities.Sides() {
		got, err := s.GetFrenletCopy(ctx, "frenlet-id", side)
		require.NoError(t, err)
		assert.Equal(t, side, got.Side)
		assert.Equal(t, "alice", got.Sender)

		require.NoError(t, s.IncrementFrenletCounter(ctx, "frenlet-id", side, storage.FrenletLikeCount, 1))
		require.NoError(t, s.AddFrenletLike(ctx, "frenlet-id", side, entities.FrenletLike{Sender: "carol", LikedAt: time.Unix(200, 0).UTC()}))
		require.NoError(t, s.AddFrenletReply(ctx, "frenlet-id", side, entities.FrenletReply{Sender: "carol", Message: "re", RepliedAt: time.Unix(300, 0).UTC()}))
	}

	has, err := s.HasFrenletLike(ctx, "frenlet-id", entities.OutgoingSide, "carol")
	require.NoError(t, err)
	assert.True(t, has)

	likes, err := s.GetFrenletLikes(ctx, "frenlet-id", entities.IncomingSide)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	replies, err := s.GetFrenletReplies(ctx, "frenlet-id", entities.OutgoingSide)
	require.NoError(t, err)
	assert.Len(t, replies, 1)

	for _, side := range entities.Sides() {
		require.NoError(t, s.DeleteFrenletCopy(ctx, "frenlet-id", side))
	}
	_, err = s.GetFrenletCopy(ctx, "frenlet-id", entities.OutgoingSide)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPg_InTx_rollback(t *testing.T) {
	defer cleanup(t)

	mustCreateActor(t, "alice")

	f := entities.Frenlet{ID: "frenlet-id", Side: entities.OutgoingSide, Sender: "alice", Receiver: "bob", CreatedAt: time.Unix(100, 0).UTC()}

	err := s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.CreateFrenletCopy(ctx, &f); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	// the first copy must not survive a failed transaction
	_, err = s.GetFrenletCopy(ctx, "frenlet-id", entities.OutgoingSide)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPg_Notifications(t *testing.T) {
	defer cleanup(t)

	mustCreateActor(t, "alice")
	mustCreateActor(t, "bob")

	n := &entities.Notification{
		Recipient:  "alice",
		Cause:      entities.LikeCause,
		Sender:     "bob",
		NotifiedAt: time.Now().UTC(),
		PostPath:   "posts/alice/uuid",
	}

	require.NoError(t, s.AddNotification(ctx, n))
	require.NoError(t, s.AddNotification(ctx, n))

	list, err := s.ListNotifications(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	count, err := s.UnseenNotificationsCount(ctx, "alice")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, s.SetNotificationsOpenedAt(ctx, "alice", time.Now().UTC().Add(time.Second)))

	count, err = s.UnseenNotificationsCount(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, s.RemoveNotification(ctx, n))
	require.NoError(t, s.RemoveNotification(ctx, n))
	assert.ErrorIs(t, s.RemoveNotification(ctx, n), storage.ErrNotFound)
}

func TestPg_Ledger(t *testing.T) {
	defer cleanup(t)

	mustCreateActor(t, "alice")

	e := entities.LedgerEntry{
		Actor:      "alice",
		Kind:       entities.LikedLedgerKind,
		PostPath:   "posts/bob/uuid",
		RecordedAt: time.Unix(100, 0).UTC(),
	}

	require.NoError(t, s.AppendLedger(ctx, e))

	list, err := s.ListLedger(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, e, list[0])

	require.NoError(t, s.RemoveLedger(ctx, e))
	assert.ErrorIs(t, s.RemoveLedger(ctx, e), storage.ErrNotFound)
}

func TestPg_Subscription(t *testing.T) {
	defer cleanup(t)

	mustCreateActor(t, "alice")

	sub := &entities.Subscription{
		Actor:        "alice",
		ProviderName: "provider",
		StartsAt:     time.Unix(100, 0).UTC(),
		EndsAt:       time.Unix(200, 0).UTC(),
		Yield:        42,
	}

	_, err := s.GetCurrentSubscription(ctx, "alice")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.CreateSubscription(ctx, sub))

	// at most one current subscription per actor
	assert.ErrorIs(t, s.CreateSubscription(ctx, sub), storage.ErrAlreadyExists)

	got, err := s.GetCurrentSubscription(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	require.NoError(t, s.ArchiveSubscription(ctx, got))
	require.NoError(t, s.DeleteCurrentSubscription(ctx, "alice"))
	assert.ErrorIs(t, s.DeleteCurrentSubscription(ctx, "alice"), storage.ErrNotFound)

	// the archived copy stays while the actor is free to enroll again
	_, err = s.GetCurrentSubscription(ctx, "alice")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, s.CreateSubscription(ctx, sub))

	require.NoError(t, s.AddUncollectedDebt(ctx, "alice", "provider", 42, time.Now().UTC()))
}
