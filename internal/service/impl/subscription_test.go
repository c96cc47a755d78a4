package impl

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/payment"
	"github.com/apidon/hermes/internal/provider"
	"github.com/apidon/hermes/internal/service"
	"github.com/apidon/hermes/internal/storage"
)

func activeSub(now time.Time) *entities.Subscription {
	return &entities.Subscription{
		Actor:        "actor",
		ProviderName: "provider",
		StartsAt:     now.Add(-time.Hour),
		EndsAt:       now.Add(time.Hour),
		Yield:        42,
	}
}

func expiredSub(now time.Time) *entities.Subscription {
	return &entities.Subscription{
		Actor:        "actor",
		ProviderName: "provider",
		StartsAt:     now.Add(-2 * subscriptionWindow),
		EndsAt:       now.Add(-subscriptionWindow),
		Yield:        42,
	}
}

func TestSrv_GetProviderState(t *testing.T) {
	now := time.Unix(1000000, 0)

	t.Run("no provider", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(nil, storage.ErrNotFound)

		state, err := srv.GetProviderState(context.Background(), "actor")
		require.NoError(t, err)
		assert.Equal(t, service.NoProviderPhase, state.Phase)
		assert.Nil(t, state.Subscription)
	})

	t.Run("active", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		sub := activeSub(now)
		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(sub, nil)

		state, err := srv.GetProviderState(context.Background(), "actor")
		require.NoError(t, err)
		assert.Equal(t, service.ActivePhase, state.Phase)
		assert.Equal(t, sub, state.Subscription)
	})

	t.Run("expired", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(expiredSub(now), nil)

		state, err := srv.GetProviderState(context.Background(), "actor")
		require.NoError(t, err)
		assert.Equal(t, service.ExpiredPhase, state.Phase)
	})
}

func TestSrv_ChooseProvider(t *testing.T) {
	now := time.Unix(1000000, 0)

	t.Run("success", func(t *testing.T) {
		srv, st, p, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(nil, storage.ErrNotFound)

		st.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, sub *entities.Subscription) error {
			assert.Equal(t, "actor", sub.Actor)
			assert.Equal(t, "provider", sub.ProviderName)
			assert.Equal(t, now, sub.StartsAt)
			assert.Equal(t, now.Add(subscriptionWindow), sub.EndsAt)
			assert.Zero(t, sub.Yield)
			return nil
		})

		ledger := []entities.LedgerEntry{{Actor: "actor", Kind: entities.LikedLedgerKind, PostPath: "posts/a/b", RecordedAt: now}}
		st.EXPECT().ListLedger(gomock.Any(), "actor").Return(ledger, nil)
		p.EXPECT().Deal(gomock.Any(), "actor", "provider", ledger).Return(&provider.Deal{}, nil)

		sub, err := srv.ChooseProvider(context.Background(), "actor", "provider")
		require.NoError(t, err)
		assert.Equal(t, now.Add(subscriptionWindow), sub.EndsAt)
	})

	t.Run("active subscription", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(activeSub(now), nil)

		_, err := srv.ChooseProvider(context.Background(), "actor", "other")
		assert.ErrorIs(t, err, service.ErrProviderActive)
	})

	t.Run("expired subscription awaits withdraw", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(expiredSub(now), nil)

		_, err := srv.ChooseProvider(context.Background(), "actor", "other")
		assert.ErrorIs(t, err, service.ErrPendingWithdraw)
	})
}

func TestSrv_WithdrawYield(t *testing.T) {
	now := time.Unix(1000000, 0)

	t.Run("success order", func(t *testing.T) {
		srv, st, p, pc := newTestSrv(t, now)

		sub := expiredSub(now)
		receipt := &payment.Receipt{TxHash: "0xdead", BlockNumber: 7}

		// the payout must go last, after both archival writes and the
		// provider handshake
		gomock.InOrder(
			st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(sub, nil),
			st.EXPECT().ArchiveSubscription(gomock.Any(), sub).Return(nil),
			st.EXPECT().DeleteCurrentSubscription(gomock.Any(), "actor").Return(nil),
			p.EXPECT().FinishWithdraw(gomock.Any(), "actor", "provider", sub.StartsAt).Return(nil),
			pc.EXPECT().Withdraw(gomock.Any(), big.NewInt(42), "0xaddr").Return(receipt, nil),
		)

		got, err := srv.WithdrawYield(context.Background(), "actor", "0xaddr")
		require.NoError(t, err)
		assert.Equal(t, receipt, got)
	})

	t.Run("no provider", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(nil, storage.ErrNotFound)

		_, err := srv.WithdrawYield(context.Background(), "actor", "0xaddr")
		assert.ErrorIs(t, err, service.ErrNoProvider)
	})

	t.Run("not expired", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(activeSub(now), nil)

		_, err := srv.WithdrawYield(context.Background(), "actor", "0xaddr")
		assert.ErrorIs(t, err, service.ErrNotExpired)
	})

	t.Run("payout failure surfaces after archival", func(t *testing.T) {
		srv, st, p, pc := newTestSrv(t, now)

		sub := expiredSub(now)
		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(sub, nil)
		st.EXPECT().ArchiveSubscription(gomock.Any(), sub).Return(nil)
		st.EXPECT().DeleteCurrentSubscription(gomock.Any(), "actor").Return(nil)
		p.EXPECT().FinishWithdraw(gomock.Any(), "actor", "provider", sub.StartsAt).Return(nil)
		pc.EXPECT().Withdraw(gomock.Any(), big.NewInt(42), "0xaddr").Return(nil, payment.ErrUnexpectedStatus)

		_, err := srv.WithdrawYield(context.Background(), "actor", "0xaddr")
		assert.ErrorIs(t, err, payment.ErrUnexpectedStatus)
	})
}

func TestSrv_SkipWithdraw(t *testing.T) {
	now := time.Unix(1000000, 0)

	srv, st, p, _ := newTestSrv(t, now)

	sub := expiredSub(now)
	gomock.InOrder(
		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(sub, nil),
		st.EXPECT().ArchiveSubscription(gomock.Any(), sub).Return(nil),
		st.EXPECT().DeleteCurrentSubscription(gomock.Any(), "actor").Return(nil),
		p.EXPECT().FinishWithdraw(gomock.Any(), "actor", "provider", sub.StartsAt).Return(nil),
		st.EXPECT().AddUncollectedDebt(gomock.Any(), "actor", "provider", int64(42), now).Return(nil),
	)

	require.NoError(t, srv.SkipWithdraw(context.Background(), "actor"))
}

func TestSrv_ChangeProvider(t *testing.T) {
	now := time.Unix(1000000, 0)

	t.Run("success", func(t *testing.T) {
		srv, st, p, _ := newTestSrv(t, now)

		cur := activeSub(now)
		deal := &provider.Deal{
			ProviderName: "next",
			StartsAt:     now,
			EndsAt:       now.Add(subscriptionWindow),
			Yield:        7,
		}

		gomock.InOrder(
			st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(cur, nil),
			st.EXPECT().ArchiveSubscription(gomock.Any(), cur).Return(nil),
			st.EXPECT().DeleteCurrentSubscription(gomock.Any(), "actor").Return(nil),
			st.EXPECT().ListLedger(gomock.Any(), "actor").Return(nil, nil),
			p.EXPECT().Deal(gomock.Any(), "actor", "next", []entities.LedgerEntry(nil)).Return(deal, nil),
			st.EXPECT().CreateSubscription(gomock.Any(), &entities.Subscription{
				Actor:        "actor",
				ProviderName: "next",
				StartsAt:     deal.StartsAt,
				EndsAt:       deal.EndsAt,
				Yield:        deal.Yield,
			}).Return(nil),
		)

		sub, err := srv.ChangeProvider(context.Background(), "actor", "next")
		require.NoError(t, err)
		assert.Equal(t, "next", sub.ProviderName)
		assert.EqualValues(t, 7, sub.Yield)
	})

	t.Run("no provider", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(nil, storage.ErrNotFound)

		_, err := srv.ChangeProvider(context.Background(), "actor", "next")
		assert.ErrorIs(t, err, service.ErrNoProvider)
	})

	t.Run("same provider", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(activeSub(now), nil)

		_, err := srv.ChangeProvider(context.Background(), "actor", "provider")
		assert.ErrorIs(t, err, service.ErrSameProvider)
	})

	t.Run("expired", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(expiredSub(now), nil)

		_, err := srv.ChangeProvider(context.Background(), "actor", "next")
		assert.ErrorIs(t, err, service.ErrExpired)
	})
}

func TestSrv_GetFeed(t *testing.T) {
	now := time.Unix(1000000, 0)

	t.Run("provider feed", func(t *testing.T) {
		srv, st, p, _ := newTestSrv(t, now)

		sub := activeSub(now)
		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(sub, nil)
		p.EXPECT().ProvideFeed(gomock.Any(), "actor", "provider", sub.StartsAt).Return([]string{
			"posts/a/1",
			"garbage",
			"posts/b/2",
		}, nil)

		posts := []*entities.Post{
			{ID: entities.PostID{Owner: "a", UUID: "1"}},
			{ID: entities.PostID{Owner: "b", UUID: "2"}},
		}
		st.EXPECT().GetPosts(gomock.Any(), []entities.PostID{
			{Owner: "a", UUID: "1"},
			{Owner: "b", UUID: "2"},
		}).Return(posts, nil)

		got, err := srv.GetFeed(context.Background(), "actor")
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("fallback without subscription", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(nil, storage.ErrNotFound)
		st.EXPECT().ListRecentPosts(gomock.Any(), uint16(feedFallbackLimit)).Return(nil, nil)

		_, err := srv.GetFeed(context.Background(), "actor")
		require.NoError(t, err)
	})

	t.Run("fallback on expired subscription", func(t *testing.T) {
		srv, st, _, _ := newTestSrv(t, now)

		st.EXPECT().GetCurrentSubscription(gomock.Any(), "actor").Return(expiredSub(now), nil)
		st.EXPECT().ListRecentPosts(gomock.Any(), uint16(feedFallbackLimit)).Return(nil, nil)

		_, err := srv.GetFeed(context.Background(), "actor")
		require.NoError(t, err)
	})
}
