package impl

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/payment"
	"github.com/apidon/hermes/internal/service"
	"github.com/apidon/hermes/internal/storage"
)

// subscriptionWindow is the fixed validity period granted on chooseProvider.
const subscriptionWindow = 30 * 24 * time.Hour

const feedFallbackLimit = 20

func (s *srv) GetProviderState(ctx context.Context, actor string) (*service.ProviderState, error) {
	sub, err := s.s.GetCurrentSubscription(ctx, actor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &service.ProviderState{Phase: service.NoProviderPhase}, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	phase := service.ActivePhase
	if sub.Expired(s.now()) {
		phase = service.ExpiredPhase
	}

	return &service.ProviderState{Phase: phase, Subscription: sub}, nil
}

// ChooseProvider is legal only when no current subscription exists. The
// local record is written first with a fixed window and zero yield, then
// the provider is asked to enroll; an enrollment failure leaves the local
// record in place.
func (s *srv) ChooseProvider(ctx context.Context, actor, providerName string) (*entities.Subscription, error) {
	cur, err := s.s.GetCurrentSubscription(ctx, actor)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if cur != nil {
		if cur.Expired(s.now()) {
			return nil, service.ErrPendingWithdraw
		}
		return nil, service.ErrProviderActive
	}

	now := s.now()
	sub := &entities.Subscription{
		Actor:        actor,
		ProviderName: providerName,
		StartsAt:     now,
		EndsAt:       now.Add(subscriptionWindow),
	}

	if err := s.s.CreateSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	ledger, err := s.s.ListLedger(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}

	if _, err := s.p.Deal(ctx, actor, providerName, ledger); err != nil {
		return nil, fmt.Errorf("failed to enroll with provider: %w", err)
	}

	return sub, nil
}

// WithdrawYield archives the expired subscription, deletes the current
// record, notifies the provider and, last, submits the payout and waits
// for one confirmation. A payout failure after archival does not restore
// the yield.
func (s *srv) WithdrawYield(ctx context.Context, actor, payoutAddress string) (*payment.Receipt, error) {
	var receipt *payment.Receipt

	err := s.withActorLock(actor, func() error {
		sub, err := s.archiveExpired(ctx, actor)
		if err != nil {
			return err
		}

		if err := s.p.FinishWithdraw(ctx, actor, sub.ProviderName, sub.StartsAt); err != nil {
			return fmt.Errorf("failed to finish withdraw with provider: %w", err)
		}

		receipt, err = s.pc.Withdraw(ctx, big.NewInt(sub.Yield), payoutAddress)
		if err != nil {
			log.WithError(err).WithField("actor", actor).Error("payout failed after archival, yield not restored")
			return fmt.Errorf("failed to submit payout: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

// SkipWithdraw performs the withdraw archival without going on-chain; the
// yield lands in the uncollected debts total for manual reconciliation.
func (s *srv) SkipWithdraw(ctx context.Context, actor string) error {
	return s.withActorLock(actor, func() error {
		sub, err := s.archiveExpired(ctx, actor)
		if err != nil {
			return err
		}

		if err := s.p.FinishWithdraw(ctx, actor, sub.ProviderName, sub.StartsAt); err != nil {
			return fmt.Errorf("failed to finish withdraw with provider: %w", err)
		}

		if err := s.s.AddUncollectedDebt(ctx, actor, sub.ProviderName, sub.Yield, s.now()); err != nil {
			return fmt.Errorf("failed to record uncollected debt: %w", err)
		}

		return nil
	})
}

// ChangeProvider swaps providers mid-window. The old record is archived and
// deleted, then the new provider deals against the actor's interaction
// ledger and the deal result becomes the current subscription.
func (s *srv) ChangeProvider(ctx context.Context, actor, newProviderName string) (*entities.Subscription, error) {
	cur, err := s.s.GetCurrentSubscription(ctx, actor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNoProvider
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if newProviderName == cur.ProviderName {
		return nil, service.ErrSameProvider
	}

	if cur.Expired(s.now()) {
		return nil, service.ErrExpired
	}

	if err := s.s.ArchiveSubscription(ctx, cur); err != nil {
		return nil, fmt.Errorf("failed to archive subscription: %w", err)
	}

	if err := s.s.DeleteCurrentSubscription(ctx, actor); err != nil {
		return nil, fmt.Errorf("failed to delete subscription: %w", err)
	}

	ledger, err := s.s.ListLedger(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger: %w", err)
	}

	deal, err := s.p.Deal(ctx, actor, newProviderName, ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to deal with provider: %w", err)
	}

	sub := &entities.Subscription{
		Actor:        actor,
		ProviderName: newProviderName,
		StartsAt:     deal.StartsAt,
		EndsAt:       deal.EndsAt,
		Yield:        deal.Yield,
	}

	if err := s.s.CreateSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub, nil
}

// archiveExpired validates the withdraw precondition and performs the two
// archival writes. They are sequential and not transactional on purpose.
func (s *srv) archiveExpired(ctx context.Context, actor string) (*entities.Subscription, error) {
	sub, err := s.s.GetCurrentSubscription(ctx, actor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, service.ErrNoProvider
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if !sub.Expired(s.now()) {
		return nil, service.ErrNotExpired
	}

	if err := s.s.ArchiveSubscription(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to archive subscription: %w", err)
	}

	if err := s.s.DeleteCurrentSubscription(ctx, actor); err != nil {
		return nil, fmt.Errorf("failed to delete subscription: %w", err)
	}

	return sub, nil
}

// GetFeed asks the actor's provider for a personalized feed and hydrates
// the returned post paths. Actors without an active subscription get the
// recent-posts fallback.
func (s *srv) GetFeed(ctx context.Context, actor string) ([]*entities.Post, error) {
	sub, err := s.s.GetCurrentSubscription(ctx, actor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return s.recentPosts(ctx)
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	if sub.Expired(s.now()) {
		return s.recentPosts(ctx)
	}

	paths, err := s.p.ProvideFeed(ctx, actor, sub.ProviderName, sub.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get feed from provider: %w", err)
	}

	ids := make([]entities.PostID, 0, len(paths))
	for _, path := range paths {
		id, err := parsePostPath(path)
		if err != nil {
			log.WithError(err).Warn("skip malformed post path from provider")
			continue
		}
		ids = append(ids, id)
	}

	posts, err := s.s.GetPosts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	return posts, nil
}

func (s *srv) recentPosts(ctx context.Context) ([]*entities.Post, error) {
	posts, err := s.s.ListRecentPosts(ctx, feedFallbackLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent posts: %w", err)
	}

	return posts, nil
}
