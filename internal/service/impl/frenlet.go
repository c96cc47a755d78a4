package impl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/service"
	"github.com/apidon/hermes/internal/storage"
)

// CreateFrenlet writes both copies of a mutual-follow-gated message. The
// two copies are created in one transaction so a half-created frenlet can
// never be observed; everything after that is the usual fan-out.
func (s *srv) CreateFrenlet(ctx context.Context, sender, receiver, message, tag string) (*entities.Frenlet, error) {
	if sender == receiver {
		return nil, service.ErrSelfTarget
	}

	outgoing, err := s.s.HasFollowing(ctx, sender, receiver)
	if err != nil {
		return nil, fmt.Errorf("failed to check follow: %w", err)
	}

	incoming, err := s.s.HasFollowing(ctx, receiver, sender)
	if err != nil {
		return nil, fmt.Errorf("failed to check follow: %w", err)
	}

	if !outgoing || !incoming {
		return nil, service.ErrNotMutualFrens
	}

	f := &entities.Frenlet{
		ID:        uuid.NewString(),
		Sender:    sender,
		Receiver:  receiver,
		Message:   message,
		Tag:       tag,
		CreatedAt: s.now(),
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		for _, side := range entities.Sides() {
			copy := *f
			copy.Side = side
			if err := tx.CreateFrenletCopy(ctx, &copy); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to create frenlet copies: %w", err)
	}

	if err := s.fanOut(ctx,
		func(ctx context.Context) error {
			return s.s.IncrementActorCounter(ctx, sender, storage.FrenScore, 1)
		},
		func(ctx context.Context) error {
			return s.s.IncrementActorCounter(ctx, receiver, storage.FrenScore, 1)
		},
		func(ctx context.Context) error {
			return s.project(ctx, entities.FrenletCause, receiver, sender, f.CreatedAt, true, frenletPath(f.ID))
		},
	); err != nil {
		return nil, err
	}

	f.Side = entities.OutgoingSide

	return f, nil
}

func (s *srv) GetFrenletView(ctx context.Context, id string) (*service.FrenletView, error) {
	f, err := s.s.GetFrenletCopy(ctx, id, entities.OutgoingSide)
	if err != nil {
		return nil, fmt.Errorf("failed to get frenlet: %w", err)
	}

	likes, err := s.s.GetFrenletLikes(ctx, id, entities.OutgoingSide)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}

	replies, err := s.s.GetFrenletReplies(ctx, id, entities.OutgoingSide)
	if err != nil {
		return nil, fmt.Errorf("failed to get replies: %w", err)
	}

	return &service.FrenletView{
		Frenlet: f,
		Likes:   likes,
		Replies: replies,
	}, nil
}

// LikeFrenlet mutates both copies identically: counter and like record on
// the outgoing and the incoming side, four independent writes.
func (s *srv) LikeFrenlet(ctx context.Context, actor, id string, action entities.LikeAction) error {
	return s.withActorLock(actor, func() error {
		f, err := s.s.GetFrenletCopy(ctx, id, entities.OutgoingSide)
		if err != nil {
			return fmt.Errorf("failed to get frenlet: %w", err)
		}

		has, err := s.s.HasFrenletLike(ctx, id, entities.OutgoingSide, actor)
		if err != nil {
			return fmt.Errorf("failed to check like: %w", err)
		}

		var delta int32
		switch action {
		case entities.Like:
			if has {
				return service.ErrAlreadyLiked
			}
			delta = 1
		case entities.Delike:
			if !has {
				return service.ErrNotLiked
			}
			delta = -1
		default:
			return fmt.Errorf("%w: like action %q", entities.ErrInvalidDiscriminator, action)
		}

		ts := s.now()

		writes := make([]func(ctx context.Context) error, 0, 5)
		for _, side := range entities.Sides() {
			side := side
			writes = append(writes,
				func(ctx context.Context) error {
					return s.s.IncrementFrenletCounter(ctx, id, side, storage.FrenletLikeCount, delta)
				},
				func(ctx context.Context) error {
					if action == entities.Like {
						return s.s.AddFrenletLike(ctx, id, side, entities.FrenletLike{Sender: actor, LikedAt: ts})
					}
					return s.s.RemoveFrenletLike(ctx, id, side, actor)
				},
			)
		}

		recipient := f.Sender
		if actor == f.Sender {
			recipient = f.Receiver
		}
		writes = append(writes, func(ctx context.Context) error {
			return s.project(ctx, entities.LikeCause, recipient, actor, ts, action == entities.Like, frenletPath(id))
		})

		return s.fanOut(ctx, writes...)
	})
}

func (s *srv) ReplyFrenlet(ctx context.Context, actor, id, message string) error {
	f, err := s.s.GetFrenletCopy(ctx, id, entities.OutgoingSide)
	if err != nil {
		return fmt.Errorf("failed to get frenlet: %w", err)
	}

	ts := s.now()

	writes := make([]func(ctx context.Context) error, 0, 5)
	for _, side := range entities.Sides() {
		side := side
		writes = append(writes,
			func(ctx context.Context) error {
				return s.s.IncrementFrenletCounter(ctx, id, side, storage.FrenletReplyCount, 1)
			},
			func(ctx context.Context) error {
				return s.s.AddFrenletReply(ctx, id, side, entities.FrenletReply{Sender: actor, Message: message, RepliedAt: ts})
			},
		)
	}

	recipient := f.Sender
	if actor == f.Sender {
		recipient = f.Receiver
	}
	writes = append(writes, func(ctx context.Context) error {
		return s.project(ctx, entities.CommentCause, recipient, actor, ts, true, frenletPath(id))
	})

	return s.fanOut(ctx, writes...)
}

func (s *srv) DeleteFrenlet(ctx context.Context, actor, id string) error {
	f, err := s.s.GetFrenletCopy(ctx, id, entities.OutgoingSide)
	if err != nil {
		return fmt.Errorf("failed to get frenlet: %w", err)
	}

	if actor != f.Sender && actor != f.Receiver {
		return service.ErrForbidden
	}

	return s.fanOut(ctx,
		func(ctx context.Context) error {
			return s.s.DeleteFrenletCopy(ctx, id, entities.OutgoingSide)
		},
		func(ctx context.Context) error {
			return s.s.DeleteFrenletCopy(ctx, id, entities.IncomingSide)
		},
		func(ctx context.Context) error {
			return s.s.IncrementActorCounter(ctx, f.Sender, storage.FrenScore, -1)
		},
		func(ctx context.Context) error {
			return s.s.IncrementActorCounter(ctx, f.Receiver, storage.FrenScore, -1)
		},
	)
}
