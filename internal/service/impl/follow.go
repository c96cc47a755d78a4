package impl

import (
	"context"
	"fmt"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/service"
	"github.com/apidon/hermes/internal/storage"
)

// Follow applies or undoes a follow edge. The edge is materialized twice,
// as a following record under the actor and a follower record under the
// target, with both denormalized counts kept alongside.
func (s *srv) Follow(ctx context.Context, actor, target string, op entities.FollowOpCode) error {
	return s.withActorLock(actor, func() error {
		if actor == target {
			return service.ErrSelfTarget
		}

		if _, err := s.s.GetActor(ctx, target); err != nil {
			return fmt.Errorf("failed to get target actor: %w", err)
		}

		has, err := s.s.HasFollowing(ctx, actor, target)
		if err != nil {
			return fmt.Errorf("failed to check follow: %w", err)
		}

		var delta int32
		switch op {
		case entities.FollowOp:
			if has {
				return service.ErrAlreadyFollowing
			}
			delta = 1
		case entities.UnfollowOp:
			if !has {
				return service.ErrNotFollowing
			}
			delta = -1
		default:
			return fmt.Errorf("%w: follow opcode %d", entities.ErrInvalidDiscriminator, op)
		}

		ts := s.now()

		return s.fanOut(ctx,
			func(ctx context.Context) error {
				if op == entities.FollowOp {
					return s.s.AddFollowing(ctx, entities.FollowEdge{Owner: actor, Target: target, FollowedAt: ts})
				}
				return s.s.RemoveFollowing(ctx, actor, target)
			},
			func(ctx context.Context) error {
				if op == entities.FollowOp {
					return s.s.AddFollower(ctx, entities.FollowEdge{Owner: target, Target: actor, FollowedAt: ts})
				}
				return s.s.RemoveFollower(ctx, target, actor)
			},
			func(ctx context.Context) error {
				return s.s.IncrementActorCounter(ctx, actor, storage.FollowingCount, delta)
			},
			func(ctx context.Context) error {
				return s.s.IncrementActorCounter(ctx, target, storage.FollowerCount, delta)
			},
			func(ctx context.Context) error {
				return s.project(ctx, entities.FollowCause, target, actor, ts, op == entities.FollowOp, "")
			},
		)
	})
}
