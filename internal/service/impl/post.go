package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/service"
	"github.com/apidon/hermes/internal/storage"
)

func (s *srv) CreatePost(ctx context.Context, owner, description, image string) (*entities.Post, error) {
	p := &entities.Post{
		ID:          entities.PostID{Owner: owner, UUID: uuid.NewString()},
		Description: description,
		Image:       image,
		CreatedAt:   s.now(),
	}

	if err := s.s.CreatePost(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if err := s.s.AppendLedger(ctx, entities.LedgerEntry{
		Actor:      owner,
		Kind:       entities.UploadedLedgerKind,
		PostPath:   postPath(p.ID),
		RecordedAt: p.CreatedAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to append ledger: %w", err)
	}

	s.classify(owner, postPath(p.ID), s.p.SendPostUploadAction)

	return p, nil
}

func (s *srv) GetPostView(ctx context.Context, id entities.PostID) (*service.PostView, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	likes, err := s.s.GetPostLikes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes: %w", err)
	}

	comments, err := s.s.GetPostComments(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return &service.PostView{
		Post:     p,
		Likes:    likes,
		Comments: comments,
	}, nil
}

func (s *srv) DeletePost(ctx context.Context, actor string, id entities.PostID) error {
	if _, err := s.s.GetPost(ctx, id); err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	if actor != id.Owner {
		return service.ErrForbidden
	}

	// Best-effort cascade, same exposure as every other fan-out.
	return s.fanOut(ctx,
		func(ctx context.Context) error {
			return s.s.DeletePost(ctx, id, s.now(), actor)
		},
		func(ctx context.Context) error {
			err := s.s.RemoveLedger(ctx, entities.LedgerEntry{
				Actor:    actor,
				Kind:     entities.UploadedLedgerKind,
				PostPath: postPath(id),
			})
			if err != nil && !isNotFound(err) {
				return err
			}
			return nil
		},
	)
}

// LikePost applies or undoes a like as a fan-out of independent writes:
// the denormalized counter, the like record, the actor's ledger entry and
// the notification projection.
func (s *srv) LikePost(ctx context.Context, actor string, id entities.PostID, action entities.LikeAction) error {
	return s.withActorLock(actor, func() error {
		p, err := s.s.GetPost(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		// Advisory check-then-act; the like table's uniqueness backs it up.
		has, err := s.s.HasPostLike(ctx, id, actor)
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

		if err := s.fanOut(ctx,
			func(ctx context.Context) error {
				return s.s.IncrementPostCounter(ctx, id, storage.PostLikeCount, delta)
			},
			func(ctx context.Context) error {
				if action == entities.Like {
					return s.s.AddPostLike(ctx, id, entities.PostLike{Sender: actor, LikedAt: ts})
				}
				return s.s.RemovePostLike(ctx, id, actor)
			},
			func(ctx context.Context) error {
				e := entities.LedgerEntry{
					Actor:      actor,
					Kind:       entities.LikedLedgerKind,
					PostPath:   postPath(id),
					RecordedAt: ts,
				}
				if action == entities.Like {
					return s.s.AppendLedger(ctx, e)
				}
				return s.s.RemoveLedger(ctx, e)
			},
			func(ctx context.Context) error {
				return s.project(ctx, entities.LikeCause, p.ID.Owner, actor, ts, action == entities.Like, postPath(id))
			},
		); err != nil {
			return err
		}

		if action == entities.Like {
			s.classify(actor, postPath(id), s.p.SendLikeAction)
		}

		return nil
	})
}

func (s *srv) CommentPost(ctx context.Context, actor string, id entities.PostID, message string) error {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	ts := s.now()

	if err := s.fanOut(ctx,
		func(ctx context.Context) error {
			return s.s.IncrementPostCounter(ctx, id, storage.PostCommentCount, 1)
		},
		func(ctx context.Context) error {
			return s.s.AddPostComment(ctx, id, entities.PostComment{Sender: actor, Message: message, CommentedAt: ts})
		},
		func(ctx context.Context) error {
			return s.s.AppendLedger(ctx, entities.LedgerEntry{
				Actor:      actor,
				Kind:       entities.CommentedLedgerKind,
				PostPath:   postPath(id),
				RecordedAt: ts,
			})
		},
		func(ctx context.Context) error {
			return s.project(ctx, entities.CommentCause, p.ID.Owner, actor, ts, true, postPath(id))
		},
	); err != nil {
		return err
	}

	s.classify(actor, postPath(id), s.p.SendCommentAction)

	return nil
}

// DeleteComment removes a comment found by field equality. The comment's
// sender and the post's owner may delete; anyone else is rejected.
func (s *srv) DeleteComment(ctx context.Context, actor string, id entities.PostID, c entities.PostComment) error {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}

	if actor != c.Sender && actor != p.ID.Owner {
		return service.ErrForbidden
	}

	// Advisory check-then-act, same as the like and follow undo paths.
	has, err := s.s.HasPostComment(ctx, id, c)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !has {
		return service.ErrNoComment
	}

	return s.fanOut(ctx,
		func(ctx context.Context) error {
			return s.s.IncrementPostCounter(ctx, id, storage.PostCommentCount, -1)
		},
		func(ctx context.Context) error {
			return s.s.RemovePostComment(ctx, id, c)
		},
		func(ctx context.Context) error {
			err := s.s.RemoveLedger(ctx, entities.LedgerEntry{
				Actor:    c.Sender,
				Kind:     entities.CommentedLedgerKind,
				PostPath: postPath(id),
			})
			if err != nil && !isNotFound(err) {
				return err
			}
			return nil
		},
		func(ctx context.Context) error {
			return s.project(ctx, entities.CommentCause, p.ID.Owner, c.Sender, c.CommentedAt, false, postPath(id))
		},
	)
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
