package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/publisher"
	"github.com/Decentr-net/chronicle/internal/service"
	"github.com/Decentr-net/chronicle/internal/storage"
)

// ToggleLike likes the post or removes the existing like.
// It is read-then-write, so concurrent toggles of the same user may race.
func (s srv) ToggleLike(ctx context.Context, postID string) (*entities.LikeState, error) {
	user, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	post, err := s.s.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
		}

		return nil, fmt.Errorf("failed to get post on storage side: %w", err)
	}

	existing, err := s.s.GetLike(ctx, postID, user)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get like on storage side: %w", err)
	}

	var state entities.LikeState

	if existing != nil {
		if err := s.s.DeleteLike(ctx, existing.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to delete like on storage side: %w", err)
		}

		state.Liked = false
		if state.Count, err = s.setPostCounter(ctx, post, storage.LikesCounter, -1); err != nil {
			log.WithError(err).WithField("post_id", postID).Error("like is deleted but likes count isn't updated")
			return nil, err
		}
	} else {
		id, err := s.newID()
		if err != nil {
			return nil, err
		}

		if err := s.s.CreateLike(ctx, &entities.Like{
			ID:        id,
			PostID:    postID,
			UserID:    user,
			CreatedAt: s.now().UTC(),
		}); err != nil {
			return nil, fmt.Errorf("failed to create like on storage side: %w", err)
		}

		state.Liked = true
		if state.Count, err = s.setPostCounter(ctx, post, storage.LikesCounter, 1); err != nil {
			log.WithError(err).WithField("post_id", postID).Error("like is created but likes count isn't updated")
			return nil, err
		}
	}

	s.publish(ctx, publisher.Event{
		Subject:  publisher.LikeToggled,
		ActorID:  user,
		TargetID: post.AuthorID,
		PostID:   postID,
		Active:   &state.Liked,
		Count:    &state.Count,
	})

	return &state, nil
}
