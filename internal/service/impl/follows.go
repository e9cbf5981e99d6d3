package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/identity"
	"github.com/Decentr-net/chronicle/internal/publisher"
	"github.com/Decentr-net/chronicle/internal/service"
	"github.com/Decentr-net/chronicle/internal/storage"
)

// ToggleFollow follows or unfollows the user and updates both users' counters.
// Each side's profile is updated independently and skipped when missing.
func (s srv) ToggleFollow(ctx context.Context, userID string) (*entities.FollowState, error) {
	follower, err := actor(ctx)
	if err != nil {
		return nil, err
	}

	if follower == userID {
		return nil, fmt.Errorf("%w: cannot follow self", service.ErrInvalidArgument)
	}

	existing, err := s.s.GetFollow(ctx, follower, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get follow on storage side: %w", err)
	}

	delta := 1

	if existing != nil {
		if err := s.s.DeleteFollow(ctx, existing.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to delete follow on storage side: %w", err)
		}

		delta = -1
	} else {
		id, err := s.newID()
		if err != nil {
			return nil, err
		}

		if err := s.s.CreateFollow(ctx, &entities.Follow{
			ID:          id,
			FollowerID:  follower,
			FollowingID: userID,
			CreatedAt:   s.now().UTC(),
		}); err != nil {
			return nil, fmt.Errorf("failed to create follow on storage side: %w", err)
		}
	}

	l := log.WithField("follower", follower).WithField("following", userID)

	if err := s.adjustProfileCounter(ctx, follower, storage.FollowingCounter, delta); err != nil {
		l.WithError(err).Error("follow is toggled but following count isn't updated")
		return nil, err
	}

	if err := s.adjustProfileCounter(ctx, userID, storage.FollowersCounter, delta); err != nil {
		l.WithError(err).Error("follow is toggled but followers count isn't updated")
		return nil, err
	}

	state := entities.FollowState{Following: existing == nil}

	s.publish(ctx, publisher.Event{
		Subject:  publisher.FollowToggled,
		ActorID:  follower,
		TargetID: userID,
		Active:   &state.Following,
	})

	return &state, nil
}

func (s srv) IsFollowing(ctx context.Context, userID string) (bool, error) {
	follower, ok := identity.UserID(ctx)
	if !ok {
		return false, nil
	}

	if _, err := s.s.GetFollow(ctx, follower, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get follow on storage side: %w", err)
	}

	return true, nil
}
