package impl

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/storage"
)

// Counters are denormalized and maintained on a best-effort basis: a failure between
// the child record write and the counter patch leaves the counter drifted until recount.

// nextCount returns current+delta floored at zero.
func nextCount(current uint32, delta int) uint32 {
	v := int64(current) + int64(delta)

	switch {
	case v < 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}

// adjustPostCounter applies delta to the post's counter. Missing post is skipped.
func (s srv) adjustPostCounter(ctx context.Context, postID string, c storage.PostCounter, delta int) error {
	p, err := s.s.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.WithField("post_id", postID).WithField("counter", c).Debug("post not found, skip counter update")
			return nil
		}

		return fmt.Errorf("failed to get post: %w", err)
	}

	_, err = s.setPostCounter(ctx, p, c, delta)
	return err
}

// setPostCounter applies delta to already loaded post and returns the new value.
func (s srv) setPostCounter(ctx context.Context, p *entities.Post, c storage.PostCounter, delta int) (uint32, error) {
	var current uint32
	switch c {
	case storage.LikesCounter:
		current = p.LikesCount
	case storage.CommentsCounter:
		current = p.CommentsCount
	default:
		return 0, fmt.Errorf("unknown post counter %q", c)
	}

	v := nextCount(current, delta)

	if err := s.s.SetPostCounter(ctx, p.ID, c, v); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.WithField("post_id", p.ID).WithField("counter", c).Debug("post disappeared, skip counter update")
			return v, nil
		}

		return 0, fmt.Errorf("failed to set post %s: %w", c, err)
	}

	return v, nil
}

// adjustProfileCounter applies delta to the user profile's counter. Missing profile is skipped, never created.
func (s srv) adjustProfileCounter(ctx context.Context, userID string, c storage.ProfileCounter, delta int) error {
	p, err := s.s.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.WithField("user_id", userID).WithField("counter", c).Debug("profile not found, skip counter update")
			return nil
		}

		return fmt.Errorf("failed to get profile: %w", err)
	}

	var current uint32
	switch c {
	case storage.FollowersCounter:
		current = p.FollowersCount
	case storage.FollowingCounter:
		current = p.FollowingCount
	case storage.PostsCounter:
		current = p.PostsCount
	default:
		return fmt.Errorf("unknown profile counter %q", c)
	}

	if err := s.s.SetProfileCounter(ctx, userID, c, nextCount(current, delta)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("failed to set profile %s: %w", c, err)
	}

	return nil
}
