// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/identity"
	"github.com/Decentr-net/chronicle/internal/publisher"
	"github.com/Decentr-net/chronicle/internal/service"
	"github.com/Decentr-net/chronicle/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// srv implements service.Service.
type srv struct {
	s storage.Storage
	p publisher.Publisher

	now   func() time.Time
	newID func() (string, error)
}

// New creates new instance of service.
func New(s storage.Storage, p publisher.Publisher) service.Service {
	return srv{
		s:     s,
		p:     p,
		now:   time.Now,
		newID: newUUID,
	}
}

func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}

	return id.String(), nil
}

func actor(ctx context.Context) (string, error) {
	id, ok := identity.UserID(ctx)
	if !ok {
		return "", service.ErrUnauthenticated
	}

	return id, nil
}

func (s srv) publish(ctx context.Context, e publisher.Event) {
	e.CreatedAt = s.now().UTC()

	if err := s.p.Publish(ctx, e); err != nil {
		log.WithError(err).WithField("subject", e.Subject).Warn("failed to publish event")
	}
}

func (s srv) authorSummary(ctx context.Context, userID string) (*entities.AuthorSummary, error) {
	u, err := s.s.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	return &entities.AuthorSummary{
		Name:  u.Name,
		Email: u.Email,
	}, nil
}

func (s srv) isLiked(ctx context.Context, postID, userID string) (bool, error) {
	if _, err := s.s.GetLike(ctx, postID, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get like: %w", err)
	}

	return true, nil
}

// viewPosts joins posts with authors and the viewer's likes. Joins run in parallel, output keeps posts order.
func (s srv) viewPosts(ctx context.Context, posts []*entities.Post) ([]*entities.PostView, error) {
	viewer, authenticated := identity.UserID(ctx)

	out := make([]*entities.PostView, len(posts))
	gr, gctx := errgroup.WithContext(ctx)

	for i := range posts {
		i := i
		gr.Go(func() error {
			author, err := s.authorSummary(gctx, posts[i].AuthorID)
			if err != nil {
				return err
			}

			var liked bool
			if authenticated {
				if liked, err = s.isLiked(gctx, posts[i].ID, viewer); err != nil {
					return err
				}
			}

			out[i] = &entities.PostView{
				Post:    *posts[i],
				Author:  author,
				IsLiked: liked,
			}

			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) withProfiles(ctx context.Context, users []*entities.User) ([]*entities.UserWithProfile, error) {
	out := make([]*entities.UserWithProfile, len(users))
	gr, gctx := errgroup.WithContext(ctx)

	for i := range users {
		i := i
		gr.Go(func() error {
			p, err := s.profileOrZero(gctx, users[i].ID)
			if err != nil {
				return err
			}

			out[i] = &entities.UserWithProfile{
				User:    *users[i],
				Profile: *p,
			}

			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return service.DefaultLimit
	}

	return limit
}

func boolPtr(b bool) *bool {
	return &b
}
