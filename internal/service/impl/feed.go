package impl

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/identity"
	"github.com/Decentr-net/chronicle/internal/storage"
)

// GetFollowingPosts returns published posts of users followed by the caller, newest first.
// Every followee's posts are loaded in full before merge, so cost grows with followees × posts.
func (s srv) GetFollowingPosts(ctx context.Context, limit int) ([]*entities.PostView, error) {
	follower, ok := identity.UserID(ctx)
	if !ok {
		return []*entities.PostView{}, nil
	}

	follows, err := s.s.ListFollowing(ctx, follower)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows on storage side: %w", err)
	}

	batches := make([][]*entities.Post, len(follows))
	gr, gctx := errgroup.WithContext(ctx)

	for i := range follows {
		i := i
		gr.Go(func() error {
			posts, err := s.s.ListPosts(gctx, &storage.ListPostsParams{
				Published: boolPtr(true),
				AuthorID:  &follows[i].FollowingID,
			})
			if err != nil {
				return fmt.Errorf("failed to list posts of %s on storage side: %w", follows[i].FollowingID, err)
			}

			batches[i] = posts
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	var posts []*entities.Post
	for _, v := range batches {
		posts = append(posts, v...)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return newerThan(posts[i], posts[j])
	})

	if limit = normalizeLimit(limit); len(posts) > limit {
		posts = posts[:limit]
	}

	return s.viewPosts(ctx, posts)
}

func newerThan(a, b *entities.Post) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}

	return a.ID > b.ID
}
