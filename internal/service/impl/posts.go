package impl

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/publisher"
	"github.com/Decentr-net/chronicle/internal/service"
	"github.com/Decentr-net/chronicle/internal/storage"
)

func (s srv) CreatePost(ctx context.Context, c entities.PostContent) (string, error) {
	author, err := actor(ctx)
	if err != nil {
		return "", err
	}

	id, err := s.newID()
	if err != nil {
		return "", err
	}

	if err := s.s.CreatePost(ctx, &entities.Post{
		ID:        id,
		Title:     c.Title,
		Content:   c.Content,
		Excerpt:   c.Excerpt,
		AuthorID:  author,
		Published: c.Published,
		Tags:      c.Tags,
		CreatedAt: s.now().UTC(),
	}); err != nil {
		return "", fmt.Errorf("failed to create post on storage side: %w", err)
	}

	if err := s.adjustProfileCounter(ctx, author, storage.PostsCounter, 1); err != nil {
		log.WithError(err).WithField("post_id", id).Error("post is created but posts count isn't updated")
		return "", err
	}

	s.publish(ctx, publisher.Event{
		Subject:  publisher.PostCreated,
		ActorID:  author,
		TargetID: id,
		PostID:   id,
	})

	return id, nil
}

// ownPost returns the post if it exists and is owned by author.
func (s srv) ownPost(ctx context.Context, id, author string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if p == nil || p.AuthorID != author {
		return nil, service.ErrNotFoundOrForbidden
	}

	return p, nil
}

func (s srv) UpdatePost(ctx context.Context, id string, c entities.PostContent) error {
	author, err := actor(ctx)
	if err != nil {
		return err
	}

	if _, err := s.ownPost(ctx, id, author); err != nil {
		return err
	}

	if err := s.s.UpdatePost(ctx, id, c); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrNotFoundOrForbidden
		}

		return fmt.Errorf("failed to update post on storage side: %w", err)
	}

	return nil
}

// DeletePost removes post's comments, likes, the post itself and then decrements author's posts count.
// Already applied steps are not reverted when a later one fails.
func (s srv) DeletePost(ctx context.Context, id string) error {
	author, err := actor(ctx)
	if err != nil {
		return err
	}

	if _, err := s.ownPost(ctx, id, author); err != nil {
		return err
	}

	l := log.WithField("post_id", id)

	if err := s.s.DeleteCommentsByPost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comments on storage side: %w", err)
	}

	if err := s.s.DeleteLikesByPost(ctx, id); err != nil {
		l.WithError(err).Error("post deletion stopped after comments removal")
		return fmt.Errorf("failed to delete likes on storage side: %w", err)
	}

	if err := s.s.DeletePost(ctx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		l.WithError(err).Error("post deletion stopped after comments and likes removal")
		return fmt.Errorf("failed to delete post on storage side: %w", err)
	}

	if err := s.adjustProfileCounter(ctx, author, storage.PostsCounter, -1); err != nil {
		l.WithError(err).Error("post is deleted but posts count isn't updated")
		return err
	}

	s.publish(ctx, publisher.Event{
		Subject:  publisher.PostDeleted,
		ActorID:  author,
		TargetID: id,
		PostID:   id,
	})

	return nil
}

func (s srv) GetPost(ctx context.Context, id string) (*entities.PostView, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get post on storage side: %w", err)
	}

	views, err := s.viewPosts(ctx, []*entities.Post{p})
	if err != nil {
		return nil, err
	}

	return views[0], nil
}

func (s srv) ListPosts(ctx context.Context, p service.ListPostsParams) ([]*entities.PostView, error) {
	params := storage.ListPostsParams{
		Limit: toStorageLimit(normalizeLimit(p.Limit)),
	}

	// only one filter is applied, published has priority
	switch {
	case p.Published != nil:
		params.Published = p.Published
	case p.AuthorID != nil && *p.AuthorID != "":
		params.AuthorID = p.AuthorID
	}

	posts, err := s.s.ListPosts(ctx, &params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts on storage side: %w", err)
	}

	return s.viewPosts(ctx, posts)
}

func toStorageLimit(limit int) uint16 {
	if limit > math.MaxUint16 {
		return math.MaxUint16
	}

	return uint16(limit)
}
