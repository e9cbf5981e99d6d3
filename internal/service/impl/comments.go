package impl

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/publisher"
	"github.com/Decentr-net/chronicle/internal/service"
	"github.com/Decentr-net/chronicle/internal/storage"
)

// CreateComment creates comment even when the post is missing, only the post's counter update is skipped then.
func (s srv) CreateComment(ctx context.Context, postID, content string, parentID *string) (string, error) {
	author, err := actor(ctx)
	if err != nil {
		return "", err
	}

	if parentID != nil {
		parent, err := s.s.GetComment(ctx, *parentID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("failed to get parent comment: %w", err)
		}

		if parent == nil || parent.PostID != postID {
			return "", fmt.Errorf("%w: parent comment doesn't belong to post", service.ErrInvalidArgument)
		}
	}

	id, err := s.newID()
	if err != nil {
		return "", err
	}

	if err := s.s.CreateComment(ctx, &entities.Comment{
		ID:        id,
		PostID:    postID,
		AuthorID:  author,
		Content:   content,
		ParentID:  parentID,
		CreatedAt: s.now().UTC(),
	}); err != nil {
		return "", fmt.Errorf("failed to create comment on storage side: %w", err)
	}

	if err := s.adjustPostCounter(ctx, postID, storage.CommentsCounter, 1); err != nil {
		log.WithError(err).WithField("comment_id", id).Error("comment is created but comments count isn't updated")
		return "", err
	}

	s.publish(ctx, publisher.Event{
		Subject:  publisher.CommentCreated,
		ActorID:  author,
		TargetID: id,
		PostID:   postID,
	})

	return id, nil
}

// DeleteComment deletes only the comment itself, replies are kept.
func (s srv) DeleteComment(ctx context.Context, id string) error {
	author, err := actor(ctx)
	if err != nil {
		return err
	}

	c, err := s.s.GetComment(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to get comment: %w", err)
	}

	if c == nil || c.AuthorID != author {
		return service.ErrNotFoundOrForbidden
	}

	if err := s.s.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return service.ErrNotFoundOrForbidden
		}

		return fmt.Errorf("failed to delete comment on storage side: %w", err)
	}

	if err := s.adjustPostCounter(ctx, c.PostID, storage.CommentsCounter, -1); err != nil {
		log.WithError(err).WithField("comment_id", id).Error("comment is deleted but comments count isn't updated")
		return err
	}

	s.publish(ctx, publisher.Event{
		Subject:  publisher.CommentDeleted,
		ActorID:  author,
		TargetID: id,
		PostID:   c.PostID,
	})

	return nil
}

// ListComments returns flat list of post's comments in creation order.
func (s srv) ListComments(ctx context.Context, postID string) ([]*entities.CommentView, error) {
	comments, err := s.s.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments on storage side: %w", err)
	}

	out := make([]*entities.CommentView, len(comments))
	gr, gctx := errgroup.WithContext(ctx)

	for i := range comments {
		i := i
		gr.Go(func() error {
			author, err := s.authorSummary(gctx, comments[i].AuthorID)
			if err != nil {
				return err
			}

			out[i] = &entities.CommentView{
				Comment: *comments[i],
				Author:  author,
			}

			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
