// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/Decentr-net/chronicle/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrUnauthenticated is returned when a mutation is called without an authenticated user.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrNotFoundOrForbidden is returned when the record is missing or isn't owned by the caller.
	// Both cases are reported the same way to not leak records existence.
	ErrNotFoundOrForbidden = errors.New("not found or not authorized")
	// ErrNotFound ...
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument ...
	ErrInvalidArgument = errors.New("invalid argument")
)

// DefaultLimit is used by list operations when limit isn't positive.
const DefaultLimit = 20

// Service ...
// The caller is taken from context, see identity package.
type Service interface {
	CreatePost(ctx context.Context, c entities.PostContent) (string, error)
	UpdatePost(ctx context.Context, id string, c entities.PostContent) error
	DeletePost(ctx context.Context, id string) error
	// GetPost returns nil if post doesn't exist.
	GetPost(ctx context.Context, id string) (*entities.PostView, error)
	ListPosts(ctx context.Context, p ListPostsParams) ([]*entities.PostView, error)
	GetFollowingPosts(ctx context.Context, limit int) ([]*entities.PostView, error)

	CreateComment(ctx context.Context, postID, content string, parentID *string) (string, error)
	DeleteComment(ctx context.Context, id string) error
	ListComments(ctx context.Context, postID string) ([]*entities.CommentView, error)

	ToggleLike(ctx context.Context, postID string) (*entities.LikeState, error)

	ToggleFollow(ctx context.Context, userID string) (*entities.FollowState, error)
	IsFollowing(ctx context.Context, userID string) (bool, error)

	// GetUserProfile returns nil if user doesn't exist.
	GetUserProfile(ctx context.Context, userID string) (*entities.UserWithProfile, error)
	UpdateUserName(ctx context.Context, name string) error
	UpdateProfile(ctx context.Context, info entities.ProfileInfo) error
	SearchUsers(ctx context.Context, query string) ([]*entities.UserWithProfile, error)
}

// ListPostsParams ...
// Published takes precedence: AuthorID is ignored when Published is set.
type ListPostsParams struct {
	Published *bool
	AuthorID  *string
	Limit     int
}
