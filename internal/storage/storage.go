// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/Decentr-net/chronicle/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
// Every method is atomic on its own, there are no multi-record transactions.
type Storage interface {
	Ping(ctx context.Context) error

	GetUser(ctx context.Context, id string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
	SetUserName(ctx context.Context, id string, name string) error

	GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error)
	CreateProfile(ctx context.Context, p *entities.UserProfile) error
	UpdateProfileInfo(ctx context.Context, userID string, info entities.ProfileInfo) error
	SetProfileCounter(ctx context.Context, userID string, c ProfileCounter, value uint32) error

	CreatePost(ctx context.Context, p *entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	UpdatePost(ctx context.Context, id string, c entities.PostContent) error
	DeletePost(ctx context.Context, id string) error
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	SetPostCounter(ctx context.Context, id string, c PostCounter, value uint32) error

	CreateComment(ctx context.Context, c *entities.Comment) error
	GetComment(ctx context.Context, id string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id string) error
	ListComments(ctx context.Context, postID string) ([]*entities.Comment, error)
	DeleteCommentsByPost(ctx context.Context, postID string) error

	CreateLike(ctx context.Context, l *entities.Like) error
	GetLike(ctx context.Context, postID, userID string) (*entities.Like, error)
	DeleteLike(ctx context.Context, id string) error
	DeleteLikesByPost(ctx context.Context, postID string) error

	CreateFollow(ctx context.Context, f *entities.Follow) error
	GetFollow(ctx context.Context, followerID, followingID string) (*entities.Follow, error)
	DeleteFollow(ctx context.Context, id string) error
	ListFollowing(ctx context.Context, followerID string) ([]*entities.Follow, error)

	RecountCounters(ctx context.Context) (*Drift, error)
}

// PostCounter is a denormalized counter stored on post.
type PostCounter string

const (
	// LikesCounter ...
	LikesCounter PostCounter = "likes_count"
	// CommentsCounter ...
	CommentsCounter PostCounter = "comments_count"
)

// ProfileCounter is a denormalized counter stored on user profile.
type ProfileCounter string

const (
	// FollowersCounter ...
	FollowersCounter ProfileCounter = "followers_count"
	// FollowingCounter ...
	FollowingCounter ProfileCounter = "following_count"
	// PostsCounter ...
	PostsCounter ProfileCounter = "posts_count"
)

// ListPostsParams ...
// Both filters are applied when both are set. Zero Limit means no limit.
type ListPostsParams struct {
	Published *bool
	AuthorID  *string
	Limit     uint16
}

// Drift is the number of records which counters were corrected by RecountCounters.
type Drift struct {
	PostLikes        int64
	PostComments     int64
	ProfilePosts     int64
	ProfileFollowers int64
	ProfileFollowing int64
}

// Total ...
func (d Drift) Total() int64 {
	return d.PostLikes + d.PostComments + d.ProfilePosts + d.ProfileFollowers + d.ProfileFollowing
}
