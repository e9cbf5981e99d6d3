// Package entities contains main entities of service.
package entities

import (
	"time"
)

// User is an account owned by the identity provider.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// UserProfile ...
type UserProfile struct {
	UserID         string
	Bio            *string
	Website        *string
	Location       *string
	Avatar         *string
	FollowersCount uint32
	FollowingCount uint32
	PostsCount     uint32
}

// ProfileInfo is the user-editable part of profile.
type ProfileInfo struct {
	Bio      *string
	Website  *string
	Location *string
	Avatar   *string
}

// Post ...
type Post struct {
	ID            string
	Title         string
	Content       string
	Excerpt       string
	AuthorID      string
	Published     bool
	Tags          []string
	LikesCount    uint32
	CommentsCount uint32
	CreatedAt     time.Time
}

// PostContent contains the editable fields of post.
type PostContent struct {
	Title     string
	Content   string
	Excerpt   string
	Published bool
	Tags      []string
}

// Comment ...
type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	ParentID  *string
	CreatedAt time.Time
}

// Like ...
type Like struct {
	ID        string
	PostID    string
	UserID    string
	CreatedAt time.Time
}

// Follow is a directed edge between two users.
type Follow struct {
	ID          string
	FollowerID  string
	FollowingID string
	CreatedAt   time.Time
}

// AuthorSummary ...
type AuthorSummary struct {
	Name  string
	Email string
}

// PostView is a post joined with its author and the viewer's like flag.
type PostView struct {
	Post
	Author  *AuthorSummary
	IsLiked bool
}

// CommentView ...
type CommentView struct {
	Comment
	Author *AuthorSummary
}

// UserWithProfile ...
type UserWithProfile struct {
	User
	Profile UserProfile
}

// LikeState ...
type LikeState struct {
	Liked bool
	Count uint32
}

// FollowState ...
type FollowState struct {
	Following bool
}
