package server

import (
	"github.com/Decentr-net/chronicle/internal/entities"
)

const maxLimit = 100

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// PostRequest contains post's editable fields.
// swagger:model
type PostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   string   `json:"excerpt"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags"`
}

// CreateCommentRequest ...
// swagger:model
type CreateCommentRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parentId"`
}

// UpdateProfileRequest ...
// Omitted fields are cleared.
// swagger:model
type UpdateProfileRequest struct {
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	Location *string `json:"location"`
	Avatar   *string `json:"avatar"`
}

// UpdateUserNameRequest ...
// swagger:model
type UpdateUserNameRequest struct {
	Name string `json:"name"`
}

// IDResponse ...
// swagger:model
type IDResponse struct {
	ID string `json:"id"`
}

// Author ...
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post ...
// swagger:model
type Post struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	AuthorID      string   `json:"authorId"`
	Published     bool     `json:"published"`
	Tags          []string `json:"tags"`
	LikesCount    uint32   `json:"likesCount"`
	CommentsCount uint32   `json:"commentsCount"`
	CreatedAt     uint64   `json:"createdAt"`
	Author        *Author  `json:"author"`
	IsLiked       bool     `json:"isLiked"`
}

// Comment ...
// swagger:model
type Comment struct {
	ID        string  `json:"id"`
	PostID    string  `json:"postId"`
	AuthorID  string  `json:"authorId"`
	Content   string  `json:"content"`
	ParentID  *string `json:"parentId"`
	CreatedAt uint64  `json:"createdAt"`
	Author    *Author `json:"author"`
}

// LikeResponse ...
// swagger:model
type LikeResponse struct {
	Liked bool   `json:"liked"`
	Count uint32 `json:"count"`
}

// FollowResponse ...
// swagger:model
type FollowResponse struct {
	Following bool `json:"following"`
}

// Profile ...
type Profile struct {
	Bio            *string `json:"bio"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Avatar         *string `json:"avatar"`
	FollowersCount uint32  `json:"followersCount"`
	FollowingCount uint32  `json:"followingCount"`
	PostsCount     uint32  `json:"postsCount"`
}

// User ...
// swagger:model
type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Profile Profile `json:"profile"`
}

func toAPIPost(p *entities.PostView) Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return Post{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Excerpt:       p.Excerpt,
		AuthorID:      p.AuthorID,
		Published:     p.Published,
		Tags:          tags,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     uint64(p.CreatedAt.Unix()),
		Author:        toAPIAuthor(p.Author),
		IsLiked:       p.IsLiked,
	}
}

func toAPIPosts(pp []*entities.PostView) []Post {
	out := make([]Post, len(pp))
	for i, v := range pp {
		out[i] = toAPIPost(v)
	}

	return out
}

func toAPIComment(c *entities.CommentView) Comment {
	return Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: uint64(c.CreatedAt.Unix()),
		Author:    toAPIAuthor(c.Author),
	}
}

func toAPIAuthor(a *entities.AuthorSummary) *Author {
	if a == nil {
		return nil
	}

	return &Author{
		Name:  a.Name,
		Email: a.Email,
	}
}

func toAPIUser(u *entities.UserWithProfile) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Profile: Profile{
			Bio:            u.Profile.Bio,
			Website:        u.Profile.Website,
			Location:       u.Profile.Location,
			Avatar:         u.Profile.Avatar,
			FollowersCount: u.Profile.FollowersCount,
			FollowingCount: u.Profile.FollowingCount,
			PostsCount:     u.Profile.PostsCount,
		},
	}
}
