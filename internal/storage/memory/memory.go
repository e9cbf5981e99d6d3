// Package memory is an in-process implementation of storage interface.
// It keeps every collection in maps and iterates them in insertion order.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/storage"
)

type record struct {
	seq uint64
	v   interface{}
}

type table map[string]record

// Storage ...
type Storage struct {
	mu  sync.RWMutex
	seq uint64

	users    table
	profiles table
	posts    table
	comments table
	likes    table
	follows  table
}

var _ storage.Storage = (*Storage)(nil)

// New creates new instance of Storage.
func New() *Storage {
	return &Storage{
		users:    table{},
		profiles: table{},
		posts:    table{},
		comments: table{},
		likes:    table{},
		follows:  table{},
	}
}

// AddUser puts user into the storage. Users are owned by identity provider, so it isn't part of storage.Storage.
func (s *Storage) AddUser(u *entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := *u
	s.insert(s.users, u.ID, &v)
}

func (s *Storage) insert(t table, id string, v interface{}) {
	s.seq++
	t[id] = record{seq: s.seq, v: v}
}

func (s *Storage) replace(t table, id string, v interface{}) bool {
	r, ok := t[id]
	if !ok {
		return false
	}

	t[id] = record{seq: r.seq, v: v}
	return true
}

// scan returns values of table in insertion order which match filter.
func scan(t table, filter func(v interface{}) bool) []interface{} {
	rr := make([]record, 0, len(t))
	for _, r := range t {
		if filter == nil || filter(r.v) {
			rr = append(rr, r)
		}
	}

	sort.Slice(rr, func(i, j int) bool {
		return rr[i].seq < rr[j].seq
	})

	out := make([]interface{}, len(rr))
	for i, r := range rr {
		out[i] = r.v
	}

	return out
}

// Ping ...
func (s *Storage) Ping(_ context.Context) error {
	return nil
}

// GetUser ...
func (s *Storage) GetUser(_ context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	u := *r.v.(*entities.User)
	return &u, nil
}

// ListUsers ...
func (s *Storage) ListUsers(_ context.Context) ([]*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vv := scan(s.users, nil)
	out := make([]*entities.User, len(vv))
	for i, v := range vv {
		u := *v.(*entities.User)
		out[i] = &u
	}

	return out, nil
}

// SetUserName ...
func (s *Storage) SetUserName(_ context.Context, id string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}

	u := *r.v.(*entities.User)
	u.Name = name
	s.replace(s.users, id, &u)

	return nil
}

// GetProfile ...
func (s *Storage) GetProfile(_ context.Context, userID string) (*entities.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.profiles[userID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	p := *r.v.(*entities.UserProfile)
	return &p, nil
}

// CreateProfile ...
func (s *Storage) CreateProfile(_ context.Context, p *entities.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[p.UserID]; ok {
		return fmt.Errorf("profile %s already exists", p.UserID)
	}

	v := *p
	s.insert(s.profiles, p.UserID, &v)

	return nil
}

// UpdateProfileInfo ...
func (s *Storage) UpdateProfileInfo(_ context.Context, userID string, info entities.ProfileInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.profiles[userID]
	if !ok {
		return storage.ErrNotFound
	}

	p := *r.v.(*entities.UserProfile)
	p.Bio, p.Website, p.Location, p.Avatar = info.Bio, info.Website, info.Location, info.Avatar
	s.replace(s.profiles, userID, &p)

	return nil
}

// SetProfileCounter ...
func (s *Storage) SetProfileCounter(_ context.Context, userID string, c storage.ProfileCounter, value uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.profiles[userID]
	if !ok {
		return storage.ErrNotFound
	}

	p := *r.v.(*entities.UserProfile)
	switch c {
	case storage.FollowersCounter:
		p.FollowersCount = value
	case storage.FollowingCounter:
		p.FollowingCount = value
	case storage.PostsCounter:
		p.PostsCount = value
	default:
		return fmt.Errorf("unknown profile counter %q", c)
	}
	s.replace(s.profiles, userID, &p)

	return nil
}

// CreatePost ...
func (s *Storage) CreatePost(_ context.Context, p *entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := *p
	v.Tags = append([]string(nil), p.Tags...)
	s.insert(s.posts, p.ID, &v)

	return nil
}

// GetPost ...
func (s *Storage) GetPost(_ context.Context, id string) (*entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.posts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return copyPost(r.v), nil
}

// UpdatePost ...
func (s *Storage) UpdatePost(_ context.Context, id string, c entities.PostContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.posts[id]
	if !ok {
		return storage.ErrNotFound
	}

	p := copyPost(r.v)
	p.Title, p.Content, p.Excerpt, p.Published = c.Title, c.Content, c.Excerpt, c.Published
	p.Tags = append([]string(nil), c.Tags...)
	s.replace(s.posts, id, p)

	return nil
}

// DeletePost ...
func (s *Storage) DeletePost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.posts, id)

	return nil
}

// ListPosts returns posts in reverse insertion order.
func (s *Storage) ListPosts(_ context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vv := scan(s.posts, func(v interface{}) bool {
		post := v.(*entities.Post)
		if p.Published != nil && post.Published != *p.Published {
			return false
		}
		if p.AuthorID != nil && post.AuthorID != *p.AuthorID {
			return false
		}
		return true
	})

	out := make([]*entities.Post, 0, len(vv))
	for i := len(vv) - 1; i >= 0; i-- {
		if p.Limit > 0 && len(out) == int(p.Limit) {
			break
		}
		out = append(out, copyPost(vv[i]))
	}

	return out, nil
}

// SetPostCounter ...
func (s *Storage) SetPostCounter(_ context.Context, id string, c storage.PostCounter, value uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.posts[id]
	if !ok {
		return storage.ErrNotFound
	}

	p := copyPost(r.v)
	switch c {
	case storage.LikesCounter:
		p.LikesCount = value
	case storage.CommentsCounter:
		p.CommentsCount = value
	default:
		return fmt.Errorf("unknown post counter %q", c)
	}
	s.replace(s.posts, id, p)

	return nil
}

// CreateComment ...
func (s *Storage) CreateComment(_ context.Context, c *entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := *c
	s.insert(s.comments, c.ID, &v)

	return nil
}

// GetComment ...
func (s *Storage) GetComment(_ context.Context, id string) (*entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.comments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	c := *r.v.(*entities.Comment)
	return &c, nil
}

// DeleteComment ...
func (s *Storage) DeleteComment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.comments, id)

	return nil
}

// ListComments ...
func (s *Storage) ListComments(_ context.Context, postID string) ([]*entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vv := scan(s.comments, func(v interface{}) bool {
		return v.(*entities.Comment).PostID == postID
	})

	out := make([]*entities.Comment, len(vv))
	for i, v := range vv {
		c := *v.(*entities.Comment)
		out[i] = &c
	}

	return out, nil
}

// DeleteCommentsByPost ...
func (s *Storage) DeleteCommentsByPost(_ context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.comments {
		if r.v.(*entities.Comment).PostID == postID {
			delete(s.comments, id)
		}
	}

	return nil
}

// CreateLike ...
func (s *Storage) CreateLike(_ context.Context, l *entities.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := *l
	s.insert(s.likes, l.ID, &v)

	return nil
}

// GetLike ...
func (s *Storage) GetLike(_ context.Context, postID, userID string) (*entities.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vv := scan(s.likes, func(v interface{}) bool {
		l := v.(*entities.Like)
		return l.PostID == postID && l.UserID == userID
	})
	if len(vv) == 0 {
		return nil, storage.ErrNotFound
	}

	l := *vv[0].(*entities.Like)
	return &l, nil
}

// DeleteLike ...
func (s *Storage) DeleteLike(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.likes[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.likes, id)

	return nil
}

// DeleteLikesByPost ...
func (s *Storage) DeleteLikesByPost(_ context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, r := range s.likes {
		if r.v.(*entities.Like).PostID == postID {
			delete(s.likes, id)
		}
	}

	return nil
}

// CreateFollow ...
func (s *Storage) CreateFollow(_ context.Context, f *entities.Follow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := *f
	s.insert(s.follows, f.ID, &v)

	return nil
}

// GetFollow ...
func (s *Storage) GetFollow(_ context.Context, followerID, followingID string) (*entities.Follow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vv := scan(s.follows, func(v interface{}) bool {
		f := v.(*entities.Follow)
		return f.FollowerID == followerID && f.FollowingID == followingID
	})
	if len(vv) == 0 {
		return nil, storage.ErrNotFound
	}

	f := *vv[0].(*entities.Follow)
	return &f, nil
}

// DeleteFollow ...
func (s *Storage) DeleteFollow(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.follows[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.follows, id)

	return nil
}

// ListFollowing ...
func (s *Storage) ListFollowing(_ context.Context, followerID string) ([]*entities.Follow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vv := scan(s.follows, func(v interface{}) bool {
		return v.(*entities.Follow).FollowerID == followerID
	})

	out := make([]*entities.Follow, len(vv))
	for i, v := range vv {
		f := *v.(*entities.Follow)
		out[i] = &f
	}

	return out, nil
}

// RecountCounters ...
func (s *Storage) RecountCounters(_ context.Context) (*storage.Drift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	likes := map[string]uint32{}
	for _, r := range s.likes {
		likes[r.v.(*entities.Like).PostID]++
	}

	comments := map[string]uint32{}
	for _, r := range s.comments {
		comments[r.v.(*entities.Comment).PostID]++
	}

	posts := map[string]uint32{}
	for _, r := range s.posts {
		posts[r.v.(*entities.Post).AuthorID]++
	}

	followers, following := map[string]uint32{}, map[string]uint32{}
	for _, r := range s.follows {
		f := r.v.(*entities.Follow)
		followers[f.FollowingID]++
		following[f.FollowerID]++
	}

	var d storage.Drift

	for id, r := range s.posts {
		p := copyPost(r.v)
		changed := false

		if p.LikesCount != likes[id] {
			p.LikesCount = likes[id]
			d.PostLikes++
			changed = true
		}

		if p.CommentsCount != comments[id] {
			p.CommentsCount = comments[id]
			d.PostComments++
			changed = true
		}

		if changed {
			s.replace(s.posts, id, p)
		}
	}

	for id, r := range s.profiles {
		p := *r.v.(*entities.UserProfile)
		changed := false

		if p.PostsCount != posts[id] {
			p.PostsCount = posts[id]
			d.ProfilePosts++
			changed = true
		}

		if p.FollowersCount != followers[id] {
			p.FollowersCount = followers[id]
			d.ProfileFollowers++
			changed = true
		}

		if p.FollowingCount != following[id] {
			p.FollowingCount = following[id]
			d.ProfileFollowing++
			changed = true
		}

		if changed {
			s.replace(s.profiles, id, &p)
		}
	}

	return &d, nil
}

func copyPost(v interface{}) *entities.Post {
	p := *v.(*entities.Post)
	p.Tags = append([]string(nil), p.Tags...)
	return &p
}
