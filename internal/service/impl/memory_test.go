package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/publisher"
	"github.com/Decentr-net/chronicle/internal/service"
	"github.com/Decentr-net/chronicle/internal/storage/memory"
)

// newMemorySrv returns service over memory storage with a clock which ticks on every call.
func newMemorySrv(t *testing.T, users ...string) (srv, *memory.Storage) {
	t.Helper()

	var (
		mu    sync.Mutex
		clock = time.Unix(1000, 0)
	)

	s := memory.New()
	for _, id := range users {
		s.AddUser(&entities.User{ID: id, Name: "name " + id, Email: id + "@example.com", CreatedAt: clock})
		require.NoError(t, s.CreateProfile(context.Background(), &entities.UserProfile{UserID: id}))
	}

	return srv{
		s: s,
		p: publisher.Noop{},
		now: func() time.Time {
			mu.Lock()
			defer mu.Unlock()

			clock = clock.Add(time.Second)
			return clock
		},
		newID: newUUID,
	}, s
}

func profile(t *testing.T, s *memory.Storage, id string) *entities.UserProfile {
	t.Helper()

	p, err := s.GetProfile(context.Background(), id)
	require.NoError(t, err)

	return p
}

func post(t *testing.T, s *memory.Storage, id string) *entities.Post {
	t.Helper()

	p, err := s.GetPost(context.Background(), id)
	require.NoError(t, err)

	return p
}

func TestMemory_CreatePost(t *testing.T) {
	srv, s := newMemorySrv(t, "alice")

	id, err := srv.CreatePost(as("alice"), entities.PostContent{Title: "t", Published: true})
	require.NoError(t, err)

	p := post(t, s, id)
	assert.Zero(t, p.LikesCount)
	assert.Zero(t, p.CommentsCount)
	assert.Equal(t, "alice", p.AuthorID)
	assert.EqualValues(t, 1, profile(t, s, "alice").PostsCount)
}

func TestMemory_ToggleLikeTwice(t *testing.T) {
	srv, s := newMemorySrv(t, "alice", "bob")

	id, err := srv.CreatePost(as("alice"), entities.PostContent{Title: "t"})
	require.NoError(t, err)

	state, err := srv.ToggleLike(as("bob"), id)
	require.NoError(t, err)
	assert.Equal(t, &entities.LikeState{Liked: true, Count: 1}, state)

	v, err := srv.GetPost(as("bob"), id)
	require.NoError(t, err)
	assert.True(t, v.IsLiked)

	state, err = srv.ToggleLike(as("bob"), id)
	require.NoError(t, err)
	assert.Equal(t, &entities.LikeState{Liked: false, Count: 0}, state)

	_, err = s.GetLike(context.Background(), id, "bob")
	assert.Error(t, err)
	assert.Zero(t, post(t, s, id).LikesCount)
}

func TestMemory_ToggleFollowTwice(t *testing.T) {
	srv, s := newMemorySrv(t, "alice", "bob")

	state, err := srv.ToggleFollow(as("alice"), "bob")
	require.NoError(t, err)
	assert.True(t, state.Following)

	following, err := srv.IsFollowing(as("alice"), "bob")
	require.NoError(t, err)
	assert.True(t, following)

	assert.EqualValues(t, 1, profile(t, s, "alice").FollowingCount)
	assert.EqualValues(t, 1, profile(t, s, "bob").FollowersCount)
	assert.Zero(t, profile(t, s, "alice").FollowersCount)

	state, err = srv.ToggleFollow(as("alice"), "bob")
	require.NoError(t, err)
	assert.False(t, state.Following)

	assert.Zero(t, profile(t, s, "alice").FollowingCount)
	assert.Zero(t, profile(t, s, "bob").FollowersCount)
}

func TestMemory_CounterFloor(t *testing.T) {
	srv, s := newMemorySrv(t, "alice", "bob")

	id, err := srv.CreatePost(as("alice"), entities.PostContent{})
	require.NoError(t, err)

	_, err = srv.ToggleLike(as("bob"), id)
	require.NoError(t, err)

	// drift the counter below the real number of likes
	require.NoError(t, s.SetPostCounter(context.Background(), id, "likes_count", 0))

	state, err := srv.ToggleLike(as("bob"), id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, state.Count)
	assert.Zero(t, post(t, s, id).LikesCount)
}

func TestMemory_DeletePostCascade(t *testing.T) {
	srv, s := newMemorySrv(t, "alice", "bob")

	id, err := srv.CreatePost(as("alice"), entities.PostContent{Title: "t"})
	require.NoError(t, err)
	other, err := srv.CreatePost(as("alice"), entities.PostContent{Title: "other"})
	require.NoError(t, err)

	root, err := srv.CreateComment(as("bob"), id, "root", nil)
	require.NoError(t, err)
	_, err = srv.CreateComment(as("alice"), id, "reply", &root)
	require.NoError(t, err)
	_, err = srv.CreateComment(as("bob"), other, "kept", nil)
	require.NoError(t, err)
	_, err = srv.ToggleLike(as("bob"), id)
	require.NoError(t, err)

	assert.EqualValues(t, 2, post(t, s, id).CommentsCount)
	assert.EqualValues(t, 2, profile(t, s, "alice").PostsCount)

	require.NoError(t, srv.DeletePost(as("alice"), id))

	v, err := srv.GetPost(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, v)

	comments, err := srv.ListComments(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, comments)

	_, err = s.GetLike(context.Background(), id, "bob")
	assert.Error(t, err)

	comments, err = srv.ListComments(context.Background(), other)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	assert.EqualValues(t, 1, profile(t, s, "alice").PostsCount)
}

func TestMemory_Comments(t *testing.T) {
	srv, s := newMemorySrv(t, "alice", "bob")

	id, err := srv.CreatePost(as("alice"), entities.PostContent{})
	require.NoError(t, err)
	other, err := srv.CreatePost(as("alice"), entities.PostContent{})
	require.NoError(t, err)

	root, err := srv.CreateComment(as("bob"), id, "root", nil)
	require.NoError(t, err)
	reply, err := srv.CreateComment(as("alice"), id, "reply", &root)
	require.NoError(t, err)

	_, err = srv.CreateComment(as("alice"), other, "foreign", &root)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	comments, err := srv.ListComments(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, root, comments[0].ID)
	assert.Equal(t, reply, comments[1].ID)
	assert.Equal(t, root, *comments[1].ParentID)
	assert.Equal(t, &entities.AuthorSummary{Name: "name bob", Email: "bob@example.com"}, comments[0].Author)

	// only the author can delete, replies are kept
	assert.Equal(t, service.ErrNotFoundOrForbidden, srv.DeleteComment(as("alice"), root))
	require.NoError(t, srv.DeleteComment(as("bob"), root))

	comments, err = srv.ListComments(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, reply, comments[0].ID)
	assert.EqualValues(t, 1, post(t, s, id).CommentsCount)
}

func TestMemory_OwnershipFailureLeavesPostUnchanged(t *testing.T) {
	srv, s := newMemorySrv(t, "alice", "bob")

	id, err := srv.CreatePost(as("alice"), entities.PostContent{Title: "original", Tags: []string{"a"}})
	require.NoError(t, err)
	before := post(t, s, id)

	assert.Equal(t, service.ErrNotFoundOrForbidden, srv.UpdatePost(as("bob"), id, entities.PostContent{Title: "hijacked"}))
	assert.Equal(t, service.ErrNotFoundOrForbidden, srv.DeletePost(as("bob"), id))
	assert.Equal(t, service.ErrNotFoundOrForbidden, srv.UpdatePost(as("alice"), "missing", entities.PostContent{}))

	assert.Equal(t, before, post(t, s, id))
	assert.EqualValues(t, 1, profile(t, s, "alice").PostsCount)
}

func TestMemory_GetFollowingPosts(t *testing.T) {
	srv, _ := newMemorySrv(t, "alice", "bob", "carol", "dave")

	create := func(author, title string, published bool) {
		_, err := srv.CreatePost(as(author), entities.PostContent{Title: title, Published: published})
		require.NoError(t, err)
	}

	create("bob", "b1", true)
	create("carol", "c1", true)
	create("bob", "b2", false)
	create("dave", "d1", true)
	create("carol", "c2", true)
	create("bob", "b3", true)

	_, err := srv.ToggleFollow(as("alice"), "bob")
	require.NoError(t, err)
	_, err = srv.ToggleFollow(as("alice"), "carol")
	require.NoError(t, err)

	titles := func(posts []*entities.PostView) []string {
		out := make([]string, len(posts))
		for i, v := range posts {
			out[i] = v.Title
		}
		return out
	}

	posts, err := srv.GetFollowingPosts(as("alice"), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b3", "c2", "c1", "b1"}, titles(posts))
	assert.Equal(t, &entities.AuthorSummary{Name: "name bob", Email: "bob@example.com"}, posts[0].Author)

	posts, err = srv.GetFollowingPosts(as("alice"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b3", "c2"}, titles(posts))

	posts, err = srv.GetFollowingPosts(as("dave"), 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestMemory_ListPosts(t *testing.T) {
	srv, _ := newMemorySrv(t, "alice", "bob")

	for i := 0; i < 3; i++ {
		_, err := srv.CreatePost(as("alice"), entities.PostContent{Title: fmt.Sprintf("a%d", i), Published: i != 1})
		require.NoError(t, err)
	}
	_, err := srv.CreatePost(as("bob"), entities.PostContent{Title: "b0"})
	require.NoError(t, err)

	published, bob := true, "bob"

	posts, err := srv.ListPosts(context.Background(), service.ListPostsParams{Published: &published, AuthorID: &bob})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "a2", posts[0].Title)
	assert.Equal(t, "a0", posts[1].Title)

	posts, err = srv.ListPosts(context.Background(), service.ListPostsParams{AuthorID: &bob})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "b0", posts[0].Title)

	posts, err = srv.ListPosts(context.Background(), service.ListPostsParams{Limit: 1})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "b0", posts[0].Title)
}

func TestMemory_SearchUsers(t *testing.T) {
	ids := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		ids = append(ids, fmt.Sprintf("user%02d", i))
	}

	srv, _ := newMemorySrv(t, append(ids, "Zed")...)

	users, err := srv.SearchUsers(context.Background(), "USER")
	require.NoError(t, err)
	assert.Len(t, users, searchLimit)

	users, err = srv.SearchUsers(context.Background(), "zed@")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Zed", users[0].ID)
	assert.Equal(t, "Zed", users[0].Profile.UserID)

	users, err = srv.SearchUsers(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestMemory_Profile(t *testing.T) {
	srv, s := newMemorySrv(t, "alice")
	s.AddUser(&entities.User{ID: "bob", Name: "bob"})

	u, err := srv.GetUserProfile(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, entities.UserProfile{UserID: "bob"}, u.Profile)

	bio := "bio"
	require.NoError(t, srv.UpdateProfile(as("bob"), entities.ProfileInfo{Bio: &bio}))
	require.NoError(t, srv.UpdateUserName(as("bob"), "Bobby"))

	u, err = srv.GetUserProfile(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bobby", u.Name)
	require.NotNil(t, u.Profile.Bio)
	assert.Equal(t, "bio", *u.Profile.Bio)

	// omitted fields are cleared, counters are kept
	_, err = srv.CreatePost(as("bob"), entities.PostContent{})
	require.NoError(t, err)
	require.NoError(t, srv.UpdateProfile(as("bob"), entities.ProfileInfo{}))

	u, err = srv.GetUserProfile(context.Background(), "bob")
	require.NoError(t, err)
	assert.Nil(t, u.Profile.Bio)
	assert.EqualValues(t, 1, u.Profile.PostsCount)

	u, err = srv.GetUserProfile(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestMemory_RecountCounters(t *testing.T) {
	srv, s := newMemorySrv(t, "alice", "bob")

	id, err := srv.CreatePost(as("alice"), entities.PostContent{})
	require.NoError(t, err)
	_, err = srv.ToggleLike(as("bob"), id)
	require.NoError(t, err)

	require.NoError(t, s.SetPostCounter(context.Background(), id, "likes_count", 7))

	d, err := s.RecountCounters(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, d.PostLikes)
	assert.EqualValues(t, 1, post(t, s, id).LikesCount)

	d, err = s.RecountCounters(context.Background())
	require.NoError(t, err)
	assert.Zero(t, d.Total())
}
