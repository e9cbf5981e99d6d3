package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/service"
	"github.com/Decentr-net/chronicle/internal/service/mock"
)

func newRouter(s service.Service) chi.Router {
	r := chi.NewRouter()
	srv := server{s: s}

	r.Get("/v1/posts", srv.listPosts)
	r.Post("/v1/posts", srv.createPost)
	r.Get("/v1/posts/{id}", srv.getPost)
	r.Put("/v1/posts/{id}", srv.updatePost)
	r.Delete("/v1/posts/{id}", srv.deletePost)
	r.Post("/v1/posts/{id}/like", srv.toggleLike)
	r.Get("/v1/posts/{id}/comments", srv.listComments)
	r.Post("/v1/posts/{id}/comments", srv.createComment)
	r.Delete("/v1/comments/{id}", srv.deleteComment)
	r.Get("/v1/feed", srv.getFollowingPosts)
	r.Get("/v1/users", srv.searchUsers)
	r.Get("/v1/users/{id}", srv.getUserProfile)
	r.Get("/v1/users/{id}/follow", srv.isFollowing)
	r.Post("/v1/users/{id}/follow", srv.toggleFollow)
	r.Put("/v1/profile", srv.updateProfile)
	r.Put("/v1/profile/name", srv.updateUserName)

	return r
}

func serve(t *testing.T, s service.Service, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r, err := http.NewRequest(method, target, strings.NewReader(body))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	newRouter(s).ServeHTTP(w, r)

	return w
}

func Test_listPosts(t *testing.T) {
	timestamp := time.Unix(100, 0)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p service.ListPostsParams) {
		require.NotNil(t, p.Published)
		assert.True(t, *p.Published)
		require.NotNil(t, p.AuthorID)
		assert.Equal(t, "author", *p.AuthorID)
		assert.Equal(t, 50, p.Limit)
	}).Return([]*entities.PostView{
		{
			Post: entities.Post{
				ID:            "1",
				Title:         "title",
				Content:       "content",
				Excerpt:       "excerpt",
				AuthorID:      "author",
				Published:     true,
				Tags:          []string{"go"},
				LikesCount:    2,
				CommentsCount: 3,
				CreatedAt:     timestamp,
			},
			Author:  &entities.AuthorSummary{Name: "name", Email: "email"},
			IsLiked: true,
		},
		{
			Post: entities.Post{
				ID:        "2",
				AuthorID:  "ghost",
				Published: true,
				CreatedAt: timestamp,
			},
		},
	}, nil)

	w := serve(t, s, http.MethodGet, "/v1/posts?published=true&authorId=author&limit=50", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
   {
      "id":"1",
      "title":"title",
      "content":"content",
      "excerpt":"excerpt",
      "authorId":"author",
      "published":true,
      "tags":["go"],
      "likesCount":2,
      "commentsCount":3,
      "createdAt":100,
      "author":{"name":"name","email":"email"},
      "isLiked":true
   },
   {
      "id":"2",
      "title":"",
      "content":"",
      "excerpt":"",
      "authorId":"ghost",
      "published":true,
      "tags":[],
      "likesCount":0,
      "commentsCount":0,
      "createdAt":100,
      "author":null,
      "isLiked":false
   }
]
	`, w.Body.String())
}

func Test_listPosts_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListPosts(gomock.Any(), service.ListPostsParams{Limit: service.DefaultLimit}).Return(nil, nil)

	w := serve(t, s, http.MethodGet, "/v1/posts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func Test_listPosts_BadRequest(t *testing.T) {
	tt := []string{
		"limit=0",
		"limit=101",
		"limit=-1",
		"limit=abc",
		"published=maybe",
	}

	for i := range tt {
		query := tt[i]
		t.Run(query, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			w := serve(t, mock.NewMockService(ctrl), http.MethodGet, "/v1/posts?"+query, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func Test_getPost(t *testing.T) {
	tt := []struct {
		name string
		post *entities.PostView
		err  error
		code int
	}{
		{
			name: "found",
			post: &entities.PostView{Post: entities.Post{ID: "1", CreatedAt: time.Unix(1, 0)}},
			code: http.StatusOK,
		},
		{
			name: "not found",
			code: http.StatusNotFound,
		},
		{
			name: "error",
			err:  fmt.Errorf("test"),
			code: http.StatusInternalServerError,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().GetPost(gomock.Any(), "1").Return(tc.post, tc.err)

			w := serve(t, s, http.MethodGet, "/v1/posts/1", "")

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_createPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().CreatePost(gomock.Any(), entities.PostContent{
		Title:     "title",
		Content:   "content",
		Excerpt:   "excerpt",
		Published: true,
		Tags:      []string{},
	}).Return("id", nil)

	w := serve(t, s, http.MethodPost, "/v1/posts", `{"title":"title","content":"content","excerpt":"excerpt","published":true}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"id"}`, w.Body.String())
}

func Test_createPost_Errors(t *testing.T) {
	tt := []struct {
		name string
		body string
		err  error
		code int
	}{
		{
			name: "invalid body",
			body: "{",
			code: http.StatusBadRequest,
		},
		{
			name: "unauthenticated",
			body: `{"title":"t"}`,
			err:  service.ErrUnauthenticated,
			code: http.StatusUnauthorized,
		},
		{
			name: "internal",
			body: `{"title":"t"}`,
			err:  fmt.Errorf("test"),
			code: http.StatusInternalServerError,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			if tc.err != nil {
				s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return("", tc.err)
			}

			w := serve(t, s, http.MethodPost, "/v1/posts", tc.body)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_updatePost(t *testing.T) {
	tt := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "success",
			code: http.StatusOK,
		},
		{
			name: "not owner",
			err:  service.ErrNotFoundOrForbidden,
			code: http.StatusNotFound,
		},
		{
			name: "unauthenticated",
			err:  service.ErrUnauthenticated,
			code: http.StatusUnauthorized,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().UpdatePost(gomock.Any(), "1", entities.PostContent{
				Title: "new",
				Tags:  []string{"a", "b"},
			}).Return(tc.err)

			w := serve(t, s, http.MethodPut, "/v1/posts/1", `{"title":"new","tags":["a","b"]}`)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_deletePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().DeletePost(gomock.Any(), "1").Return(nil)

	w := serve(t, s, http.MethodDelete, "/v1/posts/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())
}

func Test_toggleLike(t *testing.T) {
	tt := []struct {
		name  string
		state *entities.LikeState
		err   error
		code  int
		body  string
	}{
		{
			name:  "liked",
			state: &entities.LikeState{Liked: true, Count: 5},
			code:  http.StatusOK,
			body:  `{"liked":true,"count":5}`,
		},
		{
			name: "missing post",
			err:  fmt.Errorf("%w: post 1", service.ErrNotFound),
			code: http.StatusNotFound,
		},
		{
			name: "unauthenticated",
			err:  service.ErrUnauthenticated,
			code: http.StatusUnauthorized,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().ToggleLike(gomock.Any(), "1").Return(tc.state, tc.err)

			w := serve(t, s, http.MethodPost, "/v1/posts/1/like", "")

			assert.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func Test_listComments(t *testing.T) {
	parent := "c1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().ListComments(gomock.Any(), "p").Return([]*entities.CommentView{
		{
			Comment: entities.Comment{
				ID:        "c1",
				PostID:    "p",
				AuthorID:  "u1",
				Content:   "first",
				CreatedAt: time.Unix(10, 0),
			},
			Author: &entities.AuthorSummary{Name: "n", Email: "e"},
		},
		{
			Comment: entities.Comment{
				ID:        "c2",
				PostID:    "p",
				AuthorID:  "u2",
				Content:   "reply",
				ParentID:  &parent,
				CreatedAt: time.Unix(20, 0),
			},
		},
	}, nil)

	w := serve(t, s, http.MethodGet, "/v1/posts/p/comments", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
   {"id":"c1","postId":"p","authorId":"u1","content":"first","parentId":null,"createdAt":10,"author":{"name":"n","email":"e"}},
   {"id":"c2","postId":"p","authorId":"u2","content":"reply","parentId":"c1","createdAt":20,"author":null}
]
	`, w.Body.String())
}

func Test_createComment(t *testing.T) {
	tt := []struct {
		name   string
		body   string
		parent *string
		err    error
		code   int
	}{
		{
			name: "root",
			body: `{"content":"hi"}`,
			code: http.StatusCreated,
		},
		{
			name:   "reply",
			body:   `{"content":"hi","parentId":"c1"}`,
			parent: func() *string { s := "c1"; return &s }(),
			code:   http.StatusCreated,
		},
		{
			name:   "foreign parent",
			body:   `{"content":"hi","parentId":"c1"}`,
			parent: func() *string { s := "c1"; return &s }(),
			err:    fmt.Errorf("%w: parent comment doesn't belong to post", service.ErrInvalidArgument),
			code:   http.StatusBadRequest,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := mock.NewMockService(ctrl)

			s.EXPECT().CreateComment(gomock.Any(), "p", "hi", tc.parent).Return("id", tc.err)

			w := serve(t, s, http.MethodPost, "/v1/posts/p/comments", tc.body)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_deleteComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().DeleteComment(gomock.Any(), "c").Return(service.ErrNotFoundOrForbidden)

	w := serve(t, s, http.MethodDelete, "/v1/comments/c", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_getFollowingPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetFollowingPosts(gomock.Any(), 10).Return([]*entities.PostView{}, nil)

	w := serve(t, s, http.MethodGet, "/v1/feed?limit=10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func Test_searchUsers(t *testing.T) {
	bio := "bio"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().SearchUsers(gomock.Any(), "ali").Return([]*entities.UserWithProfile{
		{
			User: entities.User{ID: "1", Name: "Alice", Email: "alice@example.com"},
			Profile: entities.UserProfile{
				UserID:         "1",
				Bio:            &bio,
				FollowersCount: 1,
				FollowingCount: 2,
				PostsCount:     3,
			},
		},
	}, nil)

	w := serve(t, s, http.MethodGet, "/v1/users?query=ali", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
[
   {
      "id":"1",
      "name":"Alice",
      "email":"alice@example.com",
      "profile":{
         "bio":"bio",
         "website":null,
         "location":null,
         "avatar":null,
         "followersCount":1,
         "followingCount":2,
         "postsCount":3
      }
   }
]
	`, w.Body.String())
}

func Test_getUserProfile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().GetUserProfile(gomock.Any(), "1").Return(nil, nil)

	w := serve(t, s, http.MethodGet, "/v1/users/1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().IsFollowing(gomock.Any(), "2").Return(true, nil)
	s.EXPECT().ToggleFollow(gomock.Any(), "2").Return(&entities.FollowState{Following: false}, nil)
	s.EXPECT().ToggleFollow(gomock.Any(), "1").Return(nil, fmt.Errorf("%w: cannot follow self", service.ErrInvalidArgument))

	w := serve(t, s, http.MethodGet, "/v1/users/2/follow", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"following":true}`, w.Body.String())

	w = serve(t, s, http.MethodPost, "/v1/users/2/follow", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"following":false}`, w.Body.String())

	w = serve(t, s, http.MethodPost, "/v1/users/1/follow", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_updateProfile(t *testing.T) {
	website := "https://example.com"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockService(ctrl)

	s.EXPECT().UpdateProfile(gomock.Any(), entities.ProfileInfo{Website: &website}).Return(nil)
	s.EXPECT().UpdateUserName(gomock.Any(), "bob").Return(service.ErrUnauthenticated)

	w := serve(t, s, http.MethodPut, "/v1/profile", `{"website":"https://example.com"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(t, s, http.MethodPut, "/v1/profile/name", `{"name":"bob"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
