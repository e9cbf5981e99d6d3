package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/go-api"

	"github.com/Decentr-net/chronicle/internal/entities"
	"github.com/Decentr-net/chronicle/internal/service"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListPosts
	//
	// Return posts with authors. Only one filter is applied, published has priority over authorId.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: published
	//   description: filters posts by published flag
	//   in: query
	//   required: false
	//   type: boolean
	// - name: authorId
	//   description: filters posts by author
	//   in: query
	//   required: false
	//   type: string
	// - name: limit
	//   description: limits count of returned posts
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()

	limit, err := extractLimit(q)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := service.ListPostsParams{Limit: limit}

	if v := q.Get("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("%s: failed to parse published", errInvalidRequest))
			return
		}
		params.Published = &published
	}

	if v := q.Get("authorId"); v != "" {
		params.AuthorID = &v
	}

	posts, err := s.s.ListPosts(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err, "list posts")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) getFollowingPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /feed Posts GetFollowingPosts
	//
	// Return published posts of users followed by the requester, newest first. Anonymous requester gets empty list.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	limit, err := extractLimit(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := s.s.GetFollowingPosts(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err, "get following posts")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPosts(posts))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id} Posts GetPost
	//
	// Get post by id.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	post, err := s.s.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "get post")
		return
	}

	if post == nil {
		api.WriteError(w, http.StatusNotFound, "post not found")
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIPost(post))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Create post owned by the requester.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/PostRequest"
	// responses:
	//   '201':
	//     description: created post id
	//     schema:
	//       "$ref": "#/definitions/IDResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '401':
	//     description: not authenticated
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req PostRequest
	if err := decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.s.CreatePost(r.Context(), toPostContent(req))
	if err != nil {
		writeServiceError(w, r, err, "create post")
		return
	}

	api.WriteOK(w, http.StatusCreated, IDResponse{ID: id})
}

func (s server) updatePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /posts/{id} Posts UpdatePost
	//
	// Replace post's editable fields. Only the author can update the post.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/PostRequest"
	// responses:
	//   '200':
	//     description: updated post id
	//     schema:
	//       "$ref": "#/definitions/IDResponse"
	//   '401':
	//     description: not authenticated
	//   '404':
	//     description: post not found or requester isn't the author

	var req PostRequest
	if err := decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.s.UpdatePost(r.Context(), id, toPostContent(req)); err != nil {
		writeServiceError(w, r, err, "update post")
		return
	}

	api.WriteOK(w, http.StatusOK, IDResponse{ID: id})
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id} Posts DeletePost
	//
	// Delete post with its comments and likes. Only the author can delete the post.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: deleted post id
	//     schema:
	//       "$ref": "#/definitions/IDResponse"
	//   '401':
	//     description: not authenticated
	//   '404':
	//     description: post not found or requester isn't the author

	id := chi.URLParam(r, "id")
	if err := s.s.DeletePost(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "delete post")
		return
	}

	api.WriteOK(w, http.StatusOK, IDResponse{ID: id})
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Likes ToggleLike
	//
	// Like the post or remove the requester's like.
	//
	// ---
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: like state
	//     schema:
	//       "$ref": "#/definitions/LikeResponse"
	//   '401':
	//     description: not authenticated
	//   '404':
	//     description: post not found

	state, err := s.s.ToggleLike(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "toggle like")
		return
	}

	api.WriteOK(w, http.StatusOK, LikeResponse{
		Liked: state.Liked,
		Count: state.Count,
	})
}

func (s server) listComments(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/comments Comments ListComments
	//
	// Return post's comments in creation order. Replies reference their parent by parentId.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Comments
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Comment"

	comments, err := s.s.ListComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "list comments")
		return
	}

	out := make([]Comment, len(comments))
	for i, v := range comments {
		out[i] = toAPIComment(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) createComment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/comments Comments CreateComment
	//
	// Comment the post or reply to the comment of the same post.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreateCommentRequest"
	// responses:
	//   '201':
	//     description: created comment id
	//     schema:
	//       "$ref": "#/definitions/IDResponse"
	//   '400':
	//     description: bad request
	//   '401':
	//     description: not authenticated

	var req CreateCommentRequest
	if err := decode(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.s.CreateComment(r.Context(), chi.URLParam(r, "id"), req.Content, req.ParentID)
	if err != nil {
		writeServiceError(w, r, err, "create comment")
		return
	}

	api.WriteOK(w, http.StatusCreated, IDResponse{ID: id})
}

func (s server) deleteComment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /comments/{id} Comments DeleteComment
	//
	// Delete the comment. Replies are kept.
	//
	// ---
	// security:
	// - bearer: []
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: deleted comment id
	//     schema:
	//       "$ref": "#/definitions/IDResponse"
	//   '401':
	//     description: not authenticated
	//   '404':
	//     description: comment not found or requester isn't the author

	id := chi.URLParam(r, "id")
	if err := s.s.DeleteComment(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "delete comment")
		return
	}

	api.WriteOK(w, http.StatusOK, IDResponse{ID: id})
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		api.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotFoundOrForbidden), errors.Is(err, service.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		api.WriteInternalErrorf(r.Context(), w, "failed to %s: %s", action, err.Error())
	}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: failed to decode body", errInvalidRequest)
	}

	return nil
}

func extractLimit(q url.Values) (int, error) {
	s := q.Get("limit")
	if s == "" {
		return service.DefaultLimit, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
	}

	if v == 0 || v > maxLimit {
		return 0, fmt.Errorf("%w: limit should be in [1; %d]", errInvalidRequest, maxLimit)
	}

	return int(v), nil
}

func toPostContent(req PostRequest) entities.PostContent {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	return entities.PostContent{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Published: req.Published,
		Tags:      tags,
	}
}
