// Package server Chronicle
//
// The Chronicle is a blogging service which provides access to posts, comments, likes, follows and profiles.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
//     SecurityDefinitions:
//     bearer:
//       type: apiKey
//       name: Authorization
//       in: header
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/Decentr-net/go-api"

	mm "github.com/Decentr-net/chronicle/internal/middleware"
	"github.com/Decentr-net/chronicle/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 1 << 20

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration, jwtSecret []byte) {
	r.Use(
		api.FileServerMiddleware("/docs", "static"),
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		api.RequestIDMiddleware,
		api.RecovererMiddleware,
		api.TimeoutMiddleware(timeout),
		api.BodyLimiterMiddleware(maxBodySize),
		mm.Authenticate(jwtSecret),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/posts", srv.listPosts)
		r.Post("/posts", srv.createPost)
		r.Get("/posts/{id}", srv.getPost)
		r.Put("/posts/{id}", srv.updatePost)
		r.Delete("/posts/{id}", srv.deletePost)
		r.Post("/posts/{id}/like", srv.toggleLike)
		r.Get("/posts/{id}/comments", srv.listComments)
		r.Post("/posts/{id}/comments", srv.createComment)
		r.Delete("/comments/{id}", srv.deleteComment)
		r.Get("/feed", srv.getFollowingPosts)

		r.Get("/users", srv.searchUsers)
		r.Get("/users/{id}", srv.getUserProfile)
		r.Get("/users/{id}/follow", srv.isFollowing)
		r.Post("/users/{id}/follow", srv.toggleFollow)
		r.Put("/profile", srv.updateProfile)
		r.Put("/profile/name", srv.updateUserName)
	})
}
