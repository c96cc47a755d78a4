// Package server Hermes
//
// Hermes is the interaction consistency engine behind the Apidon social
// surface: it owns likes, comments, follows, frenlets, notifications and
// the data-provider subscription lifecycle.
//
//	Schemes: https
//	BasePath: /v1
//	Version: 1.0.0
//
//	Produces:
//	- application/json
//	Consumes:
//	- application/json
//
// swagger:meta
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/apidon/hermes/internal/middleware"
	"github.com/apidon/hermes/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, jwtSecret []byte, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		bodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(authMiddleware(jwtSecret))

		r.Get("/profiles/{username}", mm.Cached(time.Minute, srv.getProfile))

		r.Post("/posts", srv.createPost)
		r.Get("/posts/{owner}/{uuid}", srv.getPost)
		r.Delete("/posts/{owner}/{uuid}", srv.deletePost)
		r.Post("/posts/{owner}/{uuid}/like", srv.likePost)
		r.Post("/posts/{owner}/{uuid}/comments", srv.commentPost)
		r.Delete("/posts/{owner}/{uuid}/comments", srv.deleteComment)

		r.Post("/follow", srv.follow)

		r.Post("/frenlets", srv.createFrenlet)
		r.Get("/frenlets/{id}", srv.getFrenlet)
		r.Delete("/frenlets/{id}", srv.deleteFrenlet)
		r.Post("/frenlets/{id}/like", srv.likeFrenlet)
		r.Post("/frenlets/{id}/replies", srv.replyFrenlet)

		r.Get("/notifications", srv.listNotifications)
		r.Post("/notifications/open", srv.openNotifications)

		r.Get("/provider", srv.getProviderState)
		r.Post("/provider/choose", srv.chooseProvider)
		r.Post("/provider/withdraw", srv.withdraw)
		r.Post("/provider/skip", srv.skipWithdraw)
		r.Post("/provider/change", srv.changeProvider)

		r.Get("/feed", srv.getFeed)
	})
}

func bodyLimiter(size int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}
