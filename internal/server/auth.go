package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey int

const actorCtxKey ctxKey = iota

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// authMiddleware resolves the bearer credential to an actor's username and
// puts it into the request context. Identity is never ambient past this
// point; handlers read it explicitly.
func authMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if token == "" {
				writeError(w, http.StatusUnauthorized, "missing credential")
				return
			}

			var c claims
			if _, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			}); err != nil {
				writeError(w, http.StatusUnauthorized, "invalid credential")
				return
			}

			if c.Username == "" {
				writeError(w, http.StatusUnauthorized, "invalid credential")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorCtxKey, c.Username)))
		})
	}
}

func actorFromContext(ctx context.Context) string {
	actor, _ := ctx.Value(actorCtxKey).(string)
	return actor
}
