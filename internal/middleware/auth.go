// Package middleware ...
package middleware

import (
	"net/http"
	"strings"

	"github.com/Decentr-net/go-api"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"

	"github.com/Decentr-net/chronicle/internal/identity"
)

var log = logrus.WithField("layer", "server").WithField("package", "middleware")

const bearerPrefix = "Bearer "

// Authenticate resolves the request's user from HS256 signed JWT passed in Authorization header.
// The token's subject is the user id. Requests without the header pass as anonymous.
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				reject(w, r, "invalid authorization header")
				return
			}

			var claims jwt.RegisteredClaims
			token, err := jwt.ParseWithClaims(
				strings.TrimPrefix(header, bearerPrefix),
				&claims,
				keyFunc,
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			)
			if err != nil || !token.Valid {
				reject(w, r, "invalid token")
				return
			}

			if claims.Subject == "" {
				reject(w, r, "token has no subject")
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithUserID(r.Context(), claims.Subject)))
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, reason string) {
	log.WithField("ip", realip.FromRequest(r)).WithField("reason", reason).Debug("request rejected")
	api.WriteError(w, http.StatusUnauthorized, reason)
}
