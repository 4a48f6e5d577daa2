package main

import (
	"crypto/subtle"
	"net/http"
)

const basicAuthRealm = `Basic realm="geochain"`

type basicAuthMiddleware struct {
	handler  http.Handler
	user     []byte
	password []byte
}

func (b *basicAuthMiddleware) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	user, pass, ok := req.BasicAuth()

	if ok && subtle.ConstantTimeCompare(b.user, []byte(user))+subtle.ConstantTimeCompare(b.password, []byte(pass)) == 2 {
		b.handler.ServeHTTP(w, req)

		return
	}

	w.Header().Set("WWW-Authenticate", basicAuthRealm)
	http.Error(w, "Authentication is required", http.StatusUnauthorized)
}

// newBasicAuthMiddleware returns a middleware for chi router.
func newBasicAuthMiddleware(auth configBasicAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return &basicAuthMiddleware{
			handler:  next,
			user:     []byte(auth.User),
			password: []byte(auth.Password),
		}
	}
}
