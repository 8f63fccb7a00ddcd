package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS reflects any origin and allows credentials for the avatar front end.
var CORS = cors.Handler(cors.Options{
	AllowOriginFunc:  func(_ *http.Request, _ string) bool { return true },
	AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders:   []string{"Accept", "Content-Type", "Cache-Control", "X-Request-Id"},
	AllowCredentials: true,
	MaxAge:           300,
})
