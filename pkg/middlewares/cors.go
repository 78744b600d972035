package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcardOrigin = "*"

// CORS allows cross-origin calls from the given origins. A "*" entry opens the API to
// every origin, method and header; the caller's origin is echoed so credentialed
// requests work too.
func CORS(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"X-Trace-Id"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || containsWildcard(allowOrigins) {
		// a literal "*" is not accepted by browsers on credentialed requests
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	cfg.AllowCredentials = true
	return cors.New(cfg)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == wildcardOrigin {
			return true
		}
	}
	return false
}
