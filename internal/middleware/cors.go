package middleware

import (
	"regexp"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
)

var localDevOrigin = regexp.MustCompile(`^http://(localhost|127\.0\.0\.1):(3000|3001|5173)$`)

// AllowedOrigins is the explicit allow-list for browser clients.
func AllowedOrigins(frontendURL string) []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:3001",
		"http://127.0.0.1:5173",
	}
	if frontendURL != "" && !slices.Contains(origins, frontendURL) {
		origins = append([]string{frontendURL}, origins...)
	}
	return origins
}

func originAllowed(origins []string) func(string) bool {
	return func(origin string) bool {
		return slices.Contains(origins, origin) || localDevOrigin.MatchString(origin)
	}
}

// CORS answers preflights and decorates responses for allowed origins.
// Requests without an Origin header (curl, server-to-server) pass through;
// any other origin gets a 403 envelope.
func CORS(frontendURL string) gin.HandlerFunc {
	allow := originAllowed(AllowedOrigins(frontendURL))

	handler := cors.New(cors.Config{
		AllowOriginFunc:  allow,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && !allow(origin) {
			httperr.Respond(c, httperr.Forbidden("Not allowed by CORS: "+origin))
			return
		}
		handler(c)
	}
}
