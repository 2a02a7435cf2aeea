package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origins. Local dev servers are added
// outside production.
func CORS(allowedOrigins []string, production bool) gin.HandlerFunc {
	origins := append([]string{}, allowedOrigins...)
	if !production {
		origins = append(origins, "http://localhost:5173", "http://127.0.0.1:5173")
	}
	if len(origins) == 0 {
		// Same-origin only.
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
