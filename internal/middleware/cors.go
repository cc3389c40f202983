package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows browser clients from the given origins; "*" allows any origin
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cc := cors.DefaultConfig()
	cc.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cc.AllowHeaders = append(cc.AllowHeaders, "Accept", "X-Requested-With")
	cc.MaxAge = 12 * time.Hour

	allowAll := false
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
			break
		}
	}
	if allowAll || len(allowedOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = allowedOrigins
		cc.AllowCredentials = true
	}
	return cors.New(cc)
}
