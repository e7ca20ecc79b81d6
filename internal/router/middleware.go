package router

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware logs every request with zerolog, correlated by request ID.
func LoggerMiddleware() gin.HandlerFunc {
	return logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		}))
}

// CorsMiddleware builds the CORS middleware from the CORS_ALLOW_ORIGINS
// environment variable. The second return value is false when the variable
// is not set, in which case no CORS headers are sent at all.
func CorsMiddleware() (gin.HandlerFunc, bool) {
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if !ok {
		return nil, false
	}

	log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

	return cors.New(cors.Config{
		AllowOrigins:     strings.Fields(allowOrigins),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
		AllowCredentials: true,
	}), true
}
