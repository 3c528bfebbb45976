package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pranav244872/certsearch/logging"
)

////////////////////////////////////////////////////////////////////////
// Constants used by the middlewares
////////////////////////////////////////////////////////////////////////

const (
	requestIDHeader = "X-Request-ID" // Header echoed back to the client
	requestIDKey    = "request_id"   // Context key for storing the request ID
)

////////////////////////////////////////////////////////////////////////
// Request ID
////////////////////////////////////////////////////////////////////////

// requestIDMiddleware reuses the caller's X-Request-ID or generates a new one,
// stores it in Gin's context and echoes it in the response.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

// getRequestID returns the ID set by requestIDMiddleware, or "" outside of it.
func getRequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

// requestLogger scopes the server logger to the current request.
func (server *Server) requestLogger(ctx *gin.Context) *logging.Logger {
	return server.log.With("request_id", getRequestID(ctx))
}

////////////////////////////////////////////////////////////////////////
// Access log
////////////////////////////////////////////////////////////////////////

func accessLogMiddleware(log *logging.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		log.With("request_id", getRequestID(ctx)).Info("request served",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", ctx.ClientIP(),
		)
	}
}
