package http_requestid_middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderName = "X-Request-ID"
	ContextKey = "request_id"
)

// New tags every request with a correlation id, honoring one supplied by
// the caller.
func New() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(ContextKey, id)
		ctx.Header(HeaderName, id)
		ctx.Next()
	}
}
