// Package ginrequestid adapts requestid.Tracer to gin.
//
//	tracer := requestid.New()
//	r := gin.New()
//	r.Use(ginrequestid.Middleware(tracer))
//	r.GET("/", func(c *gin.Context) {
//	    id := tracer.FromContext(c.Request.Context())
//	    c.String(http.StatusOK, id)
//	})
package ginrequestid

import (
	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/rtracer/pkg/requestid"
)

// Middleware opens a tracer scope for every request and swaps c.Request
// for one carrying it before the rest of the chain runs.
func Middleware(t *requestid.Tracer) gin.HandlerFunc {
	if t == nil {
		panic("ginrequestid: nil tracer")
	}
	return func(c *gin.Context) {
		id := t.Resolve(c.Request)
		t.Echo(c.Writer.Header(), id)
		c.Request = c.Request.WithContext(t.WithID(c.Request.Context(), id))
		c.Next()
	}
}
