package ginrequestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtracer/pkg/ctxstore"
	"github.com/dmitrymomot/rtracer/pkg/requestid"
	"github.com/dmitrymomot/rtracer/pkg/requestid/ginrequestid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	tracer := requestid.New()

	late := make(chan string, 1)
	r := gin.New()
	r.Use(ginrequestid.Middleware(tracer))
	r.GET("/", func(c *gin.Context) {
		ctx := c.Request.Context()
		ctxstore.AfterFunc(ctx, time.Millisecond, func(ctx context.Context) {
			late <- tracer.FromContext(ctx)
		})
		c.String(http.StatusOK, tracer.FromContext(ctx))
	})

	t.Run("uses header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("x-request-id", "gin-abc")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gin-abc", rec.Body.String())
		assert.Equal(t, "gin-abc", <-late)
		assert.Empty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		id := rec.Body.String()
		assert.NotEmpty(t, id)
		assert.Equal(t, id, <-late)
	})
}

func TestMiddleware_NilTracer(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { ginrequestid.Middleware(nil) })
}

func TestMiddleware_Echo(t *testing.T) {
	t.Parallel()
	tracer := requestid.New(requestid.WithResponseHeader(true))

	r := gin.New()
	r.Use(ginrequestid.Middleware(tracer))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, tracer.FromContext(c.Request.Context()))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, rec.Body.String(), rec.Header().Get(requestid.Header))
}
