package requestid

import (
	"context"
	"net/http"
)

// Middleware opens a scope per request, stores the resolved id in it and
// calls next synchronously with the scoped request. The request and
// response are left untouched unless WithResponseHeader is set.
func (t *Tracer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := t.Resolve(r)
		t.Echo(w.Header(), id)
		t.ns.Run(r.Context(), func(ctx context.Context) {
			t.ns.Set(ctx, Key, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}
