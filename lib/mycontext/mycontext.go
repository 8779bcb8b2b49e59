package mycontext

import (
	"context"
	"net/http"
)

// CtxRequestUID is a context key for the request correlation id (used by mylog)
type CtxRequestUID struct{}

func ContextFromHTTPRequest(r *http.Request) context.Context {
	requestUID := r.Header.Get("X-Request-Id")

	return context.WithValue(r.Context(), CtxRequestUID{}, requestUID)
}
