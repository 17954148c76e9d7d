package server

import (
	"net/http"
	"path"
	"strings"
)

// BasicRouter is a simple HTTP router implementing the [Router] interface.
//
// Uses [http.ServeMux] internally. Every registered path matches exactly; "/" only matches the root.
// Paths that are not already clean ("//app.js", "/./keys.js") go straight to the fallback.
type BasicRouter struct {
	mux         *http.ServeMux
	middlewares []Middleware
	fallback    http.Handler
}

// NewBasicRouter creates a new [BasicRouter] instance.
func NewBasicRouter() *BasicRouter {
	return &BasicRouter{
		mux:         http.NewServeMux(),
		middlewares: []Middleware{},
	}
}

// Use adds [Middleware] to the [Router] instance's middleware stack, applied in the order it's added.
//
// Middleware must be added before handlers are registered.
func (r *BasicRouter) Use(middleware ...Middleware) {
	r.middlewares = append(r.middlewares, middleware...)
}

// Handle registers a [Handler] for the specified HTTP method and path.
//
// The handler is wrapped with all registered middleware.
func (r *BasicRouter) Handle(method, path string, handler http.Handler) {
	methodHandler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if !strings.EqualFold(req.Method, method) {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, req)
	})

	r.mux.Handle(exact(path), r.Apply(methodHandler))
}

// Handler registers a custom Handler implementation.
//
// All routes returned by [Handler.Routes] are registered with this handler.
func (r *BasicRouter) Handler(handler Handler) {
	wrapped := r.Apply(handler)

	for _, route := range handler.Routes() {
		r.mux.Handle(exact(route), wrapped)
	}
}

// Fallback registers the handler that receives every request no other route matched.
func (r *BasicRouter) Fallback(handler http.Handler) {
	r.fallback = r.Apply(handler)
	r.mux.Handle("/", r.fallback)
}

// ServeHTTP implements [http.Handler] for the entire router.
func (r *BasicRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if p := req.URL.Path; path.Clean(p) != p {
		r.unmatched(w, req)
		return
	}
	r.mux.ServeHTTP(w, req)
}

// unmatched answers without consulting the mux, which would redirect to the cleaned path.
func (r *BasicRouter) unmatched(w http.ResponseWriter, req *http.Request) {
	if r.fallback == nil {
		http.NotFound(w, req)
		return
	}
	r.fallback.ServeHTTP(w, req)
}

// Apply wraps a handler with all registered middleware.
//
// Middleware is applied in reverse order (last added wraps first).
func (r *BasicRouter) Apply(handler http.Handler) http.Handler {
	wrapped := handler

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		wrapped = r.middlewares[i](wrapped)
	}

	return wrapped
}

// exact turns a path into a [http.ServeMux] pattern that does not match as a prefix.
func exact(path string) string {
	if strings.HasSuffix(path, "/") {
		return path + "{$}"
	}
	return path
}
