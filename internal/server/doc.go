// Package server provides HTTP routing, middleware and the listener lifecycle for tracy.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally. Routes match by exact path
// only: "/app.html" never matches "/app.html/x" and "/" only matches the root. Anything else,
// including paths that are not already clean, reaches the handler registered with [BasicRouter.Fallback].
//
// # Middleware
//
//   - [Logging] assigns a request id and logs method, path, status and duration
//   - [Serialize] services one request at a time, so handlers never overlap
//   - [RateLimit] optionally caps the request rate
//   - [Count] feeds [Stats] for the headless console
//
// # Lifecycle
//
// [Server.Start] binds the listener synchronously, so a busy port is reported before the
// window opens, then serves on a background goroutine. [Server.URL] is the address the window
// loads. [Server.Shutdown] stops it when the window closes.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
