package router

import (
	"strings"

	"github.com/Brownie44l1/httpd/internal/request"
)

const wildcard = "*"

// Route represents a single route
type Route[H any] struct {
	Method  request.Method
	Path    string
	Prefix  bool // Path ends in "/*": match anything starting with Path minus "*"
	Handler H
}

// Router matches (method, path) pairs against routes in registration order.
// The first matching route wins.
type Router[H any] struct {
	routes   []*Route[H]
	notFound H
}

// New creates a router falling back to notFound when nothing matches
func New[H any](notFound H) *Router[H] {
	return &Router[H]{
		routes:   make([]*Route[H], 0, 8),
		notFound: notFound,
	}
}

// Handle registers a new route. A path ending in "/*" registers a prefix
// route, anything else must match exactly.
func (r *Router[H]) Handle(method request.Method, path string, handler H) {
	route := &Route[H]{
		Method:  method,
		Path:    path,
		Handler: handler,
	}

	if strings.HasSuffix(path, "/"+wildcard) {
		route.Path = strings.TrimSuffix(path, wildcard)
		route.Prefix = true
	}

	r.routes = append(r.routes, route)
}

// GET is a shortcut for Handle(request.MethodGet, ...)
func (r *Router[H]) GET(path string, handler H) {
	r.Handle(request.MethodGet, path, handler)
}

// POST is a shortcut for Handle(request.MethodPost, ...)
func (r *Router[H]) POST(path string, handler H) {
	r.Handle(request.MethodPost, path, handler)
}

// Match returns the handler for method and path. For prefix routes rest is
// the part of path after the prefix, verbatim and possibly empty.
func (r *Router[H]) Match(method request.Method, path string) (handler H, rest string) {
	for _, route := range r.routes {
		if route.Method != method {
			continue
		}

		if route.Prefix {
			if strings.HasPrefix(path, route.Path) {
				return route.Handler, path[len(route.Path):]
			}
		} else if route.Path == path {
			return route.Handler, ""
		}
	}

	return r.notFound, ""
}

// Routes lists the registered routes in matching order
func (r *Router[H]) Routes() []*Route[H] {
	return r.routes
}
