package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brownie44l1/httpd/internal/request"
)

func table() *Router[string] {
	r := New("not-found")
	r.GET("/echo/*", "echo")
	r.GET("/files/*", "read-file")
	r.GET("/user-agent", "user-agent")
	r.GET("/", "root")
	r.POST("/files/*", "write-file")
	return r
}

func TestMatch(t *testing.T) {
	r := table()

	tests := []struct {
		method  request.Method
		path    string
		handler string
		rest    string
	}{
		{request.MethodGet, "/echo/hello", "echo", "hello"},
		{request.MethodGet, "/echo/", "echo", ""},
		{request.MethodGet, "/echo/a/b/c", "echo", "a/b/c"},
		{request.MethodGet, "/echo", "not-found", ""},
		{request.MethodGet, "/files/report.pdf", "read-file", "report.pdf"},
		{request.MethodGet, "/files/", "read-file", ""},
		{request.MethodGet, "/user-agent", "user-agent", ""},
		{request.MethodGet, "/user-agent/", "not-found", ""},
		{request.MethodGet, "/", "root", ""},
		{request.MethodGet, "/nonexistent/files/x", "not-found", ""},
		{request.MethodPost, "/files/new.txt", "write-file", "new.txt"},
		{request.MethodPost, "/echo/hello", "not-found", ""},
		{request.MethodPost, "/", "not-found", ""},
	}

	for _, tc := range tests {
		handler, rest := r.Match(tc.method, tc.path)
		assert.Equal(t, tc.handler, handler, "%s %s", tc.method, tc.path)
		assert.Equal(t, tc.rest, rest, "%s %s", tc.method, tc.path)
	}
}

func TestFirstRouteWins(t *testing.T) {
	r := New("none")
	r.GET("/a/*", "broad")
	r.GET("/a/b", "exact")

	handler, rest := r.Match(request.MethodGet, "/a/b")
	assert.Equal(t, "broad", handler)
	assert.Equal(t, "b", rest)
}

func TestRoutes(t *testing.T) {
	routes := table().Routes()

	assert.Len(t, routes, 5)
	assert.Equal(t, "/echo/", routes[0].Path)
	assert.True(t, routes[0].Prefix)
	assert.Equal(t, "/user-agent", routes[2].Path)
	assert.False(t, routes[2].Prefix)
}
