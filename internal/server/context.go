package server

import (
	"github.com/Brownie44l1/httpd/internal/files"
	"github.com/Brownie44l1/httpd/internal/request"
	"github.com/Brownie44l1/httpd/internal/response"
)

// Handler builds the response for one request. A non-nil error aborts the
// connection without sending anything.
type Handler func(ctx *Context) (*response.Response, error)

// Context carries everything a handler may look at
type Context struct {
	Request *request.Request
	// Rest is the path remainder after a prefix route, verbatim.
	Rest   string
	Files  *files.Dir
	ConnID string
	Logger Logger
}

// Method returns the HTTP method
func (c *Context) Method() request.Method {
	return c.Request.Method
}

// Path returns the request path
func (c *Context) Path() string {
	return c.Request.Path
}

// Header gets a request header value
func (c *Context) Header(key string) string {
	return c.Request.Header(key)
}

// Body returns the request body as bytes
func (c *Context) Body() []byte {
	return c.Request.Body
}
