package server

import (
	"github.com/Brownie44l1/httpd/internal/headers"
	"github.com/Brownie44l1/httpd/internal/response"
	"github.com/Brownie44l1/httpd/internal/router"
)

func newRouter() *router.Router[Handler] {
	r := router.New[Handler](handleNotFound)

	r.GET("/echo/*", handleEcho)
	r.GET("/files/*", handleReadFile)
	r.GET("/user-agent", handleUserAgent)
	r.GET("/", handleRoot)
	r.POST("/files/*", handleWriteFile)

	return r
}

func handleEcho(ctx *Context) (*response.Response, error) {
	return response.Text(ctx.Rest), nil
}

func handleUserAgent(ctx *Context) (*response.Response, error) {
	return response.Text(ctx.Header(headers.UserAgent)), nil
}

func handleRoot(ctx *Context) (*response.Response, error) {
	return response.Empty(response.StatusOK), nil
}

func handleNotFound(ctx *Context) (*response.Response, error) {
	return response.NotFound(), nil
}

func handleReadFile(ctx *Context) (*response.Response, error) {
	exists, err := ctx.Files.Exists(ctx.Rest)
	if err != nil {
		return nil, err
	}
	if !exists {
		return response.NotFound(), nil
	}

	data, err := ctx.Files.ReadAll(ctx.Rest)
	if err != nil {
		return nil, err
	}

	return response.Bytes(data), nil
}

func handleWriteFile(ctx *Context) (*response.Response, error) {
	if err := ctx.Files.Store(ctx.Rest, ctx.Body()); err != nil {
		return nil, err
	}

	ctx.Logger.Debug("file stored",
		Field{"name", ctx.Rest},
		Field{"bytes", len(ctx.Body())},
	)
	return response.Created(), nil
}
