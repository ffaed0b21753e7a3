package server

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/Brownie44l1/httpd/internal/response"
)

// Middleware wraps a Handler
type Middleware func(next Handler) Handler

func chain(h Handler, middleware []Middleware) Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}

// RecoveryMiddleware turns a handler panic into an error so that only the
// owning connection is dropped
func RecoveryMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx *Context) (resp *response.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					ctx.Logger.Error("panic recovered",
						Field{"panic", fmt.Sprint(r)},
						Field{"stack", string(debug.Stack())},
						Field{"path", ctx.Path()},
					)
					resp, err = nil, fmt.Errorf("handler panic: %v", r)
				}
			}()

			return next(ctx)
		}
	}
}

// LoggingMiddleware logs every handled request
func LoggingMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx *Context) (*response.Response, error) {
			start := time.Now()

			resp, err := next(ctx)

			fields := []Field{
				{"method", ctx.Method().String()},
				{"path", ctx.Path()},
				{"duration", time.Since(start)},
			}
			if err != nil {
				ctx.Logger.Warn("handler failed", append(fields, Field{"error", err})...)
				return nil, err
			}

			ctx.Logger.Info("request handled", append(fields, Field{"status", int(resp.Status)})...)
			return resp, nil
		}
	}
}
