package response

import (
	"strconv"

	"github.com/Brownie44l1/httpd/internal/headers"
)

// Response is built fresh for every request and never reused.
type Response struct {
	Status  Status
	Headers *headers.Headers
	Body    []byte
}

func New(status Status) *Response {
	return &Response{
		Status:  status,
		Headers: headers.NewHeaders(),
	}
}

// WithBody sets the body together with its Content-Type and Content-Length.
func (r *Response) WithBody(contentType string, body []byte) *Response {
	r.Headers.Set(headers.ContentType, contentType)
	r.Headers.Set(headers.ContentLength, strconv.Itoa(len(body)))
	r.Body = body
	return r
}
