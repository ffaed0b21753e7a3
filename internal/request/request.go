package request

import (
	"io"
	"time"

	"github.com/Brownie44l1/httpd/internal/headers"
)

// Request is a fully framed HTTP request. It is never modified after
// RequestFromReader returns it.
type Request struct {
	Method  Method
	Path    string
	Version string
	Headers *headers.Headers
	Body    []byte
}

func newRequest() *Request {
	return &Request{
		Headers: headers.NewHeaders(),
	}
}

// Header returns the first value stored under key, or "".
func (r *Request) Header(key string) string {
	v, _ := r.Headers.Get(key)
	return v
}

// DefaultIdleTimeout is the body idle window used when no Content-Length
// was declared.
const DefaultIdleTimeout = 500 * time.Millisecond

// RequestFromReader frames exactly one request from reader.
//
// Reads happen in bounded chunks. A body announced by Content-Length is read
// up to that length and surplus bytes are ignored. Without Content-Length the
// body runs until the peer closes, a read returns no bytes, or, when reader
// supports read deadlines (any net.Conn), no bytes arrive for idleTimeout.
// The last rule also ends the body of a slow sender that is still alive.
func RequestFromReader(reader io.Reader, idleTimeout time.Duration) (*Request, error) {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}

	p := newParser()
	chunk := getChunk()
	defer putChunk(chunk)

	for {
		if err := p.drain(); err != nil {
			return nil, err
		}
		if p.state == stateDone {
			return p.req, nil
		}

		n, err := p.fill(reader, *chunk, idleTimeout)
		if err == nil && n > 0 {
			continue
		}

		if err := p.drain(); err != nil {
			return nil, err
		}
		if p.state == stateDone {
			return p.req, nil
		}
		if err := p.streamEnded(err); err != nil {
			return nil, err
		}
		return p.req, nil
	}
}
