package request

import (
	"strconv"

	"github.com/Brownie44l1/httpd/internal/headers"
	"github.com/Brownie44l1/httpd/internal/httperr"
)

const maxBodySize = 100 << 20

// framing decides where a request body ends.
type framing interface {
	// take moves the part of data belonging to the body into body and
	// reports how much of data it consumed and whether the body is complete.
	take(body, data []byte) ([]byte, int, bool)
	// closedByStream reports whether the end of the stream (EOF, an empty
	// read or an idle timeout) is an acceptable end of the body.
	closedByStream() bool
}

// lengthFramed bodies stop after exactly length bytes.
type lengthFramed struct {
	length int
}

func (f lengthFramed) take(body, data []byte) ([]byte, int, bool) {
	remaining := f.length - len(body)
	toRead := min(remaining, len(data))
	body = append(body, data[:toRead]...)
	return body, toRead, len(body) == f.length
}

func (lengthFramed) closedByStream() bool { return false }

// timeoutFramed bodies have no declared length and run until the stream
// stops delivering bytes.
type timeoutFramed struct{}

func (timeoutFramed) take(body, data []byte) ([]byte, int, bool) {
	return append(body, data...), len(data), false
}

func (timeoutFramed) closedByStream() bool { return true }

// framingFor picks the body policy from the parsed headers.
func framingFor(h *headers.Headers) (framing, error) {
	raw, ok := h.Get(headers.ContentLength)
	if !ok {
		return timeoutFramed{}, nil
	}

	// only plain digits, no sign
	length, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, httperr.Newf(httperr.IncorrectHeader, "invalid Content-Length %q", raw)
	}
	if length > maxBodySize {
		return nil, httperr.Newf(httperr.IncorrectHeader, "Content-Length %d exceeds %d", length, maxBodySize)
	}

	return lengthFramed{length: int(length)}, nil
}
