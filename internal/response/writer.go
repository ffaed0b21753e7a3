package response

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"github.com/Brownie44l1/httpd/internal/encoding"
	"github.com/Brownie44l1/httpd/internal/headers"
	"github.com/Brownie44l1/httpd/internal/httperr"
)

var crlf = []byte("\r\n")

// writerState tracks whether the response already went out
type writerState int

const (
	stateStart writerState = iota
	stateSent
)

// Writer assembles a response and writes it to the connection in one piece.
type Writer struct {
	w        io.Writer
	state    writerState
	status   Status
	encoding string
	written  int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		state: stateStart,
	}
}

// Send negotiates the content coding against the request headers, fixes up
// Content-Length and writes resp with a single Write call.
func (w *Writer) Send(resp *Response, requestHeaders *headers.Headers) error {
	if w.state != stateStart {
		return errors.New("response already sent")
	}

	wire, err := Assemble(resp, requestHeaders)
	if err != nil {
		return err
	}
	w.state = stateSent
	w.status = resp.Status
	w.encoding, _ = resp.Headers.Get(headers.ContentEncoding)

	n, err := w.w.Write(wire)
	w.written = n
	if err != nil {
		return httperr.Wrap(httperr.WriteResponse, err)
	}
	return nil
}

// Assemble applies content negotiation to resp and serializes it. resp's
// headers and body are updated to what goes on the wire.
func Assemble(resp *Response, requestHeaders *headers.Headers) ([]byte, error) {
	if requestHeaders != nil {
		accept, _ := requestHeaders.Get(headers.AcceptEncoding)
		if alg, ok := encoding.Negotiate(accept); ok {
			encoded, err := encoding.Encode(resp.Body, alg)
			if err != nil {
				return nil, err
			}
			resp.Body = encoded
			resp.Headers.Add(headers.ContentEncoding, alg.String())
		}
	}

	// Content-Length always describes the bytes that follow the head.
	resp.Headers.Set(headers.ContentLength, strconv.Itoa(len(resp.Body)))

	return serialize(resp), nil
}

func serialize(resp *Response) []byte {
	var buf bytes.Buffer
	buf.Grow(64 + 32*resp.Headers.Len() + len(resp.Body))

	buf.WriteString("HTTP/1.1 ")
	buf.WriteString(strconv.Itoa(int(resp.Status)))
	buf.WriteByte(' ')
	buf.WriteString(StatusText(resp.Status))
	buf.Write(crlf)

	for _, h := range resp.Headers.All() {
		buf.WriteString(h.Key)
		buf.WriteString(": ")
		buf.WriteString(h.Value)
		buf.Write(crlf)
	}
	buf.Write(crlf)
	buf.Write(resp.Body)

	return buf.Bytes()
}

func (w *Writer) Sent() bool {
	return w.state == stateSent
}

func (w *Writer) Status() Status {
	return w.status
}

// Encoding returns the content coding applied to the sent body, if any
func (w *Writer) Encoding() string {
	return w.encoding
}

// BytesWritten returns how many bytes reached the underlying writer
func (w *Writer) BytesWritten() int {
	return w.written
}
