package request

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Brownie44l1/httpd/internal/httperr"
)

// Size limits for the request head
const (
	maxRequestLineSize = 8192
	maxHeaderSize      = 1 << 20
)

var crlf = []byte("\r\n")

// parserState represents the current state of the request parser
type parserState int

const (
	stateRequestLine parserState = iota
	stateHeaders
	stateBody
	stateDone
)

func (s parserState) String() string {
	switch s {
	case stateRequestLine:
		return "awaiting request line"
	case stateHeaders:
		return "awaiting headers"
	case stateBody:
		return "awaiting body"
	case stateDone:
		return "done"
	default:
		return fmt.Sprintf("parserState(%d)", int(s))
	}
}

// deadlineReader is implemented by net.Conn.
type deadlineReader interface {
	SetReadDeadline(t time.Time) error
}

// parser frames one request out of a growing byte buffer. Its state only
// ever moves forward.
type parser struct {
	state  parserState
	buffer []byte // unconsumed bytes, appended to by fill
	req    *Request
	body   framing // set on entering stateBody
	head   int     // bytes consumed before the body
}

func newParser() *parser {
	return &parser{
		state:  stateRequestLine,
		buffer: make([]byte, 0, 4096),
		req:    newRequest(),
	}
}

func (p *parser) advance(next parserState) error {
	if next <= p.state {
		return fmt.Errorf("parser cannot move from %s to %s", p.state, next)
	}
	p.state = next
	return nil
}

// drain parses as much of the buffer as the current state allows.
func (p *parser) drain() error {
	for len(p.buffer) > 0 && p.state != stateDone {
		consumed, err := p.parse(p.buffer)
		if err != nil {
			return err
		}
		if consumed == 0 {
			break
		}
		p.buffer = p.buffer[consumed:]
	}

	if p.state != stateBody && p.state != stateDone && len(p.buffer) > maxHeaderSize-p.head {
		return httperr.Newf(httperr.IncorrectRequestFormat, "request head exceeds %d bytes", maxHeaderSize)
	}
	return nil
}

// parse processes buffered data and advances the state machine
// Returns number of bytes consumed
func (p *parser) parse(data []byte) (int, error) {
	switch p.state {
	case stateRequestLine:
		return p.parseRequestLine(data)
	case stateHeaders:
		return p.parseHeaders(data)
	case stateBody:
		return p.parseBody(data)
	case stateDone:
		return 0, nil
	default:
		return 0, fmt.Errorf("invalid parser state: %d", p.state)
	}
}

func (p *parser) parseRequestLine(data []byte) (int, error) {
	method, path, version, consumed, err := parseRequestLine(data)
	if err != nil {
		return 0, err
	}
	if consumed == 0 {
		if len(data) > maxRequestLineSize {
			return 0, httperr.Newf(httperr.IncorrectRequestLine, "request line exceeds %d bytes", maxRequestLineSize)
		}
		return 0, nil
	}

	p.req.Method = method
	p.req.Path = path
	p.req.Version = version
	p.head += consumed

	return consumed, p.advance(stateHeaders)
}

// parseHeaders parses header lines until the empty line
func (p *parser) parseHeaders(data []byte) (int, error) {
	consumed, done, err := p.req.Headers.Parse(data)
	if err != nil {
		return 0, err
	}
	p.head += consumed

	if !done {
		return consumed, nil
	}

	f, err := framingFor(p.req.Headers)
	if err != nil {
		return 0, err
	}
	p.body = f
	if err := p.advance(stateBody); err != nil {
		return 0, err
	}

	if lf, ok := f.(lengthFramed); ok && lf.length == 0 {
		return consumed, p.advance(stateDone)
	}

	return consumed, nil
}

func (p *parser) parseBody(data []byte) (int, error) {
	var (
		consumed int
		complete bool
	)
	p.req.Body, consumed, complete = p.body.take(p.req.Body, data)

	if complete {
		return consumed, p.advance(stateDone)
	}
	return consumed, nil
}

// fill performs one bounded read into the buffer. While reading a body
// without declared length each read is limited by the idle window.
func (p *parser) fill(reader io.Reader, chunk []byte, idleTimeout time.Duration) (int, error) {
	if p.state == stateBody && p.body.closedByStream() {
		if dr, ok := reader.(deadlineReader); ok {
			if err := dr.SetReadDeadline(time.Now().Add(idleTimeout)); err != nil {
				return 0, err
			}
		}
	}

	n, err := reader.Read(chunk)
	if n > 0 {
		p.buffer = append(p.buffer, chunk[:n]...)
	}
	return n, err
}

// streamEnded decides what a read that returned an error or no bytes means
// for the current state. A nil return means the request is complete.
func (p *parser) streamEnded(err error) error {
	closed := err == nil || errors.Is(err, io.EOF) || errors.Is(err, os.ErrDeadlineExceeded)

	if p.state == stateBody && closed && p.body.closedByStream() {
		return p.advance(stateDone)
	}

	if err == nil || errors.Is(err, io.EOF) {
		return httperr.Newf(httperr.IncorrectRequestFormat, "stream ended while %s", p.state)
	}
	return httperr.Wrap(httperr.TcpStreamReading, err)
}
