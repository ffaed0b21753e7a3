package httperr

import (
	"errors"
	"fmt"
)

// Kind classifies every failure that can abort a connection.
type Kind int

const (
	IncorrectRequestFormat Kind = iota
	IncorrectRequestLine
	IncorrectHttpMethod
	IncorrectHeader
	IncorrectPath
	IncorrectEncoding
	TcpStreamReading
	FileReading
	FileCreating
	FileWriting
	WriteResponse
	Encoding
)

func (k Kind) Error() string {
	switch k {
	case IncorrectRequestFormat:
		return "incorrect request format"
	case IncorrectRequestLine:
		return "incorrect request line"
	case IncorrectHttpMethod:
		return "incorrect HTTP method"
	case IncorrectHeader:
		return "incorrect header"
	case IncorrectPath:
		return "incorrect path"
	case IncorrectEncoding:
		return "incorrect encoding"
	case TcpStreamReading:
		return "tcp stream reading failed"
	case FileReading:
		return "file reading failed"
	case FileCreating:
		return "file creating failed"
	case FileWriting:
		return "file writing failed"
	case WriteResponse:
		return "writing response failed"
	case Encoding:
		return "encoding failed"
	default:
		return fmt.Sprintf("unknown error kind: %d", int(k))
	}
}

// Error carries a Kind together with the detail that caused it.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind.Error(), e.Err)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, httperr.IncorrectHeader) match on the kind alone.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

func Wrap(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the kind of err, if it carries one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	var k Kind
	if errors.As(err, &k) {
		return k, true
	}
	return 0, false
}
