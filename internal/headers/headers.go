package headers

import (
	"bytes"
	"strings"

	"github.com/indigo-web/utils/strcomp"

	"github.com/Brownie44l1/httpd/internal/httperr"
)

// Header names the server understands. Anything else is stored and ignored.
const (
	Host            = "Host"
	UserAgent       = "User-Agent"
	Accept          = "Accept"
	AcceptEncoding  = "Accept-Encoding"
	ContentLength   = "Content-Length"
	ContentType     = "Content-Type"
	ContentEncoding = "Content-Encoding"
)

var (
	crlf      = []byte("\r\n")
	separator = ": "
)

type Header struct {
	Key   string
	Value string
}

// Headers is an ordered header list. Duplicates are kept and lookups return
// the first match. Keys are compared case-insensitively but written back
// exactly as they were added.
type Headers struct {
	entries []Header
}

func NewHeaders() *Headers {
	return &Headers{
		entries: make([]Header, 0, 8),
	}
}

// Get returns the value of the first header named key
func (h *Headers) Get(key string) (string, bool) {
	if i := h.index(key); i >= 0 {
		return h.entries[i].Value, true
	}
	return "", false
}

// GetAll returns every value stored under key, in arrival order
func (h *Headers) GetAll(key string) []string {
	var values []string
	for _, e := range h.entries {
		if strcomp.EqualFold(e.Key, key) {
			values = append(values, e.Value)
		}
	}
	return values
}

// Set overwrites the first header named key in place, or appends it.
func (h *Headers) Set(key, value string) {
	if i := h.index(key); i >= 0 {
		h.entries[i].Value = value
		return
	}
	h.Add(key, value)
}

func (h *Headers) Add(key, value string) {
	h.entries = append(h.entries, Header{Key: key, Value: value})
}

// Del removes every header named key
func (h *Headers) Del(key string) {
	kept := h.entries[:0]
	for _, e := range h.entries {
		if !strcomp.EqualFold(e.Key, key) {
			kept = append(kept, e)
		}
	}
	h.entries = kept
}

func (h *Headers) Len() int {
	return len(h.entries)
}

// All returns the headers in order. The slice must not be modified.
func (h *Headers) All() []Header {
	return h.entries
}

func (h *Headers) index(key string) int {
	for i, e := range h.entries {
		if strcomp.EqualFold(e.Key, key) {
			return i
		}
	}
	return -1
}

// Parse consumes complete header lines from data. It returns the number of
// bytes consumed and done=true once the empty line ending the block was seen.
// Incomplete trailing data is left for the next call.
func (h *Headers) Parse(data []byte) (int, bool, error) {
	read := 0

	for {
		idx := bytes.Index(data[read:], crlf)
		if idx == -1 {
			return read, false, nil
		}

		if idx == 0 {
			return read + len(crlf), true, nil
		}

		key, value, err := parseHeader(data[read : read+idx])
		if err != nil {
			return read, false, err
		}

		h.Add(key, value)
		read += idx + len(crlf)
	}
}

func parseHeader(line []byte) (string, string, error) {
	parts := strings.Split(string(line), separator)
	if len(parts) != 2 {
		return "", "", httperr.Newf(httperr.IncorrectHeader, "malformed header line %q", line)
	}
	if parts[0] == "" {
		return "", "", httperr.New(httperr.IncorrectHeader, "empty header name")
	}

	return parts[0], parts[1], nil
}
