package request

import (
	"bytes"
	"strings"

	"github.com/indigo-web/utils/uf"

	"github.com/Brownie44l1/httpd/internal/httperr"
)

// Method is one of the request methods the server accepts.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// ParseMethod matches token case-exactly against the supported methods.
func ParseMethod(token string) (Method, error) {
	switch Method(token) {
	case MethodGet:
		return MethodGet, nil
	case MethodPost:
		return MethodPost, nil
	default:
		return "", httperr.Newf(httperr.IncorrectHttpMethod, "unsupported method %q", token)
	}
}

func (m Method) String() string {
	return string(m)
}

// parseRequestLine parses: METHOD PATH VERSION\r\n
// Returns: method, path, version, bytesConsumed, error
// consumed == 0 with a nil error means the line is not complete yet.
func parseRequestLine(data []byte) (Method, string, string, int, error) {
	idx := bytes.Index(data, crlf)
	if idx == -1 {
		return "", "", "", 0, nil
	}

	// line aliases data; whatever outlives this call is cloned below.
	line := uf.B2S(data[:idx])
	consumed := idx + len(crlf)

	parts := strings.Split(line, " ")

	method, err := ParseMethod(parts[0])
	if err != nil {
		return "", "", "", 0, err
	}

	if len(parts) < 2 {
		return "", "", "", 0, httperr.Newf(httperr.IncorrectRequestLine, "no request target in %q", line)
	}

	path := strings.Clone(parts[1])
	if !strings.HasPrefix(path, "/") {
		return "", "", "", 0, httperr.Newf(httperr.IncorrectRequestLine, "request target %q is not a path", path)
	}

	var version string
	if len(parts) > 2 {
		version = strings.Clone(parts[2])
	}

	return method, path, version, consumed, nil
}
