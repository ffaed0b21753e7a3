package encoding

import (
	"bytes"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Brownie44l1/httpd/internal/httperr"
)

// Algorithm is a content coding the server can apply to response bodies.
type Algorithm int

const (
	Gzip Algorithm = iota
)

// Supported lists the codings offered during negotiation, in preference order.
var Supported = []Algorithm{Gzip}

const tokenSeparator = ", "

func (a Algorithm) String() string {
	switch a {
	case Gzip:
		return "gzip"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a coding token to an Algorithm.
func ParseAlgorithm(token string) (Algorithm, error) {
	switch token {
	case "gzip":
		return Gzip, nil
	default:
		return 0, httperr.Newf(httperr.IncorrectEncoding, "unsupported coding %q", token)
	}
}

// Negotiate picks the first token of an Accept-Encoding value that the server
// supports. Tokens are separated by ", "; quality values are not interpreted.
func Negotiate(acceptEncoding string) (Algorithm, bool) {
	if acceptEncoding == "" {
		return 0, false
	}

	for _, token := range strings.Split(acceptEncoding, tokenSeparator) {
		alg, err := ParseAlgorithm(token)
		if err != nil {
			continue
		}
		for _, s := range Supported {
			if s == alg {
				return alg, true
			}
		}
	}

	return 0, false
}

// Encode transforms data with the given algorithm.
func Encode(data []byte, alg Algorithm) ([]byte, error) {
	switch alg {
	case Gzip:
		return gzipped(data)
	default:
		return nil, httperr.Newf(httperr.IncorrectEncoding, "unsupported algorithm %d", int(alg))
	}
}

func gzipped(data []byte) ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, len(data)/2+32))
	w := gzip.NewWriter(buff)

	if _, err := w.Write(data); err != nil {
		return nil, httperr.Wrap(httperr.Encoding, err)
	}
	if err := w.Close(); err != nil {
		return nil, httperr.Wrap(httperr.Encoding, err)
	}

	return buff.Bytes(), nil
}
