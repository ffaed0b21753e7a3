package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/httpd/internal/httperr"
)

func TestHeaderParse(t *testing.T) {
	// Test: Valid single header
	h := NewHeaders()
	data := []byte("Host: localhost:4221\r\n")
	n, done, err := h.Parse(data)
	require.NoError(t, err)
	val, ok := h.Get("Host")
	assert.True(t, ok)
	assert.Equal(t, "localhost:4221", val)
	assert.Equal(t, 22, n)
	assert.False(t, done)

	// Test: Duplicate headers keep arrival order, Get returns the first
	h = NewHeaders()
	data = []byte("Accept: text/html\r\nAccept: */*\r\n")
	_, done, err = h.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"text/html", "*/*"}, h.GetAll(Accept))
	val, _ = h.Get(Accept)
	assert.Equal(t, "text/html", val)
	assert.False(t, done)

	// Test: Empty line signals end of headers
	h = NewHeaders()
	n, done, err = h.Parse([]byte("\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, done)

	// Test: Headers followed by empty line, trailing body untouched
	h = NewHeaders()
	data = []byte("Host: example.com\r\n\r\nbody")
	n, done, err = h.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 21, n)
	assert.True(t, done)
	assert.Equal(t, "body", string(data[n:]))

	// Test: Incomplete line is left for the next call
	h = NewHeaders()
	n, done, err = h.Parse([]byte("Host: example.com"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.False(t, done)
	assert.Equal(t, 0, h.Len())
}

func TestHeaderParseErrors(t *testing.T) {
	cases := map[string]string{
		"no separator":        "InvalidHeader\r\n",
		"colon without space": "Host:example.com\r\n",
		"two separators":      "X-Thing: a: b\r\n",
		"empty name":          ": value\r\n",
	}

	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			h := NewHeaders()
			_, _, err := h.Parse([]byte(line))
			require.Error(t, err)
			assert.ErrorIs(t, err, httperr.IncorrectHeader)
		})
	}
}

func TestHeaderLookupIgnoresCase(t *testing.T) {
	h := NewHeaders()
	_, _, err := h.Parse([]byte("user-agent: curl/8.0\r\n"))
	require.NoError(t, err)

	val, ok := h.Get(UserAgent)
	assert.True(t, ok)
	assert.Equal(t, "curl/8.0", val)
	assert.Equal(t, "user-agent", h.All()[0].Key)
}

func TestHeaderSetReplacesInPlace(t *testing.T) {
	h := NewHeaders()
	h.Add(ContentType, "text/plain")
	h.Add(ContentLength, "5")
	h.Add("X-Trace", "abc")

	h.Set("content-length", "25")
	assert.Equal(t, []Header{
		{ContentType, "text/plain"},
		{ContentLength, "25"},
		{"X-Trace", "abc"},
	}, h.All())

	h.Set(ContentEncoding, "gzip")
	assert.Equal(t, Header{ContentEncoding, "gzip"}, h.All()[3])
}

func TestHeaderDel(t *testing.T) {
	h := NewHeaders()
	h.Add("X-Custom", "value1")
	h.Add(Host, "example.com")
	h.Add("x-custom", "value2")

	h.Del("X-CUSTOM")
	assert.Equal(t, 1, h.Len())
	assert.Empty(t, h.GetAll("X-Custom"))

	_, ok := h.Get("non-existent")
	assert.False(t, ok)
}
