package httperr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMatchesKind(t *testing.T) {
	err := Wrap(TcpStreamReading, io.ErrUnexpectedEOF)

	assert.ErrorIs(t, err, TcpStreamReading)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, err, FileReading)
	assert.Equal(t, "tcp stream reading failed: unexpected EOF", err.Error())
}

func TestWrappedTwice(t *testing.T) {
	err := fmt.Errorf("conn 42: %w", New(IncorrectHeader, "missing separator"))

	require.ErrorIs(t, err, IncorrectHeader)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, IncorrectHeader, kind)
}

func TestKindOfBareKind(t *testing.T) {
	kind, ok := KindOf(WriteResponse)
	require.True(t, ok)
	assert.Equal(t, WriteResponse, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindStrings(t *testing.T) {
	for k := IncorrectRequestFormat; k <= Encoding; k++ {
		assert.NotContains(t, k.Error(), "unknown", "kind %d has no message", int(k))
	}
	assert.Contains(t, Kind(99).Error(), "unknown")
}
