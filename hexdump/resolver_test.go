package hexdump

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSeeker struct {
	err error
}

func (f failingSeeker) Seek(offset int64, whence int) (int64, error) {
	return 0, f.err
}

func TestResolve_ZeroOffsetDoesNotSeek(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))

	display, err := Resolve(src, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, display)

	pos, err := src.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.EqualValues(t, 0, pos)
}

func TestResolve_PositiveOffsetSeeksFromStart(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))

	display, err := Resolve(src, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, display)

	b := make([]byte, 4)
	n, err := src.Read(b)
	require.NoError(t, err)
	assert.EqualValues(t, "3456", b[:n])
}

func TestResolve_PositiveOffsetAtEndIsAllowed(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))

	display, err := Resolve(src, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 10, display)

	_, err = src.Read(make([]byte, 1))
	assert.ErrorIs(t, err, io.EOF)
}

func TestResolve_PositiveOffsetBeyondEndFails(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))

	_, err := Resolve(src, 11)
	assert.ErrorIs(t, err, ErrorOffsetOutOfRange)
}

func TestResolve_NegativeOffsetSeeksFromEnd(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))

	display, err := Resolve(src, -4)
	require.NoError(t, err)
	assert.EqualValues(t, 6, display)

	b := make([]byte, 4)
	n, err := src.Read(b)
	require.NoError(t, err)
	assert.EqualValues(t, "6789", b[:n])
}

func TestResolve_NegativeOffsetBeyondStartClampsToStart(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))

	display, err := Resolve(src, -15)
	require.NoError(t, err)
	assert.EqualValues(t, 0, display)

	b := make([]byte, 3)
	n, err := src.Read(b)
	require.NoError(t, err)
	assert.EqualValues(t, "012", b[:n])
}

func TestResolve_SeekFailureIsSurfaced(t *testing.T) {
	boom := errors.New("boom")

	_, err := Resolve(failingSeeker{err: boom}, 5)
	assert.ErrorIs(t, err, boom)

	_, err = Resolve(failingSeeker{err: boom}, -5)
	assert.ErrorIs(t, err, boom)
}
