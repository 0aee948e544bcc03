package tagscan

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBuffersSmallFileAliasesHeadAndTail(t *testing.T) {
	data := filler(100)
	path := writeTempFile(t, "small.bin", data)

	f, bufs, length, err := openBuffers(path)
	require.NoError(t, err)
	defer f.Close()

	assert.EqualValues(t, 100, length)
	assert.Equal(t, data, bufs.Head)
	assert.True(t, bytes.Equal(bufs.Head, bufs.Tail), "head and tail must alias for files smaller than BufferSize")
}

func TestOpenBuffersLargeFileDistinctHeadAndTail(t *testing.T) {
	total := BufferSize*2 + 37
	data := make([]byte, total)
	for i := range data {
		data[i] = byte(i)
	}
	path := writeTempFile(t, "large.bin", data)

	f, bufs, length, err := openBuffers(path)
	require.NoError(t, err)
	defer f.Close()

	assert.EqualValues(t, total, length)
	require.Len(t, bufs.Head, BufferSize)
	require.Len(t, bufs.Tail, BufferSize)
	assert.Equal(t, data[:BufferSize], bufs.Head)
	assert.Equal(t, data[total-BufferSize:], bufs.Tail)
}

func TestOpenBuffersMissingFile(t *testing.T) {
	_, _, _, err := openBuffers("/nonexistent/path/to/file")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileAccess))
}

func TestOpenBuffersRejectsDirectory(t *testing.T) {
	_, _, _, err := openBuffers(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileAccess))
}

func TestReadAtSeeksAndReads(t *testing.T) {
	data := filler(64)
	path := writeTempFile(t, "readat.bin", data)
	f, _, _, err := openBuffers(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := readAt(f, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, data[10:15], got)

	_, err = readAt(f, 60, 10)
	assert.Error(t, err, "reading past EOF must error, never panic")
}
