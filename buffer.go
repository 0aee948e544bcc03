package tagscan

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// BufferSize is the fixed size of the prefix and suffix buffers read from
// every file before any strategy runs. Signature checks (can_detect in
// spec terms) may only look at these bytes; deep reads go through the
// still-open file handle.
const BufferSize = 4096

// ErrFileAccess is returned when a path cannot be opened as a regular,
// readable file.
var ErrFileAccess = errors.New("tagscan: file access error")

// FileBuffers holds the bounded prefix and suffix read from a file. When
// the file is smaller than BufferSize, Head and Tail alias the same bytes
// and both have length equal to the file size.
type FileBuffers struct {
	Head []byte
	Tail []byte
}

// openBuffers opens path read-only, reads its head/tail buffers, and
// returns the still-open file handle (seeked back to 0) along with the
// buffers and the file's length. The caller owns the handle and must close
// it on every exit path.
func openBuffers(path string) (*os.File, FileBuffers, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FileBuffers{}, 0, fmt.Errorf("%w: opening %q: %v", ErrFileAccess, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, FileBuffers{}, 0, fmt.Errorf("%w: stat %q: %v", ErrFileAccess, path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, FileBuffers{}, 0, fmt.Errorf("%w: %q is a directory", ErrFileAccess, path)
	}
	length := info.Size()

	head := make([]byte, BufferSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		f.Close()
		return nil, FileBuffers{}, 0, fmt.Errorf("%w: reading head of %q: %v", ErrFileAccess, path, err)
	}
	head = head[:n]

	var tail []byte
	if length <= int64(BufferSize) {
		tail = head
	} else {
		tail = make([]byte, BufferSize)
		tailOffset := length - int64(BufferSize)
		if _, err := f.Seek(tailOffset, io.SeekStart); err != nil {
			f.Close()
			return nil, FileBuffers{}, 0, fmt.Errorf("%w: seeking tail of %q: %v", ErrFileAccess, path, err)
		}
		n, err = io.ReadFull(f, tail)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			f.Close()
			return nil, FileBuffers{}, 0, fmt.Errorf("%w: reading tail of %q: %v", ErrFileAccess, path, err)
		}
		tail = tail[:n]
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, FileBuffers{}, 0, fmt.Errorf("%w: rewinding %q: %v", ErrFileAccess, path, err)
	}

	return f, FileBuffers{Head: head, Tail: tail}, length, nil
}

// readAt reads exactly size bytes starting at offset from f, returning an
// error (never a panic) if the read runs past EOF. It always seeks to offset
// first, so it does not depend on f's current position; it leaves f
// positioned just past the bytes read.
func readAt(f *os.File, offset int64, size int) ([]byte, error) {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}
	b := make([]byte, size)
	if _, err := io.ReadFull(f, b); err != nil {
		return nil, err
	}
	return b, nil
}
