package tagscan

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"sort"
)

// ContentSum returns a SHA-1 digest of a file's bytes with every detected
// tag region excised, so that two files differing only in tag content
// (title, artist, picture) hash identically. It generalizes the teacher's
// per-format Hash/Sum functions into one that walks an arbitrary Region
// list rather than special-casing ID3v1, ID3v2, and MP4 atoms.
func ContentSum(path string, cfg ScanConfiguration) (string, error) {
	regions, err := Detect(path, cfg)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %q: %v", ErrFileAccess, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: stat %q: %v", ErrFileAccess, path, err)
	}
	length := uint64(info.Size())

	sorted := make([]Region, len(regions))
	copy(sorted, regions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	h := sha1.New()
	var pos uint64
	for _, r := range sorted {
		if r.Offset > pos {
			if err := copyRange(h, f, pos, r.Offset); err != nil {
				return "", err
			}
		}
		if r.End() > pos {
			pos = r.End()
		}
	}
	if pos < length {
		if err := copyRange(h, f, pos, length); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func copyRange(w io.Writer, f *os.File, from, to uint64) error {
	if _, err := f.Seek(int64(from), io.SeekStart); err != nil {
		return err
	}
	_, err := io.CopyN(w, f, int64(to-from))
	return err
}
