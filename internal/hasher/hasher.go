// Package hasher fingerprints generated icon files with xxHash64.
package hasher

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Sum returns the 16-hex-digit xxHash64 of data.
func Sum(data []byte) string {
	return format(xxhash.Sum64(data))
}

// SumReader streams r through xxHash64.
func SumReader(r io.Reader) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return format(h.Sum64()), nil
}

// SumFile hashes the file at path and returns the digest and its size.
func SumFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	cr := &countingReader{r: f}
	sum, err := SumReader(cr)
	if err != nil {
		return "", 0, fmt.Errorf("hash %s: %w", path, err)
	}
	return sum, cr.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func format(v uint64) string {
	return fmt.Sprintf("%016x", v)
}
