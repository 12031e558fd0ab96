// Package input opens the byte streams the program reads socks from.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Stdin is the input name that selects standard input.
const Stdin = "-"

// Open returns a reader for name, or for stdin when name is "-" or empty.
// The stream is zstd decoded when compressed is set or name ends in ".zst".
func Open(name string, stdin io.Reader, compressed bool) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if name == "" || name == Stdin {
		rc = io.NopCloser(stdin)
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening input %s: %w", name, err)
		}
		rc = file
		compressed = compressed || strings.HasSuffix(name, ".zst")
	}
	if !compressed {
		return rc, nil
	}

	dec, err := zstd.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("creating zstd reader for %s: %w", Name(name), err)
	}
	return &zstdReadCloser{dec: dec, under: rc}, nil
}

// Name is the display name of an input.
func Name(name string) string {
	if name == "" || name == Stdin {
		return "stdin"
	}
	return name
}

type zstdReadCloser struct {
	dec   *zstd.Decoder
	under io.Closer
}

func (z *zstdReadCloser) Read(p []byte) (int, error) {
	return z.dec.Read(p)
}

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return z.under.Close()
}
