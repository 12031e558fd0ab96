// Package sequence reads length-prefixed, space-delimited value lists:
//
//	N\n
//	v1 v2 ... vN
//
// The first line holds N. Each value token runs up to and including the
// next space, or to the end of the stream for the last one.
package sequence

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseFunc turns one trimmed token into a value.
type ParseFunc[T any] func(text string) (T, error)

// ParseInt is the ParseFunc for signed decimal integers.
func ParseInt(text string) (int, error) {
	return strconv.Atoi(text)
}

// maxPrealloc bounds the initial slice capacity so a large declared
// length does not allocate before its tokens arrive.
const maxPrealloc = 1 << 16

// Reader reads one sequence from a byte stream.
type Reader[T any] struct {
	br       *bufio.Reader
	parse    ParseFunc[T]
	consumed int64
}

// NewReader wraps r. A *bufio.Reader is used as is, so whatever follows the
// sequence can still be read from it afterwards.
func NewReader[T any](r io.Reader, parse ParseFunc[T]) *Reader[T] {
	return &Reader[T]{br: bufio.NewReader(r), parse: parse}
}

// Read is a shorthand for NewReader(r, parse).ReadAll().
func Read[T any](r io.Reader, parse ParseFunc[T]) ([]T, error) {
	return NewReader(r, parse).ReadAll()
}

// Consumed returns the number of bytes taken from the stream so far.
func (r *Reader[T]) Consumed() int64 {
	return r.consumed
}

// ReadAll reads the length line and then exactly that many values.
// On error no values are returned.
func (r *Reader[T]) ReadAll() ([]T, error) {
	text, err := r.token('\n', -1)
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseUint(text, 10, 0)
	if err != nil {
		return nil, &ReadError{Kind: KindLength, Index: -1, Err: err}
	}

	values := make([]T, 0, min(n, maxPrealloc))
	for i := 0; uint64(i) < n; i++ {
		text, err := r.token(' ', i)
		if err != nil {
			return nil, err
		}
		v, err := r.parse(text)
		if err != nil {
			return nil, &ReadError{Kind: KindValue, Index: i, Err: err}
		}
		values = append(values, v)
	}

	return values, nil
}

// token reads up to and including delim, or to EOF, and returns the
// trimmed text.
func (r *Reader[T]) token(delim byte, index int) (string, error) {
	b, err := r.br.ReadBytes(delim)
	r.consumed += int64(len(b))
	if err != nil && !errors.Is(err, io.EOF) {
		return "", &ReadError{Kind: KindIO, Index: index, Err: err}
	}
	if !utf8.Valid(b) {
		return "", &ReadError{Kind: KindDecode, Index: index, Err: errInvalidUTF8}
	}
	return strings.TrimSpace(string(b)), nil
}

var errInvalidUTF8 = errors.New("invalid utf-8")
