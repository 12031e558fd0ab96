package sequence

import "fmt"

// Kind tells which stage of a read failed.
type Kind int

const (
	// KindIO is a failure of the underlying stream.
	KindIO Kind = iota + 1
	// KindDecode means the bytes of a token were not valid UTF-8.
	KindDecode
	// KindLength means the first line was not a non-negative base-10 integer.
	KindLength
	// KindValue means a value token was rejected by the ParseFunc.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindLength:
		return "length parse"
	case KindValue:
		return "value parse"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ReadError is returned for every failed read. Index is the zero-based
// element being read, or -1 while reading the length line.
type ReadError struct {
	Kind  Kind
	Index int
	Err   error
}

func (e *ReadError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s error on length line: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error on element %d: %v", e.Kind, e.Index, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// GoString is used by %#v, the entry point prints it on fatal errors.
func (e *ReadError) GoString() string {
	return fmt.Sprintf("&sequence.ReadError{Kind:%q, Index:%d, Err:%#v}", e.Kind.String(), e.Index, e.Err)
}
