package sequence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInts(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{"0\n", []int{}},
		{"0", []int{}},
		{"  3  \n1 2 3", []int{1, 2, 3}},
		{"3\n1 2 3 ", []int{1, 2, 3}},
		{"2\n5 5\n", []int{5, 5}},
		{"4\n-1 0 +7 -1", []int{-1, 0, 7, -1}},
		{"9\n10 20 20 10 10 30 50 10 20\n", []int{10, 20, 20, 10, 10, 30, 50, 10, 20}},
	}
	for _, test := range tests {
		t.Run(strconv.Quote(test.input), func(t *testing.T) {
			values, err := Read(strings.NewReader(test.input), ParseInt)
			require.NoError(t, err)
			assert.Equal(t, test.expected, values)
		})
	}
}

func TestReadRoundTrip(t *testing.T) {
	for n := 0; n < 50; n++ {
		expected := make([]int, n)
		tokens := make([]string, n)
		for i := range expected {
			expected[i] = (i*7919)%101 - 50
			tokens[i] = strconv.Itoa(expected[i])
		}
		input := fmt.Sprintf("%d\n%s", n, strings.Join(tokens, " "))

		values, err := Read(strings.NewReader(input), ParseInt)
		require.NoError(t, err)
		assert.Equal(t, expected, values)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		index int
	}{
		{"non numeric length", "abc\n1 2\n", KindLength, -1},
		{"negative length", "-1\n", KindLength, -1},
		{"empty stream", "", KindLength, -1},
		{"too few tokens", "3\n1 2", KindValue, 2},
		{"non numeric token", "3\n1 x 3", KindValue, 1},
		{"newline separated", "2\n1\n2", KindValue, 0},
		{"bad utf8 length", "\xff\n", KindDecode, -1},
		{"bad utf8 value", "2\n1 \xfe", KindDecode, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			values, err := Read(strings.NewReader(test.input), ParseInt)
			require.Error(t, err)
			assert.Nil(t, values)

			var rerr *ReadError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, test.kind, rerr.Kind)
			assert.Equal(t, test.index, rerr.Index)
		})
	}
}

func TestReadValueErrorCarriesCause(t *testing.T) {
	_, err := Read(strings.NewReader("1\nseven"), ParseInt)

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "seven", numErr.Num)
	assert.Contains(t, err.Error(), "value parse error on element 0")
	assert.Contains(t, fmt.Sprintf("%#v", err), `Kind:"value parse"`)
}

type failingReader struct {
	data string
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.data == "" {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestReadIOError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Read(&failingReader{data: "3\n1 2", err: boom}, ParseInt)

	var rerr *ReadError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, KindIO, rerr.Kind)
	assert.ErrorIs(t, err, boom)
}

func TestReadLeavesTrailingBytes(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("2\n5 6 7 8\n"))
	r := NewReader(br, ParseInt)

	values, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, values)
	assert.Equal(t, int64(len("2\n5 6 ")), r.Consumed())

	rest, err := io.ReadAll(br)
	require.NoError(t, err)
	assert.Equal(t, "7 8\n", string(rest))
}

func TestReadCustomType(t *testing.T) {
	parse := func(text string) (string, error) {
		if text == "" {
			return "", errors.New("empty")
		}
		return strings.ToUpper(text), nil
	}

	values, err := Read(strings.NewReader("3\nred blue red"), parse)
	require.NoError(t, err)
	assert.Equal(t, []string{"RED", "BLUE", "RED"}, values)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "io", KindIO.String())
	assert.Equal(t, "decode", KindDecode.String())
	assert.Equal(t, "length parse", KindLength.String())
	assert.Equal(t, "value parse", KindValue.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}
