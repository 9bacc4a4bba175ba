package main

import (
	"errors"
	"fmt"
)

// PrintableASCII is every printable character from space to ~
var PrintableASCII = mustCharset(printableRange(0x20, 0x7e))

var (
	ErrEmptyCharset    = errors.New("charset is empty")
	ErrDuplicateSymbol = errors.New("charset contains duplicate symbol")
)

// Charset is the ordered set of symbols candidates are built from. A symbol's position
// in the set is its digit value in the enumeration counter.
type Charset struct {
	symbols string
}

func NewCharset(symbols string) (Charset, error) {
	if len(symbols) == 0 {
		return Charset{}, ErrEmptyCharset
	}
	var seen [256]bool
	for i := 0; i < len(symbols); i++ {
		if seen[symbols[i]] {
			return Charset{}, fmt.Errorf("%w: %q at position %d", ErrDuplicateSymbol, symbols[i], i)
		}
		seen[symbols[i]] = true
	}
	return Charset{symbols: symbols}, nil
}

func mustCharset(symbols string) Charset {
	cs, err := NewCharset(symbols)
	if err != nil {
		panic(err)
	}
	return cs
}

func printableRange(from, to byte) string {
	b := make([]byte, 0, int(to-from)+1)
	for c := from; c <= to; c++ {
		b = append(b, c)
	}
	return string(b)
}

func (cs Charset) Len() int {
	return len(cs.symbols)
}

func (cs Charset) At(i int) byte {
	return cs.symbols[i]
}

func (cs Charset) String() string {
	return cs.symbols
}

// SpaceSize returns Len()^length, or false if that does not fit in an uint64
func (cs Charset) SpaceSize(length int) (uint64, bool) {
	base := uint64(cs.Len())
	size := uint64(1)
	for i := 0; i < length; i++ {
		if base != 0 && size > ^uint64(0)/base {
			return 0, false
		}
		size *= base
	}
	return size, true
}
