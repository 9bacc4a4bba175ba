package main

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidPartition = errors.New("invalid partition")
	ErrInvalidLength    = errors.New("invalid candidate length")
)

// StringGen walks every string of a fixed length over a charset as a mixed radix counter,
// most significant digit first. Only the current position is kept in memory.
type StringGen struct {
	charset    Charset // The set of characters to choose from
	charsetlen int     // Length of charset

	length int // Length of the generated string

	indexdata []int  // Counter digits, one charset index per position
	data      []byte // The last string handed out by Next
	done      bool   // Counter has wrapped past the leading position

	offset int // Where in the space this generator started
	stride int // How many counter steps to take between candidates
}

func NewStringGen(charset Charset, length int) (*StringGen, error) {
	if charset.Len() == 0 {
		return nil, ErrEmptyCharset
	}
	if length < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	sg := StringGen{
		charset:    charset,
		charsetlen: charset.Len(),

		length: length,

		indexdata: make([]int, length),
		data:      make([]byte, length),

		stride: 1,
	}
	return &sg, nil
}

// NewStridedStringGen places offset in the leading position and then takes stride steps
// per candidate. Workers 0..stride-1 sharing a length do not necessarily split the space
// evenly with this layout, see NewInterleavedStringGen.
func NewStridedStringGen(charset Charset, length, offset, stride int) (*StringGen, error) {
	if err := checkPartition(offset, stride); err != nil {
		return nil, err
	}
	if offset >= charset.Len() {
		return nil, fmt.Errorf("%w: offset %d is not a symbol of a %d symbol charset", ErrInvalidPartition, offset, charset.Len())
	}
	sg, err := NewStringGen(charset, length)
	if err != nil {
		return nil, err
	}
	sg.offset = offset
	sg.stride = stride
	sg.indexdata[0] = offset
	return sg, nil
}

// NewInterleavedStringGen starts at linear position offset and takes stride steps per
// candidate, so generators with offsets 0..stride-1 together produce every string exactly once.
func NewInterleavedStringGen(charset Charset, length, offset, stride int) (*StringGen, error) {
	if err := checkPartition(offset, stride); err != nil {
		return nil, err
	}
	sg, err := NewStringGen(charset, length)
	if err != nil {
		return nil, err
	}
	sg.offset = offset
	sg.stride = stride
	sg.advance(offset)
	return sg, nil
}

func checkPartition(offset, stride int) error {
	if stride < 1 || offset < 0 || offset >= stride {
		return fmt.Errorf("%w: offset %d, stride %d", ErrInvalidPartition, offset, stride)
	}
	return nil
}

// Complexity is the number of strings of this length, or -1 if it overflows
func (sg *StringGen) Complexity() int64 {
	size, ok := sg.charset.SpaceSize(sg.length)
	if !ok || size > math.MaxInt64 {
		return -1
	}
	return int64(size)
}

// Next moves to the next candidate, returning false when this generator is exhausted
func (sg *StringGen) Next() bool {
	if sg.done {
		return false
	}

	for i, index := range sg.indexdata {
		sg.data[i] = sg.charset.At(index)
	}
	sg.advance(sg.stride)
	return true
}

// advance adds steps to the counter, the same as incrementing the last position steps times
func (sg *StringGen) advance(steps int) {
	carry := steps
	for i := sg.length - 1; i >= 0 && carry > 0; i-- {
		value := sg.indexdata[i] + carry
		sg.indexdata[i] = value % sg.charsetlen
		carry = value / sg.charsetlen
	}
	if carry > 0 {
		sg.done = true
	}
}

func (sg *StringGen) Bytes() []byte {
	return sg.data
}

func (sg *StringGen) String() string {
	return string(sg.data)
}
