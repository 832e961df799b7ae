package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/icza/bitio"
	"golang.org/x/exp/slices"
)

// Code represents a sequence of bits, one bit per element, first bit first.
// Every element is either 0 or 1.
//
// Codes handed out by this package are fresh copies and may be retained or
// modified by the caller.
type Code []byte

// MakeCode parses a Code from a string of '0' and '1' characters.  It panics
// on any other character.
func MakeCode(digits string) Code {
	code := make(Code, len(digits))
	for i := 0; i < len(digits); i++ {
		switch digits[i] {
		case '0':
			code[i] = 0
		case '1':
			code[i] = 1
		default:
			panic(fmt.Errorf("MakeCode: invalid digit %q at index %d", digits[i], i))
		}
	}
	return code
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Clone returns a copy of this Code that shares no memory with it.
func (hc Code) Clone() Code {
	if hc == nil {
		return nil
	}
	return slices.Clone(hc)
}

// Equal returns true iff both Codes have the same bits.
func (hc Code) Equal(other Code) bool {
	return slices.Equal(hc, other)
}

// HasPrefix returns true iff prefix is a (possibly equal) prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return len(prefix) <= len(hc) && slices.Equal(hc[:len(prefix)], prefix)
}

// Uint64 packs this Code into the low bits of an integer, first bit most
// significant.  ok is false if the Code is longer than 64 bits.
func (hc Code) Uint64() (bits uint64, ok bool) {
	if len(hc) > 64 {
		return 0, false
	}
	for _, bit := range hc {
		bits = (bits << 1) | uint64(bit)
	}
	return bits, true
}

// WriteBits writes the bits of this Code to the given bit writer, first bit
// first.
func (hc Code) WriteBits(w *bitio.Writer) error {
	for _, bit := range hc {
		if err := w.WriteBool(bit != 0); err != nil {
			return err
		}
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(len(hc))
	for _, bit := range hc {
		buf.WriteByte('0' + bit)
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code(nil)
