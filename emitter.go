package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"golang.org/x/exp/slices"
)

// Walk calls fn once for every leaf, in depth-first pre-order, with the
// leaf's Symbol and Code.  A left edge contributes a 0 bit and a right edge
// contributes a 1 bit.  Walk stops early if fn returns false.
//
// A Tree with a single leaf has no edges at all; that leaf is given the Code
// "0" so that every Code is at least one bit long.
//
// Each Code passed to fn is a fresh copy.  Walking the same Tree twice
// yields the same sequence.
//
func (t *Tree) Walk(fn func(symbol Symbol, code Code) bool) {
	t.walk(func(leaf Node, path Code) bool {
		code := path.Clone()
		if len(code) == 0 {
			code = Code{0}
		}
		return fn(leaf.Symbol, code)
	})
}

// Codes returns the Codebook for this Tree.
func (t *Tree) Codes() Codebook {
	codes := make(map[Symbol]Code, t.numLeaves)
	t.Walk(func(symbol Symbol, code Code) bool {
		codes[symbol] = code
		return true
	})
	assert.Assertf(len(codes) == t.numLeaves, "expected %d codes, got %d", t.numLeaves, len(codes))
	return Codebook{codes: codes}
}

// walk is the shared traversal behind Walk, Height, and Cost.  The path it
// passes to fn is reused between calls and must not be retained.
//
// The walk uses an explicit stack rather than recursion, so tree height is
// bounded only by memory.  stackItem.x tracks where we are at each level:
//   x=0 → We just arrived at this node for the first time
//   x=1 → We have already descended into the left child
//   x=2 → We have already descended into both children
//
func (t *Tree) walk(fn func(leaf Node, path Code) bool) {
	type stackItem struct {
		id NodeID
		x  byte
	}

	hint := log2int(t.numLeaves) + 1
	stack := make([]stackItem, 0, hint)
	path := make(Code, 0, hint)

	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		depth := len(stack) - 1
		path = path[:depth]

		top := &stack[depth]
		node := t.nodes[top.id]
		if node.IsLeaf() {
			if !fn(node, path) {
				return
			}
			stack = stack[:depth]
			continue
		}

		x := top.x
		top.x++
		switch x {
		case 0:
			path = append(path, 0)
			stack = append(stack, stackItem{id: node.Left})
		case 1:
			path = append(path, 1)
			stack = append(stack, stackItem{id: node.Right})
		default:
			stack = stack[:depth]
		}
	}
}

// Codebook maps each Symbol of a Tree to its Code.
type Codebook struct {
	codes map[Symbol]Code
}

// Lookup returns the Code for the given Symbol.
func (cb Codebook) Lookup(symbol Symbol) (Code, bool) {
	hc, found := cb.codes[symbol]
	if !found {
		return nil, false
	}
	return hc.Clone(), true
}

// Len returns the number of Symbols with a Code.
func (cb Codebook) Len() int {
	return len(cb.codes)
}

// Symbols returns every Symbol with a Code, in ascending order.
func (cb Codebook) Symbols() []Symbol {
	out := make([]Symbol, 0, len(cb.codes))
	for symbol := range cb.codes {
		out = append(out, symbol)
	}
	slices.Sort(out)
	return out
}

// MaxLength is the bit length of the longest Code.
func (cb Codebook) MaxLength() int {
	var max int
	for _, hc := range cb.codes {
		if len(hc) > max {
			max = len(hc)
		}
	}
	return max
}

// Map returns a copy of the Symbol to Code mapping.
func (cb Codebook) Map() map[Symbol]Code {
	out := make(map[Symbol]Code, len(cb.codes))
	for symbol, hc := range cb.codes {
		out[symbol] = hc.Clone()
	}
	return out
}

// Write writes the Code for the given Symbol to the given bit writer.
func (cb Codebook) Write(w *bitio.Writer, symbol Symbol) error {
	hc, found := cb.codes[symbol]
	if !found {
		return fmt.Errorf("%w: %d", ErrUnknownSymbol, symbol)
	}
	return hc.WriteBits(w)
}

// Dump writes a programmer-readable debugging dump of the Codebook to the
// given writer, in ascending Symbol order.
func (cb Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(cb.codes))
	fmt.Fprintf(&buf, "\tMaxLength() = %d\n", cb.MaxLength())
	for _, symbol := range cb.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, cb.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
