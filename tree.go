package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NodeID is the index of a Node within its Tree.
type NodeID int32

// NoNode is the NodeID of an absent child.
const NoNode = NodeID(-1)

// Node is a single vertex of a Tree.  Leaves carry a Symbol and no children;
// internal nodes carry InvalidSymbol and exactly two children.
type Node struct {
	Symbol Symbol
	Weight int64
	Left   NodeID
	Right  NodeID
}

// IsLeaf returns true iff this Node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// Tree is a full binary Huffman tree.  All nodes live in one slice owned by
// the Tree and are never modified once Build returns, so a Tree may be read
// from any number of goroutines.
type Tree struct {
	nodes     []Node
	root      NodeID
	numLeaves int
}

// Build constructs a Huffman tree for the given symbols, where
// frequencies[i] is the weight of symbols[i].
//
// Symbols must be valid and distinct, frequencies must be non-negative, and
// both slices must have the same non-zero length.  Zero frequencies are
// permitted.  Neither slice is modified.
//
// Each merge pops the two lightest nodes; the first one popped becomes the
// left child.  For n symbols the Tree has exactly n-1 internal nodes.
//
func Build(symbols []Symbol, frequencies []int64) (*Tree, error) {
	if err := validate(symbols, frequencies); err != nil {
		return nil, err
	}

	n := len(symbols)
	nodes := make([]Node, 0, 2*n-1)
	q := NewQueue(n)
	for i, symbol := range symbols {
		id := NodeID(len(nodes))
		nodes = append(nodes, Node{Symbol: symbol, Weight: frequencies[i], Left: NoNode, Right: NoNode})
		q.Insert(Item{Node: id, Weight: frequencies[i]})
	}

	for !q.IsSingleton() {
		left, err := q.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("merging left child: %w", err)
		}
		right, err := q.ExtractMin()
		if err != nil {
			return nil, fmt.Errorf("merging right child: %w", err)
		}

		// validate guarantees that the total weight fits, and every
		// internal weight is a partial sum of it.
		id := NodeID(len(nodes))
		weight := left.Weight + right.Weight
		nodes = append(nodes, Node{Symbol: InvalidSymbol, Weight: weight, Left: left.Node, Right: right.Node})
		q.Insert(Item{Node: id, Weight: weight})
	}

	root, err := q.ExtractMin()
	if err != nil {
		return nil, fmt.Errorf("extracting root: %w", err)
	}
	assert.Assertf(len(nodes) == 2*n-1, "expected %d nodes for %d symbols, got %d", 2*n-1, n, len(nodes))
	assert.Assertf(int(root.Node) == len(nodes)-1, "root %d is not the last node %d", root.Node, len(nodes)-1)

	return &Tree{nodes: nodes, root: root.Node, numLeaves: n}, nil
}

// BuildCounts is a convenience wrapper around Build.  The index into counts
// is the Symbol, and symbols with a count of zero are left out of the Tree.
func BuildCounts(counts []int64) (*Tree, error) {
	if len(counts) > int(MaxSymbol) {
		return nil, invalidInput(-1, "%d counts exceeds MaxSymbol %d", len(counts), MaxSymbol)
	}
	symbols := make([]Symbol, 0, len(counts))
	frequencies := make([]int64, 0, len(counts))
	for index, count := range counts {
		if count < 0 {
			return nil, invalidInput(index, "negative count %d", count)
		}
		if count == 0 {
			continue
		}
		symbols = append(symbols, Symbol(index))
		frequencies = append(frequencies, count)
	}
	if len(symbols) == 0 {
		return nil, invalidInput(-1, "no symbol has a non-zero count")
	}
	return Build(symbols, frequencies)
}

func validate(symbols []Symbol, frequencies []int64) error {
	if len(symbols) == 0 {
		return invalidInput(-1, "no symbols")
	}
	if len(symbols) != len(frequencies) {
		return invalidInput(-1, "%d symbols but %d frequencies", len(symbols), len(frequencies))
	}

	var total int64
	seen := make(map[Symbol]struct{}, len(symbols))
	for i, symbol := range symbols {
		if !symbol.IsValid() {
			return invalidInput(i, "invalid symbol %d", symbol)
		}
		if _, found := seen[symbol]; found {
			return invalidInput(i, "duplicate symbol %d", symbol)
		}
		seen[symbol] = struct{}{}

		freq := frequencies[i]
		if freq < 0 {
			return invalidInput(i, "negative frequency %d", freq)
		}
		if total > math.MaxInt64-freq {
			return invalidInput(i, "total frequency overflows int64")
		}
		total += freq
	}
	return nil
}

// Root returns the NodeID of the root.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node with the given NodeID.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the total number of nodes, leaves and internal nodes alike.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of input symbols.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// NumInternal returns the number of internal nodes, i.e. NumLeaves() - 1.
func (t *Tree) NumInternal() int {
	return len(t.nodes) - t.numLeaves
}

// Weight returns the weight of the root, i.e. the sum of all frequencies.
func (t *Tree) Weight() int64 {
	return t.nodes[t.root].Weight
}

// Height returns the length of the longest root-to-leaf path.  A Tree with a
// single leaf has height 0, even though that leaf's Code is one bit long.
func (t *Tree) Height() int {
	var height int
	t.walk(func(_ Node, path Code) bool {
		if len(path) > height {
			height = len(path)
		}
		return true
	})
	return height
}

// Cost returns the total weighted code length, i.e. the sum over all leaves
// of weight × len(code), using the Codes that Walk would emit.
func (t *Tree) Cost() int64 {
	var cost int64
	t.walk(func(leaf Node, path Code) bool {
		size := int64(len(path))
		if size == 0 {
			size = 1
		}
		cost += leaf.Weight * size
		return true
	})
	return cost
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, total weight %d)", t.numLeaves, t.Weight())
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.  Nodes are listed in NodeID order as {symbol, weight, left, right}.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tNumInternal() = %d\n", t.NumInternal())
	for id, node := range t.nodes {
		fmt.Fprintf(&buf, "\tNode(%d) = {%d, %d, %d, %d}\n", id, node.Symbol, node.Weight, node.Left, node.Right)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)
