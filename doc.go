// Package huffman builds static Huffman codes from known symbol frequencies.
//
// Build greedily merges the two lightest nodes of a min-heap (Queue) until a
// single full binary Tree remains.  Tree.Walk and Tree.Codes then assign each
// leaf the bit string of its root-to-leaf path, with 0 for a left edge and 1
// for a right edge.  The resulting code is prefix-free and has minimal total
// weighted length.
//
// When several nodes share a weight, which of them is merged first is not
// specified.  This affects the exact bits assigned to tied symbols, but never
// the Tree's Cost.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
