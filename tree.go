// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

// An Entry is one member of an alphabet: a byte and how often it occurs.
type Entry struct {
	Symbol byte
	Freq   uint32
}

// A node is a node of a code tree. It is a leaf iff both children are nil.
// Internal nodes carry the summed weight of their subtrees and no symbol.
type node struct {
	sym         byte
	weight      uint64
	left, right *node
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

func nodeWeight(n *node) uint64 { return n.weight }

// buildTree builds the code tree for an alphabet by repeatedly merging the
// two lightest nodes. The first node extracted becomes the left child.
//
// The result depends on the order of entries as well as their frequencies,
// so compression and decompression must both call buildTree on the entries
// in header order. entries must not be empty.
func buildTree(entries []Entry) *node {
	leaves := make([]*node, len(entries))
	for i, e := range entries {
		leaves[i] = &node{sym: e.Symbol, weight: uint64(e.Freq)}
	}
	h := newMinHeap(leaves, nodeWeight)
	for !h.isSingleton() {
		left := h.extractMin()
		right := h.extractMin()
		h.insert(&node{weight: left.weight + right.weight, left: left, right: right})
	}
	return h.extractMin()
}
