package trie

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables
  holding clones of nodes.

- A node is never modified once it has been linked into a trie incarnation.
  All `with…` functions construct fresh nodes; everything they do not touch is
  taken over by reference.

- A nil *xnode is a legal stand-in for a node not (yet) present, which keeps the
  recursive path-copying code free of special cases for fresh paths.
*/

import "fmt"

// xnode is the building block tries are made of. Children are keyed by a single
// symbol of the key alphabet. A node may additionally carry a payload; the
// payload is stored type-erased, and hasValue discriminates a node without a
// payload from one storing a legitimate nil.
type xnode[S comparable] struct {
	children map[S]*xnode[S]
	payload  any
	hasValue bool
}

func (node *xnode[S]) String() string {
	if node == nil {
		return "∅"
	}
	if node.hasValue {
		return fmt.Sprintf("(node #ch=%d %T)", len(node.children), node.payload)
	}
	return fmt.Sprintf("(node #ch=%d)", len(node.children))
}

// child returns the child of node reachable over the edge for sym, or nil.
// Safe to call on a nil node.
func (node *xnode[S]) child(sym S) *xnode[S] {
	if node == nil {
		return nil
	}
	return node.children[sym]
}

// degree returns the number of children of node (0 for a nil node).
func (node *xnode[S]) degree() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// withValue returns a copy of node carrying payload v. The children mapping is
// inherited by reference, and a prior payload of whatever type is replaced.
// node may be nil, creating a fresh value-carrying leaf.
func (node *xnode[S]) withValue(v any) *xnode[S] {
	cow := xnode[S]{payload: v, hasValue: true}
	if node != nil {
		cow.children = node.children
	}
	return &cow
}

// withoutValue returns a copy of node with the payload dropped, demoting a
// value-carrying node to a plain interior node. The children mapping is
// inherited by reference.
func (node *xnode[S]) withoutValue() *xnode[S] {
	assertThat(node != nil, "attempt to drop payload of a void node")
	return &xnode[S]{children: node.children}
}

// withChild returns a copy of node in which the edge for sym leads to ch. All
// other children are reused by reference, and a payload is carried over
// unchanged, whatever its dynamic type. node may be nil, creating a fresh
// interior node with a single child.
func (node *xnode[S]) withChild(sym S, ch *xnode[S]) *xnode[S] {
	cow := xnode[S]{children: make(map[S]*xnode[S], node.degree()+1)}
	if node != nil {
		cow.payload, cow.hasValue = node.payload, node.hasValue
		for s, c := range node.children {
			cow.children[s] = c
		}
	}
	cow.children[sym] = ch
	return &cow
}

// withoutChild returns a copy of node without the edge for sym; if ch is
// non-nil, it is re-linked under sym instead. All other children are reused by
// reference, and a payload is carried over unchanged.
func (node *xnode[S]) withoutChild(sym S, ch *xnode[S]) *xnode[S] {
	assertThat(node != nil, "attempt to rebuild children of a void node")
	cow := xnode[S]{
		children: make(map[S]*xnode[S], len(node.children)),
		payload:  node.payload,
		hasValue: node.hasValue,
	}
	for s, c := range node.children {
		if s != sym {
			cow.children[s] = c
		}
	}
	if ch != nil {
		cow.children[sym] = ch
	}
	return &cow
}
