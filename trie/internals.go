package trie

// with implements path copying for insertion, recursive over the key. At each
// level exactly one child entry (the one for the symbol just consumed) is
// replaced in a fresh node; every other child, and the node's own payload, is
// reused by reference. node may be nil, in which case a fresh path is built.
func (node *xnode[S]) with(key []S, value any) *xnode[S] {
	if len(key) == 0 { // key consumed: this node receives the payload
		return node.withValue(value)
	}
	sym, suffix := key[0], key[1:]
	cow := node.child(sym).with(suffix, value)
	return node.withChild(sym, cow)
}

// without implements path copying for deletion, recursive over the key. The
// second return value reports whether anything changed at all; if it is false,
// the first return value is node itself and no parent must be rebuilt.
//
// A nil first return value (with modified=true) propagates pruning upward: the
// child for the consumed symbol disappears from the rebuilt parent, and a
// parent thereby left without payload and children disappears in turn.
func (node *xnode[S]) without(key []S) (*xnode[S], bool) {
	if node == nil { // walked off the trie: key was never present
		return nil, false
	}
	if len(key) == 0 { // key consumed: this node's payload goes
		if !node.hasValue {
			return node, false
		}
		if len(node.children) == 0 {
			return nil, true
		}
		return node.withoutValue(), true
	}
	sym, suffix := key[0], key[1:]
	child := node.child(sym)
	if child == nil { // no edge for sym: key was never present
		return node, false
	}
	cow, modified := child.without(suffix)
	if !modified {
		return node, false
	}
	if cow == nil && !node.hasValue && len(node.children) == 1 {
		tracer().Debugf("delete: pruning empty node %s", node)
		return nil, true
	}
	return node.withoutChild(sym, cow), true
}
