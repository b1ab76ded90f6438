package trie

import "github.com/npillmayer/persistent/maybe"

// Trie is an immutable persistent trie, mapping keys (sequences of symbols of
// type S) to values of arbitrary, per-key types. The zero value is an empty
// trie ready for use, i.e. this is legal:
//
//     t := trie.With(trie.Trie[byte]{}, []byte("a"), 42)
//
// returning a trie in which key "a" is associated with the int 42.
//
// “Modifying” a trie never changes it, but rather returns a fresh incarnation
// with the modification applied, sharing every untouched node with its
// predecessor. A trie handle, once obtained, therefore always represents the
// same mapping and may be read from any number of goroutines without
// coordination.
type Trie[S comparable] struct {
	root *xnode[S]
}

// IsEmpty returns true if trie contains no entries at all.
func (trie Trie[S]) IsEmpty() bool {
	return trie.root == nil
}

// Find locates a key in a trie and returns the value associated with it, if
// the value is of type T. The zero value for T, together with found=false, is
// returned if the key's path does not exist, if the terminal node carries no
// value, or if it carries a value of a dynamic type other than T. A type
// mismatch is absence, never a panic.
//
// The empty key addresses the value slot of the root.
func Find[T any, S comparable](trie Trie[S], key []S) (T, bool) {
	var none T
	node := trie.root
	if node == nil {
		return none, false
	}
	for _, sym := range key {
		if node = node.child(sym); node == nil {
			return none, false
		}
	}
	if !node.hasValue {
		return none, false
	}
	value, ok := node.payload.(T)
	if !ok {
		tracer().Debugf("find: type mismatch at key's node, have %T", node.payload)
		return none, false
	}
	return value, true
}

// Locate is Find with the result expressed as a Maybe: Just the value stored
// under key, or Nothing under the same absence conditions as Find.
func Locate[T any, S comparable](trie Trie[S], key []S) maybe.Maybe[T] {
	if value, ok := Find[T](trie, key); ok {
		return maybe.Just(value)
	}
	return maybe.Nothing[T]()
}

// With returns a copy of a trie in which key is associated with value. An
// entry already present for key is replaced, whatever its type (in a new
// incarnation of the trie, nevertheless). Nodes off the root-to-key path are
// not copied, but shared between both incarnations.
func With[T any, S comparable](trie Trie[S], key []S, value T) Trie[S] {
	tracer().Debugf("with: rebuilding path of length %d", len(key))
	return Trie[S]{root: trie.root.with(key, value)}
}

// WithDeleted returns a copy of a trie with the value for key deleted, if
// present. If key holds no value, trie is returned unchanged.
//
// Deletion prunes: nodes left with neither a value nor children are dropped
// from the new incarnation, so no path ever ends in a dangling empty node.
func (trie Trie[S]) WithDeleted(key []S) Trie[S] {
	cow, modified := trie.root.without(key)
	if !modified {
		return trie // no need for modification
	}
	tracer().Debugf("delete: rebuilt path of length %d", len(key))
	return Trie[S]{root: cow}
}
