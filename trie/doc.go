/*
Package trie implements a persistent (immutable) in-memory trie.

A trie maps sequences of symbols (keys) to values. This one is persistent with
copy-on-write behaviour: each “modification” (insertion, replacement or deletion)
leaves the original trie unmodified and returns a fresh incarnation. Under the
hood, copy-on-write rebuilds only the chain of nodes from the root down to the
affected key (“path copying”), and every node off that chain is shared by
reference between the old and the new incarnation. Thus, most of the
structure/memory is shared between original and copy, transparently to clients.

Values may be of arbitrary type, chosen per key at insertion time; retrieval is
type-checked, with a dynamic-type mismatch reported as absence.

Immutable tries are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trie

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.trie'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.trie")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.trie: "+msg, msgargs...)
		panic(msg)
	}
}
