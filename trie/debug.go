package trie

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	tp "github.com/xlab/treeprint"
)

// Diagnostic renderings of a trie's node structure, for debugging. They are
// not an enumeration API and make no ordering guarantees beyond a stable
// display order of edge labels.

// Dump writes a textual tree rendering of trie to w.
func (trie Trie[S]) Dump(w io.Writer) {
	p := tp.New()
	if trie.root == nil {
		p.AddNode("∅")
	} else {
		dumpNode(p, "", trie.root)
	}
	fmt.Fprint(w, p.String())
}

func dumpNode[S comparable](p tp.Tree, edge string, node *xnode[S]) {
	label := strings.TrimSpace(edge + " " + node.String())
	if len(node.children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, sym := range node.sortedSyms() {
		dumpNode(branch, symstr(sym), node.children[sym])
	}
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
}

var dotHeadTmpl = template.Must(template.New("triehead").Parse(`digraph trie {
  node [fontname={{ .Fontname }} fontsize=11];
  edge [fontname={{ .Fontname }} fontsize=10];
`))

var dotNodeTmpl = template.Must(template.New("trienode").Parse(
	"  n{{ .ID }} [label=\"{{ .Label }}\"{{ if .HasValue }} shape=box style=filled fillcolor=lightgrey{{ end }}];\n"))

var dotEdgeTmpl = template.Must(template.New("trieedge").Parse(
	"  n{{ .From }} -> n{{ .To }} [label=\"{{ .Sym }}\"];\n"))

type dotNodeParams struct {
	ID       int
	Label    string
	HasValue bool
}

type dotEdgeParams struct {
	From, To int
	Sym      string
}

// ToGraphViz outputs a diagram of trie's node structure. The diagram is in
// GraphViz (DOT) format. Value-carrying nodes are drawn as boxes, labelled
// with the dynamic type of their payload.
func (trie Trie[S]) ToGraphViz(w io.Writer) {
	if err := dotHeadTmpl.Execute(w, graphParamsType{Fontname: "Helvetica"}); err != nil {
		panic(err)
	}
	if trie.root != nil {
		next := 0
		dotNode(w, trie.root, &next)
	}
	fmt.Fprintln(w, "}")
}

func dotNode[S comparable](w io.Writer, node *xnode[S], next *int) int {
	id := *next
	*next++
	label := "·"
	if node.hasValue {
		label = fmt.Sprintf("%T", node.payload)
	}
	if err := dotNodeTmpl.Execute(w, dotNodeParams{ID: id, Label: label, HasValue: node.hasValue}); err != nil {
		panic(err)
	}
	for _, sym := range node.sortedSyms() {
		chID := dotNode(w, node.children[sym], next)
		if err := dotEdgeTmpl.Execute(w, dotEdgeParams{From: id, To: chID, Sym: symstr(sym)}); err != nil {
			panic(err)
		}
	}
	return id
}

// sortedSyms returns the edge symbols of node in a stable display order.
func (node *xnode[S]) sortedSyms() []S {
	syms := make([]S, 0, len(node.children))
	for s := range node.children {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		return symstr(syms[i]) < symstr(syms[j])
	})
	return syms
}

// symstr renders an edge symbol for display. Byte and rune symbols are shown
// as characters, everything else falls back to fmt.
func symstr(sym any) string {
	switch c := sym.(type) {
	case byte:
		return string(rune(c))
	case rune:
		return string(c)
	}
	return fmt.Sprint(sym)
}
