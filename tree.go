package main

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	branchConnector   = "├── "
	lastConnector     = "└── "
	pipeContinuation  = "│   "
	blankContinuation = "    "
)

// treeNode pairs an entry with its position in the walk. Nodes are
// built during a single recursive pass and rendered immediately.
type treeNode struct {
	Entry        Entry
	Depth        int
	IsLast       bool
	AncestorLast []bool
}

// line renders the node with its connector and ancestor prefix. Only
// "open" ancestor branches draw a continuation bar.
func (n treeNode) line() string {
	connector := branchConnector
	if n.IsLast {
		connector = lastConnector
	}
	return prefixFor(n.AncestorLast) + connector + styleName(n.Entry)
}

// prefixFor builds the indentation owed to every ancestor level.
func prefixFor(ancestorLast []bool) string {
	var b strings.Builder
	for _, last := range ancestorLast {
		if last {
			b.WriteString(blankContinuation)
		} else {
			b.WriteString(pipeContinuation)
		}
	}
	return b.String()
}

// sortTreeOrder orders siblings for tree display: directories first,
// then case-sensitive byte-wise name comparison within each group.
// Names are unique within a directory, so the order is total.
func sortTreeOrder(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if (entries[i].Kind == KindDir) != (entries[j].Kind == KindDir) {
			return entries[i].Kind == KindDir
		}
		return entries[i].Name < entries[j].Name
	})
}

// renderTree emits the root's name once, unprefixed, then walks its
// children in tree order. Depth 0 is the root's direct children; no
// node at depth >= opts.MaxDepth is ever visited, so the deepest
// listed directory is shown unexpanded.
func renderTree(opts Options) []string {
	root := filepath.Base(filepath.Clean(opts.Path))
	lines := []string{dirStyle.Sprint(root)}
	if opts.MaxDepth > 0 {
		walkTree(opts.Path, 0, nil, opts, &lines)
	}
	return lines
}

func walkTree(dir string, depth int, ancestorLast []bool, opts Options, lines *[]string) {
	entries := listEntries(dir, opts.ShowHidden)
	sortTreeOrder(entries)

	for i, e := range entries {
		node := treeNode{
			Entry:        e,
			Depth:        depth,
			IsLast:       i == len(entries)-1,
			AncestorLast: ancestorLast,
		}
		*lines = append(*lines, node.line())

		if e.Kind == KindDir && node.Depth+1 < opts.MaxDepth {
			chain := append(append([]bool(nil), ancestorLast...), node.IsLast)
			walkTree(filepath.Join(dir, e.Name), depth+1, chain, opts, lines)
		}
	}
}
