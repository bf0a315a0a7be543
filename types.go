package main

import "time"

// EntryKind classifies a directory child. It is derived from the stat
// result only, never from the entry's name.
type EntryKind string

const (
	KindFile EntryKind = "File"
	KindDir  EntryKind = "Dir"
)

// Entry holds one classified directory child. Optional fields stay at
// their zero value when the underlying fact could not be read, so
// renderers can tell "unknown" apart from a real zero.
type Entry struct {
	Name        string     `json:"name"`
	Kind        EntryKind  `json:"type"`
	Size        uint64     `json:"size_bytes"`
	Modified    *time.Time `json:"modified,omitempty"`
	Permissions string     `json:"permissions,omitempty"`
	Owner       string     `json:"owner,omitempty"`
}

// modifiedDisplay formats the timestamp for table output, or returns ""
// when the timestamp is unavailable.
func (e Entry) modifiedDisplay() string {
	if e.Modified == nil {
		return ""
	}
	return e.Modified.UTC().Format("Mon Jan _2 2006")
}

// Mode selects the presentation for one invocation. Exactly one mode is
// active at a time.
type Mode int

const (
	ModeCompact Mode = iota
	ModeDetailed
	ModeJSON
	ModeTree
)

// resolveMode collapses the presentation flags into a single mode.
// Precedence: tree over json over long, compact as the default.
func resolveMode(tree, json, long bool) Mode {
	switch {
	case tree:
		return ModeTree
	case json:
		return ModeJSON
	case long:
		return ModeDetailed
	default:
		return ModeCompact
	}
}

// Options is the configuration the listing core consumes read-only.
type Options struct {
	Path       string
	ShowHidden bool
	Mode       Mode
	MaxDepth   int
}
