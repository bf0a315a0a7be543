package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// hiddenPrefix marks entries that are excluded unless --all is set.
const hiddenPrefix = "."

// listEntries reads the immediate children of dir in a single pass and
// returns them classified, in the order the OS produced them. The
// hidden filter runs on the raw name before any metadata is resolved,
// so hidden entries contribute nothing to counts, descent, or output.
// A directory that cannot be read yields an empty result; the caller
// has already vetted the root path.
func listEntries(dir string, showHidden bool) []Entry {
	names := readChildNames(dir)
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if !showHidden && strings.HasPrefix(name, hiddenPrefix) {
			continue
		}
		e, _ := resolveEntry(dir, name)
		entries = append(entries, e)
	}
	return entries
}

// readChildNames drains one directory handle fully and releases it
// before returning, so open handles never outlive the current level.
func readChildNames(dir string) []string {
	f, err := os.Open(dir)
	if err != nil {
		log.Debugf("cannot open directory %s: %v", dir, err)
		return nil
	}
	defer f.Close()

	children, err := f.ReadDir(-1)
	if err != nil && len(children) == 0 {
		log.Debugf("cannot read directory %s: %v", dir, err)
		return nil
	}

	names := make([]string, 0, len(children))
	for _, c := range children {
		names = append(names, c.Name())
	}
	return names
}
