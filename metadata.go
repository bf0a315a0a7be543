package main

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// unknownName replaces entry names that cannot be represented as valid
// UTF-8. The entry itself is still listed.
const unknownName = "unknown name"

// resolveEntry stats one directory child and classifies it. The boolean
// reports whether metadata was readable; when it is false the returned
// Entry carries the name only (zero size, optional fields absent) so
// flat modes can still list it, and tree mode treats it as a leaf.
func resolveEntry(dir, name string) (Entry, bool) {
	display := name
	if !utf8.ValidString(display) {
		display = unknownName
	}

	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		log.Warnf("cannot read metadata for %s: %v", display, err)
		return Entry{Name: display, Kind: KindFile}, false
	}

	e := Entry{
		Name: display,
		Kind: KindFile,
		Size: uint64(info.Size()),
	}
	if info.IsDir() {
		e.Kind = KindDir
	}
	if mod := info.ModTime(); !mod.IsZero() {
		e.Modified = &mod
	}
	e.Permissions = fmt.Sprintf("%o", info.Mode().Perm())
	e.Owner = ownerOf(info)
	return e, true
}
