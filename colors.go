package main

import (
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// extension categories for file colorization; a pure lookup with no
// filesystem access.
var (
	sourceExts = map[string]bool{
		".c": true, ".cpp": true, ".go": true, ".h": true, ".java": true,
		".js": true, ".py": true, ".rb": true, ".rs": true, ".sh": true,
		".ts": true,
	}
	documentExts = map[string]bool{
		".doc": true, ".docx": true, ".md": true, ".pdf": true,
		".rst": true, ".txt": true,
	}
	dataExts = map[string]bool{
		".csv": true, ".json": true, ".toml": true, ".xml": true,
		".yaml": true, ".yml": true,
	}
	imageExts = map[string]bool{
		".bmp": true, ".gif": true, ".jpeg": true, ".jpg": true,
		".png": true, ".svg": true, ".webp": true,
	}
)

var (
	dirStyle      = color.New(color.FgHiBlue, color.Bold)
	sourceStyle   = color.New(color.FgHiGreen)
	documentStyle = color.New(color.FgHiYellow)
	dataStyle     = color.New(color.FgHiMagenta)
	imageStyle    = color.New(color.FgHiCyan)
	errorStyle    = color.New(color.FgRed)
)

// entryStyle maps (kind, extension) to a display style, or nil for the
// default rendering. Pure lookup; never touches the filesystem.
func entryStyle(e Entry) *color.Color {
	if e.Kind == KindDir {
		return dirStyle
	}
	ext := strings.ToLower(filepath.Ext(e.Name))
	switch {
	case sourceExts[ext]:
		return sourceStyle
	case documentExts[ext]:
		return documentStyle
	case dataExts[ext]:
		return dataStyle
	case imageExts[ext]:
		return imageStyle
	default:
		return nil
	}
}

// styleName colorizes an entry name. Styling collapses to the raw name
// when color output is disabled.
func styleName(e Entry) string {
	if s := entryStyle(e); s != nil {
		return s.Sprint(e.Name)
	}
	return e.Name
}
