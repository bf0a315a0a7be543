package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// renderListing produces the full output text for the selected mode.
// The selector only dispatches; filtering and ordering have already
// happened in the enumeration and tree layers.
func renderListing(opts Options) string {
	var b strings.Builder
	switch opts.Mode {
	case ModeTree:
		for _, line := range renderTree(opts) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	case ModeJSON:
		entries := listEntries(opts.Path, opts.ShowHidden)
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return "cannot encode listing as json\n"
		}
		b.Write(out)
		b.WriteString("\n")
	case ModeDetailed:
		renderDetailedTable(&b, listEntries(opts.Path, opts.ShowHidden))
	default:
		renderCompactTable(&b, listEntries(opts.Path, opts.ShowHidden))
	}
	return b.String()
}

// writeOutput sends the rendered text to the selected destination:
// a file, the clipboard, or stdout by default.
func writeOutput(text, file string, toClipboard bool) error {
	if file != "" {
		if err := os.WriteFile(file, []byte(text), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", file, err)
		}
		fmt.Printf("Output saved to %s\n", file)
		return nil
	}
	if toClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("error writing to clipboard: %w", err)
		}
		fmt.Println("Output copied to clipboard.")
		return nil
	}
	fmt.Print(text)
	return nil
}
