//go:build windows

package main

import "os"

// Windows has no uid-based ownership; the field stays absent.
func ownerOf(_ os.FileInfo) string {
	return ""
}
