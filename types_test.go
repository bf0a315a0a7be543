package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name             string
		tree, json, long bool
		want             Mode
	}{
		{"default is compact", false, false, false, ModeCompact},
		{"long alone", false, false, true, ModeDetailed},
		{"json alone", false, true, false, ModeJSON},
		{"tree alone", true, false, false, ModeTree},
		{"json beats long", false, true, true, ModeJSON},
		{"tree beats json", true, true, false, ModeTree},
		{"tree beats everything", true, true, true, ModeTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveMode(tt.tree, tt.json, tt.long))
		})
	}
}
