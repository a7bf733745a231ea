package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager is an error that reports its own message without the chain, like *zerr.Error.
type messager interface {
	Message() string
}

// metadataer is an error carrying structured metadata, like *zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one layer of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr layers contribute their own
// message and metadata; the first foreign error ends the walk with its full text.
// Layers without a message only attach metadata, which is merged into the layer above.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		var metadata map[string]any
		if md, ok := current.(metadataer); ok {
			metadata = md.Metadata()
		}

		if m.Message() == "" {
			if len(entries) > 0 {
				last := &entries[len(entries)-1]
				if last.metadata == nil {
					last.metadata = make(map[string]any)
				}
				maps.Copy(last.metadata, metadata)
			} else {
				if pending == nil {
					pending = make(map[string]any)
				}
				maps.Copy(pending, metadata)
			}
		} else {
			if pending != nil {
				if metadata == nil {
					metadata = make(map[string]any)
				}
				maps.Copy(metadata, pending)
				pending = nil
			}
			entries = append(entries, errorEntry{message: m.Message(), metadata: metadata})
		}

		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders the chain as a headline followed by its causes.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")
		head := msgLines[0] + formatMetadata(entry.metadata)

		if i == 0 {
			lines = append(lines, "Error: "+head)
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+head)
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}
	parts := make([]string, 0, len(metadata))
	for _, key := range slices.Sorted(maps.Keys(metadata)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, metadata[key]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
