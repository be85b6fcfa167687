package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer matches the Metadata() method provided by zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// joinedError matches errors built with errors.Join.
type joinedError interface {
	Unwrap() []error
}

// collectErrorEntries walks the error chain. zerr errors contribute their own
// message and metadata; the first standard error ends the walk with its full
// Error() text. Links without a message fold their metadata into the next link.
// Joined errors contribute the entries of each of their members in order.
func collectErrorEntries(err error) []ErrorEntry {
	return appendErrorEntries(nil, err, nil)
}

func appendErrorEntries(entries []ErrorEntry, err error, pending map[string]any) []ErrorEntry {
	for current := err; current != nil; {
		if j, ok := current.(joinedError); ok {
			for _, member := range j.Unwrap() {
				entries = appendErrorEntries(entries, member, pending)
				pending = nil
			}
			return entries
		}

		m, ok := current.(messager)
		if !ok {
			return append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
		}

		meta := map[string]any{}
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}
		for k, v := range pending {
			meta[k] = v
		}

		if m.Message() == "" {
			pending = meta
		} else {
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
			pending = nil
		}
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by a
// "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		first, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			first, indent = "    → ", "      "
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
