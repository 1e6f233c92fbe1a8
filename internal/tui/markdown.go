// Package tui holds the shared terminal rendering pieces: markdown
// rendering, the toast notification, and the read-only catalog views.
package tui

import (
	"strings"

	"charm.land/glamour/v2"
)

// RenderMarkdown renders markdown content using glamour.
// Falls back to plain text wrapping if rendering fails.
func RenderMarkdown(content string, width int) string {
	// Cap width to 120 for readability
	if width > 120 {
		width = 120
	}
	if width < 20 {
		width = 20
	}

	// Create glamour renderer with dark theme and word wrap
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fallback to plain text wrapping
		return wrapText(content, width)
	}

	// Render the markdown
	rendered, err := r.Render(content)
	if err != nil {
		// Fallback to plain text wrapping
		return wrapText(content, width)
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}

// wrapText wraps plain text at the given width, breaking on spaces.
func wrapText(content string, width int) string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		for len(line) > width {
			cut := strings.LastIndex(line[:width], " ")
			if cut <= 0 {
				cut = width
			}
			out = append(out, line[:cut])
			line = strings.TrimLeft(line[cut:], " ")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
