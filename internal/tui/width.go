// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     tui
// Description: Display width and grapheme helpers
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package tui

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the number of terminal columns s occupies
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Graphemes returns the number of user-perceived characters in s
func Graphemes(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Truncate cuts s to at most width columns without splitting a grapheme
// cluster
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String()
}

// PadRight fills s with spaces up to width columns
func PadRight(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
