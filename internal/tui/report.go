// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     tui
// Description: Styled string summary for the inspect command
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/cskit/foundation/utils/cstr"
)

// maxCodepointRows limits the codepoint table of RenderSummary
const maxCodepointRows = 32

// RenderSummary renders the lengths of s and a table of its first
// codepoints inside a box
func RenderSummary(s cstr.Str) string {
	text := s.String()
	encoding := "ASCII"
	if cstr.IsUTF8(s) {
		encoding = "UTF-8"
	}

	rows := []string{
		RenderTitle(Truncate(text, 60)),
		RenderField("bytes", fmt.Sprint(s.Len())),
		RenderField("codepoints", fmt.Sprint(s.LenUTF8())),
		RenderField("graphemes", fmt.Sprint(Graphemes(text))),
		RenderField("columns", fmt.Sprint(Width(text))),
		RenderField("capacity", fmt.Sprint(s.Cap())),
		RenderField("encoding", encoding),
		"",
	}

	cps, err := cstr.Codepoints(s)
	if err != nil {
		rows = append(rows, RenderError(err.Error()))
	}
	for i, cp := range cps {
		if i == maxCodepointRows {
			rows = append(rows, RenderHelp(fmt.Sprintf("... %d more", len(cps)-i)))
			break
		}
		rows = append(rows, fmt.Sprintf("%s %s %s",
			LabelStyle.Render(fmt.Sprintf("[%02d]", i)),
			CodepointStyle.Render(PadRight(string(cp), 2)),
			HelpStyle.Render(hexBytes(cp))))
	}

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}
