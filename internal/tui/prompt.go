// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     tui
// Description: Line input with terminal detection
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package tui

import (
	"bufio"
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	mdwerror "github.com/msto63/cskit/foundation/core/error"
	"github.com/msto63/cskit/foundation/utils/cstr"
)

// ErrCancelled is returned when the user leaves the prompt without input
var ErrCancelled = mdwerror.New("input cancelled").WithCode(mdwerror.CodeInvalidInput)

// ReadLine reads one line. On a terminal it runs the interactive prompt,
// otherwise it falls back to cstr.Input and reads up to the next newline.
func ReadLine(ctx context.Context, in io.Reader, out io.Writer, prompt string) (cstr.Str, error) {
	if IsTerminal(in) && IsTerminal(out) {
		return runPrompt(ctx, in, out, prompt)
	}

	br, ok := in.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return cstr.Input(out, prompt, br)
}

func runPrompt(ctx context.Context, in io.Reader, out io.Writer, prompt string) (cstr.Str, error) {
	p := tea.NewProgram(NewModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return cstr.Str{}, mdwerror.Wrap(err, "prompt failed").WithOperation("tui.ReadLine")
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() {
		return cstr.Str{}, ErrCancelled
	}
	return m.Value(), nil
}

// IsTerminal reports whether v is a file attached to a terminal
func IsTerminal(v interface{}) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
