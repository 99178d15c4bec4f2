// ============================================================================
// cskit - C-style String Toolkit
// ============================================================================
//
// Package:     tui
// Description: Bubbletea line prompt used by the input command
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/cskit/foundation/utils/cstr"
)

// Model is a single line prompt. It quits on enter (submitted) or on
// ctrl+c/esc (cancelled).
type Model struct {
	input     textinput.Model
	prompt    string
	width     int
	submitted bool
	cancelled bool
}

// NewModel creates a focused prompt model
func NewModel(prompt string) Model {
	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(prompt)
	ti.Placeholder = "text"
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()

	return Model{
		input:  ti,
		prompt: prompt,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - Width(m.prompt) - 2; w > 10 {
			m.input.Width = w
		} else {
			m.input.Width = 10
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt and a status line with the current lengths
func (m Model) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	value := m.input.Value()
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(RenderHelp(fmt.Sprintf("%d bytes, %d codepoints, %d columns · enter to accept, esc to cancel",
		len(value), cstr.New(value).LenUTF8(), Width(value))))
	b.WriteString("\n")
	return b.String()
}

// Value returns the entered text
func (m Model) Value() cstr.Str {
	return cstr.New(m.input.Value())
}

// Submitted reports whether the line was accepted with enter
func (m Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the prompt was left with ctrl+c or esc
func (m Model) Cancelled() bool {
	return m.cancelled
}
