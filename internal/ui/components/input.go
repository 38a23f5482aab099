// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the madjust TUI.
package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/madjust-tui/internal/ui/styles"
)

// =============================================================================
// COMMAND INPUT COMPONENT
// =============================================================================

// CommandInput is the styled command-line entry box.
type CommandInput struct {
	input   textinput.Model
	focused bool
}

// NewCommandInput creates the command input with the panel's grammar as
// its placeholder hint.
func NewCommandInput() *CommandInput {
	ti := textinput.New()
	ti.Placeholder = "rx=45  x=0 z=2  space=global  target=faces  scale.y=1.2"
	ti.CharLimit = 256
	ti.Width = 60
	ti.Prompt = "> "

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	return &CommandInput{input: ti}
}

// Focus focuses the input.
func (c *CommandInput) Focus() tea.Cmd {
	c.focused = true
	return c.input.Focus()
}

// Blur removes focus.
func (c *CommandInput) Blur() {
	c.focused = false
	c.input.Blur()
}

// Focused reports whether the input is focused.
func (c *CommandInput) Focused() bool {
	return c.focused
}

// SetWidth sets the input width.
func (c *CommandInput) SetWidth(width int) {
	w := width - 6
	if w < 20 {
		w = 20
	}
	c.input.Width = w
}

// Value returns the current text.
func (c *CommandInput) Value() string {
	return c.input.Value()
}

// Reset clears the input.
func (c *CommandInput) Reset() {
	c.input.Reset()
}

// Update forwards messages to the underlying text input.
func (c *CommandInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the input line.
func (c *CommandInput) View() string {
	return c.input.View()
}
