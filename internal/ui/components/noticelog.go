// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the madjust TUI.
package components

import (
	"strings"

	"github.com/jeranaias/madjust-tui/internal/ui/styles"
)

// =============================================================================
// NOTICE LOG COMPONENT
// =============================================================================

// noticeLine is one logged line with its severity.
type noticeLine struct {
	text     string
	rejected bool
	success  bool
}

// NoticeLog shows the most recent diagnostics from apply invocations.
type NoticeLog struct {
	lines []noticeLine
	max   int
	theme *styles.Theme
}

// NewNoticeLog creates a log keeping the last max lines.
func NewNoticeLog(theme *styles.Theme, max int) *NoticeLog {
	return &NoticeLog{max: max, theme: theme}
}

// Info appends an informational notice line.
func (l *NoticeLog) Info(text string) {
	l.push(noticeLine{text: text})
}

// Rejected appends a rejection line.
func (l *NoticeLog) Rejected(text string) {
	l.push(noticeLine{text: text, rejected: true})
}

// Success appends an executed-plan line.
func (l *NoticeLog) Success(text string) {
	l.push(noticeLine{text: text, success: true})
}

func (l *NoticeLog) push(line noticeLine) {
	l.lines = append(l.lines, line)
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

// View renders the log, newest line last.
func (l *NoticeLog) View() string {
	if len(l.lines) == 0 {
		return l.theme.Hint.Render("diagnostics appear here")
	}
	var b strings.Builder
	for i, line := range l.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch {
		case line.rejected:
			b.WriteString(l.theme.Rejected.Render(line.text))
		case line.success:
			b.WriteString(l.theme.Executed.Render(line.text))
		default:
			b.WriteString(l.theme.Notice.Render(line.text))
		}
	}
	return b.String()
}
