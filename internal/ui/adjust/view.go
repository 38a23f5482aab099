// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package adjust implements the interactive multi-adjust panel.
package adjust

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/util"
)

// View renders the whole panel.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.theme.Title.Render("Multi Adjust"))
	sections = append(sections, m.theme.Box.Render(m.viewCommand()))
	sections = append(sections, m.theme.Box.Render(m.viewControls()))
	sections = append(sections, m.theme.Box.Render(m.log.View()))
	sections = append(sections, m.status.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewCommand renders the command box.
func (m *Model) viewCommand() string {
	label := m.theme.Label.Render("Command")
	return label + "\n" + m.input.View()
}

// viewControls renders the mode-specific structured controls.
func (m *Model) viewControls() string {
	var b strings.Builder

	switch m.sc.Mode {
	case model.ModeObject:
		b.WriteString(m.viewTabs())
		b.WriteByte('\n')
		b.WriteString(m.viewSpace(m.panel.ObjectSpace))
		b.WriteByte('\n')
		m.writeAxisRows(&b)
		b.WriteByte('\n')
		b.WriteString(m.theme.Label.Render("Visibility"))
		b.WriteByte('\n')
		b.WriteString(m.flagRow(rowVisViewport, "Viewport", m.panel.VisApplyViewport, m.panel.VisViewportHide))
		b.WriteByte('\n')
		b.WriteString(m.flagRow(rowVisRender, "Render", m.panel.VisApplyRender, m.panel.VisRenderHide))

	case model.ModeEditMesh:
		b.WriteString(m.theme.Label.Render("Edit Mesh  ·  target ") + m.theme.Value.Render(m.panel.Target.String()))
		b.WriteByte('\n')
		b.WriteString(m.viewSpace(m.panel.MeshSpace))
		b.WriteByte('\n')
		m.writeAxisRows(&b)

	case model.ModeEditCurve:
		b.WriteString(m.theme.Label.Render("Edit Curve"))
		b.WriteByte('\n')
		b.WriteString(m.viewSpace(m.panel.MeshSpace))
		b.WriteByte('\n')
		m.writeAxisRows(&b)
		b.WriteByte('\n')
		b.WriteString(m.theme.Label.Render("Attributes"))
		b.WriteByte('\n')
		b.WriteString(m.valueRow(rowWeight, "Weight", m.panel.WeightEnable, m.panel.WeightValue))
		b.WriteByte('\n')
		b.WriteString(m.valueRow(rowRadius, "Radius", m.panel.RadiusEnable, m.panel.RadiusValue))
		b.WriteByte('\n')
		b.WriteString(m.valueRow(rowTilt, "Tilt", m.panel.TiltEnable, m.panel.TiltValue))
	}
	return b.String()
}

// viewTabs renders the transform category tabs.
func (m *Model) viewTabs() string {
	cats := []model.Category{
		model.CategoryLocation,
		model.CategoryRotation,
		model.CategoryScale,
		model.CategoryOrigin,
	}
	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		if c == m.panel.Category {
			parts = append(parts, m.theme.TabActive.Render(c.String()))
		} else {
			parts = append(parts, m.theme.TabInactive.Render(c.String()))
		}
	}
	return strings.Join(parts, "  ")
}

// viewSpace renders the space radio line.
func (m *Model) viewSpace(s model.Space) string {
	local, global := m.theme.TabInactive, m.theme.TabInactive
	if s == model.SpaceLocal {
		local = m.theme.TabActive
	} else {
		global = m.theme.TabActive
	}
	return m.theme.Label.Render("Space  ") + local.Render("Local") + "  " + global.Render("Global")
}

// writeAxisRows renders the three axis toggle+value rows.
func (m *Model) writeAxisRows(b *strings.Builder) {
	b.WriteString(m.valueRow(rowAxisX, "X", m.panel.XEnable, m.panel.XValue))
	b.WriteByte('\n')
	b.WriteString(m.valueRow(rowAxisY, "Y", m.panel.YEnable, m.panel.YValue))
	b.WriteByte('\n')
	b.WriteString(m.valueRow(rowAxisZ, "Z", m.panel.ZEnable, m.panel.ZValue))
}

// valueRow renders one enable-toggle + value row.
func (m *Model) valueRow(r row, label string, enabled bool, value float64) string {
	return m.rowPrefix(r) + m.toggle(enabled) + " " +
		m.theme.Label.Render(util.PadRight(label, 7)) +
		m.theme.Value.Render(util.FormatFloat(value))
}

// flagRow renders one visibility apply+hide row.
func (m *Model) flagRow(r row, label string, apply, hide bool) string {
	state := "show"
	if hide {
		state = "hide"
	}
	return m.rowPrefix(r) + m.toggle(apply) + " " +
		m.theme.Label.Render(util.PadRight(label, 9)) +
		m.theme.Value.Render(state)
}

// rowPrefix renders the cursor marker.
func (m *Model) rowPrefix(r row) string {
	if m.currentRow() == r {
		return m.theme.Cursor.Render("› ")
	}
	return "  "
}

// toggle renders an enable checkbox.
func (m *Model) toggle(on bool) string {
	if on {
		return m.theme.ToggleOn.Render("[x]")
	}
	return m.theme.ToggleOff.Render("[ ]")
}
