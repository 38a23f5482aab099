// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package adjust implements the interactive multi-adjust panel.
package adjust

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/plan"
	"github.com/jeranaias/madjust-tui/internal/scene"
)

// Update handles messages for the panel.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.status.Width = msg.Width
		m.input.SetWidth(msg.Width)
		return m, nil

	case sceneReloadedMsg:
		if sc, err := scene.Load(m.scenePath); err == nil {
			m.sc = sc
			m.log.Info("scene reloaded from disk")
		} else {
			m.log.Rejected("scene reload failed: " + err.Error())
		}
		return m, m.waitReload()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey routes a key press to the command line or the panel.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.input.Focused() {
		switch msg.String() {
		case "enter":
			m.runCommand()
			return m, nil
		case "esc":
			m.input.Blur()
			return m, nil
		case "ctrl+c":
			m.Close()
			return m, tea.Quit
		}
		return m, m.input.Update(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.Close()
		return m, tea.Quit

	case ":", "c":
		return m, m.input.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}

	case "tab":
		if m.sc.Mode == model.ModeObject {
			m.panel.Category = nextCategory(m.panel.Category)
		}

	case "shift+tab":
		if m.sc.Mode == model.ModeObject {
			for i := 0; i < 3; i++ {
				m.panel.Category = nextCategory(m.panel.Category)
			}
		}

	case "e", " ":
		m.toggleRow()

	case "x":
		m.panel.XEnable = !m.panel.XEnable

	case "y":
		m.panel.YEnable = !m.panel.YEnable

	case "z":
		m.panel.ZEnable = !m.panel.ZEnable

	case "left":
		m.nudgeRow(-1)

	case "right":
		m.nudgeRow(1)

	case "s":
		m.toggleSpace()

	case "t":
		if m.sc.Mode == model.ModeEditMesh {
			m.panel.Target = nextTarget(m.panel.Target)
		}

	case "m":
		m.cycleMode()

	case "a", "enter":
		m.runPanel()

	case "w":
		m.saveScene()
	}
	return m, nil
}

// =============================================================================
// PANEL ACTIONS
// =============================================================================

// toggleRow flips the enable toggle under the cursor.
func (m *Model) toggleRow() {
	switch m.currentRow() {
	case rowAxisX:
		m.panel.XEnable = !m.panel.XEnable
	case rowAxisY:
		m.panel.YEnable = !m.panel.YEnable
	case rowAxisZ:
		m.panel.ZEnable = !m.panel.ZEnable
	case rowVisViewport:
		m.panel.VisApplyViewport = !m.panel.VisApplyViewport
	case rowVisRender:
		m.panel.VisApplyRender = !m.panel.VisApplyRender
	case rowWeight:
		m.panel.WeightEnable = !m.panel.WeightEnable
	case rowRadius:
		m.panel.RadiusEnable = !m.panel.RadiusEnable
	case rowTilt:
		m.panel.TiltEnable = !m.panel.TiltEnable
	}
}

// nudgeRow adjusts the value under the cursor by one step. On visibility
// rows it flips the hide flag instead.
func (m *Model) nudgeRow(dir float64) {
	switch m.currentRow() {
	case rowAxisX:
		m.panel.XValue += dir
	case rowAxisY:
		m.panel.YValue += dir
	case rowAxisZ:
		m.panel.ZValue += dir
	case rowVisViewport:
		m.panel.VisViewportHide = !m.panel.VisViewportHide
	case rowVisRender:
		m.panel.VisRenderHide = !m.panel.VisRenderHide
	case rowWeight:
		m.panel.WeightValue += dir * 0.1
	case rowRadius:
		m.panel.RadiusValue += dir * 0.1
	case rowTilt:
		m.panel.TiltValue += dir
	}
}

// toggleSpace flips the space radio for the current mode.
func (m *Model) toggleSpace() {
	flip := func(s model.Space) model.Space {
		if s == model.SpaceLocal {
			return model.SpaceGlobal
		}
		return model.SpaceLocal
	}
	if m.sc.Mode == model.ModeObject {
		m.panel.ObjectSpace = flip(m.panel.ObjectSpace)
	} else {
		m.panel.MeshSpace = flip(m.panel.MeshSpace)
	}
}

// cycleMode rotates the scene's execution context.
func (m *Model) cycleMode() {
	switch m.sc.Mode {
	case model.ModeObject:
		m.sc.Mode = model.ModeEditMesh
	case model.ModeEditMesh:
		m.sc.Mode = model.ModeEditCurve
	default:
		m.sc.Mode = model.ModeObject
	}
	m.cursor = 0
}

// saveScene writes the scene back to its file.
func (m *Model) saveScene() {
	if m.scenePath == "" {
		m.log.Rejected("no scene file to save to")
		return
	}
	if err := scene.Save(m.scenePath, m.sc); err != nil {
		m.log.Rejected(err.Error())
		return
	}
	m.log.Success("scene saved")
}

// =============================================================================
// APPLY
// =============================================================================

// runCommand executes the command line against the scene.
func (m *Model) runCommand() {
	line := m.input.Value()
	m.panel.Command = line
	res := plan.RunCommand(line, m.panel.Snapshot(), m.sc.Selection(), m.sc)
	m.report(res)
	if res.State == plan.StateExecuted {
		m.echo(res)
		m.input.Reset()
		m.input.Blur()
	}
}

// runPanel executes the structured panel state (the Apply button).
func (m *Model) runPanel() {
	res := plan.RunPanel(m.panel.Snapshot(), m.sc.Selection(), m.sc)
	m.report(res)
}

// report logs an invocation's notices and outcome.
func (m *Model) report(res plan.Result) {
	for _, n := range res.Notices {
		m.log.Info(n.String())
	}
	switch {
	case res.ExecErr != nil:
		m.log.Rejected("apply failed: " + res.ExecErr.Error())
	case res.Rejected():
		m.log.Rejected("rejected: " + res.Reason.String())
	default:
		what := res.Intent.Category.String()
		if res.Intent.Category == model.CategoryNone {
			what = m.sc.Mode.String()
		}
		m.log.Success(fmt.Sprintf("%s: applied %d operations", what, len(res.Plan.Ops)))
	}
	m.status.LastState = res.State.String()
	m.status.Mode = m.sc.Mode
	m.status.Objects = len(m.sc.Objects)
	m.status.Selected = m.sc.SelectedCount()
}

// echo pushes a successful command's resolved values back into the
// panel controls, like the original tool does after Run. The panel's
// rotation fields are degrees, so radian values convert here.
func (m *Model) echo(res plan.Result) {
	in := res.Intent

	val := func(v model.OptValue) float64 {
		if in.Category == model.CategoryRotation {
			return v.Degrees()
		}
		return v.Value
	}

	if x, ok := in.Axes.Get(model.AxisX); ok {
		m.panel.XEnable, m.panel.XValue = true, val(x)
	} else {
		m.panel.XEnable = false
	}
	if y, ok := in.Axes.Get(model.AxisY); ok {
		m.panel.YEnable, m.panel.YValue = true, val(y)
	} else {
		m.panel.YEnable = false
	}
	if z, ok := in.Axes.Get(model.AxisZ); ok {
		m.panel.ZEnable, m.panel.ZValue = true, val(z)
	} else {
		m.panel.ZEnable = false
	}

	switch in.Mode {
	case model.ModeObject:
		if in.Category != model.CategoryNone {
			m.panel.Category = in.Category
		}
		m.panel.ObjectSpace = in.Space
	default:
		m.panel.MeshSpace = in.Space
		m.panel.Target = in.Target
	}

	if in.Mode == model.ModeEditCurve {
		if v, ok := in.Attrs.Get(model.AttrWeight); ok {
			m.panel.WeightEnable, m.panel.WeightValue = true, v.Value
		}
		if v, ok := in.Attrs.Get(model.AttrRadius); ok {
			m.panel.RadiusEnable, m.panel.RadiusValue = true, v.Value
		}
		if v, ok := in.Attrs.Get(model.AttrTilt); ok {
			m.panel.TiltEnable, m.panel.TiltValue = true, v.Value
		}
	}
}

// nextCategory cycles the object transform tabs.
func nextCategory(c model.Category) model.Category {
	switch c {
	case model.CategoryLocation:
		return model.CategoryRotation
	case model.CategoryRotation:
		return model.CategoryScale
	case model.CategoryScale:
		return model.CategoryOrigin
	default:
		return model.CategoryLocation
	}
}

// nextTarget cycles the mesh target radio.
func nextTarget(t model.MeshTarget) model.MeshTarget {
	switch t {
	case model.TargetAuto:
		return model.TargetVerts
	case model.TargetVerts:
		return model.TargetEdges
	case model.TargetEdges:
		return model.TargetFaces
	default:
		return model.TargetAuto
	}
}
