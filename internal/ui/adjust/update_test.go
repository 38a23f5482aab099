// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package adjust

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/madjust-tui/internal/config"
	"github.com/jeranaias/madjust-tui/internal/plan"
	"github.com/jeranaias/madjust-tui/internal/scene"
)

func newTestModel(t *testing.T) (*Model, *scene.Scene) {
	t.Helper()
	sc := scene.Demo()
	return New(config.Default(), sc, ""), sc
}

func runLine(t *testing.T, m *Model, sc *scene.Scene, line string) plan.Result {
	t.Helper()
	res := plan.RunCommand(line, m.panel.Snapshot(), sc.Selection(), sc)
	if res.State != plan.StateExecuted {
		t.Fatalf("%q: state = %v, reason = %v", line, res.State, res.Reason)
	}
	return res
}

func TestEchoConvertsRotationRadiansToDegrees(t *testing.T) {
	m, sc := newTestModel(t)

	res := runLine(t, m, sc, "ry=1.57rad")
	m.echo(res)

	if !m.panel.YEnable {
		t.Fatal("Y not enabled after echo")
	}
	want := 1.57 * 180 / math.Pi
	if math.Abs(m.panel.YValue-want) > 1e-9 {
		t.Errorf("panel YValue = %v, want %v degrees", m.panel.YValue, want)
	}
}

func TestEchoKeepsDegreeAndUnitlessValuesRaw(t *testing.T) {
	m, sc := newTestModel(t)

	res := runLine(t, m, sc, "rx=45")
	m.echo(res)
	if m.panel.XValue != 45 {
		t.Errorf("rotation XValue = %v, want 45", m.panel.XValue)
	}

	res = runLine(t, m, sc, "sx=2")
	m.echo(res)
	if m.panel.XValue != 2 {
		t.Errorf("scale XValue = %v, want 2", m.panel.XValue)
	}
	if m.panel.YEnable {
		t.Error("Y must be disabled after a command that never mentioned it")
	}
}

func TestAxisKeysToggleEnables(t *testing.T) {
	m, _ := newTestModel(t)
	key := func(r rune) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	}

	m.Update(key('x'))
	m.Update(key('z'))
	if !m.panel.XEnable || m.panel.YEnable || !m.panel.ZEnable {
		t.Errorf("enables = %v %v %v, want X and Z only",
			m.panel.XEnable, m.panel.YEnable, m.panel.ZEnable)
	}

	m.Update(key('x'))
	if m.panel.XEnable {
		t.Error("second press must toggle X back off")
	}
}
