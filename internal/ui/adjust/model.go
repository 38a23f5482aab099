// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package adjust implements the interactive multi-adjust panel: the
// structured controls mirrored from the original tool plus the command
// line, wired to the engine's runner.
package adjust

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/madjust-tui/internal/config"
	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/panel"
	"github.com/jeranaias/madjust-tui/internal/scene"
	"github.com/jeranaias/madjust-tui/internal/ui/components"
	"github.com/jeranaias/madjust-tui/internal/ui/styles"
)

// =============================================================================
// ROWS
// =============================================================================

// row identifies one cursor-addressable control line.
type row int

const (
	rowAxisX row = iota
	rowAxisY
	rowAxisZ
	rowVisViewport
	rowVisRender
	rowWeight
	rowRadius
	rowTilt
)

// =============================================================================
// MODEL
// =============================================================================

// sceneReloadedMsg signals the watched scene file changed on disk.
type sceneReloadedMsg struct{}

// Model is the bubbletea model for the adjust panel.
type Model struct {
	cfg       *config.Config
	theme     *styles.Theme
	sc        *scene.Scene
	scenePath string

	panel  panel.State
	cursor int

	input  *components.CommandInput
	status *components.StatusBar
	log    *components.NoticeLog

	watcher *scene.Watcher
	reload  chan struct{}

	width  int
	height int
}

// New builds the panel model around a scene. A non-empty scenePath
// enables saving and, if configured, live reload.
func New(cfg *config.Config, sc *scene.Scene, scenePath string) *Model {
	theme := styles.NewTheme()

	p := panel.Default()
	p.ObjectSpace = cfg.Space()
	p.MeshSpace = cfg.Space()
	p.Target = cfg.Target()

	m := &Model{
		cfg:       cfg,
		theme:     theme,
		sc:        sc,
		scenePath: scenePath,
		panel:     p,
		input:     components.NewCommandInput(),
		status:    components.NewStatusBar(theme),
		log:       components.NewNoticeLog(theme, 6),
		reload:    make(chan struct{}, 1),
	}
	m.status.ShowShortcuts = cfg.UI.ShowShortcuts

	if scenePath != "" && cfg.UI.WatchScene {
		w, err := scene.Watch(scenePath, 250*time.Millisecond, func() {
			select {
			case m.reload <- struct{}{}:
			default:
			}
		})
		if err == nil {
			m.watcher = w
		} else {
			m.log.Info("scene watch disabled: " + err.Error())
		}
	}
	return m
}

// Init starts the reload listener.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.waitReload()
}

// waitReload blocks on the watcher channel and re-arms after each event.
func (m *Model) waitReload() tea.Cmd {
	return func() tea.Msg {
		<-m.reload
		return sceneReloadedMsg{}
	}
}

// Close releases the watcher.
func (m *Model) Close() {
	if m.watcher != nil {
		m.watcher.Close()
	}
}

// rows returns the cursor-addressable rows for the current mode.
func (m *Model) rows() []row {
	base := []row{rowAxisX, rowAxisY, rowAxisZ}
	switch m.sc.Mode {
	case model.ModeEditMesh:
		return base
	case model.ModeEditCurve:
		return append(base, rowWeight, rowRadius, rowTilt)
	default:
		return append(base, rowVisViewport, rowVisRender)
	}
}

// currentRow returns the row under the cursor.
func (m *Model) currentRow() row {
	rows := m.rows()
	if m.cursor >= len(rows) {
		return rows[len(rows)-1]
	}
	return rows[m.cursor]
}
