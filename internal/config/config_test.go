// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/madjust-tui/internal/model"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, model.SpaceLocal, cfg.Space())
	assert.Equal(t, model.TargetAuto, cfg.Target())
	assert.True(t, cfg.UI.ShowShortcuts)
	assert.True(t, cfg.UI.WatchScene)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.DefaultSpace = "screen"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DefaultTarget = "bones"
	assert.Error(t, cfg.Validate())
}

func TestWorldAliasInConfig(t *testing.T) {
	cfg := Default()
	cfg.DefaultSpace = "world"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, model.SpaceGlobal, cfg.Space())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MADJUST_SCENE", "/tmp/x.toml")
	t.Setenv("MADJUST_SPACE", "global")
	t.Setenv("MADJUST_TARGET", "faces")

	cfg := Default()
	applyEnv(cfg)
	assert.Equal(t, "/tmp/x.toml", cfg.ScenePath)
	assert.Equal(t, model.SpaceGlobal, cfg.Space())
	assert.Equal(t, model.TargetFaces, cfg.Target())
}
