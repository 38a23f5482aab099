// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - argument parsing and command routing for madjust.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/madjust-tui/internal/config"
	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/panel"
	"github.com/jeranaias/madjust-tui/internal/scene"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdREPL
	CmdApply
	CmdHelp
	CmdVersion
)

// Args holds parsed CLI arguments.
type Args struct {
	// Scene is the scene file to load; empty means config or demo
	Scene string

	// Mode overrides the scene's execution context
	Mode string

	// Save writes the scene back to its file after apply
	Save bool

	// Line is the command line for the apply command
	Line string
}

// Parse reads os.Args and returns the command to run plus its arguments.
func Parse() (Command, Args) {
	args := Args{}
	rest := os.Args[1:]

	cmd := CmdTUI
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		switch rest[0] {
		case "tui":
			cmd = CmdTUI
		case "repl":
			cmd = CmdREPL
		case "apply":
			cmd = CmdApply
		case "help":
			return CmdHelp, args
		case "version":
			return CmdVersion, args
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q, try: madjust help\n", rest[0])
			os.Exit(1)
		}
		rest = rest[1:]
	}

	var positional []string
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "--scene", "-s":
			if i+1 < len(rest) {
				i++
				args.Scene = rest[i]
			}
		case "--mode", "-m":
			if i+1 < len(rest) {
				i++
				args.Mode = rest[i]
			}
		case "--save":
			args.Save = true
		case "--help", "-h":
			return CmdHelp, args
		case "--version", "-v":
			return CmdVersion, args
		default:
			positional = append(positional, rest[i])
		}
	}
	args.Line = strings.Join(positional, " ")
	return cmd, args
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("madjust %s (%s, built %s)\n", Version, GitCommit, BuildDate)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// LoadScene resolves and loads the scene for a command: the --scene
// flag, then the configured scene path, then the built-in demo.
func LoadScene(cfg *config.Config, args Args) (*scene.Scene, string, error) {
	path := args.Scene
	if path == "" {
		path = cfg.ScenePath
	}

	var sc *scene.Scene
	if path == "" {
		sc = scene.Demo()
	} else {
		loaded, err := scene.Load(path)
		if err != nil {
			return nil, "", err
		}
		sc = loaded
	}

	if args.Mode != "" {
		switch args.Mode {
		case "object":
			sc.Mode = model.ModeObject
		case "mesh", "edit_mesh":
			sc.Mode = model.ModeEditMesh
		case "curve", "edit_curve":
			sc.Mode = model.ModeEditCurve
		default:
			return nil, "", fmt.Errorf("unknown mode %q (object, mesh or curve)", args.Mode)
		}
	}
	return sc, path, nil
}

// AmbientPanel builds the default panel state from configuration.
func AmbientPanel(cfg *config.Config) panel.State {
	p := panel.Default()
	p.ObjectSpace = cfg.Space()
	p.MeshSpace = cfg.Space()
	p.Target = cfg.Target()
	return p
}
