// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - interactive line-mode interface with input history.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/jeranaias/madjust-tui/internal/config"
	"github.com/jeranaias/madjust-tui/internal/model"
	"github.com/jeranaias/madjust-tui/internal/plan"
	"github.com/jeranaias/madjust-tui/internal/scene"
	"github.com/jeranaias/madjust-tui/internal/util"
)

// =============================================================================
// LINE EDITOR
// =============================================================================

// replLiner wraps liner with history persistence.
type replLiner struct {
	line        *liner.State
	historyFile string
}

func newREPLLiner() *replLiner {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	r := &replLiner{
		line:        line,
		historyFile: filepath.Join(configDir, "repl_history"),
	}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
	return r
}

func (r *replLiner) read(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

func (r *replLiner) close() {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			r.line.WriteHistory(f)
			f.Close()
		}
	}
	r.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// HandleREPL runs the interactive line mode: each line is one apply
// invocation against the loaded scene.
func HandleREPL(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sc, path, err := LoadScene(cfg, args)
	if err != nil {
		return err
	}
	fmt.Printf("madjust %s · %d objects · %s mode\n", Version, len(sc.Objects), sc.Mode)
	fmt.Println(`type a command ("rx=45 sx=2"), or "mode", "show", "save", "quit"`)

	// Piped input gets a plain scanner; a TTY gets history and editing.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if done := replLine(scanner.Text(), cfg, sc, path, args); done {
				break
			}
		}
		return scanner.Err()
	}

	r := newREPLLiner()
	defer r.close()
	for {
		input, err := r.read("adjust> ")
		if err != nil {
			if err != liner.ErrPromptAborted {
				fmt.Println()
			}
			return nil
		}
		if done := replLine(input, cfg, sc, path, args); done {
			return nil
		}
	}
}

// replLine handles one REPL input line. Returns true to exit.
func replLine(input string, cfg *config.Config, sc *scene.Scene, path string, args Args) bool {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return false
	case input == "quit" || input == "exit":
		return true

	case input == "show":
		printScene(sc)
		return false

	case input == "save":
		if path == "" {
			fmt.Println("no scene file to save to")
			return false
		}
		if err := scene.Save(path, sc); err != nil {
			fmt.Println(err)
		} else {
			fmt.Println("saved", path)
		}
		return false

	case strings.HasPrefix(input, "mode"):
		switchMode(sc, strings.TrimSpace(strings.TrimPrefix(input, "mode")))
		return false
	}

	ambient := AmbientPanel(cfg)
	res := plan.RunCommand(input, ambient.Snapshot(), sc.Selection(), sc)
	printResult(res)
	if args.Save && res.State == plan.StateExecuted && path != "" {
		if err := scene.Save(path, sc); err != nil {
			fmt.Println(err)
		}
	}
	return false
}

// switchMode changes the scene's execution context from the REPL.
func switchMode(sc *scene.Scene, arg string) {
	switch arg {
	case "object":
		sc.Mode = model.ModeObject
	case "mesh":
		sc.Mode = model.ModeEditMesh
	case "curve":
		sc.Mode = model.ModeEditCurve
	case "":
		fmt.Println("mode:", sc.Mode)
		return
	default:
		fmt.Printf("unknown mode %q (object, mesh or curve)\n", arg)
		return
	}
	fmt.Println("mode:", sc.Mode)
}

// printResult reports one invocation's outcome.
func printResult(res plan.Result) {
	for _, n := range res.Notices {
		fmt.Println("  note:", n)
	}
	if res.ExecErr != nil {
		fmt.Println("  apply failed:", res.ExecErr)
		return
	}
	if res.Rejected() {
		fmt.Println("  rejected:", res.Reason)
		return
	}
	fmt.Printf("  applied %d operations\n", len(res.Plan.Ops))
}

// printScene dumps a short object summary.
func printScene(sc *scene.Scene) {
	for _, o := range sc.Objects {
		marker := " "
		if o.Selected {
			marker = "*"
		}
		fmt.Printf("%s %-14s loc(%s, %s, %s) rot(%s, %s, %s) scale(%s, %s, %s)\n",
			marker, o.Name,
			util.FormatFloat(o.Location.X), util.FormatFloat(o.Location.Y), util.FormatFloat(o.Location.Z),
			util.FormatFloat(o.RotationDeg.X), util.FormatFloat(o.RotationDeg.Y), util.FormatFloat(o.RotationDeg.Z),
			util.FormatFloat(o.Scale.X), util.FormatFloat(o.Scale.Y), util.FormatFloat(o.Scale.Z))
	}
}
