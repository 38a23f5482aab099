// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// apply.go - one-shot command execution against a scene file.
package cli

import (
	"fmt"

	"github.com/jeranaias/madjust-tui/internal/config"
	"github.com/jeranaias/madjust-tui/internal/plan"
	"github.com/jeranaias/madjust-tui/internal/scene"
)

// HandleApply runs one command against the scene and exits. With --save
// the modified scene is written back to its file.
func HandleApply(args Args) error {
	if args.Line == "" {
		return fmt.Errorf("apply needs a command, e.g.: madjust apply \"rx=45 sx=2\"")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	sc, path, err := LoadScene(cfg, args)
	if err != nil {
		return err
	}

	ambient := AmbientPanel(cfg)
	res := plan.RunCommand(args.Line, ambient.Snapshot(), sc.Selection(), sc)
	printResult(res)
	if res.ExecErr != nil {
		return res.ExecErr
	}
	if res.Rejected() {
		return fmt.Errorf("rejected: %s", res.Reason)
	}

	if args.Save {
		if path == "" {
			return fmt.Errorf("no scene file to save to, pass --scene")
		}
		if err := scene.Save(path, sc); err != nil {
			return err
		}
		fmt.Println("saved", path)
	}
	return nil
}
