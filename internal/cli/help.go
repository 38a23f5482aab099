// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// help.go - markdown help rendered for the terminal.
package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# madjust

Batch transform adjustments from a single command line.

## Usage

    madjust [tui]   [--scene file] [--mode object|mesh|curve]
    madjust repl    [--scene file] [--mode ...] [--save]
    madjust apply   [--scene file] [--mode ...] [--save] "<command>"
    madjust help | version

## Command language

A command is a sequence of whitespace- or comma-separated assignments:

    rx=45 sx=2 space=global
    x=0, z=2
    rot.y=1.57rad target=faces

### Axis keys

| Form | Meaning |
|------|---------|
| x, y, z | location (object mode) or point coordinates (edit modes) |
| loc.x / rot.x / scale.x / origin.x | explicit transform category |
| rx, sx, ox | shorthand for rot.x, scale.x, origin.x |
| s.x, orig.x, o.x | accepted aliases |

Rotation values accept a unit suffix: 45d, 45deg, 1.57r, 1.57rad.
Without a suffix rotation is degrees.

### Directives

| Key | Values |
|-----|--------|
| space | local, global, world |
| target | auto, verts, edges, faces (and v/e/f, vert/edge/face) |

### Curve attributes (edit-curve mode)

    weight=0.5 radius=1.2 tilt=30

## Resolution

When a command mixes transform categories, one wins:
rotation beats scale beats origin beats location. The losers are
reported, never silently merged. Rotation and scale always apply in
local space; a global request is downgraded with a notice.

Axes you never mention are never touched. ` + "`x=0 z=2`" + ` moves X and Z
and leaves Y exactly where it was.

## Keys (TUI)

	: or c    focus the command line     enter    apply
	tab       next category tab          s        toggle space
	e/space   toggle row                 left/right  nudge value
	t         cycle mesh target          m        cycle mode
	w         save scene                 q        quit
`

// HandleHelp renders the help text with glamour, falling back to the
// raw markdown when rendering fails.
func HandleHelp() {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Print(helpMarkdown)
		return
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		fmt.Print(helpMarkdown)
		return
	}
	fmt.Print(out)
}
