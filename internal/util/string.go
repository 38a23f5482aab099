// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the madjust UI.
package util

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateWidth truncates a string to the given display width, appending
// an ellipsis when it was cut. Width is measured in terminal cells, so
// wide runes count as two.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width-1, "") + "…"
}

// PadRight pads a string with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// FormatFloat renders a float the way the panel shows values: fixed
// precision with trailing zeros trimmed, and never "-0".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
