package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"searchbar/style"
)

// renderFooter shows the selected row, the match count and the active filter on
// the left and the record file on the right.
func renderFooter(current, total int, label, filename string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	if label != "" {
		left = fmt.Sprintf("%s  by %s", left, label)
	}
	right := filename

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.FooterStyle.Render(left + strings.Repeat(" ", padding) + right)
}

// renderError shows err across the footer line.
func renderError(msg string, width int) string {

	msg = "error: " + strings.ReplaceAll(msg, "\n", " ")
	if width > 0 && lipgloss.Width(msg) > width {
		msg = string([]rune(msg)[:max(width-1, 0)]) + "…"
	}

	return style.ErrorStyle.Render(msg)
}
