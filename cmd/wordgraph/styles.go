package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// lipgloss drops colors automatically when the output is not a terminal,
// so piped output and tests see plain text.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// title prints a styled heading line.
func title(w io.Writer, s string) {
	fmt.Fprintln(w, titleStyle.Render(s))
}

// note prints a dimmed informational line.
func note(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, noteStyle.Render(fmt.Sprintf(format, args...)))
}

// warn prints a highlighted warning line.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(format, args...)))
}
