package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Canova ASCII art banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   ____                             ", "#2dd4bf"},
		{"  / ___|__ _ _ __   _____   ____ _  ", "#22d3ee"},
		{" | |   / _` | '_ \\ / _ \\ \\ / / _` | ", "#38bdf8"},
		{" | |__| (_| | | | | (_) \\ V / (_| | ", "#60a5fa"},
		{"  \\____\\__,_|_| |_|\\___/ \\_/ \\__,_| ", "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
