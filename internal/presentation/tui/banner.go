package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner to w using w's colour profile.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{" _       _          _          _     ", "#818cf8"},
		{"| | __ _| |__   ___| |_      _(_)____", "#a78bfa"},
		{"| |/ _` | '_ \\ / _ \\ \\ \\ /\\ / / |_  /", "#c084fc"},
		{"| | (_| | |_) |  __/ |\\ V  V /| |/ / ", "#e879f9"},
		{"|_|\\__,_|_.__/ \\___|_| \\_/\\_/ |_/___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  "+version).Faint())
	}
	fmt.Fprintln(w)
}
