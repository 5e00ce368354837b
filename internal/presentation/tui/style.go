package tui

import (
	"io"

	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/muesli/termenv"
)

var levelColors = map[domain.Level]string{
	domain.LevelInfo:    "#60a5fa",
	domain.LevelWarning: "#fbbf24",
	domain.LevelError:   "#f87171",
	domain.LevelSuccess: "#34d399",
}

// Styler colours notices for one output. Non-terminal writers get plain text.
type Styler struct {
	out *termenv.Output
}

// NewStyler detects the colour profile of w.
func NewStyler(w io.Writer) *Styler {
	return &Styler{out: termenv.NewOutput(w)}
}

// Notice styles text according to level.
func (s *Styler) Notice(level domain.Level, text string) string {
	color, ok := levelColors[level]
	if !ok {
		return text
	}
	styled := s.out.String(text).Foreground(s.out.Color(color))
	if level == domain.LevelError {
		styled = styled.Bold()
	}
	return styled.String()
}

// Faint dims text, used for hints.
func (s *Styler) Faint(text string) string {
	return s.out.String(text).Faint().String()
}
