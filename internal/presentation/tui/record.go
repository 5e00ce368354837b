package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/labelwiz/internal/annotate"
	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// RecordMarkdown lays out one record as a field table followed by the
// current label and, for categorical labels, the numbered options.
func RecordMarkdown(v annotate.RecordView, cat *locale.Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", cat.Sprintf("record_num", v.Position(), v.Total))
	b.WriteString("| | |\n|---|---|\n")
	for _, f := range v.Fields {
		fmt.Fprintf(&b, "| **%s** | %s |\n", escapeCell(f.Name), escapeCell(f.Value))
	}
	b.WriteString("\n")

	label := v.Label
	if label == "" {
		label = "-"
	}
	fmt.Fprintf(&b, "**%s**: %s\n", escapeCell(v.LabelColumn), codeSpan(label))

	if v.LabelType == domain.LabelCategorical && len(v.Options) > 0 {
		numbered := make([]string, len(v.Options))
		for i, opt := range v.Options {
			numbered[i] = fmt.Sprintf("%d. %s", i+1, opt)
		}
		fmt.Fprintf(&b, "\n%s\n", cat.Sprintf("label_options", strings.Join(numbered, "  ")))
	}
	return b.String()
}

// codeSpan wraps s in a backtick fence longer than any backtick run inside it.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
