package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/labelwiz/internal/annotate"
	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecordMarkdown(t *testing.T) {
	v := annotate.RecordView{
		Index:       1,
		Total:       3,
		Fields:      []domain.Field{{Name: "id", Value: "7"}, {Name: "body", Value: "a|b\nc"}},
		LabelColumn: "label",
		LabelType:   domain.LabelCategorical,
		Options:     []string{"pos", "neg"},
	}
	md := RecordMarkdown(v, locale.MustNew("en"))

	assert.Contains(t, md, "Record 2 of 3")
	assert.Contains(t, md, "| **body** | a\\|b c |")
	assert.Contains(t, md, "**label**: `-`")
	assert.Contains(t, md, "1. pos  2. neg")
}

func TestRecordMarkdown_FreeText(t *testing.T) {
	v := annotate.RecordView{Total: 1, LabelColumn: "note", Label: "done", LabelType: domain.LabelText}
	md := RecordMarkdown(v, locale.MustNew("zh"))
	assert.Contains(t, md, "`done`")
	assert.NotContains(t, md, "1.")
}

func TestRecordMarkdown_LabelWithBackticks(t *testing.T) {
	v := annotate.RecordView{Total: 1, LabelColumn: "note", Label: "use `go vet` here", LabelType: domain.LabelText}
	md := RecordMarkdown(v, locale.MustNew("en"))
	assert.Contains(t, md, "**note**: ``use `go vet` here``")
}

func TestCodeSpan(t *testing.T) {
	tests := map[string]string{
		"plain": "`plain`",
		"a`b":   "``a`b``",
		"x``y":  "```x``y```",
		"`edge": "`` `edge ``",
		"tail`": "`` tail` ``",
		"":      "``",
	}
	for in, want := range tests {
		assert.Equal(t, want, codeSpan(in), "input %q", in)
	}
}

func TestStyler_PlainForBuffers(t *testing.T) {
	s := NewStyler(&bytes.Buffer{})
	assert.Equal(t, "careful", s.Notice(domain.LevelWarning, "careful"))
	assert.Equal(t, "hint", s.Faint("hint"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "v1.2.3")
	assert.True(t, strings.Contains(buf.String(), "v1.2.3"))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPlain(t *testing.T) {
	out, err := Plain("# x")
	assert.NoError(t, err)
	assert.Equal(t, "# x", out)
}
