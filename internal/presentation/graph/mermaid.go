package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/labelwiz/internal/wizard"
	"github.com/aretw0/labelwiz/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the wizard steps.
// It applies semantic styling:
// - First step: ((Circle))
// - Choice or confirm: {Rhombus}
// - Text input: [/Parallelogram/]
// - Annotation: ([Stadium])
// Back edges are dotted.
func GenerateMermaid(steps []wizard.StepInfo) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, step := range steps {
		safeID := sanitizeMermaidID(string(step.Step))

		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case step.Input == domain.InputChoice || step.Input == domain.InputConfirm:
			opener, closer = "{", "}"
		case step.Input == domain.InputText || step.Input == domain.InputMultiText:
			opener, closer = "[/", "/]"
		case step.Input == "":
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, step.Step, closer)

		for _, edge := range step.Edges {
			safeTo := sanitizeMermaidID(string(edge.To))
			arrow := "-->"
			switch {
			case edge.Back:
				arrow = "-. back .->"
			case edge.Condition != "":
				arrow = fmt.Sprintf("-- \"%s\" -->", strings.ReplaceAll(edge.Condition, "\"", "'"))
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, safeTo)
		}
	}
	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
