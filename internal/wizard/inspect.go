package wizard

import "github.com/aretw0/labelwiz/pkg/domain"

// Edge is one transition of the setup flow.
type Edge struct {
	To Step
	// Condition names the answer that selects this edge; empty means any.
	Condition string
	Back      bool
}

// StepInfo describes a step for inspection and diagrams.
type StepInfo struct {
	Step  Step
	Input domain.InputType // empty for the annotation step
	Edges []Edge
}

// Inspect returns the static shape of the flow in step order.
func (e *Engine) Inspect() []StepInfo {
	steps := []StepInfo{
		{Step: StepLanguage, Input: domain.InputChoice, Edges: []Edge{{To: StepFileSelect}}},
		{Step: StepFileSelect, Input: domain.InputText, Edges: []Edge{{To: StepFileStats}}},
		{Step: StepFileStats, Input: domain.InputConfirm, Edges: []Edge{
			{To: StepHasLabelColumn, Condition: "yes"},
			{To: StepFileSelect, Condition: "no"},
		}},
		{Step: StepHasLabelColumn, Input: domain.InputConfirm, Edges: []Edge{
			{To: StepSelectColumn, Condition: "yes"},
			{To: StepNameColumn, Condition: "no"},
		}},
		{Step: StepSelectColumn, Input: domain.InputChoice, Edges: []Edge{{To: StepLabelType}}},
		{Step: StepNameColumn, Input: domain.InputText, Edges: []Edge{{To: StepLabelType}}},
		{Step: StepLabelType, Input: domain.InputChoice, Edges: []Edge{
			{To: StepNumOptions, Condition: string(domain.LabelCategorical)},
			{To: StepAnnotation, Condition: string(domain.LabelText)},
		}},
		{Step: StepNumOptions, Input: domain.InputText, Edges: []Edge{{To: StepOptionEntries}}},
		{Step: StepOptionEntries, Input: domain.InputMultiText, Edges: []Edge{{To: StepAnnotation}}},
		{Step: StepAnnotation},
	}
	if e.language != "" {
		steps = steps[1:]
	}

	for i := range steps {
		// LabelType has one back edge per way of reaching it.
		probes := []*State{{Step: steps[i].Step}}
		if steps[i].Step == StepLabelType {
			probes = []*State{{Step: StepLabelType, HasLabel: true}, {Step: StepLabelType}}
		}
		for _, probe := range probes {
			if prev, ok := e.predecessor(probe); ok {
				steps[i].Edges = append(steps[i].Edges, Edge{To: prev, Back: true})
			}
		}
	}
	return steps
}
