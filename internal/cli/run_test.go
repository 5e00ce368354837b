package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_ConfigPresetsLanguage(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(data, []byte("id,text\n1,a\n2,b\n"), 0o644))
	cfgPath := filepath.Join(dir, "labelwiz.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("language: zh\nreminder_interval: 90s\n"), 0o644))

	in := strings.NewReader(strings.Join([]string{data, "", "", "", "2", ":q"}, "\n") + "\n")
	out := &bytes.Buffer{}
	err := Execute(context.Background(), RunOptions{ConfigPath: cfgPath, Stdin: in, Stdout: out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "第 1 条，共 2 条")
}

func TestExecute_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("language: xx\n"), 0o644))

	err := Execute(context.Background(), RunOptions{ConfigPath: cfgPath, Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}})
	assert.Error(t, err)
}

func TestResolveConfig_FlagsOverride(t *testing.T) {
	cfg, err := resolveConfig(RunOptions{Debug: true, MetricsAddr: ":9999"})
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, ":9999", cfg.MetricsAddr)
}

func TestCombineHooks(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{OnStepEnter: func(context.Context, *domain.StepEvent) { calls = append(calls, "a") }}
	b := domain.LifecycleHooks{
		OnStepEnter: func(context.Context, *domain.StepEvent) { calls = append(calls, "b") },
		OnStepLeave: func(context.Context, *domain.StepEvent) { calls = append(calls, "b-leave") },
	}
	h := combineHooks(a, domain.LifecycleHooks{}, b)
	h.OnStepEnter(context.Background(), &domain.StepEvent{})
	h.OnStepLeave(context.Background(), &domain.StepEvent{})
	assert.Equal(t, []string{"a", "b", "b-leave"}, calls)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(strings.NewReader("")))
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
