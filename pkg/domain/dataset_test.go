package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	ds, err := domain.NewDataset(
		[]string{"id", "text"},
		[][]string{{"1", "hello"}, {"2"}, {"3", "bye"}},
	)
	require.NoError(t, err)
	return ds
}

func TestNewDataset_PadsShortRows(t *testing.T) {
	ds := newTestDataset(t)

	assert.Equal(t, 3, ds.NumRows())
	assert.Equal(t, 2, ds.NumColumns())
	assert.Equal(t, [][]string{{"1", "hello"}, {"2", ""}, {"3", "bye"}}, ds.Rows())
}

func TestNewDataset_RejectsWideRows(t *testing.T) {
	_, err := domain.NewDataset([]string{"id", "text"}, [][]string{{"1", "hello"}, {"2", "bye", "extra"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2 has 3 cells")
}

func TestNewDataset_RejectsDuplicateColumns(t *testing.T) {
	_, err := domain.NewDataset([]string{"a", "a"}, nil)
	assert.Error(t, err)
}

func TestDataset_AddColumn(t *testing.T) {
	ds := newTestDataset(t)

	require.NoError(t, ds.AddColumn("label"))
	assert.Equal(t, []string{"id", "text", "label"}, ds.Columns())
	for i := 0; i < ds.NumRows(); i++ {
		v, err := ds.Cell(i, "label")
		require.NoError(t, err)
		assert.Empty(t, v)
	}

	assert.Error(t, ds.AddColumn("text"), "existing column must not be replaced")
}

func TestDataset_RemoveColumn(t *testing.T) {
	ds := newTestDataset(t)
	require.NoError(t, ds.AddColumn("label"))
	require.NoError(t, ds.RemoveColumn("text"))

	assert.Equal(t, []string{"id", "label"}, ds.Columns())
	assert.Equal(t, 1, ds.ColumnIndex("label"))
	assert.Equal(t, -1, ds.ColumnIndex("text"))
	assert.Error(t, ds.RemoveColumn("missing"))
}

func TestDataset_CellBounds(t *testing.T) {
	ds := newTestDataset(t)

	assert.Error(t, ds.SetCell(3, "id", "x"))
	assert.Error(t, ds.SetCell(-1, "id", "x"))
	assert.Error(t, ds.SetCell(0, "nope", "x"))

	require.NoError(t, ds.SetCell(1, "text", "filled"))
	v, err := ds.Cell(1, "text")
	require.NoError(t, err)
	assert.Equal(t, "filled", v)
}

func TestDataset_CloneIsIndependent(t *testing.T) {
	ds := newTestDataset(t)
	snapshot := ds.Clone()

	require.NoError(t, ds.SetCell(0, "text", "changed"))
	require.NoError(t, ds.AddColumn("label"))

	v, err := snapshot.Cell(0, "text")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
	assert.False(t, snapshot.HasColumn("label"))
}

func TestDataset_Record(t *testing.T) {
	ds := newTestDataset(t)

	fields, err := ds.Record(0)
	require.NoError(t, err)
	assert.Equal(t, []domain.Field{{Name: "id", Value: "1"}, {Name: "text", Value: "hello"}}, fields)

	_, err = ds.Record(5)
	assert.Error(t, err)
}

func TestWizardConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.WizardConfig
		wantErr bool
	}{
		{"categorical ok", domain.WizardConfig{SourcePath: "a.csv", LabelColumn: "l", LabelType: domain.LabelCategorical, LabelOptions: []string{"x", "x"}}, false},
		{"text ok", domain.WizardConfig{SourcePath: "a.csv", LabelColumn: "l", LabelType: domain.LabelText}, false},
		{"missing path", domain.WizardConfig{LabelColumn: "l", LabelType: domain.LabelText}, true},
		{"categorical without options", domain.WizardConfig{SourcePath: "a.csv", LabelColumn: "l", LabelType: domain.LabelCategorical}, true},
		{"unknown type", domain.WizardConfig{SourcePath: "a.csv", LabelColumn: "l", LabelType: "score"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestErrors_Unwrap(t *testing.T) {
	loadErr := &domain.FileLoadError{Path: "x.csv", Err: domain.ErrEmptyDataset}
	assert.True(t, errors.Is(loadErr, domain.ErrEmptyDataset))

	var target *domain.FileLoadError
	assert.True(t, errors.As(error(loadErr), &target))

	v := domain.Invalid("record", "invalid_record_num", 7)
	assert.Equal(t, domain.Msg("invalid_record_num", 7), v.Message())
}
