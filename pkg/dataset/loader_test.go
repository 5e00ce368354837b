package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/labelwiz/pkg/dataset"
	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "data.csv", "\ufeffid,text,score\n1,hello,0.5\n2,\"a, b\",1\n3,bye\n")

	ds, err := dataset.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, ds.NumRows())
	assert.Equal(t, []string{"id", "text", "score"}, ds.Columns())

	v, err := ds.Cell(1, "text")
	require.NoError(t, err)
	assert.Equal(t, "a, b", v)

	v, err = ds.Cell(2, "score")
	require.NoError(t, err)
	assert.Empty(t, v, "short rows are padded")
}

func TestLoad_CSVRowWiderThanHeader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "wide.csv", "id,text\n1,hello,EXTRA\n2,bye\n")

	_, err := dataset.Load(path)
	require.Error(t, err)

	var loadErr *domain.FileLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "row 1 has 3 cells")
}

func TestLoad_UppercaseExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "DATA.CSV", "a\n1\n")

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.NumRows())
}

func TestLoad_Failures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{"header only", writeFile(t, dir, "header.csv", "id,text\n"), domain.ErrEmptyDataset},
		{"empty file", writeFile(t, dir, "empty.csv", ""), domain.ErrEmptyDataset},
		{"unsupported", writeFile(t, dir, "data.json", "{}"), domain.ErrUnsupportedFormat},
		{"missing", filepath.Join(dir, "missing.csv"), os.ErrNotExist},
		{"broken xlsx", writeFile(t, dir, "broken.xlsx", "not a zip"), nil},
		{"broken xls", writeFile(t, dir, "broken.xls", "not a workbook"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.Load(tt.path)
			require.Error(t, err)

			var loadErr *domain.FileLoadError
			require.True(t, errors.As(err, &loadErr), "expected FileLoadError, got %T", err)
			assert.Equal(t, tt.path, loadErr.Path)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestLoad_HeaderNormalization(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dups.csv", "a,,a,a.1,a\n1,2,3,4,5\n")

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "column_2", "a.1", "a.1.1", "a.2"}, ds.Columns())
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"id", "comment"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, "great"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{2, "awful"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := dataset.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, []string{"id", "comment"}, ds.Columns())
	v, err := ds.Cell(1, "comment")
	require.NoError(t, err)
	assert.Equal(t, "awful", v)
}

func TestLoad_XLSXCellsBeyondHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"id", "comment"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{1, "great", "see ticket"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := dataset.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "comment", "column_3"}, ds.Columns())
	v, err := ds.Cell(0, "column_3")
	require.NoError(t, err)
	assert.Equal(t, "see ticket", v)
}

func TestLoad_XLS(t *testing.T) {
	// Row 4 of the sheet has no records and row 6 has no cells.
	ds, err := dataset.Load(filepath.Join("testdata", "book.xls"))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "text", "score"}, ds.Columns())
	assert.Equal(t, [][]string{
		{"1", "great product", "4.5"},
		{"2", "不错", "3"},
		{"3", "late reply", ""},
	}, ds.Rows())
}

func TestLoad_XLSXHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &[]any{"id", "comment"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := dataset.Load(path)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestReadCSV_Ragged(t *testing.T) {
	grid, err := dataset.ReadCSV(strings.NewReader("a,b\n1\n1,2,3\n"))
	require.NoError(t, err)
	assert.Len(t, grid, 3)
	assert.Len(t, grid[2], 3)
}
