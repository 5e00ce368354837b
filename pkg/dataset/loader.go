package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// Extensions lists the supported input extensions.
var Extensions = []string{".csv", ".xlsx", ".xls"}

// Load reads the file at path into a dataset.
// Every failure is reported as a *domain.FileLoadError.
func Load(path string) (*domain.Dataset, error) {
	grid, err := readGrid(path)
	if err != nil {
		return nil, &domain.FileLoadError{Path: path, Err: err}
	}
	ds, err := fromGrid(grid)
	if err != nil {
		return nil, &domain.FileLoadError{Path: path, Err: err}
	}
	return ds, nil
}

func readGrid(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return readXLSX(path)
	case ".xls":
		return readXLS(path)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadCSV reads every record of r. Rows may have differing widths.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], utf8BOM)
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return widenHeader(dropBlankRows(rows)), nil
}

func readXLS(path string) (grid [][]string, err error) {
	// The legacy BIFF reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			grid, err = nil, fmt.Errorf("failed to read workbook: %v", r)
		}
	}()

	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, domain.ErrEmptyDataset
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, domain.ErrEmptyDataset
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for c := 0; c < row.LastCol(); c++ {
			cells = append(cells, row.Col(c))
		}
		grid = append(grid, cells)
	}
	return widenHeader(dropBlankRows(grid)), nil
}

// sheetRow returns row i, or nil when the sheet stores nothing for it.
// WorkSheet.Row dereferences missing rows, so the panic is contained here.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// widenHeader gives spreadsheet cells right of the last header a generated
// column name instead of dropping them.
func widenHeader(grid [][]string) [][]string {
	if len(grid) == 0 {
		return grid
	}
	width := 0
	for _, row := range grid {
		width = max(width, len(row))
	}
	for len(grid[0]) < width {
		grid[0] = append(grid[0], "")
	}
	return grid
}

// fromGrid treats the first row as the header and the rest as records.
func fromGrid(grid [][]string) (*domain.Dataset, error) {
	if len(grid) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	header := normalizeHeader(grid[0])
	if len(header) == 0 || len(grid) < 2 {
		return nil, domain.ErrEmptyDataset
	}
	return domain.NewDataset(header, grid[1:])
}

// normalizeHeader names blank headers and disambiguates repeated ones
// ("a", "a" -> "a", "a.1").
func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	seen := make(map[string]struct{}, len(raw))
	suffix := make(map[string]int)
	for i, name := range raw {
		name = strings.TrimSpace(name)
		if name == "" {
			name = "column_" + strconv.Itoa(i+1)
		}
		base := name
		for {
			if _, dup := seen[name]; !dup {
				break
			}
			suffix[base]++
			name = base + "." + strconv.Itoa(suffix[base])
		}
		seen[name] = struct{}{}
		header[i] = name
	}
	return header
}

func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
