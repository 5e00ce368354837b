package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/labelwiz/pkg/domain"
)

const (
	kib = 1024
	mib = 1024 * 1024
)

// OutputPath returns "<dir of source>/<filename>.csv", or the first free
// "<filename>_N.csv" (N = 1, 2, ...) when that name is taken.
func OutputPath(sourcePath, filename string) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return "", domain.Invalid("filename", "filename_required")
	}
	dir := filepath.Dir(sourcePath)

	candidate := filepath.Join(dir, filename+".csv")
	for n := 1; ; n++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, os.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, filename+"_"+strconv.Itoa(n)+".csv")
	}
}

// WriteCSV writes the header and all rows of ds to w.
func WriteCSV(w io.Writer, ds *domain.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns()); err != nil {
		return err
	}
	if err := cw.WriteAll(ds.Rows()); err != nil {
		return err
	}
	return cw.Error()
}

// Save writes ds next to sourcePath under filename and reports the result.
// Failures are returned as *domain.SaveError, except an empty filename
// which is a *domain.ValidationError.
func Save(ds *domain.Dataset, sourcePath, filename string, now time.Time) (domain.SaveReport, error) {
	if ds == nil {
		return domain.SaveReport{}, &domain.SaveError{Err: domain.ErrNoDataset}
	}
	dest, err := OutputPath(sourcePath, filename)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return domain.SaveReport{}, err
		}
		return domain.SaveReport{}, &domain.SaveError{Err: err}
	}

	size, err := writeNew(dest, ds)
	if err != nil {
		return domain.SaveReport{}, &domain.SaveError{Path: dest, Err: err}
	}

	return domain.SaveReport{
		Path:      dest,
		Size:      size,
		HumanSize: HumanSize(size),
		SavedAt:   now,
	}, nil
}

// writeNew writes to a temporary file in the destination directory, syncs
// it, and renames it into place. An existing destination is never replaced.
func writeNew(dest string, ds *domain.Dataset) (int64, error) {
	dir := filepath.Dir(dest)
	tmpFile, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(dest)+"-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op after a successful rename
	}()

	if err := WriteCSV(tmpFile, ds); err != nil {
		return 0, fmt.Errorf("failed to write csv: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return 0, fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	if _, err := os.Stat(dest); err == nil {
		return 0, fmt.Errorf("%s appeared while saving: %w", dest, os.ErrExist)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return 0, fmt.Errorf("failed to move temp file into place: %w", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to stat saved file: %w", err)
	}
	return info.Size(), nil
}

// HumanSize formats a byte count as "x.xx KB" below one MiB and "x.xx MB" above.
func HumanSize(n int64) string {
	if n < mib {
		return fmt.Sprintf("%.2f KB", float64(n)/kib)
	}
	return fmt.Sprintf("%.2f MB", float64(n)/mib)
}
