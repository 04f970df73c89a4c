// Package merge concatenates the per-region CSV files into one dataset file,
// tagging every row with the region taken from its source file name.
package merge

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/ytget/countries/internal/model"
	"github.com/ytget/countries/internal/platform"
)

// InputExtension selects the files that take part in a merge
const InputExtension = ".csv"

// ErrNoInputFiles is returned when the input directory holds no CSV file
// other than the output itself. The output file is not touched.
var ErrNoInputFiles = errors.New("no region files to merge")

// FileResult describes one merged input file
type FileResult struct {
	Name      string // file name inside the input directory
	Continent string // value written to the continent column
	Rows      int    // data rows appended
	Skipped   bool   // true when the file had no header row
}

// Result describes a finished merge
type Result struct {
	OutputPath string
	Header     []string
	Files      []FileResult
	TotalRows  int
}

// Service merges region files
type Service struct {
	log logr.Logger
}

// NewService creates a new merge service
func NewService(log logr.Logger) *Service {
	return &Service{log: log}
}

// Merge enumerates the CSV files of inputDir, excluding the output file itself,
// and writes their rows to outputPath with an extra continent column. The
// header comes from the first file. Files are taken in directory listing order.
func (s *Service) Merge(inputDir, outputPath string) (*Result, error) {
	names, err := platform.ListFilesWithExt(inputDir, InputExtension, filepath.Base(outputPath), filepath.Base(outputPath)+platform.TempSuffix)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", inputDir, err)
	}
	if len(names) == 0 {
		s.log.Info("nothing to merge", "dir", inputDir)
		return nil, fmt.Errorf("%w in %s", ErrNoInputFiles, inputDir)
	}

	s.log.Info("merging region files", "files", len(names), "output", outputPath)

	result := &Result{OutputPath: outputPath}
	err = platform.WriteFileAtomic(outputPath, func(f *os.File) error {
		w := csv.NewWriter(f)

		header, err := firstHeader(inputDir, names)
		if err != nil {
			return err
		}
		result.Header = append(header, model.ColContinent)
		if err := w.Write(result.Header); err != nil {
			return err
		}

		for _, name := range names {
			fr, err := s.appendFile(w, inputDir, name)
			if err != nil {
				return err
			}
			result.Files = append(result.Files, fr)
			result.TotalRows += fr.Rows
		}

		w.Flush()
		return w.Error()
	})
	if err != nil {
		return nil, fmt.Errorf("merge into %s: %w", outputPath, err)
	}

	s.log.Info("merge finished", "output", outputPath, "rows", result.TotalRows)
	return result, nil
}

// appendFile copies the data rows of one file, adding the continent value
func (s *Service) appendFile(w *csv.Writer, dir, name string) (FileResult, error) {
	fr := FileResult{Name: name, Continent: platform.BaseNameWithoutExt(name)}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return fr, err
	}
	defer f.Close()

	r := newReader(f)
	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			s.log.Info("skipping file without header", "file", name)
			fr.Skipped = true
			return fr, nil
		}
		return fr, fmt.Errorf("read header of %s: %w", name, err)
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fr, fmt.Errorf("read %s: %w", name, err)
		}
		if err := w.Write(append(row, fr.Continent)); err != nil {
			return fr, err
		}
		fr.Rows++
	}

	s.log.V(1).Info("file merged", "file", name, "continent", fr.Continent, "rows", fr.Rows)
	return fr, nil
}

// firstHeader returns the header of the first file that has one
func firstHeader(dir string, names []string) ([]string, error) {
	for _, name := range names {
		header, err := readHeader(filepath.Join(dir, name))
		if errors.Is(err, io.EOF) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read header of %s: %w", name, err)
		}
		return header, nil
	}
	return nil, fmt.Errorf("%w: every file is empty", ErrNoInputFiles)
}

// readHeader returns the first record of the file at path
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return newReader(f).Read()
}

// newReader returns a CSV reader that tolerates rows of differing width
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr
}
