// Package mazefile reads and writes the plain-text maze format:
//
//	5,6
//	1,1,1,1,1,1
//	1,_,1,1,_,1
//	...
//	# comment lines and blank lines are ignored
//
// The first record is "rows,cols"; exactly rows records of cols markers follow.
// Markers are validated by maze.New, so a file either loads completely or
// fails with an error matching maze.ErrInvalidGrid.
package mazefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfinder/maze"
)

// Sentinel errors; each is reported together with maze.ErrInvalidGrid.
var (
	// ErrBadHeader indicates a missing or malformed "rows,cols" line.
	ErrBadHeader = errors.New("mazefile: header must be \"rows,cols\" with positive integers")
	// ErrRowCount indicates fewer or more rows than the header declares.
	ErrRowCount = errors.New("mazefile: row count does not match header")
	// ErrColumnCount indicates a row whose length differs from the header.
	ErrColumnCount = errors.New("mazefile: column count does not match header")
	// ErrSyntax indicates the text could not be split into records.
	ErrSyntax = errors.New("mazefile: malformed record")
)

// TemplateName is the file InitDir writes into a fresh maze directory.
const TemplateName = "maze-template.txt"

// Template is a small example maze documenting the format.
const Template = `5,6
1,1,1,1,1,1
1,_,1,1,_,1
1,_,1,1,_,1
1,_,1,1,_,1
_,1,1,1,1,_

# This maze has 5 rows and 6 columns.
# Open spaces can be any numeric value >= 0 (cost)
# Underscores '_' denote walls
`

func fail(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", maze.ErrInvalidGrid, kind, fmt.Sprintf(format, args...))
}

// Parse reads one maze from r.
func Parse(r io.Reader) (*maze.Maze, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fail(ErrBadHeader, "empty input")
	}
	if err != nil {
		return nil, fail(ErrSyntax, "%v", err)
	}
	rows, cols, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	cells := make([][]string, 0, rows)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fail(ErrSyntax, "%v", err)
		}
		if len(cells) == rows {
			line, _ := cr.FieldPos(0)
			return nil, fail(ErrRowCount, "unexpected data on line %d, header declares %d rows", line, rows)
		}
		if len(rec) != cols {
			line, _ := cr.FieldPos(0)
			return nil, fail(ErrColumnCount, "line %d has %d cells, header declares %d", line, len(rec), cols)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		cells = append(cells, rec)
	}
	if len(cells) != rows {
		return nil, fail(ErrRowCount, "got %d rows, header declares %d", len(cells), rows)
	}

	return maze.New(cells)
}

// parseHeader validates the "rows,cols" record.
func parseHeader(rec []string) (rows, cols int, err error) {
	if len(rec) != 2 {
		return 0, 0, fail(ErrBadHeader, "got %d fields", len(rec))
	}
	rows, err1 := strconv.Atoi(strings.TrimSpace(rec[0]))
	cols, err2 := strconv.Atoi(strings.TrimSpace(rec[1]))
	if err1 != nil || err2 != nil || rows < 1 || cols < 1 {
		return 0, 0, fail(ErrBadHeader, "got %q", strings.Join(rec, ","))
	}
	return rows, cols, nil
}

// Load parses the maze stored at path.
func Load(path string) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Write serializes m in the format Parse reads.
func Write(w io.Writer, m *maze.Maze) error {
	if _, err := fmt.Fprintf(w, "%d,%d\n", m.Height(), m.Width()); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(m.Cells()); err != nil {
		return err
	}
	return cw.Error()
}

// Save writes m to path, replacing any existing file.
func Save(path string, m *maze.Maze) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// InitDir creates dir with a template maze inside when dir does not exist yet.
// An existing directory is left untouched.
func InitDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, TemplateName), []byte(Template), 0o644)
}

// List returns the names of the regular files in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
