// Package testutil provides shared fakes for the domain ports, used by
// tests across the codebase.
package testutil

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"sheetregistry/internal/domain"
)

// === RangeStore fake ===

// FakeStore is an in-memory RangeStore holding one grid per sheet.
// Index 0 of a grid is sheet row 1. It understands the A1-notation shapes
// the services produce: "Sheet!A2:K", "Sheet!A2:A", "Sheet!A5:K5",
// "Sheet!J5".
type FakeStore struct {
	mu     sync.Mutex
	grids  map[string][][]interface{}
	Reads  int // number of ReadRange calls, for assertions
	Writes int // number of AppendRow + OverwriteRange calls

	// Error injection — when set, the corresponding call fails.
	ReadErr      error
	AppendErr    error
	OverwriteErr error
}

var _ domain.RangeStore = (*FakeStore)(nil)

// NewFakeStore creates an empty store.
func NewFakeStore() *FakeStore {
	return &FakeStore{grids: map[string][][]interface{}{}}
}

// Seed replaces the full grid of a sheet, header row included.
func (s *FakeStore) Seed(sheet string, grid [][]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grids[sheet] = grid
}

// Grid returns the current grid of a sheet.
func (s *FakeStore) Grid(sheet string) [][]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grids[sheet]
}

// ReadRange returns the populated rows of the range, with trailing empty
// rows trimmed the way the real backend omits them.
func (s *FakeStore) ReadRange(_ context.Context, rangeSpec string) ([][]interface{}, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reads++

	ref, err := parseRange(rangeSpec)
	if err != nil {
		return nil, err
	}
	grid := s.grids[ref.sheet]

	var out [][]interface{}
	for rowNum := ref.startRow; rowNum <= len(grid); rowNum++ {
		if ref.endRow > 0 && rowNum > ref.endRow {
			break
		}
		row := grid[rowNum-1]
		var cells []interface{}
		for col := ref.startCol; col <= ref.endCol; col++ {
			if col < len(row) {
				cells = append(cells, row[col])
			}
		}
		out = append(out, cells)
	}
	// Trim trailing empty rows.
	for len(out) > 0 && isEmptyRow(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	if out == nil {
		out = [][]interface{}{}
	}
	return out, nil
}

// AppendRow appends after the last populated row of the sheet.
func (s *FakeStore) AppendRow(_ context.Context, rangeSpec string, row []interface{}) error {
	if s.AppendErr != nil {
		return s.AppendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes++

	ref, err := parseRange(rangeSpec)
	if err != nil {
		return err
	}
	s.grids[ref.sheet] = append(s.grids[ref.sheet], row)
	return nil
}

// OverwriteRange replaces the addressed cells, growing the grid as needed.
func (s *FakeStore) OverwriteRange(_ context.Context, rangeSpec string, rows [][]interface{}) error {
	if s.OverwriteErr != nil {
		return s.OverwriteErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes++

	ref, err := parseRange(rangeSpec)
	if err != nil {
		return err
	}
	grid := s.grids[ref.sheet]
	for i, replacement := range rows {
		rowIdx := ref.startRow - 1 + i
		for rowIdx >= len(grid) {
			grid = append(grid, []interface{}{})
		}
		row := grid[rowIdx]
		for j, cell := range replacement {
			colIdx := ref.startCol + j
			for colIdx >= len(row) {
				row = append(row, nil)
			}
			row[colIdx] = cell
		}
		grid[rowIdx] = row
	}
	s.grids[ref.sheet] = grid
	return nil
}

type rangeRef struct {
	sheet    string
	startCol int
	startRow int
	endCol   int
	endRow   int // 0 = open-ended
}

func parseRange(spec string) (rangeRef, error) {
	sheet, cells, ok := strings.Cut(spec, "!")
	if !ok {
		return rangeRef{}, fmt.Errorf("range %q has no sheet", spec)
	}
	start, end, hasEnd := strings.Cut(cells, ":")
	startCol, startRow, err := parseCell(start)
	if err != nil {
		return rangeRef{}, fmt.Errorf("range %q: %w", spec, err)
	}
	ref := rangeRef{sheet: sheet, startCol: startCol, startRow: startRow, endCol: startCol, endRow: startRow}
	if hasEnd {
		endCol, endRow, err := parseCell(end)
		if err != nil {
			return rangeRef{}, fmt.Errorf("range %q: %w", spec, err)
		}
		ref.endCol = endCol
		ref.endRow = endRow // 0 when the end ref has no row part
	}
	return ref, nil
}

// parseCell splits "K5" into column index 10 and row 5. A bare column like
// "K" yields row 0.
func parseCell(ref string) (col, row int, err error) {
	if ref == "" {
		return 0, 0, fmt.Errorf("empty cell ref")
	}
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i != 1 {
		return 0, 0, fmt.Errorf("cell ref %q: only single-letter columns supported", ref)
	}
	col = int(ref[0] - 'A')
	if i == len(ref) {
		return col, 0, nil
	}
	row, err = strconv.Atoi(ref[i:])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("cell ref %q: bad row", ref)
	}
	return col, row, nil
}

func isEmptyRow(row []interface{}) bool {
	for _, c := range row {
		if c != nil && c != "" {
			return false
		}
	}
	return true
}

// === AuditSink recorder ===

// RecordedEntry is one captured audit append.
type RecordedEntry struct {
	Actor   domain.Actor
	Action  string
	Details interface{}
}

// RecorderSink implements domain.AuditSink and collects entries for
// assertions.
type RecorderSink struct {
	Entries []RecordedEntry
	Err     error // when set, Append fails
}

// Append implements the port.
func (r *RecorderSink) Append(_ context.Context, actor domain.Actor, action string, details interface{}) error {
	if r.Err != nil {
		return r.Err
	}
	r.Entries = append(r.Entries, RecordedEntry{Actor: actor, Action: action, Details: details})
	return nil
}

// LastEntry returns the last collected entry, or nil if none.
func (r *RecorderSink) LastEntry() *RecordedEntry {
	if len(r.Entries) == 0 {
		return nil
	}
	return &r.Entries[len(r.Entries)-1]
}

// === TokenVerifier stub ===

// StubVerifier implements domain.TokenVerifier with a fixed result.
type StubVerifier struct {
	Identity *domain.Identity
	Err      error
}

// Verify returns the configured identity or error.
func (v *StubVerifier) Verify(context.Context, string) (*domain.Identity, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	return v.Identity, nil
}
