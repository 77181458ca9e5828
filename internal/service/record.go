package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"sheetregistry/internal/domain"
	"sheetregistry/internal/sheets"
)

// Records sheet columns: A id, B full name, C population id, D family id,
// E gender, F date of birth, G place of birth, H religion, I blood type,
// J status, K last updated.
const (
	recStartCol  = "A"
	recEndCol    = "K"
	recStatusCol = "J"
	recFirstRow  = 2
)

// RecordCatalog is the CRUD surface over the records sheet, built entirely
// on RangeStore primitives. Ids equal the row's creation-order position and
// are computed as reference-column count + 1 with no locking; concurrent
// creates can race. Rows are never removed: deletion flips the status column.
type RecordCatalog struct {
	store domain.RangeStore
	audit domain.AuditSink
	sheet string
	now   func() time.Time
}

// NewRecordCatalog creates a RecordCatalog over the given sheet.
func NewRecordCatalog(store domain.RangeStore, audit domain.AuditSink, sheet string) *RecordCatalog {
	return &RecordCatalog{store: store, audit: audit, sheet: sheet, now: time.Now}
}

// List returns every record, active and inactive, in row order.
func (c *RecordCatalog) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := c.store.ReadRange(ctx, sheets.TableRange(c.sheet, recStartCol, recEndCol, recFirstRow))
	if err != nil {
		return nil, err
	}
	records := make([]domain.Record, len(rows))
	for i, row := range rows {
		records[i] = recordFromRow(row)
	}
	return records, nil
}

// Create appends a new record with status forced to active. The new id is
// the current row count + 1.
func (c *RecordCatalog) Create(ctx context.Context, actor domain.Actor, in *domain.RecordInput) (*domain.Record, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	count, err := c.rowCount(ctx)
	if err != nil {
		return nil, err
	}
	rec := recordFromInput(in)
	rec.ID = count + 1
	rec.Status = domain.StatusActive
	rec.LastUpdated = c.now().Format(time.RFC3339)

	if err := c.store.AppendRow(ctx, sheets.TableRange(c.sheet, recStartCol, recEndCol, recFirstRow), rowFromRecord(rec)); err != nil {
		return nil, err
	}
	// The append has landed at this point: an audit failure still fails the
	// request (no audit, no success response).
	if err := c.audit.Append(ctx, actor, domain.ActionCreate, in); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update overwrites the full row for the given id. Status is forced back to
// active and lastUpdated refreshed, so updating a soft-deleted record
// reactivates it.
func (c *RecordCatalog) Update(ctx context.Context, actor domain.Actor, id int, in *domain.RecordInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	rowNum, err := c.findRow(ctx, id)
	if err != nil {
		return err
	}
	rec := recordFromInput(in)
	rec.ID = id
	rec.Status = domain.StatusActive
	rec.LastUpdated = c.now().Format(time.RFC3339)

	spec := sheets.RowRange(c.sheet, recStartCol, recEndCol, rowNum)
	if err := c.store.OverwriteRange(ctx, spec, [][]interface{}{rowFromRecord(rec)}); err != nil {
		return err
	}
	details := struct {
		ID int `json:"id"`
		*domain.RecordInput
	}{id, in}
	return c.audit.Append(ctx, actor, domain.ActionUpdate, details)
}

// SoftDelete marks the record inactive and refreshes lastUpdated, leaving
// every other cell of the row untouched.
func (c *RecordCatalog) SoftDelete(ctx context.Context, actor domain.Actor, id int) error {
	rowNum, err := c.findRow(ctx, id)
	if err != nil {
		return err
	}
	spec := sheets.RowRange(c.sheet, recStatusCol, recEndCol, rowNum)
	rows := [][]interface{}{{domain.StatusInactive, c.now().Format(time.RFC3339)}}
	if err := c.store.OverwriteRange(ctx, spec, rows); err != nil {
		return err
	}
	details := struct {
		ID int `json:"id"`
	}{id}
	return c.audit.Append(ctx, actor, domain.ActionDelete, details)
}

// rowCount scans the reference column and returns the number of populated
// data rows.
func (c *RecordCatalog) rowCount(ctx context.Context) (int, error) {
	rows, err := c.store.ReadRange(ctx, sheets.ColumnRange(c.sheet, recStartCol, recFirstRow))
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// findRow linearly scans the table for the row whose id column equals the
// given id (string comparison, matching what the sheet stores) and returns
// its 1-based sheet row number.
func (c *RecordCatalog) findRow(ctx context.Context, id int) (int, error) {
	rows, err := c.store.ReadRange(ctx, sheets.TableRange(c.sheet, recStartCol, recEndCol, recFirstRow))
	if err != nil {
		return 0, err
	}
	want := strconv.Itoa(id)
	for i, row := range rows {
		if cellString(row, 0) == want {
			return recFirstRow + i, nil
		}
	}
	return 0, domain.ErrNotFound("record %d not found", id)
}

func recordFromInput(in *domain.RecordInput) domain.Record {
	return domain.Record{
		FullName:     in.FullName,
		PopulationID: in.PopulationID,
		FamilyID:     in.FamilyID,
		Gender:       in.Gender,
		DateOfBirth:  in.DateOfBirth,
		PlaceOfBirth: in.PlaceOfBirth,
		Religion:     in.Religion,
		BloodType:    in.BloodType,
	}
}

func recordFromRow(row []interface{}) domain.Record {
	id, _ := strconv.Atoi(cellString(row, 0))
	return domain.Record{
		ID:           id,
		FullName:     cellString(row, 1),
		PopulationID: cellString(row, 2),
		FamilyID:     cellString(row, 3),
		Gender:       cellString(row, 4),
		DateOfBirth:  cellString(row, 5),
		PlaceOfBirth: cellString(row, 6),
		Religion:     cellString(row, 7),
		BloodType:    cellString(row, 8),
		Status:       cellString(row, 9),
		LastUpdated:  cellString(row, 10),
	}
}

func rowFromRecord(rec domain.Record) []interface{} {
	return []interface{}{
		rec.ID,
		rec.FullName,
		rec.PopulationID,
		rec.FamilyID,
		rec.Gender,
		rec.DateOfBirth,
		rec.PlaceOfBirth,
		rec.Religion,
		rec.BloodType,
		rec.Status,
		rec.LastUpdated,
	}
}

// cellString returns the cell at idx as a string, tolerating short rows and
// non-string values (the backend returns numbers for numeric-looking cells).
func cellString(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	return fmt.Sprint(row[idx])
}
