// Package sheets adapts the Google Sheets values API to the RangeStore port.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"sheetregistry/internal/domain"
)

// Store reads and writes rectangular ranges of one spreadsheet. It holds no
// state of its own; every call is a blocking round trip to the backend with
// last-write-wins semantics and no transactions.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
}

var _ domain.RangeStore = (*Store)(nil)

// NewStore creates a Store for the given spreadsheet. When credentialsFile
// is empty, application default credentials are used.
func NewStore(ctx context.Context, spreadsheetID, credentialsFile string) (*Store, error) {
	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithAuthCredentialsFile(option.ServiceAccount, credentialsFile))
	}
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadRange returns the populated rows of the range in order. Ranges with no
// data yield an empty slice.
func (s *Store) ReadRange(ctx context.Context, rangeSpec string) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rangeSpec).Context(ctx).Do()
	if err != nil {
		return nil, domain.ErrUnavailable(err, "read range %s", rangeSpec)
	}
	if resp.Values == nil {
		return [][]interface{}{}, nil
	}
	return resp.Values, nil
}

// AppendRow appends one row after the last populated row of the table
// containing the range.
func (s *Store) AppendRow(ctx context.Context, rangeSpec string, row []interface{}) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rangeSpec, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return domain.ErrUnavailable(err, "append to %s", rangeSpec)
	}
	return nil
}

// OverwriteRange replaces the cells addressed by the range with the given rows.
func (s *Store) OverwriteRange(ctx context.Context, rangeSpec string, rows [][]interface{}) error {
	vr := &gsheets.ValueRange{Values: rows}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rangeSpec, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return domain.ErrUnavailable(err, "overwrite %s", rangeSpec)
	}
	return nil
}
