package service

import (
	"context"

	"sheetregistry/internal/domain"
	"sheetregistry/internal/sheets"
)

// Users sheet columns: A display name, B email, C credential blob,
// D session token, E role.
const (
	userStartCol = "A"
	userEndCol   = "E"
	userFirstRow = 2

	userEmailIdx = 1
	userRoleIdx  = 4
)

// UserDirectory synchronizes authenticated identities against the users
// sheet: insert at the table end if the email is unknown, otherwise update
// the existing row in place. Lookup is a linear scan by email equality,
// acceptable while the table is bounded by the organization's user count.
type UserDirectory struct {
	store domain.RangeStore
	sheet string
}

// NewUserDirectory creates a UserDirectory over the given sheet.
func NewUserDirectory(store domain.RangeStore, sheet string) *UserDirectory {
	return &UserDirectory{store: store, sheet: sheet}
}

// Sync upserts the user row for the identity, storing the raw assertion and
// the freshly minted session credential as advisory copies.
func (d *UserDirectory) Sync(ctx context.Context, id *domain.Identity, rawAssertion, sessionToken string) error {
	rows, err := d.store.ReadRange(ctx, sheets.TableRange(d.sheet, userStartCol, userEndCol, userFirstRow))
	if err != nil {
		return err
	}
	for i, row := range rows {
		if cellString(row, userEmailIdx) != id.Email {
			continue
		}
		role := cellString(row, userRoleIdx)
		if role == "" {
			role = domain.DefaultRole
		}
		rowNum := userFirstRow + i
		replacement := []interface{}{id.Name, id.Email, rawAssertion, sessionToken, role}
		return d.store.OverwriteRange(ctx,
			sheets.RowRange(d.sheet, userStartCol, userEndCol, rowNum),
			[][]interface{}{replacement})
	}
	row := []interface{}{id.Name, id.Email, rawAssertion, sessionToken, domain.DefaultRole}
	return d.store.AppendRow(ctx, sheets.TableRange(d.sheet, userStartCol, userEndCol, userFirstRow), row)
}
