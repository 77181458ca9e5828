package domain

import "context"

// RangeStore is the thin gateway to the tabular backend. Ranges use
// "Sheet!A1:K" notation. There is no atomicity across calls: a
// read-then-write sequence is subject to lost updates under concurrent
// writers, a limitation of the backing store that callers accept.
type RangeStore interface {
	// ReadRange returns the populated rows of the range in order. An empty
	// range yields an empty slice, not an error.
	ReadRange(ctx context.Context, rangeSpec string) ([][]interface{}, error)

	// AppendRow appends one row after the last populated row of the table
	// containing the range.
	AppendRow(ctx context.Context, rangeSpec string, row []interface{}) error

	// OverwriteRange replaces the cells addressed by the range. Callers must
	// supply full replacement rows; there is no partial-row merge.
	OverwriteRange(ctx context.Context, rangeSpec string, rows [][]interface{}) error
}

// TokenVerifier verifies an externally issued identity assertion and
// extracts the canonical identity.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// AuditSink appends one immutable audit entry per significant action.
// Append failures propagate: a mutation whose audit write fails is reported
// as a failed request even though the mutation itself may have landed.
type AuditSink interface {
	Append(ctx context.Context, actor Actor, action string, details interface{}) error
}
