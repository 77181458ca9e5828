package service

import (
	"context"
	"encoding/json"
	"time"

	"sheetregistry/internal/domain"
	"sheetregistry/internal/sheets"
)

// Audit sheet columns: A sequence, B actor name, C actor email, D action,
// E details JSON, F timestamp.
const (
	auditStartCol = "A"
	auditEndCol   = "F"
	auditFirstRow = 2
)

// AuditLog appends immutable entries to the audit sheet. The sequence number
// is the current row count of the reference column + 1; two concurrent
// appends can race and produce duplicate sequence numbers, a limitation of
// the non-transactional backend that is accepted rather than hidden.
type AuditLog struct {
	store domain.RangeStore
	sheet string
	now   func() time.Time
}

var _ domain.AuditSink = (*AuditLog)(nil)

// NewAuditLog creates an AuditLog writing to the given sheet.
func NewAuditLog(store domain.RangeStore, sheet string) *AuditLog {
	return &AuditLog{store: store, sheet: sheet, now: time.Now}
}

// Append writes one entry. Details are serialized to JSON; a nil details
// value is stored as an empty object.
func (l *AuditLog) Append(ctx context.Context, actor domain.Actor, action string, details interface{}) error {
	seq, err := l.nextSequence(ctx)
	if err != nil {
		return err
	}
	if details == nil {
		details = struct{}{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		return domain.ErrValidation("audit details not serializable: %v", err)
	}
	row := []interface{}{
		seq,
		actor.Name,
		actor.Email,
		action,
		string(payload),
		l.now().Format(time.RFC3339),
	}
	return l.store.AppendRow(ctx, sheets.TableRange(l.sheet, auditStartCol, auditEndCol, auditFirstRow), row)
}

// nextSequence counts the populated reference-column cells and adds one.
func (l *AuditLog) nextSequence(ctx context.Context) (int, error) {
	rows, err := l.store.ReadRange(ctx, sheets.ColumnRange(l.sheet, auditStartCol, auditFirstRow))
	if err != nil {
		return 0, err
	}
	return len(rows) + 1, nil
}
