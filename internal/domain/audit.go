package domain

// Audit actions.
const (
	ActionLogin  = "LOGIN"
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Actor identifies who performed an audited action.
type Actor struct {
	Name  string
	Email string
}

// AuditEntry is one immutable row in the audit sheet. The sequence number is
// computed as the current table length + 1 at append time.
type AuditEntry struct {
	Sequence  int
	ActorName string
	ActorMail string
	Action    string
	Details   string // serialized JSON payload
	Timestamp string
}
