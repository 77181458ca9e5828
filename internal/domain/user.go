package domain

// DefaultRole is assigned to every user on first login.
const DefaultRole = "user"

// Identity is a verified external identity, extracted from a Google ID token.
type Identity struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	SubjectID string `json:"-"`
}

// User is one row in the users sheet, keyed by email. The stored credential
// and session token are advisory copies; they are never re-validated from
// the sheet.
type User struct {
	DisplayName  string
	Email        string
	Credential   string
	SessionToken string
	Role         string
}
