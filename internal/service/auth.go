// Package service implements the registry's business operations over the
// RangeStore port: identity login, user directory sync, audit logging, and
// the record catalog.
package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sheetregistry/internal/domain"
)

// Session is the result of a successful login: a signed, time-boxed session
// credential plus the verified identity it asserts.
type Session struct {
	Token    string
	Identity domain.Identity
}

// SessionClaims is the claim set carried by session credentials.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// IdentityGate verifies Google-issued identity assertions and mints session
// credentials. A successful login also syncs the user directory and writes
// one LOGIN audit entry; if either fails, the login fails.
type IdentityGate struct {
	verifier domain.TokenVerifier
	users    *UserDirectory
	audit    domain.AuditSink
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewIdentityGate creates an IdentityGate signing sessions with secret,
// valid for ttl.
func NewIdentityGate(verifier domain.TokenVerifier, users *UserDirectory, audit domain.AuditSink, secret []byte, ttl time.Duration) *IdentityGate {
	return &IdentityGate{
		verifier: verifier,
		users:    users,
		audit:    audit,
		secret:   secret,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login verifies the assertion token, mints a session credential, upserts
// the user row, and appends a LOGIN audit entry.
func (g *IdentityGate) Login(ctx context.Context, assertionToken string) (*Session, error) {
	id, err := g.verifier.Verify(ctx, assertionToken)
	if err != nil {
		return nil, err
	}
	token, err := g.mint(id)
	if err != nil {
		return nil, err
	}
	if err := g.users.Sync(ctx, id, assertionToken, token); err != nil {
		return nil, err
	}
	details := struct {
		Email string `json:"email"`
	}{id.Email}
	if err := g.audit.Append(ctx, domain.Actor{Name: id.Name, Email: id.Email}, domain.ActionLogin, details); err != nil {
		return nil, err
	}
	return &Session{Token: token, Identity: *id}, nil
}

// mint signs an HS256 session credential for the identity.
func (g *IdentityGate) mint(id *domain.Identity) (string, error) {
	issued := g.now()
	claims := SessionClaims{
		Email: id.Email,
		Name:  id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(g.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", domain.ErrAuth("sign session credential: %v", err)
	}
	return token, nil
}
