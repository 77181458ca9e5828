package service

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"sheetregistry/internal/domain"
)

// GoogleIssuer is the OIDC issuer for Google-issued ID tokens.
const GoogleIssuer = "https://accounts.google.com"

// GoogleVerifier validates Google ID tokens against the issuer's JWKS and
// the configured OAuth client id (audience).
type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

var _ domain.TokenVerifier = (*GoogleVerifier)(nil)

// NewGoogleVerifier creates a verifier via OIDC discovery. clientID is the
// required audience of incoming tokens.
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	provider, err := oidc.NewProvider(ctx, GoogleIssuer)
	if err != nil {
		return nil, fmt.Errorf("oidc provider discovery: %w", err)
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: clientID})
	return &GoogleVerifier{verifier: verifier}, nil
}

// Verify checks the token's signature, expiry, issuer, and audience, and
// extracts the canonical identity. Malformed, expired, or wrong-audience
// tokens fail with an AuthError.
func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*domain.Identity, error) {
	idToken, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, domain.ErrAuth("identity token rejected: %v", err)
	}
	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, domain.ErrAuth("parse identity claims: %v", err)
	}
	if claims.Email == "" {
		return nil, domain.ErrAuth("identity token has no email claim")
	}
	return &domain.Identity{
		Email:     claims.Email,
		Name:      claims.Name,
		SubjectID: idToken.Subject,
	}, nil
}
