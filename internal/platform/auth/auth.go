// Package auth verifies Firebase ID tokens and exposes the authenticated
// account to request handlers. The verified UID is the account identifier
// used by the profile service.
package auth

import (
	"context"
	"errors"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// Authentication failure categories.
var (
	// ErrNoToken indicates a missing Authorization header.
	ErrNoToken = errors.New("missing authorization header")

	// ErrInvalidToken indicates a malformed or badly signed token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired indicates an expired token.
	ErrTokenExpired = errors.New("token expired")

	// ErrCertificateFetch indicates a network error fetching public keys;
	// callers should answer 503 rather than 401.
	ErrCertificateFetch = errors.New("failed to fetch certificates")
)

// Account is the authenticated caller.
type Account struct {
	ID    string
	Email string
}

// Verifier validates tokens and returns the account behind them.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Account, error)
}

// FirebaseVerifier implements Verifier with the Firebase Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a verifier around the given auth client.
func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// Verify validates a Firebase ID token.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Account, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		switch {
		case fbauth.IsCertificateFetchFailed(err):
			return nil, ErrCertificateFetch
		case fbauth.IsIDTokenExpired(err):
			return nil, ErrTokenExpired
		default:
			return nil, ErrInvalidToken
		}
	}

	email, _ := token.Claims["email"].(string)
	return &Account{ID: token.UID, Email: email}, nil
}

// ExtractBearerToken pulls the token out of an Authorization header.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrNoToken
	}
	return parts[1], nil
}

// accountContextKey is the context key for the authenticated account.
type accountContextKey struct{}

// AccountFromContext returns the authenticated account, or nil.
func AccountFromContext(ctx context.Context) *Account {
	account, _ := ctx.Value(accountContextKey{}).(*Account)
	return account
}

// Compile-time interface check
var _ Verifier = (*FirebaseVerifier)(nil)
