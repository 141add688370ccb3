// Package account provides the lookup contracts the profile orchestrator
// depends on: WebID links and credential records for an account.
package account

import "context"

// Link connects an account to a WebID. An account may own several links; the
// first one in store order is the primary identity.
type Link struct {
	AccountID string
	WebID     string
}

// Credential is the stored login record of an account. Only the email
// address is of interest to the profile service.
type Credential struct {
	AccountID string
	Email     string
}

// LinkStore lists the WebID links of an account in creation order.
type LinkStore interface {
	FindLinks(ctx context.Context, accountID string) ([]Link, error)
}

// CredentialStore lists the credentials of an account in creation order.
// Lookup failures are treated as "value unavailable" by callers, never as a
// request failure.
type CredentialStore interface {
	FindByAccount(ctx context.Context, accountID string) ([]Credential, error)
}
