// Package webprofile orchestrates profile reads and writes: it resolves the
// account's WebID, validates candidate records, resolves data-URI photos to
// stored resources, and reconciles the profile document through insert/delete
// patches. It is the only profile component with side effects.
package webprofile

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/podworks/profiled/internal/profile"
	"github.com/podworks/profiled/internal/rdf"
	"github.com/podworks/profiled/internal/service/account"
	"github.com/podworks/profiled/internal/service/pod"
	"github.com/podworks/profiled/internal/vocab"
)

// ErrNoWebID indicates the account has no linked WebID; nothing can be read
// or written without one.
var ErrNoWebID = errors.New("no WebID linked to this account")

// ValidationError aggregates every violation found in a candidate record.
// Writes fail atomically before any mutation when validation fails.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid profile: " + strings.Join(e.Messages, "; ")
}

// View is the read-path result.
type View struct {
	WebID   string
	Profile *profile.Record
}

// Service defines the caller-facing profile operations.
type Service interface {
	// GetView returns the account's WebID and current profile record. A
	// missing profile document yields an empty record, not an error.
	GetView(ctx context.Context, accountID string) (*View, error)

	// Handle validates a candidate record and reconciles the profile
	// document with it, creating the document on first write. It returns
	// the record as written (photo resolved, email merged).
	Handle(ctx context.Context, accountID string, candidate json.RawMessage) (*profile.Record, error)
}

// Manager implements Service against a document store and account lookups.
type Manager struct {
	store  pod.DocumentStore
	links  account.LinkStore
	creds  account.CredentialStore
	logger *zap.Logger
}

// New creates a profile manager. The logger is a required dependency, not an
// ambient global.
func New(store pod.DocumentStore, links account.LinkStore, creds account.CredentialStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, links: links, creds: creds, logger: logger}
}

// DocumentURL derives the profile document URL from a WebID by removing the
// fragment. The document is the sole durable home of all profile statements.
func DocumentURL(webID string) string {
	base, _, _ := strings.Cut(webID, "#")
	return base
}

// GetView implements the read path.
func (m *Manager) GetView(ctx context.Context, accountID string) (*View, error) {
	webID, err := m.webIDFor(ctx, accountID)
	if err != nil {
		return nil, err
	}
	email := m.lookupEmail(ctx, accountID)

	rep, err := m.store.Get(ctx, DocumentURL(webID), pod.TurtleContentType)
	if errors.Is(err, pod.ErrNotFound) {
		return &View{WebID: webID, Profile: &profile.Record{Email: email}}, nil
	}
	if err != nil {
		return nil, err
	}

	rec := profile.Extract(rep.Statements, webID)
	if email != "" {
		// The account-supplied address always wins over a stored mailbox.
		rec.Email = email
	}
	return &View{WebID: webID, Profile: rec}, nil
}

// Handle implements the write path.
func (m *Manager) Handle(ctx context.Context, accountID string, candidate json.RawMessage) (*profile.Record, error) {
	webID, err := m.webIDFor(ctx, accountID)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(candidate, &decoded); err != nil {
		return nil, &ValidationError{Messages: []string{"profile must be a JSON object"}}
	}
	if result := profile.Validate(decoded); !result.Valid {
		return nil, &ValidationError{Messages: result.Errors}
	}
	var rec profile.Record
	if err := json.Unmarshal(candidate, &rec); err != nil {
		return nil, &ValidationError{Messages: []string{"profile has malformed entries"}}
	}

	if profile.IsImageDataURI(rec.Photo) {
		path, err := m.storePhoto(ctx, webID, rec.Photo)
		if err != nil {
			return nil, err
		}
		rec.Photo = path
	}

	if email := m.lookupEmail(ctx, accountID); email != "" {
		rec.Email = email
	}

	docURL := DocumentURL(webID)
	rep, err := m.store.Get(ctx, docURL, pod.TurtleContentType)
	switch {
	case errors.Is(err, pod.ErrNotFound):
		if err := m.createDocument(ctx, docURL, webID, &rec); err != nil {
			m.logger.Error("profile document create failed", zap.String("account_id", accountID), zap.Error(err))
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		patch := profile.Diff(webID, &rec, rep.Statements)
		if err := m.store.Modify(ctx, docURL, patch); err != nil {
			m.logger.Error("profile document patch failed", zap.String("account_id", accountID), zap.Error(err))
			return nil, err
		}
	}

	m.logger.Info("profile updated",
		zap.String("account_id", accountID),
		zap.String("web_id", webID))
	return &rec, nil
}

// createDocument seeds a new profile document with a person type assertion
// plus the insertions of a diff against an empty statement set.
func (m *Manager) createDocument(ctx context.Context, docURL, webID string, rec *profile.Record) error {
	patch := profile.Diff(webID, rec, nil)
	statements := append([]rdf.Statement{{
		Subject:   rdf.NamedNode{Value: webID},
		Predicate: rdf.NamedNode{Value: vocab.RDFType},
		Object:    rdf.NamedNode{Value: vocab.FOAFPerson},
	}}, patch.Inserts...)
	return m.store.Set(ctx, docURL, &pod.Representation{
		ContentType: pod.TurtleContentType,
		Statements:  statements,
	})
}

func (m *Manager) webIDFor(ctx context.Context, accountID string) (string, error) {
	links, err := m.links.FindLinks(ctx, accountID)
	if err != nil {
		return "", err
	}
	if len(links) == 0 {
		return "", ErrNoWebID
	}
	return links[0].WebID, nil
}

// lookupEmail is best-effort: failures are logged and treated as "value
// unavailable".
func (m *Manager) lookupEmail(ctx context.Context, accountID string) string {
	credentials, err := m.creds.FindByAccount(ctx, accountID)
	if err != nil {
		m.logger.Warn("credential lookup failed", zap.String("account_id", accountID), zap.Error(err))
		return ""
	}
	for _, c := range credentials {
		if c.Email != "" {
			return c.Email
		}
	}
	return ""
}

// Compile-time interface check
var _ Service = (*Manager)(nil)
