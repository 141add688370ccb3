package account

import (
	"context"
	"sync"
)

// MockStore implements LinkStore and CredentialStore for unit tests.
type MockStore struct {
	mu          sync.RWMutex
	links       map[string][]Link
	credentials map[string][]Credential

	// LinksErr and CredentialsErr force the corresponding lookup to fail.
	LinksErr       error
	CredentialsErr error
}

// NewMockStore creates an empty mock account store.
func NewMockStore() *MockStore {
	return &MockStore{
		links:       make(map[string][]Link),
		credentials: make(map[string][]Credential),
	}
}

// AddLink appends a WebID link for the account.
func (m *MockStore) AddLink(accountID, webID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[accountID] = append(m.links[accountID], Link{AccountID: accountID, WebID: webID})
}

// AddCredential appends a credential for the account.
func (m *MockStore) AddCredential(accountID, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credentials[accountID] = append(m.credentials[accountID], Credential{AccountID: accountID, Email: email})
}

func (m *MockStore) FindLinks(_ context.Context, accountID string) ([]Link, error) {
	if m.LinksErr != nil {
		return nil, m.LinksErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.links[accountID], nil
}

func (m *MockStore) FindByAccount(_ context.Context, accountID string) ([]Credential, error) {
	if m.CredentialsErr != nil {
		return nil, m.CredentialsErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.credentials[accountID], nil
}

// Compile-time interface checks
var (
	_ LinkStore       = (*MockStore)(nil)
	_ CredentialStore = (*MockStore)(nil)
)
