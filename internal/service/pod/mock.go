package pod

import (
	"context"
	"sync"

	"github.com/podworks/profiled/internal/rdf"
)

// MockStore implements DocumentStore in memory for unit tests.
type MockStore struct {
	mu        sync.RWMutex
	resources map[string]*Representation

	// GetErr, SetErr, and ModifyErr force the corresponding call to fail.
	GetErr    error
	SetErr    error
	ModifyErr error
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{resources: make(map[string]*Representation)}
}

func (m *MockStore) Get(_ context.Context, id, _ string) (*Representation, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	rep, exists := m.resources[id]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *rep
	return &copied, nil
}

func (m *MockStore) Set(_ context.Context, id string, rep *Representation) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *rep
	m.resources[id] = &copied
	return nil
}

func (m *MockStore) Modify(_ context.Context, id string, patch *rdf.Patch) error {
	if m.ModifyErr != nil {
		return m.ModifyErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	rep, exists := m.resources[id]
	if !exists {
		return ErrNotFound
	}
	rep.Statements = patch.Apply(rep.Statements)
	return nil
}

// Resource returns a stored representation, or nil.
func (m *MockStore) Resource(id string) *Representation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.resources[id]
}

// ResourceIDs returns the identifiers of all stored resources.
func (m *MockStore) ResourceIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.resources))
	for id := range m.resources {
		ids = append(ids, id)
	}
	return ids
}

// Compile-time interface check
var _ DocumentStore = (*MockStore)(nil)
