// Package pod provides the document store contract for pod resources:
// RDF documents addressed by URL plus binary resources such as photos.
package pod

import (
	"context"
	"errors"

	"github.com/podworks/profiled/internal/rdf"
)

// Store errors.
var ErrNotFound = errors.New("resource not found")

// TurtleContentType is the representation type requested for RDF documents.
const TurtleContentType = "text/turtle"

// Representation is a stored resource. RDF resources carry Statements,
// binary resources carry Data; ContentType describes either.
type Representation struct {
	ContentType string
	Data        []byte
	Statements  []rdf.Statement
}

// DocumentStore reads, writes, and patches pod resources. Identifiers are
// absolute resource URLs; for a profile that is the WebID with the fragment
// removed. Concurrency control is the store's concern: the profile core does
// no locking and the last write wins.
type DocumentStore interface {
	// Get retrieves a resource, preferring the given content type.
	// Returns ErrNotFound when the resource does not exist.
	Get(ctx context.Context, id, contentType string) (*Representation, error)

	// Set creates or overwrites a resource.
	Set(ctx context.Context, id string, rep *Representation) error

	// Modify applies a patch to an existing RDF resource atomically.
	Modify(ctx context.Context, id string, patch *rdf.Patch) error
}
