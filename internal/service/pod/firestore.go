package pod

import (
	"context"
	"encoding/base64"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/podworks/profiled/internal/rdf"
)

const resourcesCollection = "resources"

// firestoreTerm flattens the term algebra into a Firestore map. Kind is one
// of "named", "literal", or "blank".
type firestoreTerm struct {
	Kind     string `firestore:"kind"`
	Value    string `firestore:"value"`
	Language string `firestore:"language,omitempty"`
	Datatype string `firestore:"datatype,omitempty"`
}

type firestoreStatement struct {
	Subject   firestoreTerm `firestore:"subject"`
	Predicate firestoreTerm `firestore:"predicate"`
	Object    firestoreTerm `firestore:"object"`
}

// firestoreResource maps to the stored document structure.
type firestoreResource struct {
	URL         string               `firestore:"url"`
	ContentType string               `firestore:"content_type"`
	Data        []byte               `firestore:"data,omitempty"`
	Statements  []firestoreStatement `firestore:"statements,omitempty"`
}

func toFirestoreTerm(t rdf.Term) firestoreTerm {
	switch v := t.(type) {
	case rdf.NamedNode:
		return firestoreTerm{Kind: "named", Value: v.Value}
	case rdf.Literal:
		return firestoreTerm{Kind: "literal", Value: v.Value, Language: v.Language, Datatype: v.Datatype}
	case rdf.BlankNode:
		return firestoreTerm{Kind: "blank", Value: v.ID}
	default:
		return firestoreTerm{}
	}
}

func fromFirestoreTerm(t firestoreTerm) rdf.Term {
	switch t.Kind {
	case "named":
		return rdf.NamedNode{Value: t.Value}
	case "literal":
		return rdf.Literal{Value: t.Value, Language: t.Language, Datatype: t.Datatype}
	case "blank":
		return rdf.BlankNode{ID: t.Value}
	default:
		return nil
	}
}

func toFirestoreStatements(statements []rdf.Statement) []firestoreStatement {
	out := make([]firestoreStatement, 0, len(statements))
	for _, s := range statements {
		out = append(out, firestoreStatement{
			Subject:   toFirestoreTerm(s.Subject),
			Predicate: toFirestoreTerm(s.Predicate),
			Object:    toFirestoreTerm(s.Object),
		})
	}
	return out
}

func fromFirestoreStatements(statements []firestoreStatement) []rdf.Statement {
	out := make([]rdf.Statement, 0, len(statements))
	for _, s := range statements {
		out = append(out, rdf.Statement{
			Subject:   fromFirestoreTerm(s.Subject),
			Predicate: fromFirestoreTerm(s.Predicate),
			Object:    fromFirestoreTerm(s.Object),
		})
	}
	return out
}

// docID encodes a resource URL into a Firestore-safe document identifier.
// Resource URLs contain slashes, which Firestore reserves for paths.
func docID(url string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(url))
}

// FirestoreStore implements DocumentStore on a Firestore collection, using
// transactions so patches are applied read-modify-write atomically.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed document store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Get retrieves a resource by URL.
func (s *FirestoreStore) Get(ctx context.Context, id, _ string) (*Representation, error) {
	doc, err := s.client.Collection(resourcesCollection).Doc(docID(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fr firestoreResource
	if err := doc.DataTo(&fr); err != nil {
		return nil, err
	}
	return &Representation{
		ContentType: fr.ContentType,
		Data:        fr.Data,
		Statements:  fromFirestoreStatements(fr.Statements),
	}, nil
}

// Set creates or overwrites a resource.
func (s *FirestoreStore) Set(ctx context.Context, id string, rep *Representation) error {
	_, err := s.client.Collection(resourcesCollection).Doc(docID(id)).Set(ctx, firestoreResource{
		URL:         id,
		ContentType: rep.ContentType,
		Data:        rep.Data,
		Statements:  toFirestoreStatements(rep.Statements),
	})
	return err
}

// Modify applies a patch inside a transaction so concurrent patches do not
// clobber each other's statements.
func (s *FirestoreStore) Modify(ctx context.Context, id string, patch *rdf.Patch) error {
	docRef := s.client.Collection(resourcesCollection).Doc(docID(id))

	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fr firestoreResource
		if err := doc.DataTo(&fr); err != nil {
			return err
		}

		patched := patch.Apply(fromFirestoreStatements(fr.Statements))
		fr.Statements = toFirestoreStatements(patched)
		return tx.Set(docRef, fr)
	})
}

// Compile-time interface check
var _ DocumentStore = (*FirestoreStore)(nil)
