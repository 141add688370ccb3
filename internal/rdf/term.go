// Package rdf provides the statement term algebra for profile documents,
// the textual triple codec, and the Solid InsertDeletePatch serializer.
package rdf

import (
	"strings"

	"github.com/google/uuid"
)

// Term is a subject, predicate, or object of a statement. The three
// implementations are NamedNode, Literal, and BlankNode. All of them are
// comparable value types, so two terms are equal exactly when they have the
// same kind and the same field values.
type Term interface {
	isTerm()
}

// NamedNode is a term identified by an absolute URI.
type NamedNode struct {
	Value string
}

// Literal is a text-valued term, optionally tagged with a language or a
// datatype URI. A literal carries at most one of the two tags.
type Literal struct {
	Value    string
	Language string
	Datatype string
}

// BlankNode is an anonymous term with only document-scoped identity. The ID
// starts with a single generator-prefix character that is stripped when the
// node is serialized as a `_:` label.
type BlankNode struct {
	ID string
}

func (NamedNode) isTerm() {}
func (Literal) isTerm()   {}
func (BlankNode) isTerm() {}

// NewBlankNode returns a blank node with a fresh unique identifier.
func NewBlankNode() BlankNode {
	return BlankNode{ID: "b" + strings.ReplaceAll(uuid.NewString(), "-", "")}
}

// Statement is a single subject-predicate-object assertion.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Equal reports whether two statements have pairwise equal terms.
func (s Statement) Equal(o Statement) bool {
	return s.Subject == o.Subject && s.Predicate == o.Predicate && s.Object == o.Object
}

// PredicateIRI returns the predicate URI of the statement, or "" when the
// predicate is not a named node.
func (s Statement) PredicateIRI() string {
	if n, ok := s.Predicate.(NamedNode); ok {
		return n.Value
	}
	return ""
}

// ObjectValue returns the textual value of the statement's object: the URI of
// a named node or the text of a literal. Blank-node objects have no inherent
// value and yield "".
func (s Statement) ObjectValue() string {
	switch o := s.Object.(type) {
	case NamedNode:
		return o.Value
	case Literal:
		return o.Value
	default:
		return ""
	}
}
