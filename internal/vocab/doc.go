// Package vocab defines the namespace and predicate IRIs used in profile
// documents. The managed predicate set is the exclusive write surface of the
// profile service: for a given subject, no statement outside this set is ever
// inserted or deleted.
package vocab
