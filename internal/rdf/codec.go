package rdf

import (
	"fmt"
	"strings"
)

// literalEscaper rewrites the characters that are not allowed to appear raw
// inside a double-quoted literal. Backslash comes first so that already
// escaped sequences are not escaped twice.
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// EscapeLiteral escapes literal text for embedding in a quoted string.
func EscapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// FormatTerm renders a term in the statement notation: named nodes as
// `<uri>`, literals as a quoted escaped string with an optional `@lang` or
// `^^<datatype>` suffix, and blank nodes as `_:` followed by the node's local
// identifier with its single leading prefix character stripped.
func FormatTerm(t Term) string {
	switch v := t.(type) {
	case NamedNode:
		return "<" + v.Value + ">"
	case Literal:
		s := `"` + EscapeLiteral(v.Value) + `"`
		switch {
		case v.Language != "":
			return s + "@" + v.Language
		case v.Datatype != "":
			return s + "^^<" + v.Datatype + ">"
		default:
			return s
		}
	case BlankNode:
		id := v.ID
		if len(id) > 1 {
			id = id[1:]
		}
		return "_:" + id
	default:
		return ""
	}
}

// FormatStatement renders a statement as `<subject> <predicate> object`
// without a terminating period.
func FormatStatement(s Statement) string {
	return fmt.Sprintf("%s %s %s",
		FormatTerm(s.Subject), FormatTerm(s.Predicate), FormatTerm(s.Object))
}
