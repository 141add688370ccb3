package rdf

import "strings"

// solidTermsPrefix is declared at the top of every serialized patch so the
// solid: tokens below parse on their own.
const solidTermsPrefix = "http://www.w3.org/ns/solid/terms#"

// Patch is an atomic delete+insert(+condition) transformation of a statement
// collection. Where is carried for grammar completeness; profile diffs never
// populate it.
type Patch struct {
	Deletes []Statement
	Inserts []Statement
	Where   []Statement
}

// IsEmpty reports whether the patch carries no statements at all.
func (p *Patch) IsEmpty() bool {
	return len(p.Deletes) == 0 && len(p.Inserts) == 0 && len(p.Where) == 0
}

// String serializes the patch in the Solid InsertDeletePatch grammar. The
// empty-subject resource is declared an insert-delete patch, followed by a
// solid:deletes, solid:inserts, and solid:where block in that order. Empty
// blocks are omitted; blocks are separated by semicolons; a patch with no
// statements ends with a bare period right after the declaration.
func (p *Patch) String() string {
	var b strings.Builder
	b.WriteString("@prefix solid: <" + solidTermsPrefix + ">.\n\n")
	b.WriteString("<> a solid:InsertDeletePatch")
	writePatchBlock(&b, "solid:deletes", p.Deletes)
	writePatchBlock(&b, "solid:inserts", p.Inserts)
	writePatchBlock(&b, "solid:where", p.Where)
	b.WriteString(".\n")
	return b.String()
}

func writePatchBlock(b *strings.Builder, name string, statements []Statement) {
	if len(statements) == 0 {
		return
	}
	b.WriteString(";\n  " + name + " {\n")
	for _, s := range statements {
		b.WriteString("    " + FormatStatement(s) + ".\n")
	}
	b.WriteString("  }")
}

// Apply returns the statement collection that results from removing every
// deleted statement and appending every inserted one. The input slice is not
// modified. Conditions are not evaluated here; the store applies patches it
// has already accepted.
func (p *Patch) Apply(statements []Statement) []Statement {
	result := make([]Statement, 0, len(statements)+len(p.Inserts))
	for _, s := range statements {
		if !containsStatement(p.Deletes, s) {
			result = append(result, s)
		}
	}
	return append(result, p.Inserts...)
}

func containsStatement(statements []Statement, s Statement) bool {
	for _, c := range statements {
		if c.Equal(s) {
			return true
		}
	}
	return false
}
