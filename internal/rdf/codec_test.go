package rdf

import (
	"strings"
	"testing"
)

func TestFormatTerm(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{"named-node", NamedNode{Value: "https://alice.example/profile/card#me"}, "<https://alice.example/profile/card#me>"},
		{"plain-literal", Literal{Value: "Alice"}, `"Alice"`},
		{"language-literal", Literal{Value: "Alicia", Language: "es"}, `"Alicia"@es`},
		{"datatype-literal", Literal{Value: "2024-01-15", Datatype: "http://www.w3.org/2001/XMLSchema#date"}, `"2024-01-15"^^<http://www.w3.org/2001/XMLSchema#date>`},
		{"blank-node-strips-prefix-char", BlankNode{ID: "b42af"}, "_:42af"},
		{"single-char-blank-node", BlankNode{ID: "b"}, "_:b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTerm(tc.term); got != tc.want {
				t.Errorf("FormatTerm: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"backslash", `a\b`, `a\\b`},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"newline", "line1\nline2", `line1\nline2`},
		{"carriage-return", "a\rb", `a\rb`},
		{"tab", "a\tb", `a\tb`},
		{"backslash-before-quote", `\"`, `\\\"`},
		{"clean", "nothing to do", "nothing to do"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EscapeLiteral(tc.input); got != tc.want {
				t.Errorf("EscapeLiteral: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatStatement(t *testing.T) {
	s := Statement{
		Subject:   NamedNode{Value: "https://alice.example/profile/card#me"},
		Predicate: NamedNode{Value: "http://xmlns.com/foaf/0.1/name"},
		Object:    Literal{Value: "Alice"},
	}
	want := `<https://alice.example/profile/card#me> <http://xmlns.com/foaf/0.1/name> "Alice"`
	if got := FormatStatement(s); got != want {
		t.Errorf("FormatStatement: got %q, want %q", got, want)
	}
}

func TestStatementEqual(t *testing.T) {
	a := Statement{
		Subject:   NamedNode{Value: "https://alice.example/#me"},
		Predicate: NamedNode{Value: "http://xmlns.com/foaf/0.1/name"},
		Object:    Literal{Value: "Alice"},
	}
	b := a
	if !a.Equal(b) {
		t.Error("identical statements should be equal")
	}
	b.Object = Literal{Value: "Alice", Language: "en"}
	if a.Equal(b) {
		t.Error("statements with different object tags should not be equal")
	}
	b.Object = NamedNode{Value: "Alice"}
	if a.Equal(b) {
		t.Error("literal and named node with the same value should not be equal")
	}
}

func TestNewBlankNodeUnique(t *testing.T) {
	seen := map[string]bool{}
	for range 50 {
		n := NewBlankNode()
		if !strings.HasPrefix(n.ID, "b") {
			t.Fatalf("blank node ID %q missing generator prefix", n.ID)
		}
		if seen[n.ID] {
			t.Fatalf("duplicate blank node ID %q", n.ID)
		}
		seen[n.ID] = true
	}
}
