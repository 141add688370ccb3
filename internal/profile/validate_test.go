package profile

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeCandidate(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return v
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		valid     bool
		mentions  string
	}{
		{"empty-object", `{}`, true, ""},
		{"full-valid", `{
			"profileBackgroundColor": "#AA00ff",
			"profileHighlightColor": "00ff00",
			"name": "Alice",
			"phone": "+358401234567",
			"homepage": "https://alice.example/",
			"photo": "https://alice.example/photo.png",
			"knows": ["https://bob.example/profile#me"],
			"knowsLanguage": ["https://id.example/lang/fi"],
			"skills": [],
			"accounts": [{"type": "https://social.example/ns#Account", "accountName": "alice"}],
			"organizations": [{"organization": "https://org.example/", "role": "Engineer"}]
		}`, true, ""},
		{"photo-not-a-url", `{"photo": "not-a-url"}`, false, "photo"},
		{"photo-data-uri", `{"photo": "data:image/png;base64,aGVsbG8="}`, true, ""},
		{"photo-non-image-data-uri", `{"photo": "data:text/plain;base64,aGVsbG8="}`, false, "photo"},
		{"photo-empty-ok", `{"photo": ""}`, true, ""},
		{"background-color-word", `{"profileBackgroundColor": "red"}`, false, "profileBackgroundColor"},
		{"background-color-valid", `{"profileBackgroundColor": "#AA00ff"}`, true, ""},
		{"highlight-color-short", `{"profileHighlightColor": "#fff"}`, false, "profileHighlightColor"},
		{"homepage-relative", `{"homepage": "/card"}`, false, "homepage"},
		{"homepage-empty-ok", `{"homepage": ""}`, true, ""},
		{"phone-number", `{"phone": 12345}`, false, "phone"},
		{"knows-not-array", `{"knows": "https://bob.example/#me"}`, false, "knows"},
		{"knows-bad-entry", `{"knows": ["not-a-uri"]}`, false, "not-a-uri"},
		{"skills-not-array", `{"skills": {"a": 1}}`, false, "skills"},
		{"accounts-not-array", `{"accounts": 3}`, false, "accounts"},
		{"organizations-not-array", `{"organizations": "acme"}`, false, "organizations"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(decodeCandidate(t, tc.candidate))
			if res.Valid != tc.valid {
				t.Fatalf("Valid = %v, want %v (errors: %v)", res.Valid, tc.valid, res.Errors)
			}
			if tc.mentions == "" {
				return
			}
			found := false
			for _, msg := range res.Errors {
				if strings.Contains(msg, tc.mentions) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error mentions %q: %v", tc.mentions, res.Errors)
			}
		})
	}
}

func TestValidateNotAnObject(t *testing.T) {
	for _, candidate := range []any{nil, "profile", 42.0, []any{"a"}} {
		res := Validate(candidate)
		if res.Valid {
			t.Errorf("Validate(%v) should be invalid", candidate)
		}
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	res := Validate(decodeCandidate(t, `{
		"profileBackgroundColor": "red",
		"photo": "not-a-url",
		"knows": ["not-a-uri", "also-bad"]
	}`))
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	if len(res.Errors) != 4 {
		t.Errorf("expected 4 aggregated errors, got %d: %v", len(res.Errors), res.Errors)
	}
}
