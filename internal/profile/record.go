// Package profile converts between structured profile records and the RDF
// statements of a WebID profile document: validation of candidate records,
// extraction of a record from an unordered statement collection, and diffing
// a target record against existing statements into an insert/delete patch.
package profile

// Record is the caller-facing representation of a profile document. All
// fields are optional; zero values mean "not present".
type Record struct {
	ProfileBackgroundColor string `json:"profileBackgroundColor,omitempty"`
	ProfileHighlightColor  string `json:"profileHighlightColor,omitempty"`

	Name     string `json:"name,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Homepage string `json:"homepage,omitempty"`

	// Email is supplied by the account system and wins over any mailbox
	// statement found in the document.
	Email string `json:"email,omitempty"`

	PreferredSubjectPronoun  string `json:"preferredSubjectPronoun,omitempty"`
	PreferredObjectPronoun   string `json:"preferredObjectPronoun,omitempty"`
	PreferredRelativePronoun string `json:"preferredRelativePronoun,omitempty"`

	// Photo is an absolute URL, or on input a base64 data URI with an image
	// subtype that the orchestrator resolves to a stored resource.
	Photo string `json:"photo,omitempty"`

	Knows         []string `json:"knows,omitempty"`
	KnowsLanguage []string `json:"knowsLanguage,omitempty"`
	Skills        []string `json:"skills,omitempty"`

	Accounts      []Account      `json:"accounts,omitempty"`
	Organizations []Organization `json:"organizations,omitempty"`
}

// Account describes a social account. Each account becomes an anonymous node
// linked from the subject and is replaced wholesale on every write.
type Account struct {
	Type                   string `json:"type,omitempty"`
	AccountName            string `json:"accountName,omitempty"`
	AccountServiceHomepage string `json:"accountServiceHomepage,omitempty"`
	Icon                   string `json:"icon,omitempty"`
	Label                  string `json:"label,omitempty"`
}

// Organization describes an organization membership. Each entry becomes a
// reified role node carrying the membership attributes; role nodes are
// replaced wholesale on every write that includes organizations.
type Organization struct {
	// Organization is a URI reference to a named organization, or a plain
	// name that becomes an anonymous organization node.
	Organization     string `json:"organization,omitempty"`
	OrganizationName string `json:"organizationName,omitempty"`
	Role             string `json:"role,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	Description      string `json:"description,omitempty"`
	// RoleType is one of CurrentRole, PastRole, or FutureRole.
	RoleType string `json:"roleType,omitempty"`
}
