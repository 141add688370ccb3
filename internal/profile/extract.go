package profile

import (
	"strings"

	"github.com/podworks/profiled/internal/rdf"
	"github.com/podworks/profiled/internal/vocab"
)

// Extract reconstructs a profile record from the full statement collection of
// a profile document. Scalar fields take the last value encountered in
// iteration order when a single-valued predicate appears more than once;
// sequence fields preserve iteration order. Malformed or partial statements
// never raise an error, they simply fail to populate a field.
func Extract(statements []rdf.Statement, webID string) *Record {
	subject := rdf.NamedNode{Value: webID}
	rec := &Record{}

	for _, s := range statements {
		if s.Subject != subject {
			continue
		}
		value := s.ObjectValue()
		switch s.PredicateIRI() {
		case vocab.UIBackgroundColor:
			rec.ProfileBackgroundColor = value
		case vocab.UIHighlightColor:
			rec.ProfileHighlightColor = value
		case vocab.FOAFName:
			rec.Name = value
		case vocab.FOAFNick:
			rec.Nickname = value
		case vocab.FOAFPhone:
			rec.Phone = value
		case vocab.FOAFHomepage:
			rec.Homepage = value
		case vocab.FOAFMbox:
			rec.Email = strings.TrimPrefix(value, "mailto:")
		case vocab.VCardHasPhoto:
			rec.Photo = value
		case vocab.SolidPreferredSubjectPronoun:
			rec.PreferredSubjectPronoun = value
		case vocab.SolidPreferredObjectPronoun:
			rec.PreferredObjectPronoun = value
		case vocab.SolidPreferredRelativePronoun:
			rec.PreferredRelativePronoun = value
		case vocab.FOAFKnows:
			if value != "" {
				rec.Knows = append(rec.Knows, value)
			}
		case vocab.SchemaKnowsLanguage:
			if value != "" {
				rec.KnowsLanguage = append(rec.KnowsLanguage, value)
			}
		case vocab.SchemaSkills:
			if value != "" {
				rec.Skills = append(rec.Skills, value)
			}
		}
	}

	bySubject := groupBySubject(statements)
	rec.Accounts = extractAccounts(statements, subject, bySubject)
	rec.Organizations = extractOrganizations(statements, subject, bySubject)
	return rec
}

// groupBySubject indexes the statement collection by subject term so reified
// sub-entities can be resolved without repeated scans.
func groupBySubject(statements []rdf.Statement) map[rdf.Term][]rdf.Statement {
	grouped := make(map[rdf.Term][]rdf.Statement)
	for _, s := range statements {
		grouped[s.Subject] = append(grouped[s.Subject], s)
	}
	return grouped
}

func extractAccounts(statements []rdf.Statement, subject rdf.NamedNode, bySubject map[rdf.Term][]rdf.Statement) []Account {
	var accounts []Account
	for _, s := range statements {
		if s.Subject != subject || s.PredicateIRI() != vocab.FOAFAccount {
			continue
		}
		acct := Account{}
		for _, as := range bySubject[s.Object] {
			value := as.ObjectValue()
			switch as.PredicateIRI() {
			case vocab.RDFType:
				// The default account class is suppressed, so an account
				// written with an explicit foaf:OnlineAccount type reads
				// back with an empty Type. Writes reassert the default.
				if value != vocab.FOAFOnlineAccount {
					acct.Type = value
				}
			case vocab.FOAFAccountName:
				acct.AccountName = value
			case vocab.FOAFAccountServiceHomepage:
				acct.AccountServiceHomepage = value
			case vocab.SchemaImage:
				acct.Icon = value
			case vocab.RDFSLabel:
				acct.Label = value
			}
		}
		if acct != (Account{}) {
			accounts = append(accounts, acct)
		}
	}
	return accounts
}

func extractOrganizations(statements []rdf.Statement, subject rdf.NamedNode, bySubject map[rdf.Term][]rdf.Statement) []Organization {
	var organizations []Organization
	for _, s := range statements {
		// A role node asserts membership by pointing back at the subject.
		if s.PredicateIRI() != vocab.OrgMember || s.Object != subject {
			continue
		}
		org := Organization{}
		for _, rs := range bySubject[s.Subject] {
			value := rs.ObjectValue()
			switch rs.PredicateIRI() {
			case vocab.OrgOrganization:
				switch target := rs.Object.(type) {
				case rdf.NamedNode:
					org.Organization = target.Value
				case rdf.BlankNode:
					org.OrganizationName = anonymousName(bySubject[target])
				}
			case vocab.VCardRole:
				org.Role = value
			case vocab.SchemaStartDate:
				org.StartDate = value
			case vocab.SchemaEndDate:
				org.EndDate = value
			case vocab.SchemaDescription:
				org.Description = value
			case vocab.RDFType:
				if roleType := matchRoleType(value); roleType != "" {
					org.RoleType = roleType
				}
			}
		}
		// Role nodes with no organization reference, organization name, or
		// role text are orphans and are dropped silently.
		if org.Organization != "" || org.OrganizationName != "" || org.Role != "" {
			organizations = append(organizations, org)
		}
	}
	return organizations
}

// anonymousName resolves the name literal of an anonymous organization node.
func anonymousName(statements []rdf.Statement) string {
	for _, s := range statements {
		switch s.PredicateIRI() {
		case vocab.SchemaName, vocab.FOAFName:
			if v := s.ObjectValue(); v != "" {
				return v
			}
		}
	}
	return ""
}

// matchRoleType matches by substring containment so values survive namespace
// variation across clients.
func matchRoleType(value string) string {
	for _, roleType := range []string{vocab.RoleTypeCurrent, vocab.RoleTypePast, vocab.RoleTypeFuture} {
		if strings.Contains(value, roleType) {
			return roleType
		}
	}
	return ""
}
