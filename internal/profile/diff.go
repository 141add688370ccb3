package profile

import (
	"strings"

	"github.com/podworks/profiled/internal/rdf"
	"github.com/podworks/profiled/internal/vocab"
)

// Diff computes the patch that brings the subject's managed statements to the
// target record. The strategy is replace-not-merge: every existing statement
// on a managed predicate is deleted regardless of whether the target value
// changed, and insertions are added only for non-empty target values.
// Statements outside the managed predicate set are never touched.
func Diff(webID string, target *Record, existing []rdf.Statement) *rdf.Patch {
	d := &differ{
		subject:  rdf.NamedNode{Value: webID},
		existing: existing,
		patch:    &rdf.Patch{},
	}

	d.deleteManaged()

	d.literal(vocab.UIBackgroundColor, target.ProfileBackgroundColor)
	d.literal(vocab.UIHighlightColor, target.ProfileHighlightColor)
	d.literal(vocab.FOAFName, target.Name)
	d.literal(vocab.FOAFNick, target.Nickname)
	d.literal(vocab.FOAFPhone, target.Phone)
	d.literal(vocab.SolidPreferredSubjectPronoun, target.PreferredSubjectPronoun)
	d.literal(vocab.SolidPreferredObjectPronoun, target.PreferredObjectPronoun)
	d.literal(vocab.SolidPreferredRelativePronoun, target.PreferredRelativePronoun)
	d.reference(vocab.VCardHasPhoto, target.Photo)
	d.reference(vocab.FOAFHomepage, target.Homepage)
	d.email(target.Email)
	d.references(vocab.FOAFKnows, target.Knows)
	d.references(vocab.SchemaKnowsLanguage, target.KnowsLanguage)
	d.references(vocab.SchemaSkills, target.Skills)
	d.accounts(target.Accounts)
	d.organizations(target.Organizations)

	return d.patch
}

type differ struct {
	subject  rdf.NamedNode
	existing []rdf.Statement
	patch    *rdf.Patch
}

// deleteManaged collects every existing statement on a managed predicate
// into the deletion set. Most managed statements hang off the subject;
// org:member is the reverse membership link from a role node back to the
// subject, so it matches on the object instead. Deleting the back-link
// detaches the prior role node; its remaining attribute statements are left
// behind unreferenced.
func (d *differ) deleteManaged() {
	managed := make(map[string]bool)
	for _, p := range vocab.Managed() {
		managed[p] = true
	}
	for _, s := range d.existing {
		predicate := s.PredicateIRI()
		if !managed[predicate] {
			continue
		}
		if predicate == vocab.OrgMember {
			if s.Object == d.subject {
				d.patch.Deletes = append(d.patch.Deletes, s)
			}
			continue
		}
		if s.Subject == d.subject {
			d.patch.Deletes = append(d.patch.Deletes, s)
		}
	}
}

func (d *differ) insert(subject rdf.Term, predicate string, object rdf.Term) {
	d.patch.Inserts = append(d.patch.Inserts, rdf.Statement{
		Subject:   subject,
		Predicate: rdf.NamedNode{Value: predicate},
		Object:    object,
	})
}

func (d *differ) literal(predicate, value string) {
	if value != "" {
		d.insert(d.subject, predicate, rdf.Literal{Value: value})
	}
}

func (d *differ) reference(predicate, value string) {
	if value != "" {
		d.insert(d.subject, predicate, rdf.NamedNode{Value: value})
	}
}

func (d *differ) references(predicate string, values []string) {
	for _, v := range values {
		if v == "" {
			continue
		}
		d.insert(d.subject, predicate, rdf.NamedNode{Value: v})
	}
}

// email inserts exactly one mailto: reference when the target supplies an
// address.
func (d *differ) email(address string) {
	if address == "" {
		return
	}
	if !strings.HasPrefix(address, "mailto:") {
		address = "mailto:" + address
	}
	d.insert(d.subject, vocab.FOAFMbox, rdf.NamedNode{Value: address})
}

// accounts replaces all account links wholesale: each target account becomes
// a fresh anonymous node. Accounts are never matched or updated
// incrementally.
func (d *differ) accounts(accounts []Account) {
	for _, acct := range accounts {
		node := rdf.NewBlankNode()
		d.insert(d.subject, vocab.FOAFAccount, node)

		accountType := acct.Type
		if accountType == "" {
			accountType = vocab.FOAFOnlineAccount
		}
		d.insert(node, vocab.RDFType, rdf.NamedNode{Value: accountType})
		if acct.AccountName != "" {
			d.insert(node, vocab.FOAFAccountName, rdf.Literal{Value: acct.AccountName})
		}
		if acct.AccountServiceHomepage != "" {
			d.insert(node, vocab.FOAFAccountServiceHomepage, rdf.NamedNode{Value: acct.AccountServiceHomepage})
		}
		if acct.Icon != "" {
			d.insert(node, vocab.SchemaImage, rdf.NamedNode{Value: acct.Icon})
		}
		if acct.Label != "" {
			d.insert(node, vocab.RDFSLabel, rdf.Literal{Value: acct.Label})
		}
	}
}

// organizations creates a fresh role node per target entry. The prior role
// nodes' org:member back-links are removed by the managed sweep, which
// detaches them from the subject; their other attribute statements are not
// chased down.
func (d *differ) organizations(organizations []Organization) {
	for _, org := range organizations {
		role := rdf.NewBlankNode()
		d.insert(role, vocab.OrgMember, d.subject)

		ref := org.Organization
		if ref == "" {
			ref = org.OrganizationName
		}
		switch {
		case ref == "":
		case IsAbsoluteURI(ref):
			d.insert(role, vocab.OrgOrganization, rdf.NamedNode{Value: ref})
		default:
			orgNode := rdf.NewBlankNode()
			d.insert(role, vocab.OrgOrganization, orgNode)
			d.insert(orgNode, vocab.SchemaName, rdf.Literal{Value: ref})
			d.insert(orgNode, vocab.RDFType, rdf.NamedNode{Value: vocab.SchemaOrganization})
		}

		if org.Role != "" {
			d.insert(role, vocab.VCardRole, rdf.Literal{Value: org.Role})
		}
		if org.StartDate != "" {
			d.insert(role, vocab.SchemaStartDate, rdf.Literal{Value: org.StartDate})
		}
		if org.EndDate != "" {
			d.insert(role, vocab.SchemaEndDate, rdf.Literal{Value: org.EndDate})
		}
		if org.Description != "" {
			d.insert(role, vocab.SchemaDescription, rdf.Literal{Value: org.Description})
		}
		switch org.RoleType {
		case vocab.RoleTypeCurrent, vocab.RoleTypePast, vocab.RoleTypeFuture:
			d.insert(role, vocab.RDFType, rdf.NamedNode{Value: vocab.Solid + org.RoleType})
		}
	}
}
