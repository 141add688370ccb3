package vocab

// Base namespace IRIs.
const (
	RDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS   = "http://www.w3.org/2000/01/rdf-schema#"
	FOAF   = "http://xmlns.com/foaf/0.1/"
	VCard  = "http://www.w3.org/2006/vcard/ns#"
	UI     = "http://www.w3.org/ns/ui#"
	Solid  = "http://www.w3.org/ns/solid/terms#"
	Org    = "http://www.w3.org/ns/org#"
	Schema = "http://schema.org/"
)

// Core predicates.
const (
	RDFType   = RDF + "type"
	RDFSLabel = RDFS + "label"
)

// Person-level predicates owned by the profile service.
const (
	FOAFName     = FOAF + "name"
	FOAFNick     = FOAF + "nick"
	FOAFPhone    = FOAF + "phone"
	FOAFHomepage = FOAF + "homepage"
	FOAFMbox     = FOAF + "mbox"
	FOAFKnows    = FOAF + "knows"
	FOAFAccount  = FOAF + "account"

	VCardHasPhoto = VCard + "hasPhoto"

	UIBackgroundColor = UI + "backgroundColor"
	UIHighlightColor  = UI + "highlightColor"

	SolidPreferredSubjectPronoun  = Solid + "preferredSubjectPronoun"
	SolidPreferredObjectPronoun   = Solid + "preferredObjectPronoun"
	SolidPreferredRelativePronoun = Solid + "preferredRelativePronoun"

	SchemaKnowsLanguage = Schema + "knowsLanguage"
	SchemaSkills        = Schema + "skills"
)

// Account sub-entity predicates. Each account is an anonymous node linked
// from the subject through foaf:account.
const (
	FOAFOnlineAccount          = FOAF + "OnlineAccount"
	FOAFAccountName            = FOAF + "accountName"
	FOAFAccountServiceHomepage = FOAF + "accountServiceHomepage"
	SchemaImage                = Schema + "image"
)

// Organization-membership predicates. Each membership is a reified role node
// that points back at the subject through org:member.
const (
	OrgMember       = Org + "member"
	OrgOrganization = Org + "organization"

	SchemaOrganization = Schema + "Organization"
	SchemaName         = Schema + "name"
	SchemaStartDate    = Schema + "startDate"
	SchemaEndDate      = Schema + "endDate"
	SchemaDescription  = Schema + "description"

	VCardRole = VCard + "role"
)

// Role type classes. Extraction matches these by substring so the value
// survives namespace variation across clients.
const (
	RoleTypeCurrent = "CurrentRole"
	RoleTypePast    = "PastRole"
	RoleTypeFuture  = "FutureRole"

	SolidCurrentRole = Solid + RoleTypeCurrent
	SolidPastRole    = Solid + RoleTypePast
	SolidFutureRole  = Solid + RoleTypeFuture
)

// Classes asserted on created entities.
const (
	FOAFPerson = FOAF + "Person"
)

// Managed returns the predicates the profile service owns exclusively on a
// profile subject. Every update deletes all of the subject's statements on
// these predicates before re-inserting the target values. OrgMember is owned
// in the reverse direction: the statements swept are those whose object is
// the subject.
func Managed() []string {
	return []string{
		UIBackgroundColor,
		UIHighlightColor,
		FOAFName,
		FOAFNick,
		FOAFPhone,
		SolidPreferredSubjectPronoun,
		SolidPreferredObjectPronoun,
		SolidPreferredRelativePronoun,
		VCardHasPhoto,
		FOAFHomepage,
		FOAFMbox,
		FOAFKnows,
		SchemaKnowsLanguage,
		SchemaSkills,
		FOAFAccount,
		OrgMember,
	}
}
