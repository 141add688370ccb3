package webprofile

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/podworks/profiled/internal/rdf"
	"github.com/podworks/profiled/internal/service/account"
	"github.com/podworks/profiled/internal/service/pod"
	"github.com/podworks/profiled/internal/vocab"
)

const (
	testAccountID = "acct-123"
	testWebID     = "https://alice.example/profile/card#me"
	testDocURL    = "https://alice.example/profile/card"
)

func newTestManager(t *testing.T) (*Manager, *pod.MockStore, *account.MockStore) {
	t.Helper()
	store := pod.NewMockStore()
	accounts := account.NewMockStore()
	accounts.AddLink(testAccountID, testWebID)
	return New(store, accounts, accounts, nil), store, accounts
}

func TestDocumentURL(t *testing.T) {
	if got := DocumentURL(testWebID); got != testDocURL {
		t.Errorf("got %q, want %q", got, testDocURL)
	}
	if got := DocumentURL(testDocURL); got != testDocURL {
		t.Errorf("fragment-free WebID: got %q", got)
	}
}

func TestGetViewNoWebID(t *testing.T) {
	store := pod.NewMockStore()
	accounts := account.NewMockStore()
	m := New(store, accounts, accounts, nil)

	_, err := m.GetView(context.Background(), testAccountID)
	if !errors.Is(err, ErrNoWebID) {
		t.Errorf("got %v, want ErrNoWebID", err)
	}
}

func TestGetViewDocumentAbsent(t *testing.T) {
	m, _, accounts := newTestManager(t)
	accounts.AddCredential(testAccountID, "alice@example.org")

	view, err := m.GetView(context.Background(), testAccountID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.WebID != testWebID {
		t.Errorf("WebID: got %q", view.WebID)
	}
	if view.Profile.Name != "" {
		t.Errorf("absent document should yield an empty record, got %+v", view.Profile)
	}
	if view.Profile.Email != "alice@example.org" {
		t.Errorf("account email should still be applied, got %q", view.Profile.Email)
	}
}

func TestGetViewExtractsAndOverridesEmail(t *testing.T) {
	m, store, accounts := newTestManager(t)
	accounts.AddCredential(testAccountID, "account@example.org")

	me := rdf.NamedNode{Value: testWebID}
	_ = store.Set(context.Background(), testDocURL, &pod.Representation{
		ContentType: pod.TurtleContentType,
		Statements: []rdf.Statement{
			{Subject: me, Predicate: rdf.NamedNode{Value: vocab.FOAFName}, Object: rdf.Literal{Value: "Alice"}},
			{Subject: me, Predicate: rdf.NamedNode{Value: vocab.FOAFMbox}, Object: rdf.NamedNode{Value: "mailto:stored@example.org"}},
		},
	})

	view, err := m.GetView(context.Background(), testAccountID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Profile.Name != "Alice" {
		t.Errorf("Name: got %q", view.Profile.Name)
	}
	if view.Profile.Email != "account@example.org" {
		t.Errorf("account email must win over the stored mailbox, got %q", view.Profile.Email)
	}
}

func TestGetViewCredentialFailureSwallowed(t *testing.T) {
	m, _, accounts := newTestManager(t)
	accounts.CredentialsErr = errors.New("credential backend down")

	view, err := m.GetView(context.Background(), testAccountID)
	if err != nil {
		t.Fatalf("credential failures must not fail the request: %v", err)
	}
	if view.Profile.Email != "" {
		t.Errorf("email should be unavailable, got %q", view.Profile.Email)
	}
}

func TestHandleNoWebID(t *testing.T) {
	store := pod.NewMockStore()
	accounts := account.NewMockStore()
	m := New(store, accounts, accounts, nil)

	_, err := m.Handle(context.Background(), testAccountID, json.RawMessage(`{}`))
	if !errors.Is(err, ErrNoWebID) {
		t.Errorf("got %v, want ErrNoWebID", err)
	}
}

func TestHandleValidationFailureIsAtomic(t *testing.T) {
	m, store, _ := newTestManager(t)

	_, err := m.Handle(context.Background(), testAccountID,
		json.RawMessage(`{"photo": "not-a-url", "profileBackgroundColor": "red"}`))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(verr.Messages) != 2 {
		t.Errorf("expected both violations aggregated, got %v", verr.Messages)
	}
	if ids := store.ResourceIDs(); len(ids) != 0 {
		t.Errorf("nothing may be written on validation failure, got %v", ids)
	}
}

func TestHandleCreatesDocument(t *testing.T) {
	m, store, _ := newTestManager(t)

	rec, err := m.Handle(context.Background(), testAccountID,
		json.RawMessage(`{"name": "Alice", "knows": ["https://bob.example/#me"]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "Alice" {
		t.Errorf("returned record: got %+v", rec)
	}

	doc := store.Resource(testDocURL)
	if doc == nil {
		t.Fatal("profile document was not created")
	}
	var sawType, sawName bool
	for _, s := range doc.Statements {
		switch s.PredicateIRI() {
		case vocab.RDFType:
			sawType = s.ObjectValue() == vocab.FOAFPerson
		case vocab.FOAFName:
			sawName = s.ObjectValue() == "Alice"
		}
	}
	if !sawType {
		t.Error("new document must be seeded with a person type assertion")
	}
	if !sawName {
		t.Error("insertions missing from the new document")
	}
}

func TestHandlePatchesExistingDocument(t *testing.T) {
	m, store, _ := newTestManager(t)
	me := rdf.NamedNode{Value: testWebID}
	unmanaged := rdf.Statement{
		Subject:   me,
		Predicate: rdf.NamedNode{Value: "https://other.example/ns#favoriteColor"},
		Object:    rdf.Literal{Value: "green"},
	}
	_ = store.Set(context.Background(), testDocURL, &pod.Representation{
		ContentType: pod.TurtleContentType,
		Statements: []rdf.Statement{
			{Subject: me, Predicate: rdf.NamedNode{Value: vocab.FOAFName}, Object: rdf.Literal{Value: "Alice"}},
			unmanaged,
		},
	})

	if _, err := m.Handle(context.Background(), testAccountID, json.RawMessage(`{"name": "Bob"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := store.Resource(testDocURL)
	var names []string
	var keptUnmanaged bool
	for _, s := range doc.Statements {
		if s.PredicateIRI() == vocab.FOAFName {
			names = append(names, s.ObjectValue())
		}
		if s.Equal(unmanaged) {
			keptUnmanaged = true
		}
	}
	if len(names) != 1 || names[0] != "Bob" {
		t.Errorf("name statements after patch: %v", names)
	}
	if !keptUnmanaged {
		t.Error("unrelated statements must survive a patch")
	}
}

func TestHandleStoresDataURIPhoto(t *testing.T) {
	m, store, _ := newTestManager(t)
	payload := base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	rec, err := m.Handle(context.Background(), testAccountID,
		json.RawMessage(`{"photo": "data:image/png;base64,`+payload+`"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.HasPrefix(rec.Photo, "data:") {
		t.Fatalf("photo must be resolved to a storage path, got %q", rec.Photo)
	}
	if !strings.HasSuffix(rec.Photo, ".png") {
		t.Errorf("storage path should carry the declared extension, got %q", rec.Photo)
	}
	if !strings.HasPrefix(rec.Photo, "https://alice.example/") {
		t.Errorf("photo must live under the pod root, got %q", rec.Photo)
	}

	stored := store.Resource(rec.Photo)
	if stored == nil {
		t.Fatal("photo bytes were not stored")
	}
	if stored.ContentType != "image/png" || string(stored.Data) != "png-bytes" {
		t.Errorf("stored resource: %q %q", stored.ContentType, stored.Data)
	}

	doc := store.Resource(testDocURL)
	var photoValue string
	for _, s := range doc.Statements {
		if s.PredicateIRI() == vocab.VCardHasPhoto {
			photoValue = s.ObjectValue()
		}
	}
	if photoValue != rec.Photo {
		t.Errorf("document photo statement: got %q, want %q", photoValue, rec.Photo)
	}
}

func TestHandleUnrecognizedImageSubtype(t *testing.T) {
	m, store, _ := newTestManager(t)
	payload := base64.StdEncoding.EncodeToString([]byte("mystery"))

	rec, err := m.Handle(context.Background(), testAccountID,
		json.RawMessage(`{"photo": "data:image/x-unknown;base64,`+payload+`"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(rec.Photo, ".jpg") {
		t.Errorf("unrecognized subtype should fall back to JPEG, got %q", rec.Photo)
	}
	if stored := store.Resource(rec.Photo); stored == nil || stored.ContentType != "image/jpeg" {
		t.Errorf("stored content type should default to image/jpeg")
	}
}

func TestHandleEmailMergeOverridesCaller(t *testing.T) {
	m, store, accounts := newTestManager(t)
	accounts.AddCredential(testAccountID, "account@example.org")

	rec, err := m.Handle(context.Background(), testAccountID,
		json.RawMessage(`{"email": "caller@example.org"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Email != "account@example.org" {
		t.Errorf("account email must override the caller's, got %q", rec.Email)
	}

	doc := store.Resource(testDocURL)
	var mbox string
	for _, s := range doc.Statements {
		if s.PredicateIRI() == vocab.FOAFMbox {
			mbox = s.ObjectValue()
		}
	}
	if mbox != "mailto:account@example.org" {
		t.Errorf("mailbox statement: got %q", mbox)
	}
}

func TestHandleReadFailureIsFatal(t *testing.T) {
	m, store, _ := newTestManager(t)
	store.GetErr = errors.New("store unavailable")

	_, err := m.Handle(context.Background(), testAccountID, json.RawMessage(`{"name": "Alice"}`))
	if err == nil || !strings.Contains(err.Error(), "store unavailable") {
		t.Errorf("read failures other than not-found must propagate, got %v", err)
	}
}

func TestHandleRoundTripThroughStore(t *testing.T) {
	m, _, _ := newTestManager(t)
	candidate := `{
		"name": "Alice",
		"nickname": "AL",
		"profileBackgroundColor": "#aa00ff",
		"preferredSubjectPronoun": "she",
		"homepage": "https://alice.example/",
		"knows": ["https://bob.example/#me"],
		"skills": ["https://id.example/skill/go"],
		"organizations": [{"organization": "https://org.example/", "role": "Engineer"}]
	}`

	written, err := m.Handle(context.Background(), testAccountID, json.RawMessage(candidate))
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	view, err := m.GetView(context.Background(), testAccountID)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	got, want := view.Profile, written
	if got.Name != want.Name || got.Nickname != want.Nickname ||
		got.ProfileBackgroundColor != want.ProfileBackgroundColor ||
		got.PreferredSubjectPronoun != want.PreferredSubjectPronoun ||
		got.Homepage != want.Homepage {
		t.Errorf("scalar round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
	if len(got.Knows) != 1 || got.Knows[0] != "https://bob.example/#me" {
		t.Errorf("knows round trip: %v", got.Knows)
	}
	if len(got.Organizations) != 1 || got.Organizations[0].Role != "Engineer" {
		t.Errorf("organizations round trip: %+v", got.Organizations)
	}
}
