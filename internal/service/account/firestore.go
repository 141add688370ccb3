package account

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const (
	linksCollection       = "webid_links"
	credentialsCollection = "credentials"
)

type firestoreLink struct {
	AccountID string    `firestore:"account_id"`
	WebID     string    `firestore:"web_id"`
	CreatedAt time.Time `firestore:"created_at"`
}

type firestoreCredential struct {
	AccountID string    `firestore:"account_id"`
	Email     string    `firestore:"email"`
	CreatedAt time.Time `firestore:"created_at"`
}

// FirestoreStore implements LinkStore and CredentialStore on Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed account store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// FindLinks returns the account's WebID links ordered by creation time.
func (s *FirestoreStore) FindLinks(ctx context.Context, accountID string) ([]Link, error) {
	iter := s.client.Collection(linksCollection).
		Where("account_id", "==", accountID).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var links []Link
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return links, nil
		}
		if err != nil {
			return nil, err
		}
		var fl firestoreLink
		if err := doc.DataTo(&fl); err != nil {
			return nil, err
		}
		links = append(links, Link{AccountID: fl.AccountID, WebID: fl.WebID})
	}
}

// FindByAccount returns the account's credentials ordered by creation time.
func (s *FirestoreStore) FindByAccount(ctx context.Context, accountID string) ([]Credential, error) {
	iter := s.client.Collection(credentialsCollection).
		Where("account_id", "==", accountID).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var credentials []Credential
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return credentials, nil
		}
		if err != nil {
			return nil, err
		}
		var fc firestoreCredential
		if err := doc.DataTo(&fc); err != nil {
			return nil, err
		}
		credentials = append(credentials, Credential{AccountID: fc.AccountID, Email: fc.Email})
	}
}

// Compile-time interface checks
var (
	_ LinkStore       = (*FirestoreStore)(nil)
	_ CredentialStore = (*FirestoreStore)(nil)
)
