// Package firebase wires up the Firebase app and the Google Cloud
// clients derived from it. Credentials come from the environment
// (GOOGLE_APPLICATION_CREDENTIALS or the metadata server).
package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// Clients bundles the per-process Firebase handles. Create one at
// startup and share it; the underlying clients are safe for
// concurrent use.
type Clients struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *firestore.Client
}

// NewClients initializes the Firebase app for the given project and
// opens the Auth and Firestore clients. Project resolution falls back
// to GOOGLE_CLOUD_PROJECT when projectID is empty.
func NewClients(ctx context.Context, projectID string) (*Clients, error) {
	if projectID == "" {
		projectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}

	return &Clients{App: app, Auth: authClient, Firestore: fsClient}, nil
}

// Close releases the Firestore connection. Auth has no resources to
// release.
func (c *Clients) Close() error {
	if c == nil || c.Firestore == nil {
		return nil
	}
	return c.Firestore.Close()
}
