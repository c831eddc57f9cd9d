package connection

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

// FBConnection initializes the Firebase app and returns the Firestore and
// Auth clients. Credentials come from GOOGLE_APPLICATION_CREDENTIALS; when
// unset the SDK falls back to application default credentials.
func FBConnection() (*firestore.Client, *fbauth.Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if keyPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); keyPath != "" {
		opts = append(opts, option.WithCredentialsFile(keyPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting auth client: %w", err)
	}

	return firestoreClient, authClient, nil
}
