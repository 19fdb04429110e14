// README: Firebase Admin SDK initialisation: ID-token verifier and storage uploader.
package infra

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseToken holds the verified token data used by downstream middleware.
type FirebaseToken struct {
	UID    string
	Claims map[string]interface{}
}

// TokenVerifier verifies a raw Firebase ID token string and returns token data.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*FirebaseToken, error)
}

// Uploader stores a named blob and returns its public object path.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// Firebase wraps the Admin SDK app and exposes the pieces the service needs.
type Firebase struct {
	auth   *auth.Client
	bucket *gcs.BucketHandle
}

// NewFirebase creates the Admin SDK app. If credentialsFile is non-empty it is
// used as the service-account JSON path; otherwise application-default
// credentials / GOOGLE_APPLICATION_CREDENTIALS are used. storageBucket may be
// empty, in which case Bucket() returns a nil Uploader.
func NewFirebase(ctx context.Context, projectID, credentialsFile, storageBucket string) (*Firebase, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: storageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Auth: %w", err)
	}

	fb := &Firebase{auth: authClient}
	if storageBucket != "" {
		storageClient, err := app.Storage(ctx)
		if err != nil {
			return nil, fmt.Errorf("firebase app.Storage: %w", err)
		}
		bucket, err := storageClient.DefaultBucket()
		if err != nil {
			return nil, fmt.Errorf("firebase default bucket: %w", err)
		}
		fb.bucket = bucket
	}
	return fb, nil
}

func (f *Firebase) VerifyIDToken(ctx context.Context, idToken string) (*FirebaseToken, error) {
	token, err := f.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return &FirebaseToken{UID: token.UID, Claims: token.Claims}, nil
}

// Bucket returns an Uploader backed by the default storage bucket, or nil when
// no bucket was configured.
func (f *Firebase) Bucket() Uploader {
	if f.bucket == nil {
		return nil
	}
	return &bucketUploader{bucket: f.bucket}
}

type bucketUploader struct {
	bucket *gcs.BucketHandle
}

func (u *bucketUploader) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	w := u.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("storage write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("storage close: %w", err)
	}
	return name, nil
}
