package usecase

import "context"

// ImageUploader puts image bytes into object storage under a
// collision-resistant key and returns the public URL.
type ImageUploader interface {
	UploadPhoto(ctx context.Context, data []byte, contentType string) (*UploadRes, error)
	UploadLogo(ctx context.Context, data []byte, contentType string) (*UploadRes, error)
	// CleanupImages deletes uploaded objects in the background, with
	// retries. Compensates a failed follow-up step after a successful upload.
	CleanupImages(keys []string)
}

// EventProducer publishes lifecycle events. Delivery is best-effort: a
// failed publish must never fail the operation that triggered it.
type EventProducer interface {
	Publish(ctx context.Context, event *LifecycleEvent) error
}

// Authorizer validates the capability token presented by the admin surface.
// The token itself is issued by the external authentication provider; the
// core only gates on its validity.
type Authorizer interface {
	Verify(token string) error
}
