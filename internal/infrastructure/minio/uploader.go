package minio

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/internal/infrastructure"
	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/jitter"
	"github.com/myapplevix/store-backend/pkg/logger"
)

// logoKeyPrefix keeps logo objects distinguishable from product photos in
// the shared bucket, matching the historical logo-<time> naming.
const logoKeyPrefix = "logo-"

// ImageRepository is the raw object storage the uploader drives.
type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// Uploader names, stores and exposes uploaded images. Keys are ULIDs, so
// they are time-ordered and collision-resistant: repeated uploads can never
// silently overwrite an unrelated prior object.
type Uploader struct {
	imageRepo   ImageRepository
	bucket      string
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
	entropy     *ulid.MonotonicEntropy
	entropyMu   sync.Mutex
}

func NewUploader(imageRepo ImageRepository, bucket string, logger logger.Logger, shutdownCtx context.Context) *Uploader {
	return &Uploader{
		imageRepo:   imageRepo,
		bucket:      bucket,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		entropy:     ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// UploadPhoto stores a product photo and returns its key and public URL.
func (u *Uploader) UploadPhoto(ctx context.Context, data []byte, contentType string) (*usecase.UploadRes, error) {
	const op = "Uploader.UploadPhoto"
	return u.upload(ctx, op, "", data, contentType)
}

// UploadLogo stores the store logo under the logo- prefix.
func (u *Uploader) UploadLogo(ctx context.Context, data []byte, contentType string) (*usecase.UploadRes, error) {
	const op = "Uploader.UploadLogo"
	return u.upload(ctx, op, logoKeyPrefix, data, contentType)
}

func (u *Uploader) upload(ctx context.Context, op, prefix string, data []byte, contentType string) (*usecase.UploadRes, error) {
	if len(data) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyFile)
	}

	ext, err := infrastructure.ExtensionFromMIME(contentType)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	key := fmt.Sprintf("%s%s.%s", prefix, u.newULID(), ext)
	image := domain.NewImage(u.bucket, key, data, contentType)

	storedKey, err := u.imageRepo.Upload(ctx, image)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return usecase.NewUploadRes(storedKey, u.imageRepo.PublicURL(storedKey)), nil
}

// CleanupImages deletes the given keys in the background with retries.
// Callers use it to compensate a failed step after a successful upload, such
// as a logo replacement whose configuration save did not go through.
func (u *Uploader) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}

	u.wg.Add(1)
	go u.cleanupKeys(keys)
}

func (u *Uploader) cleanupKeys(keys []string) {
	defer u.wg.Done()
	const (
		op          = "Uploader.cleanupKeys"
		maxAttempts = 3
		baseBackoff = time.Second
		maxBackoff  = 10 * time.Second
	)

	ctx, cancel := context.WithTimeout(u.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			if err := u.imageRepo.Delete(ctx, key); err == nil {
				break
			}

			select {
			case <-ctx.Done():
				u.logger.Warnf("%s: interrupted by shutdown, key=%s", op, key)
				return
			case <-time.After(jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt, jitter.DefaultJitter)):
			}
		}
	}
}

// WaitForCleanup blocks until background cleanups finish or the shutdown
// timeout expires.
func (u *Uploader) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

func (u *Uploader) newULID() string {
	u.entropyMu.Lock()
	defer u.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), u.entropy).String()
}
