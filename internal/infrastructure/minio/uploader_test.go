package minio

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any) {}
func (nopLogger) Warnf(format string, args ...any) {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeImageRepo struct {
	uploaded []domain.Image
	deleted  []string
}

func (f *fakeImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	f.uploaded = append(f.uploaded, *image)
	return image.ObjectKey, nil
}

func (f *fakeImageRepo) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeImageRepo) PublicURL(key string) string {
	return "https://cdn.example/store/" + key
}

func TestUploader_UploadPhoto(t *testing.T) {
	repo := &fakeImageRepo{}
	u := NewUploader(repo, "store", nopLogger{}, context.Background())

	res, err := u.UploadPhoto(context.Background(), []byte("jpeg-bytes"), "image/jpeg")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Key, ".jpg"), "key %q", res.Key)
	assert.False(t, strings.HasPrefix(res.Key, "logo-"))
	assert.Equal(t, "https://cdn.example/store/"+res.Key, res.URL)
	require.Len(t, repo.uploaded, 1)
	assert.Equal(t, "store", repo.uploaded[0].Bucket)
}

func TestUploader_UploadLogo_Prefixed(t *testing.T) {
	repo := &fakeImageRepo{}
	u := NewUploader(repo, "store", nopLogger{}, context.Background())

	res, err := u.UploadLogo(context.Background(), []byte("png-bytes"), "image/png")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Key, "logo-"))
	assert.True(t, strings.HasSuffix(res.Key, ".png"))
}

func TestUploader_KeysNeverCollide(t *testing.T) {
	repo := &fakeImageRepo{}
	u := NewUploader(repo, "store", nopLogger{}, context.Background())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		res, err := u.UploadPhoto(context.Background(), []byte("x"), "image/png")
		require.NoError(t, err)
		assert.False(t, seen[res.Key], "duplicate key %s", res.Key)
		seen[res.Key] = true
	}
}

func TestUploader_RejectsEmptyAndUnsupported(t *testing.T) {
	repo := &fakeImageRepo{}
	u := NewUploader(repo, "store", nopLogger{}, context.Background())

	_, err := u.UploadPhoto(context.Background(), nil, "image/png")
	assert.ErrorIs(t, err, e.ErrEmptyFile)

	_, err = u.UploadPhoto(context.Background(), []byte("x"), "application/pdf")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)

	assert.Empty(t, repo.uploaded)
}

func TestUploader_CleanupDeletesKeys(t *testing.T) {
	repo := &fakeImageRepo{}
	u := NewUploader(repo, "store", nopLogger{}, context.Background())

	u.CleanupImages([]string{"a.jpg", "b.jpg"})
	require.NoError(t, u.WaitForCleanup(context.Background()))

	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg"}, repo.deleted)
}
