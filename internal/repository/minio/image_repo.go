package minio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/myapplevix/store-backend/internal/cfg"
	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/pkg/e"
)

// ImageRepo implements raw object storage operations on MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload puts the image into the bucket and returns the object key.
func (i *ImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	reader := bytes.NewReader(image.Bytes)

	info, err := i.mc.PutObject(ctx, i.cfg.BucketName, image.ObjectKey, reader, image.Size, minio.PutObjectOptions{
		ContentType: image.ContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete removes the object with the given key.
func (i *ImageRepo) Delete(ctx context.Context, key string) error {
	if err := i.mc.RemoveObject(ctx, i.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// PublicURL builds the public URL of an uploaded object. The bucket carries
// a public-read policy; no presigning is involved.
func (i *ImageRepo) PublicURL(key string) string {
	scheme := "http"
	if i.cfg.MinioUseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, i.cfg.PublicEndpoint, i.cfg.BucketName, key)
}
