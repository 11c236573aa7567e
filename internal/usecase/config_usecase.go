package usecase

import (
	"context"
	"fmt"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
)

// ConfigUseCase manages the store-wide configuration singleton.
type ConfigUseCase struct {
	configRepo ConfigRepository
	uploader   ImageUploader
	logger     logger.Logger
}

func NewConfigUC(configRepo ConfigRepository, uploader ImageUploader, logger logger.Logger) *ConfigUseCase {
	return &ConfigUseCase{
		configRepo: configRepo,
		uploader:   uploader,
		logger:     logger,
	}
}

// Load fetches the singleton. "Not yet configured" is a valid state: the
// repository returns an empty configuration, never an error, for a missing row.
func (c *ConfigUseCase) Load(ctx context.Context) (*domain.StoreConfiguration, error) {
	const op = "ConfigUseCase.Load"

	config, err := c.configRepo.Load(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return config, nil
}

// Save applies a partial update to the singleton row. The contact number is
// expected to be digits-only already; input masking is the caller's concern.
func (c *ConfigUseCase) Save(ctx context.Context, patch *ConfigPatch) error {
	const op = "ConfigUseCase.Save"

	if err := c.configRepo.Save(ctx, patch); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ReplaceLogo uploads the new logo and then points the configuration at its
// public URL. If the upload fails the configuration is untouched; if the
// follow-up save fails the uploaded blob is deleted in the background so it
// cannot linger unreferenced.
func (c *ConfigUseCase) ReplaceLogo(ctx context.Context, data []byte, contentType string) (string, error) {
	const op = "ConfigUseCase.ReplaceLogo"

	res, err := c.uploader.UploadLogo(ctx, data, contentType)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, e.ErrUploadFailed, err)
	}

	if err := c.configRepo.Save(ctx, &ConfigPatch{LogoURL: &res.URL}); err != nil {
		c.logger.Warnf("%s: logo uploaded as %s but save failed, scheduling blob cleanup: %v", op, res.Key, err)
		c.uploader.CleanupImages([]string{res.Key})
		return "", e.Wrap(op, err)
	}

	return res.URL, nil
}
