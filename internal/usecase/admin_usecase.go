package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/internal/notify"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
)

// Operator-facing toast messages. The storefront is pt-BR; these strings
// are part of its surface and kept verbatim.
const (
	msgSaleRecorded  = "Venda registrada com sucesso! 💰"
	msgSaleFailed    = "Erro ao registrar venda."
	msgCreated       = "Produto cadastrado com sucesso! 🚀"
	msgCreateFailed  = "Erro ao cadastrar: %s"
	msgRemoved       = "Produto removido do estoque."
	msgRemoveFailed  = "Erro ao excluir produto."
	msgUploadDone    = "Upload concluído!"
	msgUploadFailed  = "Erro no upload: %s"
	msgConfigSaved   = "Configurações atualizadas com sucesso!"
	msgConfigFailure = "Erro ao salvar"
)

// AdminUseCase is the back-office surface. It wraps every mutating call of
// the lifecycle manager, decides what the operator sees on the toast track
// and gates removal behind the confirmation track. The lifecycle manager
// itself knows nothing about confirmation: it only ever runs after the
// operator confirmed.
type AdminUseCase struct {
	lifecycle   LifecycleUC
	config      ConfigUC
	uploader    ImageUploader
	coordinator *notify.Coordinator
	logger      logger.Logger
}

func NewAdminUC(
	lifecycle LifecycleUC,
	config ConfigUC,
	uploader ImageUploader,
	coordinator *notify.Coordinator,
	logger logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		lifecycle:   lifecycle,
		config:      config,
		uploader:    uploader,
		coordinator: coordinator,
		logger:      logger,
	}
}

// Dashboard returns the product list and derived summary.
func (a *AdminUseCase) Dashboard(ctx context.Context) (*DashboardRes, error) {
	return a.lifecycle.Dashboard(ctx)
}

// CreateProduct runs the create operation and toasts the outcome. A failed
// create leaves nothing behind; the operator retries from the still-filled form.
func (a *AdminUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	product, err := a.lifecycle.Create(ctx, req)
	if err != nil {
		a.coordinator.Notify(fmt.Sprintf(msgCreateFailed, rootCause(err)), notify.KindError)
		return nil, err
	}

	a.coordinator.Notify(msgCreated, notify.KindSuccess)
	return product, nil
}

// SellProduct records a sale and toasts the outcome.
func (a *AdminUseCase) SellProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := a.lifecycle.Sell(ctx, id)
	if err != nil {
		a.coordinator.Notify(msgSaleFailed, notify.KindError)
		return nil, err
	}

	a.coordinator.Notify(msgSaleRecorded, notify.KindSuccess)
	return product, nil
}

// RequestRemoval opens the confirmation gate for one product. Nothing is
// deleted until ConfirmRemoval.
func (a *AdminUseCase) RequestRemoval(id string) {
	a.coordinator.RequestConfirmation(id)
}

// ConfirmRemoval resolves the pending confirmation by actually deleting the
// recorded target, then toasts the outcome.
func (a *AdminUseCase) ConfirmRemoval(ctx context.Context) error {
	err := a.coordinator.Confirm(ctx, func(ctx context.Context, targetID string) error {
		return a.lifecycle.Remove(ctx, targetID)
	})
	if err != nil {
		if errors.Is(err, e.ErrNoPendingConfirmation) {
			return err
		}

		a.coordinator.Notify(msgRemoveFailed, notify.KindError)
		return err
	}

	a.coordinator.Notify(msgRemoved, notify.KindSuccess)
	return nil
}

// CancelRemoval discards the pending confirmation without side effects.
func (a *AdminUseCase) CancelRemoval() {
	a.coordinator.Cancel()
}

// UploadPhoto stores a product photo ahead of create and returns its public
// URL. The URL is what create later persists.
func (a *AdminUseCase) UploadPhoto(ctx context.Context, data []byte, contentType string) (*UploadRes, error) {
	res, err := a.uploader.UploadPhoto(ctx, data, contentType)
	if err != nil {
		a.coordinator.Notify(fmt.Sprintf(msgUploadFailed, rootCause(err)), notify.KindError)
		return nil, fmt.Errorf("AdminUseCase.UploadPhoto: %w: %v", e.ErrUploadFailed, err)
	}

	a.coordinator.Notify(msgUploadDone, notify.KindSuccess)
	return res, nil
}

// LoadConfig proxies the configuration singleton.
func (a *AdminUseCase) LoadConfig(ctx context.Context) (*domain.StoreConfiguration, error) {
	return a.config.Load(ctx)
}

// SaveConfig applies a partial configuration update and toasts the outcome.
func (a *AdminUseCase) SaveConfig(ctx context.Context, patch *ConfigPatch) error {
	if err := a.config.Save(ctx, patch); err != nil {
		a.coordinator.Notify(msgConfigFailure, notify.KindError)
		return err
	}

	a.coordinator.Notify(msgConfigSaved, notify.KindSuccess)
	return nil
}

// ReplaceLogo runs the two-phase logo swap and toasts the outcome.
func (a *AdminUseCase) ReplaceLogo(ctx context.Context, data []byte, contentType string) (string, error) {
	url, err := a.config.ReplaceLogo(ctx, data, contentType)
	if err != nil {
		a.coordinator.Notify(fmt.Sprintf(msgUploadFailed, rootCause(err)), notify.KindError)
		return "", err
	}

	a.coordinator.Notify(msgUploadDone, notify.KindSuccess)
	return url, nil
}

// Notifications exposes the coordinator state for the admin shell.
func (a *AdminUseCase) Notifications() (notify.Toast, bool, string, bool) {
	toast, visible := a.coordinator.Toast()
	target, pending := a.coordinator.PendingTarget()
	return toast, visible, target, pending
}

// rootCause unwraps to the innermost error for operator-facing messages.
func rootCause(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}
