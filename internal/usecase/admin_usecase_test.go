package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/internal/notify"
	"github.com/myapplevix/store-backend/pkg/e"
)

func newAdminFixture() (*AdminUseCase, *productRepoMock, *cacheRepoMock, *producerMock, *configRepoMock, *uploaderMock, *notify.Coordinator) {
	productRepo := new(productRepoMock)
	cacheRepo := new(cacheRepoMock)
	producer := new(producerMock)
	configRepo := new(configRepoMock)
	uploader := new(uploaderMock)
	coordinator := notify.NewCoordinator(notify.DefaultToastTTL)

	lifecycle := NewLifecycleUC(productRepo, cacheRepo, producer, nopLogger{})
	config := NewConfigUC(configRepo, uploader, nopLogger{})
	admin := NewAdminUC(lifecycle, config, uploader, coordinator, nopLogger{})

	return admin, productRepo, cacheRepo, producer, configRepo, uploader, coordinator
}

func TestAdmin_SellProduct_ToastsSuccess(t *testing.T) {
	admin, productRepo, cacheRepo, producer, _, _, coordinator := newAdminFixture()

	soldAt := time.Now()
	productRepo.On("MarkSold", mock.Anything, "p1", mock.Anything).
		Return(&domain.Product{ID: "p1", SoldAt: &soldAt}, nil)
	cacheRepo.On("InvalidateCatalog", mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, mock.Anything).Return(nil)

	_, err := admin.SellProduct(context.Background(), "p1")

	require.NoError(t, err)
	toast, visible := coordinator.Toast()
	require.True(t, visible)
	assert.Equal(t, msgSaleRecorded, toast.Message)
	assert.Equal(t, notify.KindSuccess, toast.Kind)
}

func TestAdmin_SellProduct_ToastsFailure(t *testing.T) {
	admin, productRepo, _, _, _, _, coordinator := newAdminFixture()

	productRepo.On("MarkSold", mock.Anything, "p1", mock.Anything).
		Return(nil, e.ErrProductAlreadySold)

	_, err := admin.SellProduct(context.Background(), "p1")

	require.Error(t, err)
	toast, visible := coordinator.Toast()
	require.True(t, visible)
	assert.Equal(t, msgSaleFailed, toast.Message)
	assert.Equal(t, notify.KindError, toast.Kind)
}

func TestAdmin_CreateProduct_FailureToastCarriesRootCause(t *testing.T) {
	admin, productRepo, _, _, _, _, coordinator := newAdminFixture()

	_, err := admin.CreateProduct(context.Background(), NewCreateProductReq("", "100", "novo", "", "url"))

	require.Error(t, err)
	toast, visible := coordinator.Toast()
	require.True(t, visible)
	assert.Contains(t, toast.Message, "Erro ao cadastrar")
	assert.Contains(t, toast.Message, e.ErrTitleRequired.Error())
	productRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAdmin_RemovalFlow_ConfirmDeletesRecordedTarget(t *testing.T) {
	admin, productRepo, cacheRepo, producer, _, _, coordinator := newAdminFixture()

	productRepo.On("Delete", mock.Anything, "p9").Return(nil).Once()
	cacheRepo.On("InvalidateCatalog", mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, mock.Anything).Return(nil)

	admin.RequestRemoval("p9")

	target, pending := coordinator.PendingTarget()
	require.True(t, pending)
	assert.Equal(t, "p9", target)

	require.NoError(t, admin.ConfirmRemoval(context.Background()))

	_, pending = coordinator.PendingTarget()
	assert.False(t, pending)
	productRepo.AssertExpectations(t)

	// a second confirm has nothing to act on
	err := admin.ConfirmRemoval(context.Background())
	assert.ErrorIs(t, err, e.ErrNoPendingConfirmation)
}

func TestAdmin_RemovalFlow_CancelDropsTargetWithoutDeleting(t *testing.T) {
	admin, productRepo, _, _, _, _, coordinator := newAdminFixture()

	admin.RequestRemoval("p9")
	admin.CancelRemoval()

	_, pending := coordinator.PendingTarget()
	assert.False(t, pending)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	err := admin.ConfirmRemoval(context.Background())
	assert.ErrorIs(t, err, e.ErrNoPendingConfirmation)
}

func TestAdmin_RemovalFlow_SecondRequestReplacesTarget(t *testing.T) {
	admin, productRepo, cacheRepo, producer, _, _, _ := newAdminFixture()

	productRepo.On("Delete", mock.Anything, "second").Return(nil).Once()
	cacheRepo.On("InvalidateCatalog", mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, mock.Anything).Return(nil)

	admin.RequestRemoval("first")
	admin.RequestRemoval("second")

	require.NoError(t, admin.ConfirmRemoval(context.Background()))

	productRepo.AssertNotCalled(t, "Delete", mock.Anything, "first")
	productRepo.AssertExpectations(t)
}

func TestAdmin_UploadPhoto_WrapsFailure(t *testing.T) {
	admin, _, _, _, _, uploader, coordinator := newAdminFixture()

	uploader.On("UploadPhoto", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("bucket unreachable"))

	_, err := admin.UploadPhoto(context.Background(), []byte("x"), "image/png")

	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrUploadFailed)
	toast, visible := coordinator.Toast()
	require.True(t, visible)
	assert.Equal(t, notify.KindError, toast.Kind)
}

func TestAdmin_SaveConfig_Toasts(t *testing.T) {
	admin, _, _, _, configRepo, _, coordinator := newAdminFixture()

	configRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	name := "Apple Vix"
	require.NoError(t, admin.SaveConfig(context.Background(), &ConfigPatch{StoreName: &name}))

	toast, visible := coordinator.Toast()
	require.True(t, visible)
	assert.Equal(t, msgConfigSaved, toast.Message)
}

func TestAdmin_Notifications_ExposesBothTracks(t *testing.T) {
	admin, _, _, _, _, _, coordinator := newAdminFixture()

	coordinator.Notify("hello", notify.KindSuccess)
	admin.RequestRemoval("p1")

	toast, visible, target, pending := admin.Notifications()

	assert.True(t, visible)
	assert.Equal(t, "hello", toast.Message)
	assert.True(t, pending)
	assert.Equal(t, "p1", target)
}
