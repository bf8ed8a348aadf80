package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/snapsift/snapsift/internal/app"
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/mock"
)

func TestEntitlementLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().GetBool(gomock.Any(), EntitlementKey).Return(true, nil)

	svc := NewEntitlementService(settings, 0, logger.Nop())

	require.NoError(t, svc.Load(context.Background()))
	assert.True(t, svc.IsEntitled())
}

func TestEntitlementLoadStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().GetBool(gomock.Any(), EntitlementKey).Return(false, errors.New("db closed"))

	svc := NewEntitlementService(settings, 0, logger.Nop())

	require.Error(t, svc.Load(context.Background()))
	assert.False(t, svc.IsEntitled())
}

func TestUpgradeGrantsAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().SetBool(gomock.Any(), EntitlementKey, true).Return(nil)

	svc := NewEntitlementService(settings, 0, logger.Nop())

	var notified bool
	svc.OnChange(func() { notified = true })

	require.NoError(t, svc.Upgrade(context.Background()))
	assert.True(t, svc.IsEntitled())
	assert.Empty(t, svc.Err())
	assert.True(t, notified, "entitlement change must notify the registered callback")
}

func TestUpgradePersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().SetBool(gomock.Any(), EntitlementKey, true).Return(errors.New("disk full"))

	svc := NewEntitlementService(settings, 0, logger.Nop())

	require.Error(t, svc.Upgrade(context.Background()))
	assert.False(t, svc.IsEntitled())
	assert.NotEmpty(t, svc.Err())
}

func TestRestoreWithoutPreviousPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().GetBool(gomock.Any(), EntitlementKey).Return(false, nil)

	svc := NewEntitlementService(settings, 0, logger.Nop())

	require.NoError(t, svc.Restore(context.Background()), "missing purchase is benign, not an error")
	assert.False(t, svc.IsEntitled())
	assert.Equal(t, app.MsgNoPreviousPurchase, svc.Err())
}

func TestRestoreWithPreviousPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().GetBool(gomock.Any(), EntitlementKey).Return(true, nil)
	settings.EXPECT().SetBool(gomock.Any(), EntitlementKey, true).Return(nil)

	svc := NewEntitlementService(settings, 0, logger.Nop())

	require.NoError(t, svc.Restore(context.Background()))
	assert.True(t, svc.IsEntitled())
	assert.Empty(t, svc.Err())
}

func TestResetRevokesEntitlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)
	settings.EXPECT().GetBool(gomock.Any(), EntitlementKey).Return(true, nil)
	settings.EXPECT().SetBool(gomock.Any(), EntitlementKey, false).Return(nil)

	svc := NewEntitlementService(settings, 0, logger.Nop())
	require.NoError(t, svc.Load(context.Background()))
	require.True(t, svc.IsEntitled())

	require.NoError(t, svc.Reset(context.Background()))
	assert.False(t, svc.IsEntitled())
}

func TestConcurrentOperationIgnoredWhileInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)
	// Only the first operation reaches the repository.
	settings.EXPECT().SetBool(gomock.Any(), EntitlementKey, true).Return(nil).Times(1)

	svc := NewEntitlementService(settings, 50*time.Millisecond, logger.Nop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = svc.Upgrade(context.Background())
	}()

	require.Eventually(t, svc.InFlight, time.Second, time.Millisecond)

	require.NoError(t, svc.Reset(context.Background()), "second operation is silently ignored")

	wg.Wait()
	assert.True(t, svc.IsEntitled(), "the ignored reset must not revoke the upgrade")
	assert.False(t, svc.InFlight())
}

func TestBillingCancelledByContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := mock.NewMockSettingsRepository(ctrl)

	svc := NewEntitlementService(settings, time.Minute, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Upgrade(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, svc.IsEntitled())
}
