package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/snapsift/snapsift/internal/app"
	"github.com/snapsift/snapsift/internal/logger"
	"github.com/snapsift/snapsift/internal/store"
)

// EntitlementKey is the settings key under which the entitlement flag is
// persisted.
const EntitlementKey = "entitlement.pro"

type entitlementService struct {
	settings store.SettingsRepository
	delay    time.Duration
	logger   *logger.Logger

	mu       sync.Mutex
	entitled bool
	inFlight bool
	errMsg   string
	onChange func()
}

// NewEntitlementService constructs an [EntitlementService] persisting the
// flag through the injected repository. delay is the simulated billing
// round-trip duration; real payment processing is out of scope.
func NewEntitlementService(settings store.SettingsRepository, delay time.Duration, log *logger.Logger) EntitlementService {
	return &entitlementService{settings: settings, delay: delay, logger: log}
}

// Load implements [EntitlementService].
func (e *entitlementService) Load(ctx context.Context) error {
	entitled, err := e.settings.GetBool(ctx, EntitlementKey)
	if err != nil {
		return fmt.Errorf("load entitlement flag: %w", err)
	}

	e.mu.Lock()
	e.entitled = entitled
	e.mu.Unlock()

	return nil
}

// Upgrade implements [EntitlementService].
func (e *entitlementService) Upgrade(ctx context.Context) error {
	if !e.begin() {
		return nil
	}
	defer e.end()

	if err := e.simulateBilling(ctx); err != nil {
		return err
	}

	if err := e.settings.SetBool(ctx, EntitlementKey, true); err != nil {
		e.setError(err.Error())
		return fmt.Errorf("persist entitlement: %w", err)
	}

	e.setEntitled(true)
	e.logger.Info().Msg("entitlement granted")
	return nil
}

// Restore implements [EntitlementService].
func (e *entitlementService) Restore(ctx context.Context) error {
	if !e.begin() {
		return nil
	}
	defer e.end()

	if err := e.simulateBilling(ctx); err != nil {
		return err
	}

	purchased, err := e.settings.GetBool(ctx, EntitlementKey)
	if err != nil {
		e.setError(err.Error())
		return fmt.Errorf("read persisted entitlement: %w", err)
	}

	if !purchased {
		// Benign: surfaced as a message, other state untouched.
		e.setError(app.MsgNoPreviousPurchase)
		return nil
	}

	if err = e.settings.SetBool(ctx, EntitlementKey, true); err != nil {
		e.setError(err.Error())
		return fmt.Errorf("persist entitlement: %w", err)
	}

	e.setEntitled(true)
	e.logger.Info().Msg("entitlement restored")
	return nil
}

// Reset implements [EntitlementService].
func (e *entitlementService) Reset(ctx context.Context) error {
	if !e.begin() {
		return nil
	}
	defer e.end()

	if err := e.simulateBilling(ctx); err != nil {
		return err
	}

	if err := e.settings.SetBool(ctx, EntitlementKey, false); err != nil {
		e.setError(err.Error())
		return fmt.Errorf("persist entitlement: %w", err)
	}

	e.setEntitled(false)
	e.logger.Info().Msg("entitlement reset")
	return nil
}

// IsEntitled implements [EntitlementService] and [EntitlementChecker].
func (e *entitlementService) IsEntitled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.entitled
}

// InFlight implements [EntitlementService].
func (e *entitlementService) InFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight
}

// Err implements [EntitlementService].
func (e *entitlementService) Err() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errMsg
}

// OnChange implements [EntitlementService].
func (e *entitlementService) OnChange(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = fn
}

// begin marks an operation in flight; a second concurrent operation is
// ignored.
func (e *entitlementService) begin() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight {
		return false
	}
	e.inFlight = true
	return true
}

func (e *entitlementService) end() {
	e.mu.Lock()
	e.inFlight = false
	e.mu.Unlock()
}

func (e *entitlementService) simulateBilling(ctx context.Context) error {
	if e.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(e.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *entitlementService) setEntitled(entitled bool) {
	e.mu.Lock()
	e.entitled = entitled
	e.errMsg = ""
	notify := e.onChange
	e.mu.Unlock()

	if notify != nil {
		notify()
	}
}

func (e *entitlementService) setError(msg string) {
	e.mu.Lock()
	e.errMsg = msg
	e.mu.Unlock()
}
