package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snapsift/snapsift/internal/service"
)

type screen int

const (
	screenTriage screen = iota
	screenGallery
	screenBin
	screenDetail
	screenSettings
)

type appModel struct {
	ctx      context.Context
	services *service.Services

	currentScreen screen
	triage        triageModel
	gallery       galleryModel
	bin           binModel
	detail        detailModel
	settings      settingsModel

	showConfirm  bool
	confirm      confirmModel
	showError    bool
	errorOverlay errorOverlayModel
	showUpgrade  bool
	upgrade      upgradeOverlayModel

	status string
	err    error
}

func newAppModel(ctx context.Context, services *service.Services, freeQuota int) appModel {
	triage := newTriageModel()
	triage.refreshing = true
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenTriage,
		triage:        triage,
		settings:      newSettingsModel(freeQuota),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.triage.spinner.Tick, m.cmdRefresh(), m.cmdWaitQuota())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showUpgrade {
			return m.updateUpgradeOverlay(msg)
		}
	case refreshDoneMsg:
		m.triage.refreshing = false
		m.reload()
		m.status = m.services.Collection.Status()
		return m, cmdClearStatus()
	case deleteDoneMsg:
		m.reload()
		m.status = m.services.Collection.Status()
		return m, cmdClearStatus()
	case entitlementDoneMsg:
		m.settings.busy = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
		}
		m.settings.message = m.services.Entitlement.Err()
		m.reload()
		return m, nil
	case quotaMsg:
		m.showUpgrade = true
		return m, m.cmdWaitQuota()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		m.detail.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.triage.refreshing {
			var cmd tea.Cmd
			m.triage.spinner, cmd = m.triage.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.settings.busy {
			var cmd tea.Cmd
			m.settings.spinner, cmd = m.settings.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenTriage:
		return m.updateTriage(msg)
	case screenGallery:
		return m.updateGallery(msg)
	case screenBin:
		return m.updateBin(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenTriage:
		body = m.triage.View()
	case screenGallery:
		body = m.gallery.View()
	case screenBin:
		body = m.bin.View()
	case screenDetail:
		body = m.detail.View()
	case screenSettings:
		body = m.settings.View()
	}

	if m.status != "" {
		body += "\n\n" + m.status
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showUpgrade {
		body += "\n\n" + m.upgrade.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// reload pulls the current collections out of the service layer into the
// screen models. All mutation already happened in the services; this only
// refreshes what is rendered.
func (m *appModel) reload() {
	collection := m.services.Collection

	m.triage.photos = collection.ReviewPhotos()
	m.triage.overQuota = collection.IsOverQuota()
	// The triage cursor may sit one past the last photo ("all reviewed").
	if m.triage.idx > len(m.triage.photos) {
		m.triage.idx = len(m.triage.photos)
	}
	if m.triage.idx < 0 {
		m.triage.idx = 0
	}

	m.gallery.photos = collection.AvailablePhotos()
	m.gallery.truncated = collection.IsOverQuota()
	clampIndex(&m.gallery.idx, len(m.gallery.photos))

	m.bin.photos = collection.BinPhotos()
	clampIndex(&m.bin.idx, len(m.bin.photos))

	m.settings.entitled = m.services.Entitlement.IsEntitled()
	m.settings.total = len(collection.AvailablePhotos()) + len(m.bin.photos)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateTriage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.keep), key.Matches(keyMsg, keys.right):
		if m.triage.idx < len(m.triage.photos) {
			m.triage.idx++
		}
	case key.Matches(keyMsg, keys.left):
		if m.triage.idx > 0 {
			m.triage.idx--
		}
	case key.Matches(keyMsg, keys.stage):
		photo, ok := m.triage.current()
		if !ok {
			return m, nil
		}
		m.services.Collection.StageForDeletion(photo.ID)
		m.reload()
	case key.Matches(keyMsg, keys.refresh):
		if m.triage.refreshing {
			return m, nil
		}
		m.triage.refreshing = true
		return m, tea.Batch(m.triage.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.gallery):
		m.reload()
		m.currentScreen = screenGallery
	case key.Matches(keyMsg, keys.bin):
		m.reload()
		m.currentScreen = screenBin
	case key.Matches(keyMsg, keys.settings):
		m.reload()
		m.currentScreen = screenSettings
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.gallery.idx > 0 {
			m.gallery.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.gallery.idx < len(m.gallery.photos)-1 {
			m.gallery.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		photo, ok := m.gallery.current()
		if !ok {
			return m, nil
		}
		m.detail.photo = photo
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.stage):
		photo, ok := m.gallery.current()
		if !ok {
			return m, nil
		}
		m.services.Collection.StageForDeletion(photo.ID)
		m.reload()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTriage
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateBin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.bin.idx > 0 {
			m.bin.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.bin.idx < len(m.bin.photos)-1 {
			m.bin.idx++
		}
	case key.Matches(keyMsg, keys.restore):
		photo, ok := m.bin.current()
		if !ok {
			return m, nil
		}
		m.services.Collection.Restore(photo.ID)
		m.reload()
	case key.Matches(keyMsg, keys.discard):
		photo, ok := m.bin.current()
		if !ok {
			return m, nil
		}
		m.services.Collection.DeleteFromBin(photo.ID)
		m.reload()
	case key.Matches(keyMsg, keys.stage):
		if m.services.Collection.ConfirmPermanentDeletion() {
			m.showConfirm = true
			m.confirm.count = m.services.Collection.PendingDeletionCount()
		} else {
			m.status = m.services.Collection.Status()
			m.reload()
			return m, cmdClearStatus()
		}
		m.reload()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTriage
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.photo.Date.Format(time.RFC3339))
	case key.Matches(keyMsg, keys.stage):
		m.services.Collection.StageForDeletion(m.detail.photo.ID)
		m.reload()
		m.currentScreen = screenGallery
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenGallery
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.upgrade):
		return m.startBilling(m.cmdUpgrade())
	case key.Matches(keyMsg, keys.purchase):
		return m.startBilling(m.cmdRestorePurchase())
	case key.Matches(keyMsg, keys.reset):
		return m.startBilling(m.cmdResetEntitlement())
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenTriage
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) startBilling(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.settings.busy {
		return m, nil
	}
	m.settings.busy = true
	m.settings.message = ""
	return m, tea.Batch(m.settings.spinner.Tick, cmd)
}

func (m appModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.showConfirm = false
		return m, m.cmdCommitDelete()
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.showConfirm = false
		m.services.Collection.CancelPermanentDeletion()
	}
	return m, nil
}

func (m appModel) updateUpgradeOverlay(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.settings):
		m.showUpgrade = false
		m.reload()
		m.currentScreen = screenSettings
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
		m.showUpgrade = false
	}
	return m, nil
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	collection := m.services.Collection
	return func() tea.Msg {
		err := collection.Refresh(ctx)
		return refreshDoneMsg{err: err}
	}
}

func (m appModel) cmdCommitDelete() tea.Cmd {
	ctx := m.ctx
	collection := m.services.Collection
	return func() tea.Msg {
		err := collection.CommitPermanentDeletion(ctx)
		return deleteDoneMsg{err: err}
	}
}

func (m appModel) cmdUpgrade() tea.Cmd {
	ctx := m.ctx
	entitlement := m.services.Entitlement
	return func() tea.Msg {
		return entitlementDoneMsg{err: entitlement.Upgrade(ctx)}
	}
}

func (m appModel) cmdRestorePurchase() tea.Cmd {
	ctx := m.ctx
	entitlement := m.services.Entitlement
	return func() tea.Msg {
		return entitlementDoneMsg{err: entitlement.Restore(ctx)}
	}
}

func (m appModel) cmdResetEntitlement() tea.Cmd {
	ctx := m.ctx
	entitlement := m.services.Entitlement
	return func() tea.Msg {
		return entitlementDoneMsg{err: entitlement.Reset(ctx)}
	}
}

func (m appModel) cmdWaitQuota() tea.Cmd {
	events := m.services.Collection.QuotaEvents()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case <-events:
			return quotaMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func clampIndex(idx *int, length int) {
	if *idx > length {
		*idx = length
	}
	if length > 0 && *idx == length {
		*idx = length - 1
	}
	if *idx < 0 {
		*idx = 0
	}
}
