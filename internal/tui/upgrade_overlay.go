package tui

import "github.com/snapsift/snapsift/internal/app"

type upgradeOverlayModel struct{}

func (m upgradeOverlayModel) View() string {
	content := app.MsgUpgradePrompt + "\n\n"
	content += "s open settings    esc dismiss"
	return overlayBoxStyle.Render(content)
}
