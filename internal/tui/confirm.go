package tui

import "fmt"

type confirmModel struct {
	count int
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Permanently delete %d photos?\n", m.count)
	content += "This cannot be undone.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
