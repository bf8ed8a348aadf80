package tui

import (
	"fmt"

	"github.com/snapsift/snapsift/models"
)

type detailModel struct {
	photo  models.Photo
	status string
}

func (m detailModel) View() string {
	out := titleStyle.Render("Photo") + "\n\n"
	out += fmt.Sprintf("Taken:   %s\n", m.photo.Date.Format("2 Jan 2006 15:04"))
	out += fmt.Sprintf("Preview: %s\n", formatBytes(len(m.photo.Image)))

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c copy date  d bin  esc back")
	return out
}
