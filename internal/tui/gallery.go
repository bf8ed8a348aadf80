package tui

import (
	"fmt"

	"github.com/snapsift/snapsift/models"
)

// galleryModel lists the browsable collection. Free-tier users see at most
// the free-quota photos; the truncation hint tells them why.
type galleryModel struct {
	photos    []models.Photo
	idx       int
	truncated bool
	status    string
}

func (m galleryModel) current() (models.Photo, bool) {
	if len(m.photos) == 0 || m.idx < 0 || m.idx >= len(m.photos) {
		return models.Photo{}, false
	}
	return m.photos[m.idx], true
}

func (m galleryModel) View() string {
	out := titleStyle.Render("Gallery") + "\n\n"

	if len(m.photos) == 0 {
		out += "No photos\n"
	} else {
		for i, photo := range m.photos {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s\n", cursor, photoLine(photo))
		}
	}

	if m.truncated {
		out += "\nShowing the free-tier selection. Upgrade in settings to see everything.\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter open  d bin  esc back  q quit")
	return out
}
