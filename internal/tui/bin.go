package tui

import (
	"fmt"

	"github.com/snapsift/snapsift/models"
)

// binModel lists staged photos. Restore and local discard act immediately;
// permanent deletion goes through the confirm overlay.
type binModel struct {
	photos []models.Photo
	idx    int
	status string
}

func (m binModel) current() (models.Photo, bool) {
	if len(m.photos) == 0 || m.idx < 0 || m.idx >= len(m.photos) {
		return models.Photo{}, false
	}
	return m.photos[m.idx], true
}

func (m binModel) View() string {
	out := titleStyle.Render("Bin") + "\n\n"

	if len(m.photos) == 0 {
		out += "The bin is empty\n"
	} else {
		for i, photo := range m.photos {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s\n", cursor, photoLine(photo))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("u restore  x discard  d delete permanently  esc back  q quit")
	return out
}
