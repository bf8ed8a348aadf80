package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/snapsift/snapsift/models"
)

// triageModel is the review feed: one photo at a time, keep or bin.
type triageModel struct {
	photos     []models.Photo
	idx        int
	refreshing bool
	spinner    spinner.Model
	overQuota  bool
}

func newTriageModel() triageModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return triageModel{spinner: s}
}

func (m triageModel) current() (models.Photo, bool) {
	if len(m.photos) == 0 || m.idx < 0 || m.idx >= len(m.photos) {
		return models.Photo{}, false
	}
	return m.photos[m.idx], true
}

func (m triageModel) View() string {
	header := titleStyle.Render("snapsift")
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch {
	case m.refreshing && len(m.photos) == 0:
		out += "Loading photo library...\n"
	case m.overQuota:
		out += "Your library exceeds the free quota.\n"
		out += "Open settings to upgrade and review everything.\n"
	case len(m.photos) == 0:
		out += "Nothing left to review\n"
	case m.idx >= len(m.photos):
		out += "All photos reviewed\n"
	default:
		photo, _ := m.current()
		out += fmt.Sprintf("Photo %d of %d\n\n", m.idx+1, len(m.photos))
		out += photoCard(photo)
	}

	out += "\n" + helpStyle.Render("space keep  d bin  g gallery  b bin  s settings  r refresh  q quit")
	return out
}
