package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
)

type settingsModel struct {
	entitled  bool
	busy      bool
	spinner   spinner.Model
	freeQuota int
	total     int
	message   string
}

func newSettingsModel(freeQuota int) settingsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return settingsModel{spinner: s, freeQuota: freeQuota}
}

func (m settingsModel) View() string {
	out := titleStyle.Render("Settings") + "\n\n"

	if m.entitled {
		out += "Plan:   Pro (full library access)\n"
	} else {
		out += "Plan:   Free\n"
		out += planLine(m.total, m.freeQuota)
	}

	if m.busy {
		out += "\n" + m.spinner.View() + " Contacting the store...\n"
	}
	if m.message != "" {
		out += "\n" + m.message + "\n"
	}

	out += "\n" + helpStyle.Render("u upgrade  p restore purchase  0 reset  esc back  q quit")
	return out
}
