package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(flinging bool) string {
	if flinging {
		return "q quit"
	}
	return "←↓↑→/hjkl charge  space fling  tab param  +/- adjust  r reset  q quit"
}
