package feed

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	author    lipgloss.Style
	handle    lipgloss.Style
	meta      lipgloss.Style
	text      lipgloss.Style
	liked     lipgloss.Style
	unliked   lipgloss.Style
	own       lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	errorText lipgloss.Style
	hint      lipgloss.Style
	cursor    lipgloss.Style
	selected  lipgloss.Style
	reply     lipgloss.Style
	spinner   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		author:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		handle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		text:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		liked:     lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		unliked:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		own:       lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		errorText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		selected:  lipgloss.NewStyle().BorderLeft(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("69")).PaddingLeft(1),
		reply:     lipgloss.NewStyle().PaddingLeft(2),
		spinner:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
