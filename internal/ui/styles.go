package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used for calc output.

func resultStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(lipgloss.Color("46")). // Green
		Bold(true)
}

func errorStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(lipgloss.Color("196")). // Red
		Bold(true)
}

func usageStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(lipgloss.Color("252")) // Light Gray
}
