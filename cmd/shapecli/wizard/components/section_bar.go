package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	activeTabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	completenessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))
)

// SectionBar renders the wizard tab strip with the active section highlighted
// and the live completeness score on the right.
func SectionBar(labels []string, active, completeness int) string {
	var tabs []string
	for i, label := range labels {
		marker := "○"
		style := inactiveTabStyle
		if i == active {
			marker = "●"
			style = activeTabStyle
		} else if i < active {
			marker = "✓"
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%s %s", marker, label)))
	}

	bar := strings.Join(tabs, "   ")
	score := completenessStyle.Render(fmt.Sprintf("Profile %d%% complete", completeness))

	return lipgloss.JoinVertical(lipgloss.Left, bar, score)
}
