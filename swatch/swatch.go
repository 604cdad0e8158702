// Package swatch renders generated variants as colored terminal blocks.
package swatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tailtheme/theme"
)

// Styles used for the swatch table.
type Styles struct {
	Title lipgloss.Style
	Name  lipgloss.Style
	Value lipgloss.Style
	Gap   string
}

// DefaultStyles returns the styles used by the preview command.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),
		Name:  lipgloss.NewStyle().Width(26),
		Value: lipgloss.NewStyle().Faint(true),
		Gap:   "    ",
	}
}

// Render lays out the variants side by side, one column per variant.
func Render(variants []theme.ThemeVariant, styles Styles) string {
	columns := make([]string, 0, len(variants)*2)
	for i, variant := range variants {
		if i > 0 {
			columns = append(columns, styles.Gap)
		}
		columns = append(columns, RenderVariant(variant, styles))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// RenderVariant renders one variant as a titled list of swatches.
func RenderVariant(variant theme.ThemeVariant, styles Styles) string {
	var builder strings.Builder
	builder.WriteString(styles.Title.Render(strings.ToUpper(string(variant.Brightness))))
	builder.WriteString("\n")

	for _, token := range variant.Colors {
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(token.Value)).
			Render("    ")
		builder.WriteString(block)
		builder.WriteString(" ")
		builder.WriteString(styles.Name.Render(theme.KebabCase(token.Name)))
		builder.WriteString(styles.Value.Render(token.Value))
		builder.WriteString("\n")
	}

	return strings.TrimRight(builder.String(), "\n")
}
