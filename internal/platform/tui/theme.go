package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme contains the visual styles for screens and menus.
type Theme struct {
	// Colors maps screen cell colors to styles.
	Colors map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Help bar under the game screen
	HelpBar lipgloss.Style
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// DefaultTheme returns the default visual theme. Tiles ramp from gray
// through indigo, violet, purple, fuchsia and pink to red.
func DefaultTheme() Theme {
	return Theme{
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorGray:          fg("245"),
			core.ColorBlue:          fg("33"),
			core.ColorBrightBlue:    fg("39"),
			core.ColorIndigo:        fg("62"),
			core.ColorBrightIndigo:  fg("63").Bold(true),
			core.ColorViolet:        fg("99"),
			core.ColorBrightViolet:  fg("141").Bold(true),
			core.ColorPurple:        fg("135"),
			core.ColorBrightPurple:  fg("171").Bold(true),
			core.ColorFuchsia:       fg("164"),
			core.ColorBrightFuchsia: fg("201").Bold(true),
			core.ColorPink:          fg("205"),
			core.ColorBrightPink:    fg("212").Bold(true),
			core.ColorRed:           fg("160"),
			core.ColorBrightRed:     fg("196").Bold(true),
			core.ColorYellow:        fg("226").Bold(true),
			core.ColorGreen:         fg("46"),
		},

		MenuTitle:       fg("213").Bold(true),
		MenuItemNormal:  fg("252"),
		MenuItemActive:  fg("226").Bold(true),
		MenuDescription: fg("245"),

		HelpBar: fg("241"),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor color
// support. Higher tiles are brighter.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	ramp := []string{"240", "242", "244", "246", "248", "250", "252", "254", "255"}
	tiles := []core.Color{
		core.ColorGray,
		core.ColorBlue, core.ColorBrightBlue,
		core.ColorIndigo, core.ColorBrightIndigo,
		core.ColorViolet, core.ColorBrightViolet,
		core.ColorPurple, core.ColorBrightPurple,
		core.ColorFuchsia, core.ColorBrightFuchsia,
		core.ColorPink, core.ColorBrightPink,
		core.ColorRed, core.ColorBrightRed,
	}

	colors := make(map[core.Color]lipgloss.Style, len(theme.Colors))
	colors[core.ColorDefault] = lipgloss.NewStyle()
	for i, c := range tiles {
		colors[c] = fg(ramp[i*len(ramp)/len(tiles)])
	}
	colors[core.ColorYellow] = fg("255").Bold(true)
	colors[core.ColorGreen] = fg("250")
	theme.Colors = colors

	theme.MenuTitle = fg("255").Bold(true)
	theme.MenuItemActive = fg("255").Bold(true).Underline(true)
	return theme
}

// ThemeByName returns "default" or "mono".
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), nil
	case "mono", "monochrome":
		return MonochromeTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (valid: default, mono)", name)
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
