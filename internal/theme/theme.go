// internal/theme/theme.go
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tide-input/internal/logger"
)

// Style names used by the prompt UI.
const (
	StyleDefault          = "Default"
	StyleField            = "Field"
	StyleCursor           = "Cursor"
	StyleLabel            = "Label"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBarMessage"
	StyleStatusBarHint    = "StatusBarHint"
)

type Theme struct {
	Name   string
	Styles map[string]tcell.Style
}

// GetStyle looks a style up by exact name, then by its base name (the part
// before the first dot), then falls back to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Lipgloss converts a named style for the Bubble Tea backend. Colors that
// tcell cannot express as RGB (default, reset) are left unset.
func (t *Theme) Lipgloss(name string) lipgloss.Style {
	fg, bg, attrs := t.GetStyle(name).Decompose()

	s := lipgloss.NewStyle()
	if hex := fg.Hex(); hex >= 0 {
		s = s.Foreground(lipgloss.Color(fmt.Sprintf("#%06x", hex)))
	}
	if hex := bg.Hex(); hex >= 0 {
		s = s.Background(lipgloss.Color(fmt.Sprintf("#%06x", hex)))
	}
	return s.
		Bold(attrs&tcell.AttrBold != 0).
		Italic(attrs&tcell.AttrItalic != 0).
		Underline(attrs&tcell.AttrUnderline != 0).
		Reverse(attrs&tcell.AttrReverse != 0)
}

// Clone returns a copy whose style map can be changed independently.
func (t *Theme) Clone() *Theme {
	c := &Theme{Name: t.Name, Styles: make(map[string]tcell.Style, len(t.Styles))}
	for k, v := range t.Styles {
		c.Styles[k] = v
	}
	return c
}

// Default returns the built-in theme: terminal colors, a reversed cursor
// and a muted blue-grey status bar.
func Default() *Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	comment := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)

	base := tcell.StyleDefault
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	return &Theme{
		Name: "Tide Input",
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleField:            base,
			StyleCursor:           base.Reverse(true),
			StyleLabel:            base.Bold(true),
			StyleStatusBar:        bar,
			StyleStatusBarMessage: bar.Foreground(yellow).Bold(true),
			StyleStatusBarHint:    bar.Foreground(comment),
		},
	}
}
