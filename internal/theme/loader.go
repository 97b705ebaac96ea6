// internal/theme/loader.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tide-input/internal/logger"
)

// StyleDef is one style as written in TOML. Pointers tell unset
// attributes apart from explicit false.
type StyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// File is the layout of a standalone theme file.
type File struct {
	Name   string              `toml:"name"`
	Styles map[string]StyleDef `toml:"styles"`
}

// Apply returns a copy of base with defs layered on top. A Default entry
// is applied first and every other new style inherits from it; styles that
// already exist in base inherit from their old value. Invalid entries are
// skipped and reported together.
func Apply(base *Theme, defs map[string]StyleDef) (*Theme, error) {
	t := base.Clone()
	if len(defs) == 0 {
		return t, nil
	}

	var errs []error
	if def, ok := defs[StyleDefault]; ok {
		style, err := convertStyle(def, t.GetStyle(StyleDefault))
		if err != nil {
			errs = append(errs, fmt.Errorf("style %q: %w", StyleDefault, err))
		} else {
			t.Styles[StyleDefault] = style
		}
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		if name != StyleDefault {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		inherit, ok := t.Styles[name]
		if !ok {
			inherit = t.Styles[StyleDefault]
		}
		style, err := convertStyle(defs[name], inherit)
		if err != nil {
			errs = append(errs, fmt.Errorf("style %q: %w", name, err))
			continue
		}
		t.Styles[name] = style
	}
	return t, errors.Join(errs...)
}

// LoadFile reads a theme file and layers it over base.
func LoadFile(path string, base *Theme) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", path, err)
	}

	var f File
	metadata, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", path, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme file '%s': Unrecognized keys: %v", path, metadata.Undecoded())
	}

	t, err := Apply(base, f.Styles)
	if err != nil {
		return nil, fmt.Errorf("theme file '%s': %w", path, err)
	}
	t.Name = f.Name
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	logger.Debugf("Loaded theme '%s' from '%s'", t.Name, path)
	return t, nil
}

// convertStyle applies def on top of base.
func convertStyle(def StyleDef, base tcell.Style) (tcell.Style, error) {
	style := base
	if def.Fg != nil {
		color, err := parseColor(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color: %w", err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColor(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color: %w", err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColor accepts #RRGGBB, the keywords "default" and "reset", and any
// color name tcell knows ("red", "darkslateblue", ...).
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "default":
		return tcell.ColorDefault, nil
	case "reset":
		return tcell.ColorReset, nil
	}
	if strings.HasPrefix(s, "#") && len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
	}
	if c := tcell.GetColor(s); c != tcell.ColorDefault {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
}
