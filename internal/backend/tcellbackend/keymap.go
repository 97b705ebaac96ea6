// internal/backend/tcellbackend/keymap.go
package tcellbackend

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/bethropolis/tide-input/internal/input"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// binding is a normalized key chord. ch is only set for tcell.KeyRune.
type binding struct {
	key tcell.Key
	ch  rune
	mod tcell.ModMask
}

// Keymap maps tcell key events to field actions.
//
// tcell reports no key-release events, so every event it delivers is a
// press or an auto-repeat and is eligible for mapping.
type Keymap struct {
	bindings map[binding]input.Action
}

// NewKeymap creates a keymap with the default emacs-style bindings.
func NewKeymap() *Keymap {
	k := &Keymap{bindings: make(map[binding]input.Action)}
	k.loadDefaultBindings()
	return k
}

func (k *Keymap) loadDefaultBindings() {
	none, ctrl, alt := tcell.ModNone, tcell.ModCtrl, tcell.ModAlt

	// --- Deletion ---
	k.set(tcell.KeyBackspace, 0, none, input.ActionDeletePrevChar) // Also Ctrl-H
	k.set(tcell.KeyBackspace2, 0, none, input.ActionDeletePrevChar)
	k.set(tcell.KeyDelete, 0, none, input.ActionDeleteNextChar)
	k.set(tcell.KeyCtrlW, 0, none, input.ActionDeletePrevWord)
	k.set(tcell.KeyBackspace, 0, alt, input.ActionDeletePrevWord)
	k.set(tcell.KeyBackspace2, 0, alt, input.ActionDeletePrevWord)
	k.set(tcell.KeyRune, 'd', alt, input.ActionDeletePrevWord)
	k.set(tcell.KeyDelete, 0, ctrl, input.ActionDeleteNextWord)
	k.set(tcell.KeyCtrlU, 0, none, input.ActionDeleteLine)
	k.set(tcell.KeyCtrlK, 0, none, input.ActionDeleteTillEnd)

	// --- Movement ---
	k.set(tcell.KeyLeft, 0, none, input.ActionGoToPrevChar)
	k.set(tcell.KeyCtrlB, 0, none, input.ActionGoToPrevChar)
	k.set(tcell.KeyRight, 0, none, input.ActionGoToNextChar)
	k.set(tcell.KeyCtrlF, 0, none, input.ActionGoToNextChar)
	k.set(tcell.KeyLeft, 0, ctrl, input.ActionGoToPrevWord)
	k.set(tcell.KeyRune, 'b', alt, input.ActionGoToPrevWord)
	k.set(tcell.KeyRight, 0, ctrl, input.ActionGoToNextWord)
	k.set(tcell.KeyRune, 'f', alt, input.ActionGoToNextWord)
	k.set(tcell.KeyHome, 0, none, input.ActionGoToStart)
	k.set(tcell.KeyCtrlA, 0, none, input.ActionGoToStart)
	k.set(tcell.KeyEnd, 0, none, input.ActionGoToEnd)
	k.set(tcell.KeyCtrlE, 0, none, input.ActionGoToEnd)

	// --- Terminal ---
	k.set(tcell.KeyEnter, 0, none, input.ActionSubmit)
	k.set(tcell.KeyEscape, 0, none, input.ActionEscape)

	// Tab stays unbound on purpose: fields let it move focus.
}

func (k *Keymap) set(key tcell.Key, ch rune, mod tcell.ModMask, a input.Action) {
	k.bindings[normalize(key, ch, mod)] = a
}

// normalize folds the different ways terminals report the same chord.
func normalize(key tcell.Key, ch rune, mod tcell.ModMask) binding {
	// Ctrl-letter keys already encode Ctrl in the key code. Tab, Enter and
	// Backspace share codes with Ctrl-I, Ctrl-M and Ctrl-H, so Ctrl+Enter
	// submits and Ctrl+Backspace deletes a character like the plain keys.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}
	// Meta and Alt are the same key on most keyboards.
	if mod&tcell.ModMeta != 0 {
		mod = (mod &^ tcell.ModMeta) | tcell.ModAlt
	}
	if key != tcell.KeyRune {
		ch = 0
	}
	return binding{key: key, ch: ch, mod: mod}
}

// Map translates a key event into a command. Printable runes typed plain or
// with Shift insert themselves; everything else must be bound.
func (k *Keymap) Map(ev *tcell.EventKey) (input.Command, bool) {
	if ev == nil {
		return input.Command{}, false
	}
	b := normalize(ev.Key(), ev.Rune(), ev.Modifiers())

	if a, ok := k.bindings[b]; ok {
		return input.Cmd(a), true
	}

	if b.key == tcell.KeyRune && (b.mod == tcell.ModNone || b.mod == tcell.ModShift) && !unicode.IsControl(b.ch) {
		return input.InsertChar(b.ch), true
	}

	logger.DebugTagf("keys", "Keymap: unmapped key %s", ev.Name())
	return input.Command{}, false
}

// Bind attaches an action to a key spec such as "ctrl+u", "alt+b",
// "ctrl+left" or "home". Actions that need a payload cannot be bound.
func (k *Keymap) Bind(spec string, a input.Action) error {
	if a == input.ActionUnknown || a == input.ActionInsertChar || a == input.ActionSetCursor {
		return fmt.Errorf("action %s cannot be bound to a key", a)
	}
	chords, err := parseSpec(spec)
	if err != nil {
		return err
	}
	for _, c := range chords {
		k.bindings[c] = a
	}
	logger.DebugTagf("keys", "Keymap: bound %q to %s", spec, a)
	return nil
}

// Unbind removes whatever is bound to spec.
func (k *Keymap) Unbind(spec string) error {
	chords, err := parseSpec(spec)
	if err != nil {
		return err
	}
	for _, c := range chords {
		delete(k.bindings, c)
	}
	return nil
}

// Apply installs overrides from a config [keys] table mapping key specs to
// action names. The action name "none" removes a binding. All invalid
// entries are reported together; valid ones are still applied.
func (k *Keymap) Apply(overrides map[string]string) error {
	specs := make([]string, 0, len(overrides))
	for spec := range overrides {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	var errs []error
	for _, spec := range specs {
		name := overrides[spec]
		if strings.EqualFold(strings.TrimSpace(name), "none") {
			if err := k.Unbind(spec); err != nil {
				errs = append(errs, fmt.Errorf("key %q: %w", spec, err))
			}
			continue
		}
		a, err := input.ParseAction(name)
		if err == nil {
			err = k.Bind(spec, a)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("key %q: %w", spec, err))
		}
	}
	return errors.Join(errs...)
}

var namedKeys = map[string][]tcell.Key{
	"backspace": {tcell.KeyBackspace, tcell.KeyBackspace2},
	"delete":    {tcell.KeyDelete},
	"del":       {tcell.KeyDelete},
	"insert":    {tcell.KeyInsert},
	"left":      {tcell.KeyLeft},
	"right":     {tcell.KeyRight},
	"up":        {tcell.KeyUp},
	"down":      {tcell.KeyDown},
	"home":      {tcell.KeyHome},
	"end":       {tcell.KeyEnd},
	"pgup":      {tcell.KeyPgUp},
	"pgdn":      {tcell.KeyPgDn},
	"enter":     {tcell.KeyEnter},
	"esc":       {tcell.KeyEscape},
	"escape":    {tcell.KeyEscape},
	"tab":       {tcell.KeyTab},
}

// parseSpec turns "ctrl+alt+x"-style text into the chords it denotes.
func parseSpec(spec string) ([]binding, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	name := parts[len(parts)-1]
	if name == "" {
		return nil, fmt.Errorf("invalid key spec %q", spec)
	}

	mod := tcell.ModNone
	for _, m := range parts[:len(parts)-1] {
		switch m {
		case "ctrl", "control":
			mod |= tcell.ModCtrl
		case "alt", "meta":
			mod |= tcell.ModAlt
		case "shift":
			mod |= tcell.ModShift
		default:
			return nil, fmt.Errorf("invalid modifier %q in key spec %q", m, spec)
		}
	}

	if name == "space" {
		name = " "
	}
	if keys, ok := namedKeys[name]; ok {
		chords := make([]binding, 0, len(keys))
		for _, key := range keys {
			chords = append(chords, normalize(key, 0, mod))
		}
		return chords, nil
	}

	rs := []rune(name)
	if len(rs) != 1 {
		return nil, fmt.Errorf("unknown key %q in key spec %q", name, spec)
	}
	ch := rs[0]
	if mod&tcell.ModCtrl != 0 && ch >= 'a' && ch <= 'z' {
		return []binding{normalize(tcell.KeyCtrlA+tcell.Key(ch-'a'), 0, mod)}, nil
	}
	return []binding{normalize(tcell.KeyRune, ch, mod)}, nil
}
