package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gdamore/tcell/v2"
)

// Key identifies a terminal key, Rune is only meaningful when Code is tcell.KeyRune
type Key struct {
	Code tcell.Key
	Rune rune
}

// String returns the binding name accepted by ParseKey
func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		if k.Rune == ' ' {
			return "space"
		}
		return string(k.Rune)
	}
	for name, code := range specialKeyNames {
		if code == k.Code {
			return name
		}
	}
	return fmt.Sprintf("key(%d)", k.Code)
}

var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"esc":    tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

// ParseKey resolves a binding name: a special key name, "space", or a single character
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(name)
	if code, ok := specialKeyNames[lower]; ok {
		return Key{Code: code}, nil
	}
	if lower == "space" {
		return Key{Code: tcell.KeyRune, Rune: ' '}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Key{Code: tcell.KeyRune, Rune: r}, nil
	}
	return Key{}, fmt.Errorf("unknown key %q", name)
}

// KeyTable maps keys to actions, iteration follows binding order for the help overlay
type KeyTable struct {
	keys *orderedmap.OrderedMap[Key, Action]
}

// NewKeyTable creates an empty table
func NewKeyTable() *KeyTable {
	return &KeyTable{keys: orderedmap.NewOrderedMap[Key, Action]()}
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	t := NewKeyTable()
	t.Set(Key{Code: tcell.KeyRune, Rune: 'a'}, ActionAccelerate)
	t.Set(Key{Code: tcell.KeyRune, Rune: 'z'}, ActionDecelerate)
	t.Set(Key{Code: tcell.KeyLeft}, ActionLeft)
	t.Set(Key{Code: tcell.KeyRight}, ActionRight)
	// Inverted stick: pulling back (down) climbs
	t.Set(Key{Code: tcell.KeyDown}, ActionClimb)
	t.Set(Key{Code: tcell.KeyUp}, ActionFall)
	t.Set(Key{Code: tcell.KeyRune, Rune: ' '}, ActionFire)
	t.Set(Key{Code: tcell.KeyEscape}, ActionQuit)
	t.Set(Key{Code: tcell.KeyCtrlC}, ActionQuit)
	t.Set(Key{Code: tcell.KeyRune, Rune: 'q'}, ActionQuit)
	t.Set(Key{Code: tcell.KeyRune, Rune: '?'}, ActionToggleHelp)
	t.Set(Key{Code: tcell.KeyRune, Rune: 'm'}, ActionToggleMute)
	return t
}

// Set binds a key, replacing any previous binding; ActionNone unbinds
func (t *KeyTable) Set(k Key, a Action) {
	if a == ActionNone {
		t.keys.Delete(k)
		return
	}
	t.keys.Set(k, a)
}

// Bind resolves names and binds every key to the action
func (t *KeyTable) Bind(action string, keys []string) error {
	a, err := ParseAction(action)
	if err != nil {
		return err
	}
	for _, name := range keys {
		k, err := ParseKey(name)
		if err != nil {
			return fmt.Errorf("binding %s: %w", action, err)
		}
		t.Set(k, a)
	}
	return nil
}

// Lookup returns the action for a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	k := Key{Code: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		k.Rune = ev.Rune()
	}
	return t.keys.Get(k)
}

// Binding is one row of the help overlay
type Binding struct {
	Key    Key
	Action Action
}

// Bindings lists all bindings in insertion order
func (t *KeyTable) Bindings() []Binding {
	out := make([]Binding, 0, t.keys.Len())
	for el := t.keys.Front(); el != nil; el = el.Next() {
		out = append(out, Binding{Key: el.Key, Action: el.Value})
	}
	return out
}
