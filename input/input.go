// Package input provides the single line text input of the search bar.
package input

import (
	tea "charm.land/bubbletea/v2"

	"searchbar/style"
)

// TextInput is an editable text field
type TextInput struct {
	value     []rune
	cursor    int
	maxLength int
}

func New(value string, maxLength int) TextInput {
	if maxLength <= 0 {
		maxLength = 100 // Default max length
	}
	runes := []rune(value)
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	return TextInput{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
	}
}

// Update edits the value and reports whether it changed.
func (t TextInput) Update(msg tea.Msg) (TextInput, bool) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return t, false
	}

	old := string(t.value)

	switch key.String() {
	case "backspace":
		if t.cursor > 0 {
			t.value = splice(t.value, t.cursor-1, t.cursor, nil)
			t.cursor--
		}
	case "delete":
		if t.cursor < len(t.value) {
			t.value = splice(t.value, t.cursor, t.cursor+1, nil)
		}
	case "left":
		if t.cursor > 0 {
			t.cursor--
		}
	case "right":
		if t.cursor < len(t.value) {
			t.cursor++
		}
	case "home", "ctrl+a":
		t.cursor = 0
	case "end", "ctrl+e":
		t.cursor = len(t.value)
	case "ctrl+u":
		t.value = nil
		t.cursor = 0
	default:
		// Insert typed text when it fits
		text := []rune(key.Text)
		if len(text) > 0 && len(t.value)+len(text) <= t.maxLength {
			t.value = splice(t.value, t.cursor, t.cursor, text)
			t.cursor += len(text)
		}
	}

	return t, string(t.value) != old
}

// Reset clears the value.
func (t TextInput) Reset() TextInput {
	t.value = nil
	t.cursor = 0
	return t
}

func (t TextInput) Value() string {
	return string(t.value)
}

func (t TextInput) Cursor() int {
	return t.cursor
}

// Render shows the value with the cursor cell reversed.
func (t TextInput) Render() string {
	under := " "
	after := ""
	if t.cursor < len(t.value) {
		under = string(t.value[t.cursor])
		after = string(t.value[t.cursor+1:])
	}
	return string(t.value[:t.cursor]) + style.CursorStyle.Render(under) + after
}

// unexported

func splice(runes []rune, from, to int, insert []rune) []rune {
	out := make([]rune, 0, len(runes)-(to-from)+len(insert))
	out = append(out, runes[:from]...)
	out = append(out, insert...)
	return append(out, runes[to:]...)
}
