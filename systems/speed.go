package systems

import (
	"math"
	"strconv"
	"strings"
)

// DefaultSpeed is the fallback multiplier for empty or malformed input.
const DefaultSpeed = 1.0

// ParseSpeed parses a speed multiplier from user text.
// Empty, non-numeric, non-finite or negative input falls back to DefaultSpeed.
// The second return value is the canonical text for the parsed value.
func ParseSpeed(s string) (float64, string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		v = DefaultSpeed
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return v, FormatSpeed(v)
}

// FormatSpeed renders a multiplier in its shortest form; whole values have no fraction.
func FormatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EditOp is a single text-field editing operation.
type EditOp uint8

const (
	EditInsert EditOp = iota
	EditBackspace
	EditDelete
	EditLeft
	EditRight
	EditHome
	EditEnd
	EditCommit
)

// TextEdit is one edit applied to the speed field.
type TextEdit struct {
	Op   EditOp
	Rune rune // for EditInsert
}

// SpeedField is the editable text backing the speed multiplier.
// Edits change only the text; Commit parses it and updates Value.
type SpeedField struct {
	text   []rune
	cursor int
	value  float64
}

// NewSpeedField creates a field holding the canonical form of v.
func NewSpeedField(v float64) *SpeedField {
	f := &SpeedField{}
	f.set(v, FormatSpeed(v))
	return f
}

// Apply performs one edit. It returns true when the edit committed a new value.
func (f *SpeedField) Apply(e TextEdit) bool {
	switch e.Op {
	case EditInsert:
		f.text = append(f.text[:f.cursor], append([]rune{e.Rune}, f.text[f.cursor:]...)...)
		f.cursor++
	case EditBackspace:
		if f.cursor > 0 {
			f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
			f.cursor--
		}
	case EditDelete:
		if f.cursor < len(f.text) {
			f.text = append(f.text[:f.cursor], f.text[f.cursor+1:]...)
		}
	case EditLeft:
		if f.cursor > 0 {
			f.cursor--
		}
	case EditRight:
		if f.cursor < len(f.text) {
			f.cursor++
		}
	case EditHome:
		f.cursor = 0
	case EditEnd:
		f.cursor = len(f.text)
	case EditCommit:
		f.Commit()
		return true
	}
	return false
}

// Commit parses the current text, stores the value and rewrites the text canonically.
func (f *SpeedField) Commit() float64 {
	v, canonical := ParseSpeed(string(f.text))
	f.set(v, canonical)
	return v
}

func (f *SpeedField) set(v float64, text string) {
	f.value = v
	f.text = []rune(text)
	f.cursor = len(f.text)
}

// Value returns the last committed multiplier.
func (f *SpeedField) Value() float64 {
	return f.value
}

// Text returns the current, possibly uncommitted, text.
func (f *SpeedField) Text() string {
	return string(f.text)
}

// Cursor returns the cursor position in runes.
func (f *SpeedField) Cursor() int {
	return f.cursor
}
