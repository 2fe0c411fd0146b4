package tomledit

import (
	"fmt"
	"strings"
)

// Array is a TOML array of values (`[ v, v, ... ]`). Every push/insert
// must produce a value whose variant tag matches the tag of existing
// entries (§3.1, §4.7); violating it fails without mutating the array.
type Array struct {
	entries  []Value
	trailing string
	decor    Decor
}

// NewArray constructs an empty Array, as array() does (§4.4) — though
// array() itself always builds an ArrayOfTables; NewArray is the
// analogous constructor for a value-array, used by callers building
// `key = [...]` entries programmatically.
func NewArray() *Array { return &Array{} }

func (a *Array) Kind() ValueKind { return KindArray }
func (a *Array) Decor() *Decor   { return &a.decor }

// Len returns the number of entries.
func (a *Array) Len() int { return len(a.entries) }

// Get returns the entry at i.
func (a *Array) Get(i int) Value { return a.entries[i] }

// Trailing returns the trivia after the last element, before the
// closing bracket.
func (a *Array) Trailing() string { return a.trailing }

// SetTrailing overwrites the trailing trivia.
func (a *Array) SetTrailing(s string) { a.trailing = s }

func (a *Array) checkHomogeneous(v Value) error {
	if len(a.entries) == 0 {
		return nil
	}
	if !sameKind(a.entries[0], v) {
		return &ArrayHeterogeneityError{Have: a.entries[0].Kind(), Got: v.Kind()}
	}
	return nil
}

// Push appends v with synthesized default decor: ", " separator if the
// array is non-empty, nothing if empty (§4.7). Fails without mutating
// the array if v's variant does not match existing entries.
func (a *Array) Push(v Value) error {
	return a.Insert(len(a.entries), v)
}

// PushFormatted appends v with its decor used verbatim (§4.7).
func (a *Array) PushFormatted(v Value) error {
	return a.InsertFormatted(len(a.entries), v)
}

// Insert inserts v at index i with synthesized default decor, shifting
// subsequent entries (§4.7).
func (a *Array) Insert(i int, v Value) error {
	if err := a.checkHomogeneous(v); err != nil {
		return err
	}
	if i > 0 || len(a.entries) > 0 {
		v.Decor().SetPrefix(" ")
	} else {
		v.Decor().SetPrefix("")
	}
	v.Decor().SetSuffix("")
	return a.insertRaw(i, v)
}

// InsertFormatted inserts v at index i, keeping v's decor exactly as
// given (§4.7).
func (a *Array) InsertFormatted(i int, v Value) error {
	if err := a.checkHomogeneous(v); err != nil {
		return err
	}
	return a.insertRaw(i, v)
}

func (a *Array) insertRaw(i int, v Value) error {
	if i < 0 || i > len(a.entries) {
		return fmt.Errorf("tomledit: array insert index %d out of range [0,%d]", i, len(a.entries))
	}
	a.entries = append(a.entries, nil)
	copy(a.entries[i+1:], a.entries[i:])
	a.entries[i] = v
	return nil
}

// Replace substitutes the value at i, preserving the old value's decor
// (§4.7). It returns the replaced value.
func (a *Array) Replace(i int, v Value) (Value, error) {
	if err := a.checkHomogeneous(v); err != nil {
		return nil, err
	}
	old := a.entries[i]
	*v.Decor() = *old.Decor()
	a.entries[i] = v
	return old, nil
}

// ReplaceFormatted substitutes the value at i, replacing decor entirely
// with v's own (§4.7). It returns the replaced value.
func (a *Array) ReplaceFormatted(i int, v Value) (Value, error) {
	if err := a.checkHomogeneous(v); err != nil {
		return nil, err
	}
	old := a.entries[i]
	a.entries[i] = v
	return old, nil
}

// appendParsed appends v without checking homogeneity, for the parser:
// a source file predating the homogeneity convention, or simply
// handwritten, may already mix value kinds, and parsing must preserve
// whatever is on disk rather than reject it.
func (a *Array) appendParsed(v Value) { a.entries = append(a.entries, v) }

// Remove removes and returns the entry at i; neighbour decor is
// untouched (§4.7).
func (a *Array) Remove(i int) Value {
	v := a.entries[i]
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	return v
}

// Fmt normalizes every entry's decor to a single canonical form
// (", " separators, no surrounding spaces) and clears the trailing
// trivia (§4.7).
func (a *Array) Fmt() {
	for i, v := range a.entries {
		if i == 0 {
			v.Decor().SetPrefix("")
		} else {
			v.Decor().SetPrefix(" ")
		}
		v.Decor().SetSuffix("")
	}
	a.trailing = ""
}

func (a *Array) render() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.entries {
		b.WriteString(v.Decor().Prefix())
		b.WriteString(v.render())
		b.WriteString(v.Decor().Suffix())
		if i < len(a.entries)-1 {
			b.WriteByte(',')
		}
	}
	b.WriteString(a.trailing)
	b.WriteByte(']')
	return b.String()
}
