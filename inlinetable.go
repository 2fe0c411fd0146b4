package tomledit

import "strings"

// InlineTable is a TOML table written `{ k = v, ... }` on a single line.
// It is a Value, not a header-style container: its entries are ordered
// Key→Value pairs, restricted (by construction) to None/Value items —
// header-style Table/ArrayOfTables cannot appear inside one (§3.1, §4.8).
type InlineTable struct {
	entries  []*inlineTableEntry
	index    map[string]int
	preamble string
	trailing string
	decor    Decor
}

type inlineTableEntry struct {
	key  Key
	item Item
}

// NewInlineTable constructs an empty InlineTable.
func NewInlineTable() *InlineTable {
	return &InlineTable{index: make(map[string]int)}
}

func (it *InlineTable) Kind() ValueKind { return KindInlineTable }
func (it *InlineTable) Decor() *Decor   { return &it.decor }

// Len returns the number of entries.
func (it *InlineTable) Len() int { return len(it.entries) }

// Preamble returns the trivia right after the opening brace, before the
// first entry's own prefix.
func (it *InlineTable) Preamble() string { return it.preamble }

// SetPreamble overwrites the preamble trivia.
func (it *InlineTable) SetPreamble(s string) { it.preamble = s }

// ContainsKey reports whether key is present.
func (it *InlineTable) ContainsKey(key string) bool {
	_, ok := it.index[key]
	return ok
}

// slot returns the *Item for key, inserting a None entry with default
// get_or_insert formatting (a single leading space, §4.8) if absent.
// This is the hook path.go's navigation uses to walk through an inline
// table the same way it walks through a Table.
func (it *InlineTable) slot(key string) *Item {
	if i, ok := it.index[key]; ok {
		return &it.entries[i].item
	}
	e := &inlineTableEntry{key: NewKey(key).SetDecor(NewDecor(" ", " "))}
	it.index[key] = len(it.entries)
	it.entries = append(it.entries, e)
	return &e.item
}

// GetOrInsert returns the existing value at key, or inserts def
// formatted as `" key = value"` and returns it (§4.8).
func (it *InlineTable) GetOrInsert(key string, def interface{}) (Value, error) {
	slot := it.slot(key)
	if !slot.IsNone() {
		v, ok := slot.AsValue()
		if !ok {
			return nil, &TypeMismatchError{Have: slot.Kind(), Want: ItemValue}
		}
		return v, nil
	}
	v, err := value(def)
	if err != nil {
		return nil, err
	}
	v.Decor().SetPrefix(" ")
	*slot = ValueItem(v)
	return v, nil
}

// Remove removes key, returning its value if present. Neighbour decor is
// untouched (§4.8).
func (it *InlineTable) Remove(key string) (Value, bool) {
	i, ok := it.index[key]
	if !ok {
		return nil, false
	}
	removed := it.entries[i]
	it.entries = append(it.entries[:i], it.entries[i+1:]...)
	delete(it.index, key)
	for k, idx := range it.index {
		if idx > i {
			it.index[k] = idx - 1
		}
	}
	v, _ := removed.item.AsValue()
	return v, true
}

// Fmt normalizes entries to `{ k = v, k = v }` form.
func (it *InlineTable) Fmt() {
	it.preamble = ""
	it.trailing = " "
	for _, e := range it.entries {
		e.key.decor = NewDecor(" ", " ")
		if v, ok := e.item.AsValue(); ok {
			v.Decor().SetPrefix(" ")
			v.Decor().SetSuffix("")
		}
	}
}

// MergeInto moves every entry of it not already present (by key) into
// other, leaving it empty; entries already present in other are kept
// (first-writer-wins, §4.8).
func (it *InlineTable) MergeInto(other *InlineTable) {
	for _, e := range it.entries {
		if other.ContainsKey(e.key.Parsed()) {
			continue
		}
		other.index[e.key.Parsed()] = len(other.entries)
		other.entries = append(other.entries, e)
	}
	it.entries = nil
	it.index = make(map[string]int)
}

func (it *InlineTable) render() string {
	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(it.preamble)
	for i, e := range it.entries {
		v, _ := e.item.AsValue()
		b.WriteString(e.key.decor.Prefix())
		b.WriteString(e.key.Raw())
		b.WriteString(e.key.decor.Suffix())
		b.WriteByte('=')
		if v != nil {
			b.WriteString(v.Decor().Prefix())
			b.WriteString(v.render())
			b.WriteString(v.Decor().Suffix())
		}
		if i < len(it.entries)-1 {
			b.WriteByte(',')
		}
	}
	b.WriteString(it.trailing)
	b.WriteByte('}')
	return b.String()
}

// iter returns the ordered (Key, Item) pairs, for iteration helpers.
func (it *InlineTable) iter() []*inlineTableEntry { return it.entries }

// asTableLike adapts InlineTable to the table-like capability shared
// with Table (§9): length, get, and an entry iterator.
func (it *InlineTable) asTableLike() TableLike { return inlineTableLike{it} }

type inlineTableLike struct{ it *InlineTable }

func (l inlineTableLike) Len() int { return l.it.Len() }
func (l inlineTableLike) Get(key string) Item {
	if i, ok := l.it.index[key]; ok {
		return l.it.entries[i].item
	}
	return Item{}
}
func (l inlineTableLike) Keys() []string {
	keys := make([]string, len(l.it.entries))
	for i, e := range l.it.entries {
		keys[i] = e.key.Parsed()
	}
	return keys
}
