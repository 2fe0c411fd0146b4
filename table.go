package tomledit

import "sort"

// Table is a header-style container: ordered Key→Item entries plus the
// header's own Decor, an implicit flag, and an optional rendering
// position hint (§3.1).
//
// implicit = true means the header (e.g. `[a.b]`) was never literally
// present in source; the table exists only as a parent for deeper
// headers and is not rendered as a header of its own (§3.1, §4.3).
type Table struct {
	entries  []*tableEntry
	index    map[string]int
	decor    Decor
	implicit bool
	dotted   bool
	position *uint64
}

type tableEntry struct {
	key  Key
	item Item
}

// NewTable constructs an empty, explicit Table, as table() does (§4.4).
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

func newImplicitTable() *Table {
	t := NewTable()
	t.implicit = true
	return t
}

// Decor returns the header's own trivia.
func (t *Table) Decor() *Decor { return &t.decor }

// Implicit reports whether the table's header was synthesized by
// auto-vivification rather than appearing literally in source.
func (t *Table) Implicit() bool { return t.implicit }

// SetImplicit toggles header rendering (§4.5).
func (t *Table) SetImplicit(b bool) { t.implicit = b }

// Dotted reports whether t exists only as the tail of a dotted-key
// assignment (e.g. the `b` in `b.c = 1`): such a table never gets a
// bracket header of its own, even an implicit one — it always renders
// inline as part of its leaves' dotted key chain.
func (t *Table) Dotted() bool { return t.dotted }

// SetDotted toggles dotted-chain rendering.
func (t *Table) SetDotted(b bool) { t.dotted = b }

// Position returns the original-order rendering hint and whether one is
// set (§3.1, §4.9).
func (t *Table) Position() (uint64, bool) {
	if t.position == nil {
		return 0, false
	}
	return *t.position, true
}

// SetPosition sets the original-order rendering hint (§4.5).
func (t *Table) SetPosition(n uint64) { t.position = &n }

// Len returns the number of entries (TableLike).
func (t *Table) Len() int { return len(t.entries) }

// Keys returns the entry keys in insertion order (TableLike).
func (t *Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.key.Parsed()
	}
	return keys
}

// Get returns the Item at key, or the None item if absent, without
// creating a slot (TableLike).
func (t *Table) Get(key string) Item {
	if i, ok := t.index[key]; ok {
		return t.entries[i].item
	}
	return Item{}
}

// slot returns the *Item at key, inserting a None entry if absent. This
// is the auto-vivifying primitive path.go's Index builds on (§4.3).
func (t *Table) slot(key string) *Item {
	if i, ok := t.index[key]; ok {
		return &t.entries[i].item
	}
	e := &tableEntry{key: NewKey(key).SetDecor(NewDecor("\n", " "))}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, e)
	return &e.item
}

// Insert adds or overwrites the slot at key. New keys preserve insertion
// order; existing keys keep their position (§4.5).
func (t *Table) Insert(key string, item Item) {
	*t.slot(key) = item
}

// InsertKey is like Insert, but lets the caller supply a fully-formed
// Key (e.g. one produced by the parser, carrying its own raw
// representation and decor) instead of deriving one from a bare name.
func (t *Table) InsertKey(key Key, item Item) {
	if i, ok := t.index[key.Parsed()]; ok {
		t.entries[i].item = item
		return
	}
	t.index[key.Parsed()] = len(t.entries)
	t.entries = append(t.entries, &tableEntry{key: key, item: item})
}

// Remove removes key, returning the removed Item (the zero Item, which
// IsNone, if key was absent). Sibling decor is untouched (§4.5).
func (t *Table) Remove(key string) Item {
	i, ok := t.index[key]
	if !ok {
		return Item{}
	}
	removed := t.entries[i].item
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	delete(t.index, key)
	for k, idx := range t.index {
		if idx > i {
			t.index[k] = idx - 1
		}
	}
	return removed
}

// Entry returns a non-vivifying navigation handle for key: if key is
// absent, the handle reports IsNone without inserting anything
// (§4.3 entry()).
func (t *Table) Entry(key string) *Node {
	if i, ok := t.index[key]; ok {
		return &Node{item: &t.entries[i].item, remove: func() Item { return t.Remove(key) }}
	}
	return &Node{item: nil, remove: func() Item { return t.Remove(key) }}
}

// Index returns an auto-vivifying navigation handle for key, creating a
// None slot if absent (§4.3).
func (t *Table) Index(key string) *Node {
	return &Node{item: t.slot(key), remove: func() Item { return t.Remove(key) }}
}

// TableEntry is one (Key, *Item) pair yielded by Table.Entries.
type TableEntry struct {
	Key  Key
	Item *Item
}

// Entries returns the ordered entries for direct iteration and
// in-place mutation (iter_mut, §4.5). Mutating the returned Item pointers
// mutates the table.
func (t *Table) Entries() []TableEntry {
	out := make([]TableEntry, len(t.entries))
	for i, e := range t.entries {
		out[i] = TableEntry{Key: e.key, Item: &t.entries[i].item}
	}
	return out
}

// SortValues sorts only the immediate value entries (not child
// tables/arrays-of-tables) by key, stably. Child-table entries retain
// their relative order, placed after the sorted value block (§4.5,
// §9 open question: non-values interleaved with values are gathered
// after the sorted values rather than left interleaved).
//
// Each value entry's Decor travels with its key, so a comment "glued"
// to a key moves with it (§4.5, §8 scenario 3).
func (t *Table) SortValues() {
	var values []*tableEntry
	var rest []*tableEntry
	for _, e := range t.entries {
		if e.item.IsValue() {
			values = append(values, e)
		} else {
			rest = append(rest, e)
		}
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].key.Parsed() < values[j].key.Parsed()
	})
	merged := make([]*tableEntry, 0, len(t.entries))
	merged = append(merged, values...)
	merged = append(merged, rest...)
	t.entries = merged
	t.reindex()
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.entries))
	for i, e := range t.entries {
		t.index[e.key.Parsed()] = i
	}
}
