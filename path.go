package tomledit

// Node is a navigation handle into a table slot, returned by Table.Index
// and Table.Entry (§4.3). It is how this library expresses dotted-path
// navigation and auto-vivification without operator overloading:
// `root.Index("a").Index("b").Index("c")` plays the role spec.md writes
// as `root["a"]["b"]["c"]`.
//
// A Node produced by Entry never inserts anything; one produced by Index
// auto-vivifies the slot it names, and further chained Index calls
// auto-vivify implicit intermediate tables as they go.
type Node struct {
	item   *Item
	remove func() Item
	err    error
}

// Err returns the error that poisoned this handle, if any — set when a
// chain walks through a Value that isn't table-like, or through an
// ArrayOfTables (§4.3: "the step fails... this is intentional so
// assignment to the chain can overwrite").
func (n *Node) Err() error { return n.err }

// IsNone reports whether the node refers to an absent slot.
func (n *Node) IsNone() bool {
	if n.err != nil || n.item == nil {
		return true
	}
	return n.item.IsNone()
}

// Get returns the Item the node refers to (the zero Item if absent or
// poisoned).
func (n *Node) Get() Item {
	if n.err != nil || n.item == nil {
		return Item{}
	}
	return *n.item
}

// Kind reports the item's kind (ItemNone if absent or poisoned).
func (n *Node) Kind() ItemKind { return n.Get().Kind() }

// AsValue returns the wrapped Value, if any.
func (n *Node) AsValue() (Value, bool) { return n.Get().AsValue() }

// AsTable returns the wrapped Table, if any.
func (n *Node) AsTable() (*Table, bool) { return n.Get().AsTable() }

// AsArrayOfTables returns the wrapped ArrayOfTables, if any.
func (n *Node) AsArrayOfTables() (*ArrayOfTables, bool) { return n.Get().AsArrayOfTables() }

// AsTableLike returns a uniform view over a Table or InlineTable value
// (§9).
func (n *Node) AsTableLike() (TableLike, bool) { return n.Get().AsTableLike() }

// Remove deletes the slot this node refers to and returns what was
// there. A node produced by Entry on a missing key removes nothing.
func (n *Node) Remove() Item {
	if n.err != nil || n.remove == nil {
		return Item{}
	}
	return n.remove()
}

// Set assigns item to this slot.
//
// Assigning a freshly-constructed, empty Table (table()) to a slot that
// currently holds an implicit auto-vivified Table promotes it in place
// (implicit ← false) instead of discarding its children (§4.3:
// "Assignment of table() to a slot that was an implicit auto-vivified
// Table promotes it to explicit, preserving any children already
// created under it"). Every other assignment overwrites the slot
// outright — including assigning array(), which always creates a fresh
// ArrayOfTables (§4.3).
func (n *Node) Set(item Item) error {
	if n.err != nil {
		return n.err
	}
	if n.item == nil {
		return ErrCannotAssignToMissingEntry
	}
	if item.kind == ItemTable && n.item.kind == ItemTable &&
		n.item.table.implicit && item.table.Len() == 0 {
		n.item.table.implicit = false
		if d := n.item.table.Decor(); d.Prefix() == "" && d.Suffix() == "" {
			*d = item.table.decor
		}
		return nil
	}
	*n.item = item
	return nil
}

// SetValue assigns a scalar/array/inline-table value to this slot. A
// value built with no decor of its own (e.g. NewStringValue) is given a
// single leading space by default, so `t.Index("x").SetValue(...)`
// renders as `x = ...` without the caller having to think about
// formatting.
func (n *Node) SetValue(v Value) error {
	if d := v.Decor(); d.Prefix() == "" && d.Suffix() == "" {
		d.SetPrefix(" ")
	}
	return n.Set(ValueItem(v))
}

// SetTable assigns a header-style table to this slot, applying the
// implicit-promotion rule described on Set. A table with no decor of its
// own is given `"\n"`/`"\n"` so its header renders on its own line.
func (n *Node) SetTable(t *Table) error {
	if d := t.Decor(); d.Prefix() == "" && d.Suffix() == "" {
		d.SetPrefix("\n")
		d.SetSuffix("\n")
	}
	return n.Set(TableItem(t))
}

// SetArrayOfTables assigns an array of tables to this slot.
func (n *Node) SetArrayOfTables(a *ArrayOfTables) error { return n.Set(ArrayOfTablesItem(a)) }

// Index walks one more level down the path, auto-vivifying as needed
// (§4.3):
//   - a None slot is upgraded to an implicit Table and the walk
//     continues into it;
//   - a Table or InlineTable slot is reused;
//   - any other Value, or an ArrayOfTables, poisons the handle: the
//     returned Node carries a TypeMismatchError and every further
//     operation on it is a no-op, so callers can still recover by
//     assigning a fresh value to overwrite the chain.
func (n *Node) Index(key string) *Node {
	if n.err != nil {
		return &Node{err: n.err}
	}
	if n.item == nil {
		return &Node{err: &TypeMismatchError{Have: ItemNone, Want: ItemTable}}
	}
	switch n.item.kind {
	case ItemNone:
		t := newImplicitTable()
		*n.item = TableItem(t)
		return t.Index(key)
	case ItemTable:
		return n.item.table.Index(key)
	case ItemValue:
		if inl, ok := n.item.value.(*InlineTable); ok {
			return &Node{item: inl.slot(key), remove: func() Item {
				v, ok := inl.Remove(key)
				if !ok {
					return Item{}
				}
				return ValueItem(v)
			}}
		}
		return &Node{err: &TypeMismatchError{Have: ItemValue, Want: ItemTable}}
	default: // ItemArrayOfTables
		return &Node{err: &TypeMismatchError{Have: ItemArrayOfTables, Want: ItemTable}}
	}
}

// Path walks key1.key2... from t, auto-vivifying along the way — a
// convenience equivalent to repeated Index calls.
func (t *Table) Path(keys ...string) *Node {
	if len(keys) == 0 {
		return &Node{err: &TypeMismatchError{Have: ItemNone, Want: ItemTable}}
	}
	n := t.Index(keys[0])
	for _, k := range keys[1:] {
		n = n.Index(k)
	}
	return n
}
