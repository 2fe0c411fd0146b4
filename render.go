package tomledit

import (
	"math"
	"sort"
	"strings"
)

// RenderOrder selects which of the two serializations below a render
// produces (§4.9).
type RenderOrder int

const (
	// DisplayOrder serializes tables in the order they currently appear
	// in the in-memory tree (a pure insertion-order depth-first walk).
	DisplayOrder RenderOrder = iota
	// OriginalOrder serializes every header-style table and array-of-
	// tables element in the document, at any nesting depth, as one flat
	// sequence sorted by source Position — reproducing TOML's ability to
	// interleave sections of different nesting depths in the source text.
	// A table with no Position of its own inherits its nearest preceding
	// sibling's resolved position, falling back to its parent's and
	// ultimately to sorting after every positioned table.
	OriginalOrder
)

// render writes the document to a string under the requested order.
func (doc *Document) render(order RenderOrder) string {
	var b strings.Builder
	if order == OriginalOrder {
		renderOriginalOrder(&b, doc.root)
	} else {
		renderTableBody(&b, doc.root, nil)
	}
	b.WriteString(doc.trailing)
	return b.String()
}

// renderTableBody writes t's own scalar entries — including any reached
// through a chain of dotted-key tables, printed inline on one line —
// followed by its child tables/arrays of tables, each as
// `[path]`/`[[path]]` sections nested directly inside this call. This is
// DisplayOrder: a pure insertion-order depth-first walk, so a table's
// children are always written contiguously right after it. path is the
// chain of ancestor keys leading to t (empty for the root).
func renderTableBody(b *strings.Builder, t *Table, path []Key) {
	leaves, headers := partitionEntries(t)

	for _, leaf := range leaves {
		renderDottedKeyValue(b, leaf.keys, *leaf.item)
	}

	for _, e := range headers {
		childPath := append(append([]Key{}, path...), e.key)
		switch e.item.kind {
		case ItemTable:
			renderTable(b, e.item.table, childPath)
		case ItemArrayOfTables:
			renderArrayOfTables(b, e.item.array, childPath)
		}
	}
}

// headerUnit is one `[path]`/`[[path]]` section, collected regardless of
// nesting depth, for OriginalOrder rendering: TOML lets header sections
// interleave at any depth in the source text, so original order cannot be
// reconstructed by recursing table-by-table — every header in the whole
// document has to be compared against every other header directly.
type headerUnit struct {
	path     []Key
	table    *Table
	isArray  bool
	position uint64
}

// renderOriginalOrder writes root's own leaves, then every header section
// in the whole document (any depth) as one flat sequence ordered by
// position — never recursing into a section's nested header children,
// since those children are themselves separate entries in the same flat
// sequence, possibly sorting far away from their logical parent.
func renderOriginalOrder(b *strings.Builder, root *Table) {
	leaves, _ := partitionEntries(root)
	for _, leaf := range leaves {
		renderDottedKeyValue(b, leaf.keys, *leaf.item)
	}

	var units []*headerUnit
	collectHeaderUnits(root, nil, math.MaxUint64, &units)
	sort.SliceStable(units, func(i, j int) bool { return units[i].position < units[j].position })

	for _, u := range units {
		if u.isArray {
			b.WriteString(u.table.decor.Prefix())
			b.WriteString("[[")
			b.WriteString(dottedPath(u.path))
			b.WriteString("]]")
			b.WriteString(u.table.decor.Suffix())
		} else if !u.table.implicit {
			b.WriteString(u.table.decor.Prefix())
			b.WriteByte('[')
			b.WriteString(dottedPath(u.path))
			b.WriteByte(']')
			b.WriteString(u.table.decor.Suffix())
		}
		ownLeaves, _ := partitionEntries(u.table)
		for _, leaf := range ownLeaves {
			renderDottedKeyValue(b, leaf.keys, *leaf.item)
		}
	}
}

// collectHeaderUnits walks t's own header children left to right — the
// same order DisplayOrder would visit them in — appending one headerUnit
// per Table and per ArrayOfTables element (recursing into each), and
// assigning every unset position by inheritance rather than leaving it
// to sort last globally: a newly created child with no explicit position
// inherits its nearest preceding sibling's resolved position (so it
// sorts in right behind that sibling, per
// test_inserted_leaf_table_goes_after_last_sibling), falling back to
// inherited (the containing table's own resolved position) when it has
// no preceding sibling, and ultimately to math.MaxUint64 when nothing in
// the chain has a position at all.
func collectHeaderUnits(t *Table, path []Key, inherited uint64, out *[]*headerUnit) {
	_, headers := partitionEntries(t)
	last := inherited
	for _, e := range headers {
		childPath := append(append([]Key{}, path...), e.key)
		switch e.item.kind {
		case ItemTable:
			tbl := e.item.table
			pos := last
			if p, ok := tbl.Position(); ok {
				pos = p
			}
			*out = append(*out, &headerUnit{path: childPath, table: tbl, position: pos})
			last = pos
			collectHeaderUnits(tbl, childPath, pos, out)
		case ItemArrayOfTables:
			arr := e.item.array
			for i := 0; i < arr.Len(); i++ {
				elem := arr.Get(i)
				pos := last
				if p, ok := elem.Position(); ok {
					pos = p
				}
				*out = append(*out, &headerUnit{path: childPath, table: elem, isArray: true, position: pos})
				last = pos
				collectHeaderUnits(elem, childPath, pos, out)
			}
		}
	}
}

// dottedLeaf is a value entry found at the end of a chain of one or more
// dotted-key tables, paired with the full key chain needed to print it.
type dottedLeaf struct {
	keys []Key
	item *Item
}

func partitionEntries(t *Table) (leaves []dottedLeaf, headers []*tableEntry) {
	for _, e := range t.entries {
		switch {
		case e.item.IsValue():
			leaves = append(leaves, dottedLeaf{keys: []Key{e.key}, item: &e.item})
		case e.item.kind == ItemTable && e.item.table.dotted:
			leaves = append(leaves, flattenDotted([]Key{e.key}, e.item.table)...)
		default:
			headers = append(headers, e)
		}
	}
	return leaves, headers
}

func flattenDotted(prefix []Key, t *Table) []dottedLeaf {
	var out []dottedLeaf
	for _, e := range t.entries {
		chain := append(append([]Key{}, prefix...), e.key)
		switch {
		case e.item.IsValue():
			out = append(out, dottedLeaf{keys: chain, item: &e.item})
		case e.item.kind == ItemTable && e.item.table.dotted:
			out = append(out, flattenDotted(chain, e.item.table)...)
		}
	}
	return out
}

func renderTable(b *strings.Builder, t *Table, path []Key) {
	if !t.implicit {
		b.WriteString(t.decor.Prefix())
		b.WriteByte('[')
		b.WriteString(dottedPath(path))
		b.WriteByte(']')
		b.WriteString(t.decor.Suffix())
	}
	renderTableBody(b, t, path)
}

func renderArrayOfTables(b *strings.Builder, a *ArrayOfTables, path []Key) {
	for i := 0; i < a.Len(); i++ {
		t := a.Get(i)
		b.WriteString(t.decor.Prefix())
		b.WriteString("[[")
		b.WriteString(dottedPath(path))
		b.WriteString("]]")
		b.WriteString(t.decor.Suffix())
		renderTableBody(b, t, path)
	}
}

func renderDottedKeyValue(b *strings.Builder, keys []Key, item Item) {
	v, ok := item.AsValue()
	if !ok {
		return
	}
	b.WriteString(keys[0].Decor().Prefix())
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k.Raw())
	}
	b.WriteString(keys[len(keys)-1].Decor().Suffix())
	b.WriteByte('=')
	b.WriteString(v.Decor().Prefix())
	b.WriteString(v.render())
	b.WriteString(v.Decor().Suffix())
}
