package tomledit

// ArrayOfTables is a sequence of Tables rendered as repeated `[[path]]`
// headers, one per entry (§3.1).
type ArrayOfTables struct {
	entries []*Table
}

// NewArrayOfTables constructs an empty ArrayOfTables, as array() does
// (§4.4).
func NewArrayOfTables() *ArrayOfTables { return &ArrayOfTables{} }

// Len returns the number of tables.
func (a *ArrayOfTables) Len() int { return len(a.entries) }

// Get returns the table at i.
func (a *ArrayOfTables) Get(i int) *Table { return a.entries[i] }

// Append adds table at the end and returns it (§4.6).
func (a *ArrayOfTables) Append(table *Table) *Table {
	a.entries = append(a.entries, table)
	return table
}

// Remove removes and discards the table at i. Subsequent entries' decor
// is unchanged (§4.6).
func (a *ArrayOfTables) Remove(i int) {
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
}

// Iter returns the tables in order.
func (a *ArrayOfTables) Iter() []*Table { return a.entries }
