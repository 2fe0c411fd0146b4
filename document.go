package tomledit

// Document is a fully parsed TOML document: the root Table, plus any
// trivia trailing the last entry (blank lines or comments at end of
// file, §3.1).
type Document struct {
	root     *Table
	trailing string
}

// Root returns the document's root table, the entry point for every
// read and mutation (§4.1).
func (doc *Document) Root() *Table { return doc.root }

// Parse builds a Document from raw TOML source, attaching Decor to every
// node so the source's formatting survives future edits (§4.1).
func Parse(data []byte) (*Document, error) {
	p := &parser{s: newScanner(data), positionSeq: new(uint64)}
	doc, err := p.parseDocument()
	if err != nil {
		if pe, ok := err.(*parseError); ok {
			return nil, wrapParseError(data, pe)
		}
		return nil, err
	}
	return doc, nil
}

// String renders the document in display order: a pure insertion-order
// depth-first walk of the in-memory tree (§4.9).
func (doc *Document) String() string { return doc.render(DisplayOrder) }

// StringInOriginalOrder renders the document with header-style tables
// and arrays of tables sorted by the source position they were parsed
// at, so an untouched document round-trips byte-for-byte (§4.9).
func (doc *Document) StringInOriginalOrder() string { return doc.render(OriginalOrder) }
