// TOML parser: builds a Document tree from source bytes, attaching a
// Decor to every key and value so the source formatting survives future
// edits.

package tomledit

import (
	"fmt"
	"strings"
)

type parser struct {
	s           *scanner
	positionSeq *uint64
}

func (p *parser) nextPosition() uint64 {
	*p.positionSeq++
	return *p.positionSeq
}

func (p *parser) parseDocument() (*Document, error) {
	root := NewTable()
	doc := &Document{root: root}
	current := root

	for {
		prefix := p.s.scanPrefix()
		if p.s.eof() {
			doc.trailing = prefix
			return doc, nil
		}

		if p.s.peek() == '[' {
			if p.s.peekAt(1) == '[' {
				p.s.pos += 2
				keys, err := p.parseHeaderKeys()
				if err != nil {
					return nil, err
				}
				if p.s.peek() != ']' || p.s.peekAt(1) != ']' {
					return nil, p.s.errHere("expected ]] to close array-of-tables header")
				}
				p.s.pos += 2
				suffix := p.s.scanSuffix()
				t, err := navigateArrayOfTablesHeader(root, keys, p.nextPosition())
				if err != nil {
					return nil, err
				}
				t.decor = NewDecor(prefix, suffix)
				current = t
			} else {
				p.s.pos++
				keys, err := p.parseHeaderKeys()
				if err != nil {
					return nil, err
				}
				if p.s.peek() != ']' {
					return nil, p.s.errHere("expected ] to close table header")
				}
				p.s.pos++
				suffix := p.s.scanSuffix()
				t, err := navigateTableHeader(root, keys, p.nextPosition())
				if err != nil {
					return nil, err
				}
				t.decor = NewDecor(prefix, suffix)
				current = t
			}
			continue
		}

		if err := p.parseKeyValueLine(current, prefix); err != nil {
			return nil, err
		}
	}
}

// parseHeaderKeys parses the dotted key path inside `[...]`/`[[...]]`,
// tolerating inline space around the dots (which header syntax does not
// preserve — only key=value decor round-trips exactly).
func (p *parser) parseHeaderKeys() ([]Key, error) {
	var keys []Key
	for {
		p.s.skipInlineSpace()
		k, err := p.parseKeySegment()
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		p.s.skipInlineSpace()
		if p.s.peek() == '.' {
			p.s.advance()
			continue
		}
		break
	}
	return keys, nil
}

func (p *parser) parseKeySegment() (Key, error) {
	switch p.s.peek() {
	case '"':
		raw, err := p.s.scanBasicString()
		if err != nil {
			return Key{}, err
		}
		parsed, err := decodeBasicStringBody(raw)
		if err != nil {
			return Key{}, err
		}
		return Key{raw: raw, parsed: parsed}, nil
	case '\'':
		raw, err := p.s.scanLiteralString()
		if err != nil {
			return Key{}, err
		}
		return Key{raw: raw, parsed: decodeLiteralStringBody(raw)}, nil
	default:
		raw := p.s.scanBareKey()
		if raw == "" {
			return Key{}, p.s.errHere("expected a key")
		}
		return Key{raw: raw, parsed: raw}, nil
	}
}

// parseKeyValueLine parses `key[.key...] = value` and inserts it into
// current, auto-vivifying any dotted-key ancestor tables.
func (p *parser) parseKeyValueLine(current *Table, leadingPrefix string) error {
	var keys []Key
	for {
		k, err := p.parseKeySegment()
		if err != nil {
			return err
		}
		keys = append(keys, k)

		rewind := p.s.pos
		p.s.skipInlineSpace()
		if p.s.peek() == '.' {
			p.s.advance()
			p.s.skipInlineSpace()
			continue
		}
		p.s.pos = rewind
		break
	}

	suffixStart := p.s.pos
	p.s.skipInlineSpace()
	suffixBeforeEquals := string(p.s.data[suffixStart:p.s.pos])

	last := len(keys) - 1
	if last == 0 {
		keys[0] = keys[0].SetDecor(NewDecor(leadingPrefix, suffixBeforeEquals))
	} else {
		keys[0] = keys[0].SetDecor(NewDecor(leadingPrefix, ""))
		keys[last] = keys[last].SetDecor(NewDecor("", suffixBeforeEquals))
	}

	if p.s.peek() != '=' {
		return p.s.errHere("expected '=' after key")
	}
	p.s.advance()

	valuePrefixStart := p.s.pos
	p.s.skipInlineSpace()
	valuePrefix := string(p.s.data[valuePrefixStart:p.s.pos])

	v, err := p.parseValue()
	if err != nil {
		return err
	}
	v.Decor().SetPrefix(valuePrefix)
	v.Decor().SetSuffix(p.s.scanSuffix())

	t := current
	for _, k := range keys[:last] {
		t, err = vivifyDotted(t, k)
		if err != nil {
			return err
		}
	}
	if !t.Get(keys[last].Parsed()).IsNone() {
		return fmt.Errorf("tomledit: key %q redefined", dottedPath(keys))
	}
	t.InsertKey(keys[last], ValueItem(v))
	return nil
}

func vivifyDotted(t *Table, k Key) (*Table, error) {
	existing := t.Get(k.Parsed())
	if existing.IsNone() {
		child := newImplicitTable()
		child.dotted = true
		t.InsertKey(k, TableItem(child))
		return child, nil
	}
	if tbl, ok := existing.AsTable(); ok {
		return tbl, nil
	}
	return nil, fmt.Errorf("tomledit: cannot use %q as a dotted-key table, it is already a %s", k.Parsed(), existing.Kind())
}

// stepIntoHeaderAncestor walks one segment of a header path through
// t, auto-vivifying an implicit table if the segment is new, reusing an
// existing table, or descending into the last entry of an existing array
// of tables (§4.1 "[a.b] after [[a]] extends the last element of a").
func stepIntoHeaderAncestor(t *Table, k Key) (*Table, error) {
	existing := t.Get(k.Parsed())
	switch {
	case existing.IsNone():
		nt := newImplicitTable()
		t.InsertKey(k, TableItem(nt))
		return nt, nil
	case existing.kind == ItemTable:
		return existing.table, nil
	case existing.kind == ItemArrayOfTables:
		arr := existing.array
		if arr.Len() == 0 {
			return nil, fmt.Errorf("tomledit: cannot descend into empty array of tables %q", k.Parsed())
		}
		return arr.Get(arr.Len() - 1), nil
	default:
		return nil, fmt.Errorf("tomledit: key %q is not a table", k.Parsed())
	}
}

func navigateTableHeader(root *Table, keys []Key, pos uint64) (*Table, error) {
	t := root
	var err error
	for _, k := range keys[:len(keys)-1] {
		t, err = stepIntoHeaderAncestor(t, k)
		if err != nil {
			return nil, err
		}
	}

	final := keys[len(keys)-1]
	existing := t.Get(final.Parsed())
	switch {
	case existing.IsNone():
		nt := NewTable()
		nt.SetPosition(pos)
		t.InsertKey(final, TableItem(nt))
		return nt, nil
	case existing.kind == ItemTable:
		nt := existing.table
		if !nt.implicit && !nt.dotted {
			return nil, fmt.Errorf("tomledit: table %q redefined", dottedPath(keys))
		}
		nt.implicit = false
		nt.dotted = false
		nt.SetPosition(pos)
		return nt, nil
	default:
		return nil, fmt.Errorf("tomledit: key %q already defined as a non-table", dottedPath(keys))
	}
}

func navigateArrayOfTablesHeader(root *Table, keys []Key, pos uint64) (*Table, error) {
	t := root
	var err error
	for _, k := range keys[:len(keys)-1] {
		t, err = stepIntoHeaderAncestor(t, k)
		if err != nil {
			return nil, err
		}
	}

	final := keys[len(keys)-1]
	existing := t.Get(final.Parsed())
	var arr *ArrayOfTables
	switch {
	case existing.IsNone():
		arr = NewArrayOfTables()
		t.InsertKey(final, ArrayOfTablesItem(arr))
	case existing.kind == ItemArrayOfTables:
		arr = existing.array
	default:
		return nil, fmt.Errorf("tomledit: key %q already defined, cannot redefine as an array of tables", dottedPath(keys))
	}
	nt := arr.Append(NewTable())
	nt.SetPosition(pos)
	return nt, nil
}

func (p *parser) parseValue() (Value, error) {
	switch p.s.peek() {
	case '"':
		raw, err := p.s.scanBasicString()
		if err != nil {
			return nil, err
		}
		parsed, err := decodeBasicStringBody(raw)
		if err != nil {
			return nil, err
		}
		v := NewStringValue(parsed)
		v.SetRepr(NewRepr(raw))
		return v, nil
	case '\'':
		raw, err := p.s.scanLiteralString()
		if err != nil {
			return nil, err
		}
		v := NewStringValue(decodeLiteralStringBody(raw))
		v.SetRepr(NewRepr(raw))
		return v, nil
	case '[':
		return p.parseArray()
	case '{':
		return p.parseInlineTable()
	default:
		raw := p.s.scanBareToken()
		if raw == "" {
			return nil, p.s.errHere("expected a value")
		}
		return classifyBareToken(raw)
	}
}

func (p *parser) parseArray() (Value, error) {
	p.s.advance() // '['
	arr := NewArray()
	for {
		prefix := p.s.scanPrefix()
		if p.s.peek() == ']' {
			arr.trailing = prefix
			p.s.advance()
			return arr, nil
		}
		if p.s.eof() {
			return nil, p.s.errHere("unterminated array")
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		v.Decor().SetPrefix(prefix)
		v.Decor().SetSuffix(p.s.scanUntil(",]"))
		arr.appendParsed(v)
		if p.s.peek() == ',' {
			p.s.advance()
		}
	}
}

func (p *parser) parseInlineTable() (Value, error) {
	p.s.advance() // '{'
	it := NewInlineTable()
	first := true
	for {
		if !first {
			p.s.skipInlineSpace()
			if p.s.peek() == '}' {
				p.s.advance()
				return it, nil
			}
			if p.s.peek() != ',' {
				return nil, p.s.errHere("expected ',' or '}' in inline table")
			}
			p.s.advance()
		}

		prefixStart := p.s.pos
		p.s.skipInlineSpace()
		prefix := string(p.s.data[prefixStart:p.s.pos])

		if p.s.peek() == '}' {
			it.trailing = prefix
			p.s.advance()
			return it, nil
		}
		if p.s.eof() {
			return nil, p.s.errHere("unterminated inline table")
		}

		first = false
		k, err := p.parseKeySegment()
		if err != nil {
			return nil, err
		}
		suffixStart := p.s.pos
		p.s.skipInlineSpace()
		k = k.SetDecor(NewDecor(prefix, string(p.s.data[suffixStart:p.s.pos])))

		if p.s.peek() != '=' {
			return nil, p.s.errHere("expected '=' in inline table entry")
		}
		p.s.advance()

		vPrefixStart := p.s.pos
		p.s.skipInlineSpace()
		vPrefix := string(p.s.data[vPrefixStart:p.s.pos])

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		v.Decor().SetPrefix(vPrefix)
		vSuffixStart := p.s.pos
		p.s.skipInlineSpace()
		v.Decor().SetSuffix(string(p.s.data[vSuffixStart:p.s.pos]))

		if _, ok := it.index[k.Parsed()]; ok {
			return nil, fmt.Errorf("tomledit: inline table key %q redefined", k.Parsed())
		}
		it.index[k.Parsed()] = len(it.entries)
		it.entries = append(it.entries, &inlineTableEntry{key: k, item: ValueItem(v)})
	}
}

func classifyBareToken(raw string) (Value, error) {
	switch raw {
	case "true":
		return NewBooleanValue(true), nil
	case "false":
		return NewBooleanValue(false), nil
	}

	if len(raw) >= 10 && raw[4] == '-' && raw[7] == '-' {
		if len(raw) == 10 {
			d, err := parseLocalDate([]byte(raw))
			if err != nil {
				return nil, err
			}
			v := NewDatetimeValue(NewLocalDateValue(d))
			v.SetRepr(NewRepr(raw))
			return v, nil
		}
		if dt, err := parseOffsetDateTime([]byte(raw)); err == nil {
			v := NewDatetimeValue(dt)
			v.SetRepr(NewRepr(raw))
			return v, nil
		}
		if ldt, rest, err := parseLocalDateTime([]byte(raw)); err == nil && len(rest) == 0 {
			v := NewDatetimeValue(NewLocalDateTimeValue(ldt))
			v.SetRepr(NewRepr(raw))
			return v, nil
		}
		return nil, fmt.Errorf("tomledit: malformed date-time literal %q", raw)
	}

	if len(raw) >= 8 && raw[2] == ':' && raw[5] == ':' {
		t, rest, err := parseLocalTime([]byte(raw))
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("tomledit: trailing bytes after time literal %q", raw)
		}
		v := NewDatetimeValue(NewLocalTimeValue(t))
		v.SetRepr(NewRepr(raw))
		return v, nil
	}

	isHexOctBin := len(raw) > 2 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'o' || raw[1] == 'b')
	looksFloat := !isHexOctBin && (strings.ContainsAny(raw, ".eE") ||
		raw == "inf" || raw == "+inf" || raw == "-inf" ||
		raw == "nan" || raw == "+nan" || raw == "-nan")

	if looksFloat {
		f, err := parseFloat([]byte(raw))
		if err != nil {
			return nil, err
		}
		v := NewFloatValue(f)
		v.SetRepr(NewRepr(raw))
		return v, nil
	}

	i, err := parseInteger([]byte(raw))
	if err != nil {
		return nil, err
	}
	v := NewIntegerValue(i)
	v.SetRepr(NewRepr(raw))
	return v, nil
}
