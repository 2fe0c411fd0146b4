package tomledit

// Decor holds the verbatim whitespace and comments surrounding a node.
//
// Trivia is attached to the following token (§4.1): Prefix is whatever
// precedes a node's first significant character since the previous node's
// Suffix ended; Suffix is whatever follows a node up to and including the
// first newline (or the container close, whichever comes first). Anything
// after that first newline belongs to the Prefix of whatever comes next.
// An array element is the exception: its Suffix runs up to the next ','
// or ']' and may span several lines, comments included.
// This is what lets a same-line trailing comment travel with its entry
// when the entry is reordered (sort_values, §8 scenario 3), while a
// comment on its own line stays glued to whatever it precedes.
type Decor struct {
	prefix string
	suffix string
}

// NewDecor builds a Decor from literal trivia strings, as Decorated()
// does for programmatic construction (§4.4).
func NewDecor(prefix, suffix string) Decor {
	return Decor{prefix: prefix, suffix: suffix}
}

// Prefix returns the leading trivia.
func (d Decor) Prefix() string { return d.prefix }

// Suffix returns the trailing trivia.
func (d Decor) Suffix() string { return d.suffix }

// SetPrefix overwrites the leading trivia.
func (d *Decor) SetPrefix(s string) { d.prefix = s }

// SetSuffix overwrites the trailing trivia.
func (d *Decor) SetSuffix(s string) { d.suffix = s }

// Repr is the exact source text of a scalar literal (e.g. "0x1F",
// 8.1415926, 'raw'). It is absent for values constructed programmatically;
// render then synthesizes a canonical form from the parsed value.
type Repr struct {
	text string
	ok   bool
}

// NewRepr wraps a verbatim literal so it renders exactly as given.
func NewRepr(text string) Repr { return Repr{text: text, ok: true} }

// Text returns the verbatim literal and whether one was set.
func (r Repr) Text() (string, bool) { return r.text, r.ok }
