package tomledit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ordian/toml-edit/internal/unsafe"
)

// ErrCannotAssignToMissingEntry is returned by Node.Set when the node was
// produced by Table.Entry on a key that doesn't exist: Entry never
// auto-vivifies, so there is no slot to assign into (use Table.Index or
// Table.Insert instead).
var ErrCannotAssignToMissingEntry = errors.New("tomledit: cannot assign to an entry that does not exist; use Index or Insert")

// TypeMismatchError is returned when an operation expects one Item kind
// and finds another — most commonly while walking a dotted path through
// a Value that isn't table-like (§4.3).
type TypeMismatchError struct {
	Have ItemKind
	Want ItemKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("tomledit: expected %s, found %s", e.Want, e.Have)
}

// ArrayHeterogeneityError is returned when an Array mutation would mix
// ValueKinds within one array (§4.6, "all homogeneous").
type ArrayHeterogeneityError struct {
	Have ValueKind // the kind already stored in the array
	Got  ValueKind // the kind of the value that was rejected
}

func (e *ArrayHeterogeneityError) Error() string {
	return fmt.Sprintf("tomledit: array holds %s values, cannot insert a %s", e.Have, e.Got)
}

// KeyParseError is returned by ParseKeySegment/splitDottedKey when a key
// string isn't a valid bare or quoted TOML key.
type KeyParseError struct {
	Message string
}

func (e *KeyParseError) Error() string {
	return "tomledit: invalid key: " + e.Message
}

// ParseError represents a syntax error encountered while parsing a TOML
// document. In addition to the error message, it carries the position
// where it happened and a human-readable rendering with surrounding
// source context.
type ParseError struct {
	message string
	line    int
	column  int

	human string
}

func (e *ParseError) Error() string { return e.message }

// String returns the human-readable contextualized error, with a few
// lines of source on either side of the offending span. Multi-line.
func (e *ParseError) String() string { return e.human }

// Position returns the (line, column) pair indicating where the error
// occurred in the document. Positions are 1-indexed.
func (e *ParseError) Position() (row int, column int) { return e.line, e.column }

// internal version of ParseError used as the seed for the fully-rendered
// form produced by wrapParseError.
type parseError struct {
	highlight []byte
	message   string
}

func (pe *parseError) Error() string { return pe.message }

func newParseError(highlight []byte, format string, args ...interface{}) error {
	return &parseError{
		highlight: highlight,
		message:   fmt.Sprintf(format, args...),
	}
}

// wrapParseError creates a ParseError referencing a highlighted range of
// bytes within document.
//
// highlight must be a sub-slice of document, or this function panics.
// All bytes used are copied, so document and highlight can be freely
// deallocated afterward.
func wrapParseError(document []byte, pe *parseError) error {
	if pe == nil {
		return nil
	}
	err := &ParseError{
		message: pe.message,
	}

	offset := unsafe.SubsliceOffset(document, pe.highlight)

	err.line, err.column = positionAtEnd(document[:offset])
	before, after := linesOfContext(document, pe.highlight, offset, 3)

	var buf strings.Builder

	maxLine := err.line + len(after) - 1
	lineColumnWidth := len(strconv.Itoa(maxLine))

	for i := len(before) - 1; i > 0; i-- {
		line := err.line - i
		buf.WriteString(formatLineNumber(line, lineColumnWidth))
		buf.WriteString("| ")
		buf.Write(before[i])
		buf.WriteRune('\n')
	}

	buf.WriteString(formatLineNumber(err.line, lineColumnWidth))
	buf.WriteString("| ")

	if len(before) > 0 {
		buf.Write(before[0])
	}
	buf.Write(pe.highlight)
	if len(after) > 0 {
		buf.Write(after[0])
	}
	buf.WriteRune('\n')
	buf.WriteString(strings.Repeat(" ", lineColumnWidth))
	buf.WriteString("| ")
	if len(before) > 0 {
		buf.WriteString(strings.Repeat(" ", len(before[0])))
	}
	buf.WriteString(strings.Repeat("~", len(pe.highlight)))
	buf.WriteString(" ")
	buf.WriteString(err.message)

	for i := 1; i < len(after); i++ {
		buf.WriteRune('\n')
		line := err.line + i
		buf.WriteString(formatLineNumber(line, lineColumnWidth))
		buf.WriteString("| ")
		buf.Write(after[i])
	}

	err.human = buf.String()
	return err
}

func formatLineNumber(line int, width int) string {
	format := "%" + strconv.Itoa(width) + "d"
	return fmt.Sprintf(format, line)
}

func linesOfContext(document []byte, highlight []byte, offset int, linesAround int) ([][]byte, [][]byte) {
	var beforeLines [][]byte
	for beforeOffset, lastOffset := offset, offset; beforeOffset >= 0 && len(beforeLines) <= linesAround; beforeOffset-- {
		if document[beforeOffset] == '\n' {
			beforeLines = append(beforeLines, document[beforeOffset+1:lastOffset])
			lastOffset = beforeOffset
		} else if beforeOffset == 0 && beforeOffset != lastOffset {
			beforeLines = append(beforeLines, document[beforeOffset:lastOffset])
		}
	}

	var afterLines [][]byte

	document = document[offset+len(highlight):]
	for afterOffset, lastOffset := 0, 0; afterOffset < len(document) && len(afterLines) <= linesAround; afterOffset++ {
		if document[afterOffset] == '\n' {
			afterLines = append(afterLines, document[lastOffset:afterOffset])
			afterOffset++ // skip \n
			lastOffset = afterOffset
		} else if afterOffset == len(document)-1 && lastOffset != afterOffset+1 {
			afterLines = append(afterLines, document[lastOffset:afterOffset+1])
		}
	}
	return beforeLines, afterLines
}

func positionAtEnd(b []byte) (row int, column int) {
	row = 1
	column = 1

	for _, c := range b {
		if c == '\n' {
			row++
			column = 1
		} else {
			column++
		}
	}
	return
}
