package tomledit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInlineTableGetOrInsertDefaultFormatting(t *testing.T) {
	it := NewInlineTable()
	v, err := it.GetOrInsert("a", 1)
	require.NoError(t, err)
	iv, _ := v.(*IntegerValue)
	require.Equal(t, int64(1), iv.Parsed)
	require.Equal(t, "{ a = 1}", RenderValue(it))
}

func TestInlineTableGetOrInsertReturnsExisting(t *testing.T) {
	doc, err := Parse([]byte("a = { x = 5 }\n"))
	require.NoError(t, err)
	v, _ := doc.Root().Get("a").AsValue()
	it := v.(*InlineTable)

	got, err := it.GetOrInsert("x", 999)
	require.NoError(t, err)
	iv, _ := got.(*IntegerValue)
	require.Equal(t, int64(5), iv.Parsed, "existing value wins over the supplied default")
}

func TestInlineTableRemoveLeavesNeighboursUntouched(t *testing.T) {
	doc, err := Parse([]byte("a = { x = 1, y = 2, z = 3 }\n"))
	require.NoError(t, err)
	v, _ := doc.Root().Get("a").AsValue()
	it := v.(*InlineTable)

	_, ok := it.Remove("y")
	require.True(t, ok)

	require.Equal(t, "a = { x = 1, z = 3 }\n", doc.String())
}

func TestInlineTableFmtNormalizes(t *testing.T) {
	doc, err := Parse([]byte("a = {x=1,   y=2}\n"))
	require.NoError(t, err)
	v, _ := doc.Root().Get("a").AsValue()
	it := v.(*InlineTable)

	it.Fmt()
	require.Equal(t, "a = { x = 1, y = 2 }\n", doc.String())
}
