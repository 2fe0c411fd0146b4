package tomledit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexThroughNonTableValuePoisonsTheHandle(t *testing.T) {
	doc, err := Parse([]byte("a = 1\n"))
	require.NoError(t, err)

	node := doc.Root().Index("a").Index("b")
	require.Error(t, node.Err())
	var mismatch *TypeMismatchError
	require.ErrorAs(t, node.Err(), &mismatch)
	require.True(t, node.IsNone())

	require.Error(t, node.SetValue(NewIntegerValue(1)), "a poisoned handle rejects further operations")
}

func TestIndexThroughArrayOfTablesPoisonsTheHandle(t *testing.T) {
	doc, err := Parse([]byte("[[a]]\nx = 1\n"))
	require.NoError(t, err)

	node := doc.Root().Index("a").Index("b")
	require.Error(t, node.Err())
}

func TestOverwritingTheParentRecoversFromAPoisonedChain(t *testing.T) {
	doc, err := Parse([]byte("a = 1\n"))
	require.NoError(t, err)

	require.Error(t, doc.Root().Index("a").Index("b").Err(), "a.b is poisoned while a is a plain value")

	require.NoError(t, doc.Root().Index("a").SetTable(NewTable()))
	require.NoError(t, doc.Root().Index("a").Index("b").SetValue(NewIntegerValue(2)),
		"once a is overwritten with a table, chaining into it succeeds")

	aTbl, ok := doc.Root().Get("a").AsTable()
	require.True(t, ok)
	bVal, ok := aTbl.Get("b").AsValue()
	require.True(t, ok)
	iv, _ := bVal.(*IntegerValue)
	require.Equal(t, int64(2), iv.Parsed)
}

func TestIndexThroughInlineTableWalksIn(t *testing.T) {
	doc, err := Parse([]byte("a = { b = { c = 1 } }\n"))
	require.NoError(t, err)

	node := doc.Root().Index("a").Index("b").Index("c")
	require.NoError(t, node.Err())
	v, ok := node.AsValue()
	require.True(t, ok)
	iv, _ := v.(*IntegerValue)
	require.Equal(t, int64(1), iv.Parsed)
}

func TestPathConvenienceMatchesChainedIndex(t *testing.T) {
	doc, err := Parse([]byte("[a]\n[a.b]\n"))
	require.NoError(t, err)

	require.NoError(t, doc.Root().Path("a", "b", "c").SetValue(NewIntegerValue(7)))

	bTbl, ok := doc.Root().Get("a").AsTable()
	require.True(t, ok)
	cTbl, ok := bTbl.Get("b").AsTable()
	require.True(t, ok)
	require.True(t, cTbl.Get("c").IsValue())
}
