package tomledit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayOfTablesRemove(t *testing.T) {
	doc, err := Parse([]byte("[[servers]]\nname = \"a\"\n\n[[servers]]\nname = \"b\"\n\n[[servers]]\nname = \"c\"\n"))
	require.NoError(t, err)

	arr, ok := doc.Root().Get("servers").AsArrayOfTables()
	require.True(t, ok)
	require.Equal(t, 3, arr.Len())

	arr.Remove(1)
	require.Equal(t, 2, arr.Len())

	out := doc.String()
	require.Contains(t, out, "name = \"a\"")
	require.Contains(t, out, "name = \"c\"")
	require.NotContains(t, out, "name = \"b\"")
}

func TestArrayOfTablesAppendReturnsNewTable(t *testing.T) {
	a := NewArrayOfTables()
	tbl := a.Append(NewTable())
	require.Equal(t, 1, a.Len())
	require.Same(t, tbl, a.Get(0))
}

func TestArrayOfTablesAndTableCannotCoexistUnderSameKey(t *testing.T) {
	doc, err := Parse([]byte("[[a]]\nx = 1\n"))
	require.NoError(t, err)

	err2 := doc.Root().Index("a").SetTable(NewTable())
	require.NoError(t, err2, "Set always overwrites outright except for implicit-table promotion")

	_, isArr := doc.Root().Get("a").AsArrayOfTables()
	require.False(t, isArr, "overwriting replaces the array of tables entirely")
}
