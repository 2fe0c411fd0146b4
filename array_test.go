package tomledit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayHomogeneityRejectsMismatchedPush(t *testing.T) {
	a := NewArray()
	require.NoError(t, a.Push(NewIntegerValue(1)))
	require.NoError(t, a.Push(NewIntegerValue(2)))

	err := a.Push(NewStringValue("nope"))
	require.Error(t, err)
	var hetErr *ArrayHeterogeneityError
	require.ErrorAs(t, err, &hetErr)
	require.Equal(t, KindInteger, hetErr.Have)
	require.Equal(t, KindString, hetErr.Got)

	require.Equal(t, 2, a.Len(), "array must be left unchanged by the rejected push")
}

func TestArrayHomogeneityRejectsMismatchedInsert(t *testing.T) {
	a := NewArray()
	require.NoError(t, a.Push(NewBooleanValue(true)))

	err := a.Insert(0, NewIntegerValue(1))
	require.Error(t, err)
	require.Equal(t, 1, a.Len())
}

func TestArrayPushSynthesizesSeparator(t *testing.T) {
	a := NewArray()
	require.NoError(t, a.Push(NewIntegerValue(1)))
	require.NoError(t, a.Push(NewIntegerValue(2)))
	require.Equal(t, "[1, 2]", RenderValue(a))
}

func TestArrayPushFormattedKeepsGivenDecor(t *testing.T) {
	a := NewArray()
	require.NoError(t, a.PushFormatted(Decorated(NewIntegerValue(1), "", "")))
	require.NoError(t, a.PushFormatted(Decorated(NewIntegerValue(2), "  ", "  ")))
	require.Equal(t, "[1,  2  ]", RenderValue(a))
}

func TestArrayFmtNormalizesDecor(t *testing.T) {
	a := NewArray()
	require.NoError(t, a.PushFormatted(Decorated(NewIntegerValue(1), "   ", "  ")))
	require.NoError(t, a.PushFormatted(Decorated(NewIntegerValue(2), "   ", "  ")))
	a.SetTrailing("  ")
	a.Fmt()
	require.Equal(t, "[1, 2]", RenderValue(a))
}

func TestArrayRemoveLeavesNeighbourDecorUntouched(t *testing.T) {
	doc, err := Parse([]byte("a = [1,    2,    3]\n"))
	require.NoError(t, err)
	v, _ := doc.Root().Get("a").AsValue()
	arr := v.(*Array)

	removed := arr.Remove(0)
	iv := removed.(*IntegerValue)
	require.Equal(t, int64(1), iv.Parsed)

	require.Equal(t, "a = [    2,    3]\n", doc.String(), "the remaining entries keep their own original decor")
}
