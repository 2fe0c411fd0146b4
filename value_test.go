package tomledit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarLiteralsPreserveVerbatimRepr(t *testing.T) {
	src := "hex = 0x1F\noct = 0o17\npi = 8.1415926\nraw = 'raw'\nbasic = \"basic\"\nflag = true\n"
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, src, doc.String())

	hv, _ := doc.Root().Get("hex").AsValue()
	iv, _ := hv.(*IntegerValue)
	require.Equal(t, int64(31), iv.Parsed)
	require.Equal(t, "0x1F", RenderValue(iv), "repr preserves the original hex notation")
}

func TestProgrammaticValueSynthesizesCanonicalRepr(t *testing.T) {
	v := NewIntegerValue(42)
	require.Equal(t, "42", RenderValue(v), "a value with no repr renders its canonical form")

	f := NewFloatValue(1.5)
	require.Equal(t, "1.5", RenderValue(f))

	s := NewStringValue(`has "quotes" and \ backslash`)
	require.Equal(t, `"has \"quotes\" and \\ backslash"`, RenderValue(s))
}

func TestDatetimeVariantsRoundTrip(t *testing.T) {
	src := "odt = 1979-05-27T07:32:00Z\nldt = 1979-05-27T07:32:00\nld = 1979-05-27\nlt = 07:32:00\n"
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, src, doc.String())

	odt, _ := doc.Root().Get("odt").AsValue()
	dv, _ := odt.(*DatetimeValue)
	require.Equal(t, KindOffsetDateTime, dv.Parsed.Kind())
}

func TestNewValueDispatchesOnGoType(t *testing.T) {
	v, err := NewValue("hi")
	require.NoError(t, err)
	_, ok := v.(*StringValue)
	require.True(t, ok)

	v, err = NewValue(3)
	require.NoError(t, err)
	_, ok = v.(*IntegerValue)
	require.True(t, ok)

	_, err = NewValue(struct{}{})
	require.Error(t, err)
}

func TestDecoratedAttachesTrivia(t *testing.T) {
	v := Decorated(NewIntegerValue(1), "  ", " ")
	require.Equal(t, "  ", v.Decor().Prefix())
	require.Equal(t, " ", v.Decor().Suffix())
}
