package tomledit

import (
	"testing"

	burntsushi "github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
)

// These cross-check Unmarshal against github.com/BurntSushi/toml's decoder
// on the same input, the way the teacher's own test suite leans on a
// second independent TOML implementation to catch divergence instead of
// trusting one decoder to grade its own homework.
func TestUnmarshalAgreesWithBurntSushiOnScalars(t *testing.T) {
	src := "name = \"demo\"\ncount = 7\nratio = 0.5\nok = true\ntags = [\"a\", \"b\", \"c\"]\n"

	var ours map[string]interface{}
	require.NoError(t, Unmarshal([]byte(src), &ours))

	var theirs map[string]interface{}
	require.NoError(t, burntsushi.Unmarshal([]byte(src), &theirs))

	require.Equal(t, theirs["name"], ours["name"])
	require.Equal(t, theirs["ok"], ours["ok"])
	require.Equal(t, theirs["ratio"], ours["ratio"])
	require.Equal(t, theirs["tags"], ours["tags"])
	require.EqualValues(t, theirs["count"], ours["count"])
}

func TestUnmarshalAgreesWithBurntSushiOnNestedTables(t *testing.T) {
	type Server struct {
		Host string `toml:"host"`
		Port int    `toml:"port"`
	}
	type Config struct {
		Name    string   `toml:"name"`
		Servers []Server `toml:"servers"`
	}
	src := "name = \"cluster\"\n\n[[servers]]\nhost = \"a\"\nport = 1\n\n[[servers]]\nhost = \"b\"\nport = 2\n"

	var ours Config
	require.NoError(t, Unmarshal([]byte(src), &ours))

	var theirs Config
	require.NoError(t, burntsushi.Unmarshal([]byte(src), &theirs))

	require.Equal(t, theirs, ours)
}
