package docpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_Identical(t *testing.T) {
	assert.Empty(t, Diff(decode(t, sampleDoc), decode(t, sampleDoc)))
}

func TestDiff(t *testing.T) {
	a := decode(t, `{
		"overview": "old",
		"destinations": [{"cityName": "Paris", "nights": 3}, {"cityName": "Rome"}],
		"legacy": true
	}`)
	b := decode(t, `{
		"overview": "new",
		"destinations": [{"cityName": "Paris", "nights": "3"}],
		"logistics": {}
	}`)

	changes := Diff(a, b)
	require.Len(t, changes, 5)

	got := make([]string, len(changes))
	for i, c := range changes {
		got[i] = c.Kind.String() + " " + c.Path.String()
	}
	assert.Equal(t, []string{
		"changed destinations[0].nights",
		"removed destinations[1]",
		"removed legacy",
		"added logistics",
		"changed overview",
	}, got)

	assert.Equal(t, 3.0, changes[0].Before)
	assert.Equal(t, "3", changes[0].After)
	assert.Equal(t, map[string]any{}, changes[3].After)
}

func TestDiff_ContainerKindChange(t *testing.T) {
	changes := Diff(
		decode(t, `{"logistics": {"transportSegments": []}}`),
		decode(t, `{"logistics": []}`),
	)
	require.Len(t, changes, 1)
	assert.Equal(t, Changed, changes[0].Kind)
	assert.Equal(t, "logistics", changes[0].Path.String())
}

func TestDiff_RootScalars(t *testing.T) {
	changes := Diff("a", "b")
	require.Len(t, changes, 1)
	assert.Equal(t, "", changes[0].Path.String())
}
