package question

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleIntAcceptsNumericSpellings(t *testing.T) {
	cases := map[string]int{
		`1`:     1,
		`"1"`:   1,
		`" 7 "`: 7,
		`1.0`:   1,
		`1e0`:   1,
		`2.5e1`: 25,
		`"3.0"`: 3,
		`-4`:    -4,
	}
	for raw, want := range cases {
		var got FlexibleInt
		require.NoError(t, json.Unmarshal([]byte(raw), &got), "raw=%s", raw)
		assert.Equal(t, FlexibleInt(want), got, "raw=%s", raw)
	}
}

func TestFlexibleIntRejectsNonIntegers(t *testing.T) {
	for _, raw := range []string{`1.5`, `"one"`, `true`, `1e300`, `""`} {
		var got FlexibleInt
		assert.Error(t, json.Unmarshal([]byte(raw), &got), "raw=%s", raw)
	}
}

func TestFlexibleIntNullLeavesValue(t *testing.T) {
	got := FlexibleInt(9)
	require.NoError(t, json.Unmarshal([]byte(`null`), &got))
	assert.Equal(t, FlexibleInt(9), got)
}
