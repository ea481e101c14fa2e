package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDurationISO8601(t *testing.T) {
	d := ParseDuration("PT1H15M")
	require.NotNil(t, d)
	require.Equal(t, 75, d.Minutes)
	require.Equal(t, "1 hour 15 minutes", d.Display)
	require.Equal(t, "PT1H15M", d.ISO8601)

	d = ParseDuration("PT30M")
	require.NotNil(t, d)
	require.Equal(t, 30, d.Minutes)
	require.Equal(t, "30 minutes", d.Display)

	d = ParseDuration("PT2H")
	require.NotNil(t, d)
	require.Equal(t, 120, d.Minutes)
	require.Equal(t, "2 hours", d.Display)
}

func TestParseDurationFreeText(t *testing.T) {
	tests := []struct {
		input       string
		wantMinutes int
	}{
		{"20 minutes", 20},
		{"1 hour 30 minutes", 90},
		{"1.5 hours", 90},
		{"45 mins", 45},
		{"Bake for 25 minutes at 350 degrees", 25},
		{"90 seconds", 2}, // 四捨五入到分鐘
	}

	for _, tt := range tests {
		d := ParseDuration(tt.input)
		require.NotNil(t, d, "input %q", tt.input)
		require.Equal(t, tt.wantMinutes, d.Minutes, "input %q", tt.input)
	}
}

// 範圍取貼著單位的數字，也就是較大的後界
func TestParseDurationRangeTakesLargerBound(t *testing.T) {
	d := ParseDuration("cook 8 to 10 minutes")
	require.NotNil(t, d)
	require.Equal(t, 10, d.Minutes)
	require.Equal(t, "10 minutes", d.Display)
}

func TestParseDurationNoTimeUnit(t *testing.T) {
	require.Nil(t, ParseDuration(""))
	require.Nil(t, ParseDuration("Mix well until combined"))
	// 光一個數字不算時間
	require.Nil(t, ParseDuration("45"))
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "1 minute", FormatDuration(1))
	require.Equal(t, "59 minutes", FormatDuration(59))
	require.Equal(t, "1 hour", FormatDuration(60))
	require.Equal(t, "1 hour 1 minute", FormatDuration(61))
	require.Equal(t, "2 hours 30 minutes", FormatDuration(150))
}
