package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		iso  string
		want int64
	}{
		{"PT3M33S", 213},
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT10M", 600},
		{"", 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseISODuration(tc.iso), "iso %q", tc.iso)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3:33", formatDuration(213))
	assert.Equal(t, "1:02:03", formatDuration(3723))
	assert.Equal(t, "0:45", formatDuration(45))
	assert.Equal(t, "N/A", formatDuration(0))
}
