package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandForHour(t *testing.T) {
	tests := []struct {
		hour int
		want HourBand
	}{
		{0, BandExtreme},
		{6, BandExtreme},
		{7, BandStandard},
		{8, BandStandard},
		{9, BandPrime},
		{12, BandPrime},
		{16, BandPrime},
		{17, BandStandard},
		{18, BandExtreme},
		{23, BandExtreme},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12AM"},
		{1, "1AM"},
		{11, "11AM"},
		{12, "12PM"},
		{13, "1PM"},
		{23, "11PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.hour), "hour %d", tt.hour)
	}
}

func TestFormatWindow_WrapsMidnight(t *testing.T) {
	assert.Equal(t, "8AM-8PM", FormatWindow(8, 20))
	// An exclusive end of 24 renders as midnight.
	assert.Equal(t, "10PM-12AM", FormatWindow(22, 24))
	assert.Equal(t, "10PM-6AM", FormatWindow(22, 6))
}

func TestTenthsRoundTrip(t *testing.T) {
	assert.Equal(t, 35, Tenths(3.5))
	assert.Equal(t, 400, Tenths(40))
	assert.Equal(t, 3.5, Hours(35))
	assert.Equal(t, 8.0, Hours(80))
}
