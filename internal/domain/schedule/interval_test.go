package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"0800", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			require.Error(t, err, "entrada %q", tc.in)
			assert.True(t, IsValidation(err))
			continue
		}
		require.NoError(t, err, "entrada %q", tc.in)
		assert.Equal(t, tc.want, got, "entrada %q", tc.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "08:00", FormatClock(480))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestIntervalValidate(t *testing.T) {
	assert.NoError(t, Interval{Start: 480, End: 720}.Validate())
	assert.NoError(t, Interval{Start: 0, End: MinutesPerDay}.Validate())

	// invertido ou vazio
	assert.Error(t, Interval{Start: 720, End: 480}.Validate())
	assert.Error(t, Interval{Start: 480, End: 480}.Validate())

	// fora do dia
	assert.Error(t, Interval{Start: -1, End: 60}.Validate())
	assert.Error(t, Interval{Start: 0, End: MinutesPerDay + 1}.Validate())
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Start: 480, End: 600}

	assert.True(t, a.Overlaps(Interval{Start: 540, End: 660}))
	assert.True(t, a.Overlaps(Interval{Start: 400, End: 500}))
	assert.True(t, a.Overlaps(Interval{Start: 500, End: 560}))

	// adjacente não é sobreposição (meio-aberto)
	assert.False(t, a.Overlaps(Interval{Start: 600, End: 660}))
	assert.False(t, a.Overlaps(Interval{Start: 400, End: 480}))
}
