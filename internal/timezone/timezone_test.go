package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", Location("").String())
	assert.Equal(t, "America/Sao_Paulo", Location("Marte/Cratera").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Fuso/Inexistente"))
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("America/Sao_Paulo", "2026-03-02")
	require.NoError(t, err)

	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 2, day.Day())
	assert.Equal(t, "America/Sao_Paulo", day.Location().String())

	_, err = ParseDate("America/Sao_Paulo", "02/03/2026")
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	day, err := ParseDate("America/Sao_Paulo", "2026-03-02")
	require.NoError(t, err)

	start, end := DayBounds("America/Sao_Paulo", day)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.Equal(t, 3, end.Day())
}
