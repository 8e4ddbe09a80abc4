package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irisagenda/agenda-api/internal/domain/schedule"
)

func TestSlotListToDomain(t *testing.T) {
	promo := 45.0
	list := SlotList{
		{Start: "08:00", End: "12:00"},
		{Start: "13:00", End: "18:00", ServiceIDs: []uint{3}, CustomPrice: &promo},
	}

	slots, err := list.ToDomain()
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, 8*60, slots[0].Start)
	assert.Equal(t, 12*60, slots[0].End)
	assert.Empty(t, slots[0].ServiceIDs)

	assert.Equal(t, []uint{3}, slots[1].ServiceIDs)
	require.NotNil(t, slots[1].CustomPrice)
	assert.Equal(t, 45.0, *slots[1].CustomPrice)
}

func TestSlotListToDomain_FailsFast(t *testing.T) {
	cases := []SlotList{
		{{Start: "26:00", End: "12:00"}},  // hora impossível
		{{Start: "08:00", End: "08:00"}},  // intervalo vazio
		{{Start: "12:00", End: "08:00"}},  // invertido
		{{Start: "", End: "12:00"}},       // campo ausente
		{{Start: "08h00", End: "12:00"}},  // formato errado
	}

	for _, list := range cases {
		_, err := list.ToDomain()
		require.Error(t, err, "lista %v", list)
		assert.True(t, schedule.IsValidation(err))
	}
}

func TestSlotListScanAndValue(t *testing.T) {
	original := SlotList{{Start: "08:00", End: "12:00"}}

	raw, err := original.Value()
	require.NoError(t, err)

	var decoded SlotList
	require.NoError(t, decoded.Scan(raw))
	assert.Equal(t, original, decoded)

	// NULL no banco vira lista vazia, não nil solto
	var fromNull SlotList
	require.NoError(t, fromNull.Scan(nil))
	assert.NotNil(t, fromNull)
	assert.Empty(t, fromNull)
}

func TestDayScheduleFromStorage(t *testing.T) {
	day, err := DaySchedule(true, SlotList{{Start: "09:00", End: "17:00"}})
	require.NoError(t, err)
	assert.True(t, day.IsOpen)
	require.Len(t, day.Slots, 1)

	_, err = DaySchedule(true, SlotList{{Start: "17:00", End: "09:00"}})
	require.Error(t, err)
}
