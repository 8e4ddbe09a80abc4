package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/irisagenda/agenda-api/internal/domain/schedule"
)

// TimeSlotDoc é a forma persistida/transportada de um slot: horários
// "HH:mm" como no documento original, escopo de serviços e preço
// promocional opcionais.
type TimeSlotDoc struct {
	Start       string   `json:"start"`
	End         string   `json:"end"`
	ServiceIDs  []uint   `json:"service_ids,omitempty"`
	CustomPrice *float64 `json:"custom_price,omitempty"`
}

// SlotList persiste como coluna JSONB.
type SlotList []TimeSlotDoc

func (s SlotList) Value() (driver.Value, error) {
	if s == nil {
		s = SlotList{}
	}
	return json.Marshal(s)
}

func (s *SlotList) Scan(src any) error {
	if src == nil {
		*s = SlotList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("slot list: tipo inesperado %T", src)
	}

	return json.Unmarshal(data, s)
}

func (SlotList) GormDataType() string {
	return "jsonb"
}

// ToDomain converte para o tipo do motor, falhando cedo em qualquer
// campo malformado em vez de confiar na forma do documento.
func (s SlotList) ToDomain() ([]schedule.AvailabilitySlot, error) {
	out := make([]schedule.AvailabilitySlot, 0, len(s))
	for _, doc := range s {
		start, err := schedule.ParseClock(doc.Start)
		if err != nil {
			return nil, err
		}
		end, err := schedule.ParseClock(doc.End)
		if err != nil {
			return nil, err
		}

		slot := schedule.AvailabilitySlot{
			Interval:    schedule.Interval{Start: start, End: end},
			ServiceIDs:  doc.ServiceIDs,
			CustomPrice: doc.CustomPrice,
		}
		if err := slot.Interval.Validate(); err != nil {
			return nil, err
		}

		out = append(out, slot)
	}
	return out, nil
}

// DaySchedule monta a agenda resolvida de um dia a partir da forma
// persistida.
func DaySchedule(isOpen bool, slots SlotList) (schedule.DaySchedule, error) {
	domainSlots, err := slots.ToDomain()
	if err != nil {
		return schedule.DaySchedule{}, err
	}
	return schedule.DaySchedule{IsOpen: isOpen, Slots: domainSlots}, nil
}
