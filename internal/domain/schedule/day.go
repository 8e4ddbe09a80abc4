package schedule

// ===============================
// Fontes de agenda de um dia
// ===============================

// AvailabilitySlot é um intervalo de atendimento, opcionalmente
// restrito a um subconjunto de serviços e com preço promocional.
type AvailabilitySlot struct {
	Interval

	// ServiceIDs vazio significa "vale para todos os serviços".
	ServiceIDs []uint

	// CustomPrice, quando presente, substitui o preço do serviço
	// para reservas dentro deste slot.
	CustomPrice *float64
}

// AppliesTo informa se o slot aceita o serviço dado.
func (s AvailabilitySlot) AppliesTo(serviceID uint) bool {
	if len(s.ServiceIDs) == 0 {
		return true
	}
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// DaySchedule é a agenda resolvida de um dia: a exceção da data quando
// existe, senão a configuração semanal do dia da semana. A exceção
// substitui por completo a semanal, nunca soma intervalos.
type DaySchedule struct {
	IsOpen bool
	Slots  []AvailabilitySlot
}

// Validate rejeita intervalos malformados antes de qualquer gravação.
// Sobreposição entre slots do mesmo dia não é erro; o motor deduplica.
func (d DaySchedule) Validate() error {
	for _, s := range d.Slots {
		if err := s.Interval.Validate(); err != nil {
			return err
		}
		if s.CustomPrice != nil && *s.CustomPrice < 0 {
			return ErrValidation("custom_price", "preço não pode ser negativo")
		}
	}
	return nil
}

// FilterForService devolve apenas os slots elegíveis para o serviço.
func (d DaySchedule) FilterForService(serviceID uint) []AvailabilitySlot {
	out := make([]AvailabilitySlot, 0, len(d.Slots))
	for _, s := range d.Slots {
		if s.AppliesTo(serviceID) {
			out = append(out, s)
		}
	}
	return out
}

// PriceFor resolve o preço de uma reserva que começa em startMinute:
// o CustomPrice do primeiro slot elegível que contém o início, senão
// o preço base do serviço.
func (d DaySchedule) PriceFor(serviceID uint, startMinute int, basePrice float64) float64 {
	for _, s := range d.Slots {
		if !s.AppliesTo(serviceID) || s.CustomPrice == nil {
			continue
		}
		if startMinute >= s.Start && startMinute < s.End {
			return *s.CustomPrice
		}
	}
	return basePrice
}

// Fallback é a janela usada quando a empresa nunca configurou horário
// semanal. Uma entrada semanal ou exceção explícita, mesmo fechada,
// sempre prevalece sobre ela.
func Fallback() DaySchedule {
	return DaySchedule{
		IsOpen: true,
		Slots: []AvailabilitySlot{
			{Interval: Interval{Start: 8 * 60, End: 20 * 60}},
		},
	}
}

// Closed é a agenda de um dia sem expediente.
func Closed() DaySchedule {
	return DaySchedule{IsOpen: false}
}
