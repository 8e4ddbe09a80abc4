package schedule

import (
	"sort"
	"time"
)

// DefaultStepMin é o passo entre candidatos de horário.
const DefaultStepMin = 30

// Busy é capacidade já consumida no dia: um agendamento ou um bloqueio.
// Intervalo meio-aberto [Start, End) em timestamps absolutos.
type Busy struct {
	Start time.Time
	End   time.Time
}

type ComputeInput struct {
	// Day é a meia-noite da data alvo no fuso da empresa.
	Day time.Time

	ServiceID   uint
	DurationMin int

	// Schedule é a agenda resolvida do dia (exceção ou semanal).
	Schedule DaySchedule

	Bookings []Busy
	Blocks   []Busy

	// StepMin <= 0 usa DefaultStepMin.
	StepMin int

	// Now é injetado para tornar "sem horário no passado" testável.
	Now time.Time
}

// ComputeSlots é o motor de disponibilidade: puro, síncrono, sem I/O.
// Devolve os horários de início reserváveis do dia, em minuto-do-dia,
// ordenados e sem duplicatas.
func ComputeSlots(in ComputeInput) ([]int, error) {
	if in.DurationMin <= 0 {
		return nil, ErrValidation("duration_min", "duração deve ser positiva")
	}

	step := in.StepMin
	if step <= 0 {
		step = DefaultStepMin
	}

	if !in.Schedule.IsOpen {
		return []int{}, nil
	}

	eligible := in.Schedule.FilterForService(in.ServiceID)
	if len(eligible) == 0 {
		return []int{}, nil
	}

	seen := make(map[int]bool)
	var out []int

	for _, slot := range eligible {
		for cur := slot.Start; cur+in.DurationMin <= slot.End; cur += step {
			if seen[cur] {
				continue
			}

			candStart := in.Day.Add(time.Duration(cur) * time.Minute)
			candEnd := candStart.Add(time.Duration(in.DurationMin) * time.Minute)

			// nada de reservar no passado
			if candStart.Before(in.Now) {
				continue
			}

			if overlapsAny(candStart, candEnd, in.Bookings) {
				continue
			}
			if overlapsAny(candStart, candEnd, in.Blocks) {
				continue
			}

			seen[cur] = true
			out = append(out, cur)
		}
	}

	sort.Ints(out)

	if out == nil {
		out = []int{}
	}
	return out, nil
}

// overlapsAny aplica o teste de interseção meio-aberta:
// (startA < endB) && (endA > startB).
func overlapsAny(start, end time.Time, busy []Busy) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}

// FormatSlots converte o resultado do motor para "HH:mm", o formato
// servido ao mini-site público.
func FormatSlots(minutes []int) []string {
	out := make([]string, 0, len(minutes))
	for _, m := range minutes {
		out = append(out, FormatClock(m))
	}
	return out
}
