package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Toda a aritmética de horário acontece em minuto-do-dia (0–1439),
// nunca em ponto flutuante.

const MinutesPerDay = 24 * 60

// ParseClock converte "HH:mm" para minuto-do-dia.
func ParseClock(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, ErrValidation("time", fmt.Sprintf("formato inválido %q, esperado HH:mm", hm))
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrValidation("time", fmt.Sprintf("hora inválida em %q", hm))
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrValidation("time", fmt.Sprintf("minuto inválido em %q", hm))
	}

	return h*60 + m, nil
}

// FormatClock converte minuto-do-dia para "HH:mm".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// Interval é um intervalo meio-aberto [Start, End) em minutos do dia.
type Interval struct {
	Start int
	End   int
}

func (i Interval) Validate() error {
	if i.Start < 0 || i.Start >= MinutesPerDay {
		return ErrValidation("start", fmt.Sprintf("fora do dia: %d", i.Start))
	}
	if i.End <= 0 || i.End > MinutesPerDay {
		return ErrValidation("end", fmt.Sprintf("fora do dia: %d", i.End))
	}
	if i.Start >= i.End {
		return ErrValidation("interval", fmt.Sprintf("início %s não é anterior ao fim %s",
			FormatClock(i.Start), FormatClock(i.End)))
	}
	return nil
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}
