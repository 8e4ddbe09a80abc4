package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// DateLayout é o formato de data de calendário usado em exceções e
// nas rotas de disponibilidade.
const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate interpreta "YYYY-MM-DD" como meia-noite no fuso da empresa.
func ParseDate(tz string, date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, Location(tz))
}

// DayBounds devolve [meia-noite, meia-noite seguinte) da data no fuso
// da empresa, o limite usado para buscar reservas e bloqueios do dia.
func DayBounds(tz string, day time.Time) (time.Time, time.Time) {
	loc := Location(tz)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}
