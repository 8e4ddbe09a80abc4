package handlers

import (
	"time"

	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
)

// --------------------------------------------------
// Fuso centralizado por empresa: toda conversão de
// data/hora passa por aqui, nunca pelo fuso do caller
// --------------------------------------------------

func locationFromBusiness(business *models.Business) *time.Location {
	if business != nil {
		return timezone.Location(business.Timezone)
	}
	return timezone.Location("")
}

func parseDateInBusiness(business *models.Business, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		timezone.DateLayout,
		dateStr,
		locationFromBusiness(business),
	)
}

func parseDateTimeInBusiness(
	business *models.Business,
	dateStr string,
	timeStr string,
) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		locationFromBusiness(business),
	)
}
