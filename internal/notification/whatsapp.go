package notification

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/irisagenda/agenda-api/internal/models"
	"github.com/irisagenda/agenda-api/internal/timezone"
	"github.com/irisagenda/agenda-api/internal/validators"
)

// WhatsAppLink monta o link wa.me de confirmação da reserva. Função
// pura: o envio em si fica por conta do chamador.
func WhatsAppLink(business *models.Business, bk *models.Booking) string {
	phone := validators.NormalizePhone(business.WhatsApp)
	if phone == "" {
		phone = validators.NormalizePhone(business.Phone)
	}
	phone = strings.TrimPrefix(phone, "+")
	if phone == "" {
		return ""
	}

	loc := timezone.Location(business.Timezone)
	start := bk.StartTime.In(loc)

	msg := fmt.Sprintf(
		"Olá! Gostaria de confirmar meu agendamento de %s no dia %s às %s. Código: %s",
		bk.ServiceName,
		start.Format("02/01/2006"),
		start.Format("15:04"),
		bk.Reference,
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(msg))
}
