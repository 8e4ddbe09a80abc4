package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos (com + internacional
// opcional), o formato esperado pelos links de WhatsApp.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid aceita telefones com 8 a 15 dígitos.
func IsPhoneValid(phone string) bool {
	digits := strings.TrimPrefix(NormalizePhone(phone), "+")
	return len(digits) >= 8 && len(digits) <= 15
}
