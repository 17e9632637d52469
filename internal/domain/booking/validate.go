package booking

import "strings"

const minPhoneDigits = 10

type FieldErrors struct {
	ClientName  string `json:"client_name,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`
}

func (e FieldErrors) Empty() bool {
	return e.ClientName == "" && e.ClientPhone == ""
}

// PhoneDigits descarta tudo que não for dígito: "(11) 98765-4321" → "11987654321".
func PhoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateClient avalia os dois campos de forma independente; os dois erros
// podem aparecer juntos.
func ValidateClient(name, phone string) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(name) == "" {
		errs.ClientName = "Por favor, insira seu nome para confirmar."
	}

	if len(PhoneDigits(phone)) < minPhoneDigits {
		errs.ClientPhone = "Por favor, insira um número de WhatsApp válido."
	}

	return errs
}
