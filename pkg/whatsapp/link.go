package whatsapp

import (
	"errors"
	"net/url"
	"strings"
)

var ErrEmptyPhone = errors.New("telefone sem dígitos aproveitáveis")

// countryCode é prefixado quando o telefone foi cadastrado sem DDI
const countryCode = "55"

// OnlyDigits remove tudo que não for dígito de um telefone
func OnlyDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone reduz o telefone a dígitos com DDI. Números locais
// (até 11 dígitos: DDD + 9 dígitos) ganham o prefixo 55.
func NormalizePhone(phone string) (string, error) {
	digits := OnlyDigits(phone)
	if digits == "" {
		return "", ErrEmptyPhone
	}

	if len(digits) <= 11 {
		digits = countryCode + digits
	}

	return digits, nil
}

// ComposeLink monta o link de composição de mensagem do WhatsApp para
// um telefone e um corpo pré-preenchido. Abrir o link é uma ação
// explícita do operador; não há garantia de entrega.
func ComposeLink(phone, message string) (string, error) {
	digits, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	link := "https://wa.me/" + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}

	return link, nil
}
