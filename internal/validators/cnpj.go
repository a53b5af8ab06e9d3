package validators

import (
	"fmt"
	"strings"
)

// FormatCNPJ remove tudo que não for dígito e, se sobrarem exatamente 14,
// devolve no formato NN.NNN.NNN/NNNN-NN. Qualquer outra quantidade devolve
// o valor original sem mexer.
func FormatCNPJ(value string) string {
	digits := OnlyDigits(value)
	if len(digits) != 14 {
		return value
	}

	return fmt.Sprintf(
		"%s.%s.%s/%s-%s",
		digits[0:2],
		digits[2:5],
		digits[5:8],
		digits[8:12],
		digits[12:14],
	)
}

// IsValidCNPJ aceita vazio ou valor com exatamente 14 dígitos
func IsValidCNPJ(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	return len(OnlyDigits(value)) == 14
}

func OnlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
