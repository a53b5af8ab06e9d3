package format

import "strings"

// Limite de preview da mensagem de erro na listagem de logs
const ErrorPreviewLimit = 140

// TruncateError normaliza a mensagem e corta em ErrorPreviewLimit runas,
// aparando espaço antes de anexar a reticência. Mensagens dentro do limite
// voltam apenas aparadas.
func TruncateError(message string) string {
	normalized := strings.TrimSpace(message)

	runes := []rune(normalized)
	if len(runes) <= ErrorPreviewLimit {
		return normalized
	}

	cut := strings.TrimRight(string(runes[:ErrorPreviewLimit]), " \t\r\n")
	return cut + "…"
}
