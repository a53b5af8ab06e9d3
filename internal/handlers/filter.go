package handlers

import (
	"strings"

	"github.com/VaultSyncBR/backup-console/internal/models"
)

// Filtros de listagem em memória. São funções puras: termo vazio devolve a
// coleção original e reaplicar o mesmo termo não muda o resultado.

func FilterAgendamentos(
	items []models.Agendamento,
	clientes []models.Cliente,
	term string,
) []models.Agendamento {

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	nomePorClientID := make(map[string]string, len(clientes))
	for _, cliente := range clientes {
		nomePorClientID[cliente.ClientID] = strings.ToLower(cliente.NomeEmpresa)
	}

	filtered := make([]models.Agendamento, 0, len(items))
	for _, item := range items {
		fields := strings.ToLower(strings.Join([]string{
			item.ScheduleName,
			item.RcloneCommand,
			item.CronExpression,
			item.ClientID,
		}, " "))

		if clienteNome, ok := nomePorClientID[item.ClientID]; ok {
			fields += " " + clienteNome
		}

		if strings.Contains(fields, term) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

func FilterPlaybookCommands(
	items []models.PlaybookCommand,
	term string,
) []models.PlaybookCommand {

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	filtered := make([]models.PlaybookCommand, 0, len(items))
	for _, item := range items {
		fields := strings.ToLower(item.Titulo + " " + item.Descricao + " " + item.Comando)
		if strings.Contains(fields, term) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}
