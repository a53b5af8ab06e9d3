package execucao

import (
	"strings"

	"github.com/VaultSyncBR/backup-console/internal/httperr"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Limites da listagem de histórico
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 50
)

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

// NewExecucao monta o registro já validado. Comando e tarefa chegam do
// formulário; a API é o único lugar que normaliza espaços.
func NewExecucao(clientID, nomeTarefa, comando string, servidorIP *string) (*models.ExecucaoRealtime, error) {
	clientID = strings.TrimSpace(clientID)
	nomeTarefa = strings.TrimSpace(nomeTarefa)
	comando = strings.TrimSpace(comando)

	if clientID == "" || nomeTarefa == "" || comando == "" {
		return nil, httperr.ErrBusiness("campos_obrigatorios")
	}

	ex := &models.ExecucaoRealtime{
		ClientID:   clientID,
		NomeTarefa: nomeTarefa,
		Comando:    comando,
	}

	if servidorIP != nil {
		ip := strings.TrimSpace(*servidorIP)
		if ip == "" {
			return nil, httperr.ErrBusiness("servidor_obrigatorio")
		}
		ex.ServidorIP = &ip
	}

	return ex, nil
}
