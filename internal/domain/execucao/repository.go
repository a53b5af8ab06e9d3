package execucao

import (
	"context"

	"github.com/VaultSyncBR/backup-console/internal/models"
)

type Repository interface {
	// -------- Cliente --------
	GetClienteByClientID(
		ctx context.Context,
		clientID string,
	) (*models.Cliente, error)

	// -------- Servidor --------
	ServidorPertenceAoCliente(
		ctx context.Context,
		clienteID uint,
		enderecoIP string,
	) (bool, error)

	// -------- Execução --------
	CreateExecucao(
		ctx context.Context,
		ex *models.ExecucaoRealtime,
	) error

	ListRecentes(
		ctx context.Context,
		clientID string,
		limit int,
	) ([]models.ExecucaoRealtime, error)

	// -------- Playbook --------
	GetPlaybookCommand(
		ctx context.Context,
		id uint,
	) (*models.PlaybookCommand, error)
}
