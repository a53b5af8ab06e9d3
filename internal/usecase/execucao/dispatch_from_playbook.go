package execucao

import (
	"context"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	domain "github.com/VaultSyncBR/backup-console/internal/domain/execucao"
	"github.com/VaultSyncBR/backup-console/internal/httperr"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

type DispatchFromPlaybook struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDispatchFromPlaybook(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DispatchFromPlaybook {
	return &DispatchFromPlaybook{
		repo:  repo,
		audit: audit,
	}
}

// Execute reaproveita o comando do playbook como corpo da execução.
// O diálogo de execução não escolhe servidor, então o registro sai sem IP.
func (uc *DispatchFromPlaybook) Execute(
	ctx context.Context,
	usuarioID uint,
	playbookID uint,
	clientID string,
	nomeTarefa string,
) (*models.ExecucaoRealtime, error) {

	cmd, err := uc.repo.GetPlaybookCommand(ctx, playbookID)
	if err != nil {
		return nil, httperr.ErrBusiness("comando_nao_encontrado")
	}

	if nomeTarefa == "" {
		nomeTarefa = cmd.Titulo
	}

	ex, err := domain.NewExecucao(clientID, nomeTarefa, cmd.Comando, nil)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetClienteByClientID(ctx, ex.ClientID); err != nil {
		return nil, httperr.ErrBusiness("cliente_nao_encontrado")
	}

	if err := uc.repo.CreateExecucao(ctx, ex); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UsuarioID: &usuarioID,
		Action:    "playbook_executed",
		Entity:    "playbook_command",
		EntityID:  &cmd.ID,
		Metadata: map[string]string{
			"client_id": ex.ClientID,
		},
	})

	return ex, nil
}
