package execucao

import (
	"context"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	domain "github.com/VaultSyncBR/backup-console/internal/domain/execucao"
	"github.com/VaultSyncBR/backup-console/internal/httperr"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type DispatchInput struct {
	UsuarioID uint

	ClientID   string
	NomeTarefa string
	Comando    string

	// obrigatório no fluxo da tela de execução; ausente quando o
	// disparo vem do playbook
	ServidorIP *string
}

// ======================================================
// USE CASE
// ======================================================

type Dispatch struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDispatch(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Dispatch {
	return &Dispatch{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Dispatch) Execute(
	ctx context.Context,
	in DispatchInput,
) (*models.ExecucaoRealtime, error) {

	// --------------------------------------------------
	// 1. Registro validado no domínio
	// --------------------------------------------------
	ex, err := domain.NewExecucao(in.ClientID, in.NomeTarefa, in.Comando, in.ServidorIP)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Cliente precisa existir
	// --------------------------------------------------
	cliente, err := uc.repo.GetClienteByClientID(ctx, ex.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("cliente_nao_encontrado")
	}

	// --------------------------------------------------
	// 3. Servidor, quando informado, pertence ao cliente
	// --------------------------------------------------
	if ex.ServidorIP != nil {
		ok, err := uc.repo.ServidorPertenceAoCliente(ctx, cliente.ID, *ex.ServidorIP)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("servidor_invalido")
		}
	}

	// --------------------------------------------------
	// 4. Insert; quem executa e reporta status é o agente
	// --------------------------------------------------
	if err := uc.repo.CreateExecucao(ctx, ex); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UsuarioID: &in.UsuarioID,
		Action:    "execucao_dispatched",
		Entity:    "execucao_realtime",
		EntityID:  &ex.ID,
		Metadata: map[string]string{
			"client_id":   ex.ClientID,
			"nome_tarefa": ex.NomeTarefa,
		},
	})

	return ex, nil
}
