package execucao

import (
	"context"

	domain "github.com/VaultSyncBR/backup-console/internal/domain/execucao"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

type ListRecentes struct {
	repo domain.Repository
}

func NewListRecentes(repo domain.Repository) *ListRecentes {
	return &ListRecentes{repo: repo}
}

func (uc *ListRecentes) Execute(
	ctx context.Context,
	clientID string,
	limit int,
) ([]models.ExecucaoRealtime, error) {
	return uc.repo.ListRecentes(ctx, clientID, domain.ClampLimit(limit))
}
