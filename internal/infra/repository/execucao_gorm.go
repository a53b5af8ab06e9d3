package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/VaultSyncBR/backup-console/internal/domain/execucao"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

type ExecucaoGormRepository struct {
	db *gorm.DB
}

func NewExecucaoGormRepository(db *gorm.DB) *ExecucaoGormRepository {
	return &ExecucaoGormRepository{db: db}
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *ExecucaoGormRepository) GetClienteByClientID(
	ctx context.Context,
	clientID string,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&cliente).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

// --------------------------------------------------
// Servidor
// --------------------------------------------------

func (r *ExecucaoGormRepository) ServidorPertenceAoCliente(
	ctx context.Context,
	clienteID uint,
	enderecoIP string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Servidor{}).
		Where("cliente_id = ? AND endereco_ip = ?", clienteID, enderecoIP).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Execução
// --------------------------------------------------

func (r *ExecucaoGormRepository) CreateExecucao(
	ctx context.Context,
	ex *models.ExecucaoRealtime,
) error {
	return r.db.WithContext(ctx).Create(ex).Error
}

func (r *ExecucaoGormRepository) ListRecentes(
	ctx context.Context,
	clientID string,
	limit int,
) ([]models.ExecucaoRealtime, error) {

	q := r.db.WithContext(ctx).
		Model(&models.ExecucaoRealtime{}).
		Order("created_at DESC").
		Limit(limit)

	if clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var execucoes []models.ExecucaoRealtime
	if err := q.Find(&execucoes).Error; err != nil {
		return nil, err
	}

	return execucoes, nil
}

// --------------------------------------------------
// Playbook
// --------------------------------------------------

func (r *ExecucaoGormRepository) GetPlaybookCommand(
	ctx context.Context,
	id uint,
) (*models.PlaybookCommand, error) {

	var cmd models.PlaybookCommand
	if err := r.db.WithContext(ctx).First(&cmd, id).Error; err != nil {
		return nil, err
	}
	return &cmd, nil
}

// Compile-time check
var _ domain.Repository = (*ExecucaoGormRepository)(nil)
