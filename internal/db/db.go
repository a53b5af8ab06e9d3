package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/config"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE clientes
        SET ativo = true
        WHERE ativo IS NULL
    `)

	return db
}

// Migrate também é usado pelos testes com o driver sqlite
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Cliente{},
		&models.Servidor{},
		&models.Agendamento{},
		&models.ExecucaoRealtime{},
		&models.PlaybookCommand{},
		&models.BackupLog{},
		&models.AuditLog{},
	)
}
