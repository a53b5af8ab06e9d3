package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	"github.com/VaultSyncBR/backup-console/internal/cache"
	"github.com/VaultSyncBR/backup-console/internal/config"
	"github.com/VaultSyncBR/backup-console/internal/handlers"
	infraRepo "github.com/VaultSyncBR/backup-console/internal/infra/repository"
	"github.com/VaultSyncBR/backup-console/internal/middleware"
	"github.com/VaultSyncBR/backup-console/internal/storage"
	ucExecucao "github.com/VaultSyncBR/backup-console/internal/usecase/execucao"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	tokens cache.TokenStore,
	files storage.FilePresigner,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	execucaoRepo := infraRepo.NewExecucaoGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (EXECUÇÕES)
	// ======================================================
	dispatchUC := ucExecucao.NewDispatch(
		execucaoRepo,
		auditDispatcher,
	)

	dispatchFromPlaybookUC := ucExecucao.NewDispatchFromPlaybook(
		execucaoRepo,
		auditDispatcher,
	)

	listRecentesUC := ucExecucao.NewListRecentes(
		execucaoRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, tokens)
	meHandler := handlers.NewMeHandler(db)

	clienteHandler := handlers.NewClienteHandler(db, auditDispatcher)
	servidorHandler := handlers.NewServidorHandler(db, auditDispatcher)
	agendamentoHandler := handlers.NewAgendamentoHandler(db, auditDispatcher)

	execucaoHandler := handlers.NewExecucaoHandler(
		dispatchUC,
		listRecentesUC,
	)

	playbookHandler := handlers.NewPlaybookHandler(db, auditDispatcher, dispatchFromPlaybookUC)

	backupLogsHandler := handlers.NewBackupLogsHandler(db, files)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, tokens))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/clientes", clienteHandler.List)
			secured.POST("/clientes", clienteHandler.Create)
			secured.PATCH("/clientes/:id", clienteHandler.Update)
			secured.DELETE("/clientes/:id", clienteHandler.Delete)

			secured.GET("/servidores", servidorHandler.List)
			secured.POST("/servidores", servidorHandler.Create)
			secured.PATCH("/servidores/:id", servidorHandler.Update)
			secured.DELETE("/servidores/:id", servidorHandler.Delete)

			secured.GET("/agendamentos", agendamentoHandler.List)
			secured.POST("/agendamentos", agendamentoHandler.Create)
			secured.PATCH("/agendamentos/:id", agendamentoHandler.Update)
			secured.DELETE("/agendamentos/:id", agendamentoHandler.Delete)

			// ------------------------------
			// EXECUÇÕES IMEDIATAS
			// ------------------------------
			secured.GET("/execucoes", execucaoHandler.ListRecentes)
			secured.POST("/execucoes", execucaoHandler.Create)

			secured.GET("/playbook", playbookHandler.List)
			secured.POST("/playbook", playbookHandler.Create)
			secured.PATCH("/playbook/:id", playbookHandler.Update)
			secured.DELETE("/playbook/:id", playbookHandler.Delete)
			secured.POST("/playbook/:id/execute", playbookHandler.Execute)

			secured.GET("/logs", backupLogsHandler.List)
			secured.GET("/logs/:id/download", backupLogsHandler.Download)

			secured.GET("/auditoria", auditLogsHandler.List)
		}
	}
}
