package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	dbpkg "github.com/VaultSyncBR/backup-console/internal/db"
	infraRepo "github.com/VaultSyncBR/backup-console/internal/infra/repository"
	"github.com/VaultSyncBR/backup-console/internal/middleware"
	ucExecucao "github.com/VaultSyncBR/backup-console/internal/usecase/execucao"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	return db
}

// fixedUser injeta o usuário autenticado sem passar pelo JWT
func fixedUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUsuarioID, id)
		c.Next()
	}
}

type fakePresigner struct{}

func (fakePresigner) PresignDownload(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://backups.local/" + key + "?sig=test", nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	execucaoRepo := infraRepo.NewExecucaoGormRepository(db)
	dispatchUC := ucExecucao.NewDispatch(execucaoRepo, auditDispatcher)
	dispatchFromPlaybookUC := ucExecucao.NewDispatchFromPlaybook(execucaoRepo, auditDispatcher)
	listRecentesUC := ucExecucao.NewListRecentes(execucaoRepo)

	clienteHandler := NewClienteHandler(db, auditDispatcher)
	servidorHandler := NewServidorHandler(db, auditDispatcher)
	agendamentoHandler := NewAgendamentoHandler(db, auditDispatcher)
	execucaoHandler := NewExecucaoHandler(dispatchUC, listRecentesUC)
	playbookHandler := NewPlaybookHandler(db, auditDispatcher, dispatchFromPlaybookUC)
	backupLogsHandler := NewBackupLogsHandler(db, fakePresigner{})

	r := gin.New()
	api := r.Group("/api", fixedUser(1))

	api.GET("/clientes", clienteHandler.List)
	api.POST("/clientes", clienteHandler.Create)
	api.PATCH("/clientes/:id", clienteHandler.Update)
	api.DELETE("/clientes/:id", clienteHandler.Delete)

	api.GET("/servidores", servidorHandler.List)
	api.POST("/servidores", servidorHandler.Create)
	api.PATCH("/servidores/:id", servidorHandler.Update)
	api.DELETE("/servidores/:id", servidorHandler.Delete)

	api.GET("/agendamentos", agendamentoHandler.List)
	api.POST("/agendamentos", agendamentoHandler.Create)
	api.PATCH("/agendamentos/:id", agendamentoHandler.Update)
	api.DELETE("/agendamentos/:id", agendamentoHandler.Delete)

	api.GET("/execucoes", execucaoHandler.ListRecentes)
	api.POST("/execucoes", execucaoHandler.Create)

	api.GET("/playbook", playbookHandler.List)
	api.POST("/playbook", playbookHandler.Create)
	api.PATCH("/playbook/:id", playbookHandler.Update)
	api.DELETE("/playbook/:id", playbookHandler.Delete)
	api.POST("/playbook/:id/execute", playbookHandler.Execute)

	api.GET("/logs", backupLogsHandler.List)
	api.GET("/logs/:id/download", backupLogsHandler.Download)

	api.GET("/auditoria", NewAuditLogsHandler(db).List)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
