package audit

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/VaultSyncBR/backup-console/internal/db"
	"github.com/VaultSyncBR/backup-console/internal/models"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:audit_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	return db
}

func TestLoggerGravaComMetadata(t *testing.T) {
	db := newTestDB(t)
	logger := New(db)

	usuarioID := uint(7)
	entityID := uint(42)
	err := logger.Log(&usuarioID, "cliente_created", "cliente", &entityID, map[string]string{
		"client_id": "acme",
	})
	require.NoError(t, err)

	var saved models.AuditLog
	require.NoError(t, db.First(&saved).Error)

	assert.Equal(t, "cliente_created", saved.Action)
	assert.Equal(t, "cliente", saved.Entity)
	require.NotNil(t, saved.UsuarioID)
	assert.Equal(t, uint(7), *saved.UsuarioID)
	assert.JSONEq(t, `{"client_id":"acme"}`, saved.Metadata)
}

func TestLoggerSemMetadata(t *testing.T) {
	db := newTestDB(t)
	logger := New(db)

	require.NoError(t, logger.Log(nil, "login", "usuario", nil, nil))

	var saved models.AuditLog
	require.NoError(t, db.First(&saved).Error)
	assert.Empty(t, saved.Metadata)
	assert.Nil(t, saved.UsuarioID)
}

func TestDispatcherGravaEmBackground(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(New(db))

	usuarioID := uint(1)
	d.Dispatch(Event{
		UsuarioID: &usuarioID,
		Action:    "servidor_updated",
		Entity:    "servidor",
	})

	// a fila é assíncrona; espera o worker drenar
	require.Eventually(t, func() bool {
		var count int64
		return db.Model(&models.AuditLog{}).Count(&count).Error == nil && count == 1
	}, 2*time.Second, 10*time.Millisecond)
}
