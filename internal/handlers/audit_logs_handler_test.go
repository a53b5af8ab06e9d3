package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VaultSyncBR/backup-console/internal/models"
)

type auditPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func TestAuditoriaListComFiltros(t *testing.T) {
	r, db := newTestRouter(t)

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := []models.AuditLog{
		{Action: "cliente_created", Entity: "cliente", CreatedAt: base},
		{Action: "cliente_updated", Entity: "cliente", CreatedAt: base.AddDate(0, 0, 1)},
		{Action: "servidor_created", Entity: "servidor", CreatedAt: base.AddDate(0, 0, 2)},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/auditoria", nil)
	requireStatus(t, w, http.StatusOK)

	got := decodeJSON[auditPage](t, w)
	assert.EqualValues(t, 3, got.Total)
	assert.Equal(t, 1, got.Page)
	require.Len(t, got.Logs, 3)
	// mais recente primeiro
	assert.Equal(t, "servidor_created", got.Logs[0].Action)

	w = doJSON(t, r, http.MethodGet, "/api/auditoria?entity=cliente", nil)
	requireStatus(t, w, http.StatusOK)
	got = decodeJSON[auditPage](t, w)
	assert.EqualValues(t, 2, got.Total)

	w = doJSON(t, r, http.MethodGet, "/api/auditoria?action=cliente_updated", nil)
	requireStatus(t, w, http.StatusOK)
	got = decodeJSON[auditPage](t, w)
	require.EqualValues(t, 1, got.Total)
	assert.Equal(t, "cliente_updated", got.Logs[0].Action)

	w = doJSON(t, r, http.MethodGet, "/api/auditoria?from=2026-06-02&to=2026-06-02", nil)
	requireStatus(t, w, http.StatusOK)
	got = decodeJSON[auditPage](t, w)
	require.EqualValues(t, 1, got.Total)
	assert.Equal(t, "cliente_updated", got.Logs[0].Action)
}

func TestAuditoriaPaginacao(t *testing.T) {
	r, db := newTestRouter(t)

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		require.NoError(t, db.Create(&models.AuditLog{
			Action:    "cliente_created",
			Entity:    "cliente",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/auditoria?page=2&limit=5", nil)
	requireStatus(t, w, http.StatusOK)

	got := decodeJSON[auditPage](t, w)
	assert.EqualValues(t, 12, got.Total)
	assert.Equal(t, 2, got.Page)
	assert.Len(t, got.Logs, 5)
}
