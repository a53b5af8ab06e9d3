package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/VaultSyncBR/backup-console/internal/models"
)

func seedClienteComServidor(t *testing.T, db *gorm.DB) models.Cliente {
	t.Helper()

	cliente := models.Cliente{ClientID: "acme", NomeEmpresa: "Acme Corp", Ativo: true}
	require.NoError(t, db.Create(&cliente).Error)

	servidor := models.Servidor{
		ClienteID:  cliente.ID,
		Nome:       "srv-backup-01",
		EnderecoIP: "10.0.0.5",
		Status:     1,
	}
	require.NoError(t, db.Create(&servidor).Error)

	return cliente
}

func TestExecucaoCreate(t *testing.T) {
	r, db := newTestRouter(t)
	seedClienteComServidor(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/execucoes", gin.H{
		"client_id":   "acme",
		"nome_tarefa": "backup manual",
		"comando":     "rclone sync /srv remote:acme",
		"servidor_ip": "10.0.0.5",
	})
	requireStatus(t, w, http.StatusCreated)

	created := decodeJSON[models.ExecucaoRealtime](t, w)
	assert.Equal(t, "acme", created.ClientID)
	assert.Equal(t, "backup manual", created.NomeTarefa)
	require.NotNil(t, created.ServidorIP)
	assert.Equal(t, "10.0.0.5", *created.ServidorIP)

	var count int64
	require.NoError(t, db.Model(&models.ExecucaoRealtime{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestExecucaoCreateComandoVazioNaoInsere(t *testing.T) {
	r, db := newTestRouter(t)
	seedClienteComServidor(t, db)

	// vazio cai no binding
	w := doJSON(t, r, http.MethodPost, "/api/execucoes", gin.H{
		"client_id":   "acme",
		"nome_tarefa": "backup manual",
		"comando":     "",
		"servidor_ip": "10.0.0.5",
	})
	requireStatus(t, w, http.StatusBadRequest)

	// só espaço passa do binding e cai na validação de domínio
	w = doJSON(t, r, http.MethodPost, "/api/execucoes", gin.H{
		"client_id":   "acme",
		"nome_tarefa": "backup manual",
		"comando":     "   ",
		"servidor_ip": "10.0.0.5",
	})
	requireStatus(t, w, http.StatusBadRequest)
	body := decodeJSON[map[string]any](t, w)
	assert.Equal(t, "campos_obrigatorios", body["error_code"])

	var count int64
	require.NoError(t, db.Model(&models.ExecucaoRealtime{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestExecucaoCreateClienteInexistente(t *testing.T) {
	r, db := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/execucoes", gin.H{
		"client_id":   "fantasma",
		"nome_tarefa": "backup manual",
		"comando":     "rclone sync /srv remote:x",
		"servidor_ip": "10.0.0.5",
	})
	requireStatus(t, w, http.StatusBadRequest)

	body := decodeJSON[map[string]any](t, w)
	assert.Equal(t, "cliente_nao_encontrado", body["error_code"])

	var count int64
	require.NoError(t, db.Model(&models.ExecucaoRealtime{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestExecucaoCreateServidorDeOutroCliente(t *testing.T) {
	r, db := newTestRouter(t)
	seedClienteComServidor(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/execucoes", gin.H{
		"client_id":   "acme",
		"nome_tarefa": "backup manual",
		"comando":     "rclone sync /srv remote:acme",
		"servidor_ip": "192.168.1.99",
	})
	requireStatus(t, w, http.StatusBadRequest)

	body := decodeJSON[map[string]any](t, w)
	assert.Equal(t, "servidor_invalido", body["error_code"])
}

func TestExecucaoListRecentesLimiteEOrdem(t *testing.T) {
	r, db := newTestRouter(t)

	base := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		ex := models.ExecucaoRealtime{
			ClientID:   "acme",
			NomeTarefa: fmt.Sprintf("tarefa-%02d", i),
			Comando:    "rclone sync /srv remote:acme",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&ex).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/execucoes?client_id=acme", nil)
	requireStatus(t, w, http.StatusOK)

	got := decodeJSON[[]models.ExecucaoRealtime](t, w)
	require.Len(t, got, 20)
	assert.Equal(t, "tarefa-29", got[0].NomeTarefa)
	assert.Equal(t, "tarefa-10", got[19].NomeTarefa)

	// limite acima do teto é rebaixado para 50
	w = doJSON(t, r, http.MethodGet, "/api/execucoes?limit=500", nil)
	requireStatus(t, w, http.StatusOK)

	got = decodeJSON[[]models.ExecucaoRealtime](t, w)
	assert.Len(t, got, 30)
}

func TestPlaybookExecuteUsaComandoDoPlaybook(t *testing.T) {
	r, db := newTestRouter(t)
	seedClienteComServidor(t, db)

	cmd := models.PlaybookCommand{
		Titulo:  "Reiniciar agente",
		Comando: "systemctl restart backup-agent",
	}
	require.NoError(t, db.Create(&cmd).Error)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/playbook/%d/execute", cmd.ID), gin.H{
		"client_id": "acme",
	})
	requireStatus(t, w, http.StatusCreated)

	created := decodeJSON[models.ExecucaoRealtime](t, w)
	assert.Equal(t, "systemctl restart backup-agent", created.Comando)
	// sem nome_tarefa no corpo, herda o título do comando
	assert.Equal(t, "Reiniciar agente", created.NomeTarefa)
	assert.Nil(t, created.ServidorIP)
}

func TestPlaybookExecuteComandoInexistente(t *testing.T) {
	r, db := newTestRouter(t)
	seedClienteComServidor(t, db)

	w := doJSON(t, r, http.MethodPost, "/api/playbook/999/execute", gin.H{
		"client_id": "acme",
	})
	requireStatus(t, w, http.StatusBadRequest)

	body := decodeJSON[map[string]any](t, w)
	assert.Equal(t, "comando_nao_encontrado", body["error_code"])
}
