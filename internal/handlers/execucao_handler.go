package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VaultSyncBR/backup-console/internal/httperr"
	"github.com/VaultSyncBR/backup-console/internal/middleware"
	ucExecucao "github.com/VaultSyncBR/backup-console/internal/usecase/execucao"
)

type ExecucaoHandler struct {
	dispatchUC *ucExecucao.Dispatch
	listUC     *ucExecucao.ListRecentes
}

func NewExecucaoHandler(
	dispatchUC *ucExecucao.Dispatch,
	listUC *ucExecucao.ListRecentes,
) *ExecucaoHandler {
	return &ExecucaoHandler{
		dispatchUC: dispatchUC,
		listUC:     listUC,
	}
}

// --------- Requests ---------

type CreateExecucaoRequest struct {
	ClientID   string `json:"client_id" binding:"required"`
	NomeTarefa string `json:"nome_tarefa" binding:"required"`
	Comando    string `json:"comando" binding:"required"`
	ServidorIP string `json:"servidor_ip" binding:"required"`
}

// --------- Handlers ---------

func (h *ExecucaoHandler) Create(c *gin.Context) {
	usuarioID := c.MustGet(middleware.ContextUsuarioID).(uint)

	var req CreateExecucaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ex, err := h.dispatchUC.Execute(c.Request.Context(), ucExecucao.DispatchInput{
		UsuarioID:  usuarioID,
		ClientID:   req.ClientID,
		NomeTarefa: req.NomeTarefa,
		Comando:    req.Comando,
		ServidorIP: &req.ServidorIP,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Não foi possível enviar o comando.")
			return
		}
		httperr.Internal(c, "execucao_failed", "Não foi possível enviar o comando.")
		return
	}

	c.JSON(http.StatusCreated, ex)
}

func (h *ExecucaoHandler) ListRecentes(c *gin.Context) {
	clientID := c.Query("client_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	execucoes, err := h.listUC.Execute(c.Request.Context(), clientID, limit)
	if err != nil {
		httperr.Internal(c, "execucao_list_failed", "Não foi possível carregar o histórico.")
		return
	}

	c.JSON(http.StatusOK, execucoes)
}
