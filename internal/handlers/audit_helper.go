package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VaultSyncBR/backup-console/internal/audit"
	"github.com/VaultSyncBR/backup-console/internal/middleware"
)

// auditEvent despacha o evento com o usuário autenticado da requisição.
// Auditoria nunca derruba a operação (fila assíncrona, best effort).
func auditEvent(
	c *gin.Context,
	d *audit.Dispatcher,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {

	if d == nil {
		return
	}

	var usuarioID *uint
	if v, ok := c.Get(middleware.ContextUsuarioID); ok {
		if id, ok := v.(uint); ok {
			usuarioID = &id
		}
	}

	d.Dispatch(audit.Event{
		UsuarioID: usuarioID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  meta,
	})
}
