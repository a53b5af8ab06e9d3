package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// PageResponse é a resposta das listagens paginadas por range (logs, auditoria):
// total é a contagem exata no servidor, não o tamanho da página.
type PageResponse[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Page[T any](c *gin.Context, data []T, total int64, page, pageSize int) {
	c.JSON(200, PageResponse[T]{
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
