package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	// Fallback indica que a resposta veio do espelho local, não do banco.
	Fallback bool `json:"fallback,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T, fallback bool) {
	c.JSON(200, ListResponse[T]{
		Data:     data,
		Total:    len(data),
		Fallback: fallback,
	})
}
