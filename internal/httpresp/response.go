package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/dto"
)

type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       any             `json:"data,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

type ListEnvelope[T any] struct {
	Success    bool            `json:"success"`
	Count      int             `json:"count"`
	Data       []T             `json:"data"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func OKWithMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// List always serialises data as an array, never null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListEnvelope[T]{
		Success: true,
		Count:   len(data),
		Data:    data,
	})
}

func Paginated[T any](c *gin.Context, data []T, p dto.Pagination) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListEnvelope[T]{
		Success:    true,
		Count:      len(data),
		Data:       data,
		Pagination: &p,
	})
}
