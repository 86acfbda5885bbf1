package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	repository *HistoryRepository
}

func NewHistoryHandler(repository *HistoryRepository) *HistoryHandler {
	return &HistoryHandler{repository: repository}
}

func (h *HistoryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/history", h.GetHistory)
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.repository.GetHistory(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
