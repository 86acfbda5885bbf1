package movements

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory/pkg/models"
)

type MovementHandler struct {
	service *MovementService
}

func NewMovementHandler(service *MovementService) *MovementHandler {
	return &MovementHandler{service: service}
}

func (h *MovementHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/movements", h.GetMovements)
	router.POST("/movements", h.CreateMovement)
}

func (h *MovementHandler) GetMovements(c *gin.Context) {
	movements, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movements)
}

func (h *MovementHandler) CreateMovement(c *gin.Context) {
	var req models.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.service.Register(actor(c), req)
	switch {
	case errors.Is(err, ErrMovementTypeRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil && id != 0:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "id": id})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"id": id})
	}
}

func actor(c *gin.Context) string {
	if v := c.GetHeader("X-Actor"); v != "" {
		return v
	}
	return "system"
}
