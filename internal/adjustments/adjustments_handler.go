package adjustments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory/pkg/models"
)

type AdjustmentHandler struct {
	service *AdjustmentService
	r       *AdjustmentRepository
}

func NewAdjustmentHandler(service *AdjustmentService, r *AdjustmentRepository) *AdjustmentHandler {
	return &AdjustmentHandler{
		service: service,
		r:       r,
	}
}

func (h *AdjustmentHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/adjustments", h.ListAdjustments)
	router.POST("/adjustments", h.CreateAdjustment)
	router.DELETE("/adjustments/:id", h.DeleteAdjustment)
}

func (h *AdjustmentHandler) ListAdjustments(c *gin.Context) {
	adjustments, err := h.r.GetAdjustments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch stock adjustments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, adjustments)
}

func (h *AdjustmentHandler) CreateAdjustment(c *gin.Context) {
	var req models.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	id, err := h.service.Apply(req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"id": id})
	case errors.Is(err, ErrAssetIDRequired),
		errors.Is(err, ErrTypeRequired),
		errors.Is(err, ErrReasonRequired),
		errors.Is(err, ErrInvalidType):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAssetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case id != 0:
		// adjustment committed but the side effect failed
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Adjustment recorded but asset update failed", "details": err.Error(), "id": id})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply adjustment", "details": err.Error()})
	}
}

func (h *AdjustmentHandler) DeleteAdjustment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adjustment id must be a number"})
		return
	}

	affected, err := h.r.RemoveAdjustment(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete adjustment", "details": err.Error()})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Adjustment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Adjustment deleted successfully"})
}
