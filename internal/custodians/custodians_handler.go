package custodians

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	custom_error "inventory/pkg/errors"
	"inventory/pkg/models"
)

type CustodianHandler struct {
	r *CustodianRepository
}

func NewCustodianHandler(r *CustodianRepository) *CustodianHandler {
	return &CustodianHandler{r: r}
}

func (h *CustodianHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/custodians", h.ListCustodians)
	router.POST("/custodians", h.CreateCustodian)
	router.PUT("/custodians/:id", h.UpdateCustodian)
	router.DELETE("/custodians/:id", h.DeleteCustodian)
}

func (h *CustodianHandler) ListCustodians(c *gin.Context) {
	custodians, err := h.r.GetCustodians()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch custodians", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, custodians)
}

func (h *CustodianHandler) CreateCustodian(c *gin.Context) {
	var req models.CustodianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "name is a required field for custodian"})
		return
	}

	id, err := h.r.PersistCustodian(req)
	if err != nil {
		var uniqueErr *custom_error.UniqueViolationError
		if errors.As(err, &uniqueErr) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Custodian already registered"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create custodian", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *CustodianHandler) UpdateCustodian(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Custodian id must be a number"})
		return
	}

	var req models.CustodianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	affected, err := h.r.UpdateCustodian(id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update custodian", "details": err.Error()})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Custodian not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": affected})
}

func (h *CustodianHandler) DeleteCustodian(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Custodian id must be a number"})
		return
	}

	affected, err := h.r.RemoveCustodian(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete custodian", "details": err.Error()})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Custodian not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Custodian deleted successfully"})
}
