package acquisitions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory/pkg/models"
)

type AcquisitionHandler struct {
	r        *AcquisitionRepository
	workflow *ExpansionWorkflow
}

func NewAcquisitionHandler(r *AcquisitionRepository, workflow *ExpansionWorkflow) *AcquisitionHandler {
	return &AcquisitionHandler{
		r:        r,
		workflow: workflow,
	}
}

func (h *AcquisitionHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/acquisitions", h.ListAcquisitions)
	router.POST("/acquisitions", h.CreateAcquisition)
	router.PUT("/acquisitions/:id", h.UpdateAcquisition)
	router.DELETE("/acquisitions/:id", h.DeleteAcquisition)

	router.POST("/acquisitions/expansion", h.StartExpansion)
	router.POST("/expansions/:session/units", h.SubmitUnit)
	router.DELETE("/expansions/:session", h.CancelExpansion)
}

func (h *AcquisitionHandler) ListAcquisitions(c *gin.Context) {
	acquisitions, err := h.r.GetAcquisitions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to fetch acquisitions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, acquisitions)
}

// CreateAcquisition records a purchase without opening an expansion
// session; StartExpansion is the entry point when the units should be
// fanned out immediately.
func (h *AcquisitionHandler) CreateAcquisition(c *gin.Context) {
	var req models.AcquisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	id, err := h.r.PersistAcquisition(req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create acquisition", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *AcquisitionHandler) UpdateAcquisition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acquisition id must be a number"})
		return
	}

	var req models.AcquisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	affected, err := h.r.UpdateAcquisition(id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update acquisition", "details": err.Error()})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Acquisition not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": affected})
}

func (h *AcquisitionHandler) DeleteAcquisition(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acquisition id must be a number"})
		return
	}

	affected, err := h.r.RemoveAcquisition(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete acquisition", "details": err.Error()})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Acquisition not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Acquisition deleted successfully"})
}

func (h *AcquisitionHandler) StartExpansion(c *gin.Context) {
	var req models.AcquisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	session, err := h.workflow.Start(req)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start expansion", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *AcquisitionHandler) SubmitUnit(c *gin.Context) {
	sessionID := c.Param("session")

	var unit models.AssetInput
	if err := c.ShouldBindJSON(&unit); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	session, err := h.workflow.SubmitUnit(sessionID, unit)
	if err != nil {
		if session == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown expansion session"})
			return
		}
		// session survives in place for retry
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist unit", "details": err.Error(), "session": session})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *AcquisitionHandler) CancelExpansion(c *gin.Context) {
	if err := h.workflow.Cancel(c.Param("session")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown expansion session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expansion cancelled"})
}
