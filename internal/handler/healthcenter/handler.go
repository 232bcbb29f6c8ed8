package healthcenter

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telehealth-connect/patient-api/internal/handler"
	"github.com/telehealth-connect/patient-api/internal/model"
	"github.com/telehealth-connect/patient-api/internal/service/healthcenter"
)

type Handler struct {
	service healthcenter.HealthCenterService
}

func NewHandler(service healthcenter.HealthCenterService) *Handler {
	return &Handler{service: service}
}

// ListHealthCenters lists every center; GET carries no filter.
func (h *Handler) ListHealthCenters(c *gin.Context) {
	centers, err := h.service.Find(c.Request.Context(), c.Query("user_location"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(centers))
}

// FindHealthCenters filters centers to those near the posted location.
func (h *Handler) FindHealthCenters(c *gin.Context) {
	var req model.FindHealthCentersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	centers, err := h.service.Find(c.Request.Context(), req.UserLocation)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"health_centers": centers,
		"user_location":  req.UserLocation,
	}))
}

// RegisterRoutes mounts the session-gated health-center routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/find-health-centers", h.ListHealthCenters)
	r.POST("/find-health-centers", h.FindHealthCenters)
}
