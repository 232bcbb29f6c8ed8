package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telehealth-connect/patient-api/internal/handler"
	"github.com/telehealth-connect/patient-api/internal/middleware"
	"github.com/telehealth-connect/patient-api/internal/model"
	"github.com/telehealth-connect/patient-api/internal/service/appointment"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ShowBookingForm(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"fields":           []string{"date_time", "location"},
		"date_time_format": model.DateTimeLayout,
	}))
}

func (h *Handler) BookAppointment(c *gin.Context) {
	patientID, ok := middleware.PatientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("please login to book an appointment"))
		return
	}

	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	booked, err := h.service.Book(c.Request.Context(), patientID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewFlashResponse("appointment booked successfully", gin.H{
		"appointment": booked,
		"redirect":    "/dashboard",
	}))
}

func (h *Handler) ViewAppointments(c *gin.Context) {
	patientID, ok := middleware.PatientID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("please login to view appointments"))
		return
	}

	appointments, err := h.service.ListForPatient(c.Request.Context(), patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

// RegisterRoutes mounts the session-gated appointment routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/book-appointment", h.ShowBookingForm)
	r.POST("/book-appointment", h.BookAppointment)
	r.GET("/view-appointments", h.ViewAppointments)
}
