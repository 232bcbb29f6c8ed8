package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telehealth-connect/patient-api/internal/handler"
	"github.com/telehealth-connect/patient-api/internal/middleware"
	"github.com/telehealth-connect/patient-api/internal/model"
	"github.com/telehealth-connect/patient-api/internal/service/auth"
)

type Handler struct {
	service auth.AuthService
}

func NewHandler(service auth.AuthService) *Handler {
	return &Handler{service: service}
}

// Home redirects authenticated patients to the dashboard.
func (h *Handler) Home(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		token := authHeader
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			token = authHeader[7:]
		}
		if _, err := h.service.ValidateSession(c.Request.Context(), token); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"title": "Telehealth Connect",
		"links": []string{"/register", "/login"},
	}))
}

func (h *Handler) ShowRegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"fields": []string{"name", "email", "password"},
	}))
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patient, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewFlashResponse("registration successful, please login", gin.H{
		"id":       patient.ID,
		"redirect": "/login",
	}))
}

func (h *Handler) ShowLoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"fields": []string{"email", "password"},
	}))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(session))
}

func (h *Handler) Logout(c *gin.Context) {
	tokenID := c.GetString(middleware.ContextTokenID)
	if err := h.service.Logout(c.Request.Context(), tokenID); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewFlashResponse("logged out", gin.H{"redirect": "/"}))
}

func (h *Handler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"name": c.GetString(middleware.ContextName),
	}))
}

// RegisterRoutes mounts the public auth routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/register", h.ShowRegisterForm)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLoginForm)
	r.POST("/login", h.Login)
}

// RegisterProtectedRoutes mounts the session-gated routes.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/logout", h.Logout)
	r.GET("/dashboard", h.Dashboard)
}
