package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/telehealth-connect/patient-api/internal/handler"
	"github.com/telehealth-connect/patient-api/internal/service/auth"
)

// Context keys set by the session gate.
const (
	ContextPatientID = "patientID"
	ContextName      = "patientName"
	ContextTokenID   = "sessionTokenID"
)

type AuthMiddleware struct {
	authService auth.AuthService
}

func NewAuthMiddleware(authService auth.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// SessionGate verifies the bearer session token and puts the patient
// identity into the request context. Every protected route uses it.
func (m *AuthMiddleware) SessionGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortToLogin(c, "please login to continue")
			return
		}

		claims, err := m.authService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			abortToLogin(c, "please login to continue")
			return
		}

		c.Set(ContextPatientID, claims.PatientID.String())
		c.Set(ContextName, claims.Name)
		c.Set(ContextTokenID, claims.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func abortToLogin(c *gin.Context, message string) {
	resp := handler.NewErrorResponse(message)
	resp.Data = gin.H{"redirect": "/login"}
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}

// PatientID extracts the authenticated patient id set by SessionGate.
func PatientID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(ContextPatientID))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
