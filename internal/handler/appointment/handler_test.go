package appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telehealth-connect/patient-api/internal/handler"
	"github.com/telehealth-connect/patient-api/internal/middleware"
	"github.com/telehealth-connect/patient-api/internal/model"
	pkgauth "github.com/telehealth-connect/patient-api/pkg/auth"
)

const validToken = "valid-session-token"

var sessionPatientID = uuid.New()

type fakeGateService struct{}

func (fakeGateService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Patient, error) {
	return nil, nil
}

func (fakeGateService) Login(ctx context.Context, email, password string) (*model.SessionResponse, error) {
	return nil, nil
}

func (fakeGateService) Logout(ctx context.Context, tokenID string) error {
	return nil
}

func (fakeGateService) ValidateSession(ctx context.Context, token string) (*pkgauth.SessionClaims, error) {
	if token != validToken {
		return nil, pkgauth.ErrInvalidToken
	}
	return &pkgauth.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "token-1"},
		PatientID:        sessionPatientID,
		Name:             "Ada Obi",
	}, nil
}

type fakeAppointmentService struct {
	booked []*model.Appointment
}

func (s *fakeAppointmentService) Book(ctx context.Context, patientID uuid.UUID, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	dateTime, err := time.Parse(model.DateTimeLayout, req.DateTime)
	if err != nil {
		return nil, err
	}
	centerID := uuid.New()
	appointment := &model.Appointment{
		Base:           model.Base{ID: uuid.New()},
		PatientID:      patientID,
		DateTime:       dateTime,
		Location:       req.Location,
		HealthCenterID: &centerID,
	}
	s.booked = append(s.booked, appointment)
	return appointment, nil
}

func (s *fakeAppointmentService) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	var result []*model.Appointment
	for _, a := range s.booked {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	return result, nil
}

func newTestRouter(svc *fakeAppointmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	protected := engine.Group("")
	protected.Use(middleware.NewAuthMiddleware(fakeGateService{}).SessionGate())
	NewHandler(svc).RegisterRoutes(protected)

	return engine
}

func doRequest(engine *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestBookAppointmentUnauthenticated(t *testing.T) {
	svc := &fakeAppointmentService{}
	engine := newTestRouter(svc)

	w := doRequest(engine, http.MethodPost, "/book-appointment",
		`{"date_time":"2025-06-01T10:00","location":"Clinic A"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.booked)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "/login", data["redirect"])
}

func TestBookAppointmentSuccess(t *testing.T) {
	svc := &fakeAppointmentService{}
	engine := newTestRouter(svc)

	w := doRequest(engine, http.MethodPost, "/book-appointment",
		`{"date_time":"2025-06-01T10:00","location":"Clinic A"}`, validToken)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.booked, 1)
	assert.Equal(t, sessionPatientID, svc.booked[0].PatientID)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "appointment booked successfully", resp.Message)
}

func TestBookAppointmentMissingFields(t *testing.T) {
	svc := &fakeAppointmentService{}
	engine := newTestRouter(svc)

	w := doRequest(engine, http.MethodPost, "/book-appointment", `{}`, validToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.booked)
}

func TestViewAppointmentsOnlyOwn(t *testing.T) {
	svc := &fakeAppointmentService{}
	engine := newTestRouter(svc)

	otherID := uuid.New()
	centerID := uuid.New()
	svc.booked = append(svc.booked,
		&model.Appointment{Base: model.Base{ID: uuid.New()}, PatientID: sessionPatientID, DateTime: time.Now(), Location: "Clinic A", HealthCenterID: &centerID},
		&model.Appointment{Base: model.Base{ID: uuid.New()}, PatientID: otherID, DateTime: time.Now(), Location: "Clinic B", HealthCenterID: &centerID},
	)

	w := doRequest(engine, http.MethodGet, "/view-appointments", "", validToken)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	listed := resp.Data.([]interface{})
	require.Len(t, listed, 1)
	first := listed[0].(map[string]interface{})
	assert.Equal(t, sessionPatientID.String(), first["patient_id"])
}

func TestShowBookingForm(t *testing.T) {
	engine := newTestRouter(&fakeAppointmentService{})

	w := doRequest(engine, http.MethodGet, "/book-appointment", "", validToken)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, model.DateTimeLayout, data["date_time_format"])
}
