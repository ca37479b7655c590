package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avelis/spacetravel/internal/domain"
	"github.com/avelis/spacetravel/internal/service/registry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRegistryUseCase struct {
	mock.Mock
}

func (m *MockRegistryUseCase) EnterPlanet(ctx context.Context, p domain.Planet, confirm registry.ConfirmFunc) error {
	args := m.Called(ctx, p, confirm)
	return args.Error(0)
}

func (m *MockRegistryUseCase) EnterStation(ctx context.Context, s domain.SpaceStation, confirm registry.ConfirmFunc) error {
	args := m.Called(ctx, s, confirm)
	return args.Error(0)
}

func (m *MockRegistryUseCase) EnterSpaceport(ctx context.Context, p domain.Spaceport, confirm registry.ConfirmFunc) (int64, error) {
	args := m.Called(ctx, p, confirm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistryUseCase) EnterSpacecraft(ctx context.Context, c domain.SpacecraftType, confirm registry.ConfirmFunc) error {
	args := m.Called(ctx, c, confirm)
	return args.Error(0)
}

func (m *MockRegistryUseCase) EnterRoute(ctx context.Context, r domain.Route, confirm registry.ConfirmFunc) (int64, error) {
	args := m.Called(ctx, r, confirm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRegistryUseCase) EnterFlight(ctx context.Context, in registry.FlightInput, confirm registry.ConfirmFunc) error {
	args := m.Called(ctx, in, confirm)
	return args.Error(0)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegistryHandler_createPlanet(t *testing.T) {
	mockService := &MockRegistryUseCase{}
	handler := NewRegistryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/registry/planets", `{"name":"Mars","size":6779,"population":0,"confirm":true}`)

	mockService.On("EnterPlanet", c.Request.Context(),
		domain.Planet{Name: "Mars", Size: 6779, Population: 0}, mock.Anything).Return(nil)

	handler.createPlanet(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"committed":true`)
	mockService.AssertExpectations(t)
}

func TestRegistryHandler_createPlanet_NotConfirmed(t *testing.T) {
	mockService := &MockRegistryUseCase{}
	handler := NewRegistryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/registry/planets", `{"name":"Mars","size":6779,"population":0,"confirm":false}`)

	mockService.On("EnterPlanet", c.Request.Context(), mock.Anything, mock.Anything).Return(domain.ErrNotConfirmed)

	handler.createPlanet(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"committed":false`)
}

func TestRegistryHandler_createPlanet_ValidationError(t *testing.T) {
	mockService := &MockRegistryUseCase{}
	handler := NewRegistryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/registry/planets", `{"name":"","size":0,"population":0,"confirm":true}`)

	mockService.On("EnterPlanet", c.Request.Context(), mock.Anything, mock.Anything).
		Return(&domain.ValidationError{Field: "planet_name", Reason: "cannot be empty"})

	handler.createPlanet(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistryHandler_createStation_MissingPlanet(t *testing.T) {
	mockService := &MockRegistryUseCase{}
	handler := NewRegistryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/registry/stations", `{"name":"Orphan","planet":"Venus","capacity":10,"confirm":true}`)

	mockService.On("EnterStation", c.Request.Context(), mock.Anything, mock.Anything).
		Return(&domain.ReferentialError{Entity: "planet", Key: "Venus"})

	handler.createStation(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRegistryHandler_createRoute(t *testing.T) {
	mockService := &MockRegistryUseCase{}
	handler := NewRegistryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/registry/routes", `{"origin_id":1,"dest_id":2,"distance":50,"confirm":true}`)

	mockService.On("EnterRoute", c.Request.Context(),
		domain.Route{OriginID: 1, DestID: 2, Distance: 50}, mock.Anything).Return(int64(3), nil)

	handler.createRoute(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
}

func TestRegistryHandler_createFlight(t *testing.T) {
	mockService := &MockRegistryUseCase{}
	handler := NewRegistryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/registry/flights",
		`{"number":"SP100","route_id":1,"spacecraft_type":"Falcon","departure_time":"08:00","duration_hours":2.5,"days":["Monday","Wednesday"],"confirm":true}`)

	mockService.On("EnterFlight", c.Request.Context(), registry.FlightInput{
		Number:         "SP100",
		RouteID:        1,
		SpacecraftType: "Falcon",
		DepartureTime:  "08:00",
		DurationHours:  2.5,
		Days:           []string{"Monday", "Wednesday"},
	}, mock.Anything).Return(nil)

	handler.createFlight(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}
