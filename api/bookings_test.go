package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Reconcile(ctx context.Context, input booking.ReconcileInput) (*booking.Result, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Result), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, flightNumber string, userID int64) (*booking.Result, error) {
	args := m.Called(ctx, flightNumber, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Result), args.Error(1)
}

func (m *MockBookingUseCase) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func authedContext(t *testing.T, method, target, body string, userID int64) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(userIDKey, userID)
	return c, w
}

func TestBookingHandler_create_Books(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := authedContext(t, "POST", "/bookings", `{"flightNumber":"FL123","seats":5}`, 7)

	result := &booking.Result{
		Action:  booking.ActionCreated,
		Flight:  &domain.Flight{FlightNumber: "FL123", TotalSeats: 20, SeatsAvailable: 15},
		Booking: &domain.Booking{ID: "b-1", FlightNumber: "FL123", UserID: 7, SeatsBooked: 5},
	}
	mockService.On("Reconcile", c.Request.Context(), booking.ReconcileInput{FlightNumber: "FL123", UserID: 7, Seats: 5}).Return(result, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string        `json:"message"`
		Flight  domain.Flight `json:"flight"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking successful", resp.Message)
	assert.Equal(t, 15, resp.Flight.SeatsAvailable)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_RepeatCancels(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := authedContext(t, "POST", "/bookings", `{"flightNumber":"FL123","seats":3}`, 7)

	result := &booking.Result{
		Action:  booking.ActionCanceled,
		Flight:  &domain.Flight{FlightNumber: "FL123", TotalSeats: 20, SeatsAvailable: 20},
		Booking: &domain.Booking{ID: "b-1", FlightNumber: "FL123", UserID: 7, SeatsBooked: 5},
	}
	mockService.On("Reconcile", c.Request.Context(), booking.ReconcileInput{FlightNumber: "FL123", UserID: 7, Seats: 3}).Return(result, nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking canceled successfully", resp.Message)
}

func TestBookingHandler_create_MissingFields(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := authedContext(t, "POST", "/bookings", `{"seats":5}`, 7)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Reconcile")
}

func TestBookingHandler_create_FlightNotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := authedContext(t, "POST", "/bookings", `{"flightNumber":"XX999","seats":5}`, 7)

	mockService.On("Reconcile", c.Request.Context(), mock.Anything).Return(nil, domain.ErrFlightNotFound)

	handler.create(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_create_InsufficientSeats(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := authedContext(t, "POST", "/bookings", `{"flightNumber":"FL123","seats":25}`, 7)

	mockService.On("Reconcile", c.Request.Context(), mock.Anything).Return(nil, domain.ErrInsufficientSeats)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := authedContext(t, "GET", "/bookings", "", 7)

	bookings := []domain.Booking{{ID: "b-1", FlightNumber: "FL123", UserID: 7, SeatsBooked: 5}}
	mockService.On("ListForUser", c.Request.Context(), int64(7)).Return(bookings, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := authedContext(t, "DELETE", "/bookings/FL123", "", 7)
	c.Params = gin.Params{{Key: "flightNumber", Value: "FL123"}}

	result := &booking.Result{
		Action:  booking.ActionCanceled,
		Flight:  &domain.Flight{FlightNumber: "FL123", TotalSeats: 20, SeatsAvailable: 20},
		Booking: &domain.Booking{ID: "b-1"},
	}
	mockService.On("Cancel", c.Request.Context(), "FL123", int64(7)).Return(result, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBookingHandler_cancel_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	c, w := authedContext(t, "DELETE", "/bookings/FL123", "", 7)
	c.Params = gin.Params{{Key: "flightNumber", Value: "FL123"}}

	mockService.On("Cancel", c.Request.Context(), "FL123", int64(7)).Return(nil, domain.ErrBookingNotFound)

	handler.cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
