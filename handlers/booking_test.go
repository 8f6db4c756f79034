package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingRepo "voyago/database/repository/booking"
	"voyago/models"
	"voyago/services/booking"

	"github.com/gin-gonic/gin"
)

// ============================================
// Mocks
// ============================================

type stubBookingService struct {
	created *models.Booking
}

func (s *stubBookingService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	if err := booking.ValidateDates(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}
	b := &models.Booking{
		ID:        "B1",
		ListingID: input.ListingID,
		UserName:  input.UserName,
		UserEmail: input.UserEmail,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
	}
	s.created = b
	return b, nil
}

func (s *stubBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if s.created != nil && s.created.ID == id {
		return s.created, nil
	}
	return nil, fmt.Errorf("booking %s: %w", id, bookingRepo.ErrNotFound)
}

func (s *stubBookingService) List(ctx context.Context) ([]models.Booking, error) {
	if s.created == nil {
		return nil, nil
	}
	return []models.Booking{*s.created}, nil
}

func (s *stubBookingService) Delete(ctx context.Context, id string) error {
	if s.created != nil && s.created.ID == id {
		s.created = nil
		return nil
	}
	return fmt.Errorf("booking %s: %w", id, bookingRepo.ErrNotFound)
}

func newBookingRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)
	r := gin.New()
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/bookings", h.ListBookings)
	r.GET("/api/bookings/:id", h.GetBooking)
	r.DELETE("/api/bookings/:id", h.DeleteBooking)
	return r
}

// ============================================
// Tests
// ============================================

func TestCreateBooking_Success(t *testing.T) {
	svc := &stubBookingService{}
	router := newBookingRouter(svc)

	body, _ := json.Marshal(gin.H{
		"listing_id": "L1",
		"user_name":  "Jane",
		"user_email": "jane@example.com",
		"check_in":   "2024-12-01",
		"check_out":  "2024-12-05",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var got models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != "B1" || got.ListingID != "L1" {
		t.Errorf("unexpected booking in response: %+v", got)
	}
}

func TestCreateBooking_InvalidDates(t *testing.T) {
	svc := &stubBookingService{}
	router := newBookingRouter(svc)

	body, _ := json.Marshal(gin.H{
		"listing_id": "L1",
		"user_name":  "Jane",
		"user_email": "jane@example.com",
		"check_in":   "2024-12-05",
		"check_out":  "2024-12-01",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if svc.created != nil {
		t.Error("invalid booking must not be created")
	}
}

func TestCreateBooking_MissingFields(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	body, _ := json.Marshal(gin.H{"listing_id": "L1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListBookings_EmptyIsArray(t *testing.T) {
	router := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Errorf("expected empty JSON array, got %s", w.Body.String())
	}
}
