package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"photo_studio/internal/adapter/http/handlers/mocks"
	"photo_studio/internal/domain/entities"
	"photo_studio/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBookingRouter(h *BookingHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/bookings", h.ListBookings)
	r.GET("/v1/bookings/:booking_id", h.GetBooking)
	r.PATCH("/v1/bookings/:booking_id/cancel", h.CancelBooking)
	r.GET("/v1/galleries/:gallery_id", h.GetGallery)
	return r
}

func TestBookingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bookings/b-1", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get booking success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Booking{ID: "b-1", Status: entities.BookingStatusConfirmed}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bookings/b-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["gallery_id"] != entities.GalleryIDFor("b-1") {
			t.Fatalf("unexpected gallery id: %v", body["gallery_id"])
		}
	})

	t.Run("list requires email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().ListByClientEmail(gomock.Any(), "").Return(nil, usecase.ErrInvalidClientEmail)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list empty returns array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().ListByClientEmail(gomock.Any(), "ana@test.com").Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bookings?email=ana@test.com", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("cancel twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "b-1").Return(entities.Booking{}, usecase.ErrBookingAlreadyCancelled)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/bookings/b-1/cancel", nil))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get gallery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newBookingRouter(NewBookingHandler(uc))

		uc.EXPECT().GetGallery(gomock.Any(), "g-1").Return(entities.Gallery{ID: "g-1", Status: entities.GalleryStatusAwaitingSelection}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/galleries/g-1", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapBookingError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{usecase.ErrInvalidBookingID, http.StatusBadRequest},
		{usecase.ErrInvalidClientEmail, http.StatusBadRequest},
		{usecase.ErrBookingNotFound, http.StatusNotFound},
		{usecase.ErrGalleryNotFound, http.StatusNotFound},
		{usecase.ErrBookingAlreadyCancelled, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapBookingError(tt.err).HTTPStatus; got != tt.wantStatus {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.wantStatus, got)
		}
	}
}
