// Package bookings implements the best-effort write path: a booking request
// with a resolvable tour never fails outright, even when the store is down.
package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"oyow/logger"
	"oyow/models"
	"oyow/store"
	"oyow/tours"
	"oyow/utils"
)

// TempIDPrefix marks identifiers of bookings that were accepted but not
// durably saved, so reconciliation can tell them from store-assigned ids.
const TempIDPrefix = "temp-"

type Handler struct {
	Tours    store.TourStore
	Bookings store.BookingStore
}

func NewHandler(t store.TourStore, b store.BookingStore) *Handler {
	return &Handler{Tours: t, Bookings: b}
}

type bookingRequest struct {
	TourID          string `json:"tourId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Date            string `json:"date"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
}

// validate returns the failed field rules. The date must be ISO-8601, either
// a full timestamp or a plain calendar date.
func (req bookingRequest) validate() ([]models.FieldError, time.Time) {
	var errs []models.FieldError
	if req.TourID == "" {
		errs = append(errs, models.FieldError{Field: "tourId", Message: "tourId is required"})
	}
	if req.Name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "name is required"})
	}
	if req.Email == "" {
		errs = append(errs, models.FieldError{Field: "email", Message: "email is required"})
	}

	var date time.Time
	if req.Date == "" {
		errs = append(errs, models.FieldError{Field: "date", Message: "date is required"})
	} else {
		var err error
		if date, err = parseISODate(req.Date); err != nil {
			errs = append(errs, models.FieldError{Field: "date", Message: "date must be ISO-8601"})
		}
	}
	return errs, date
}

func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fieldErrs, date := req.validate()
	if len(fieldErrs) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"error": "Validation failed", "fields": fieldErrs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	// An unknown tour is the only hard reference failure, regardless of
	// whether the store is reachable.
	price, ok := tours.ResolvePrice(ctx, h.Tours, req.TourID)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid tourId")
		return
	}

	now := time.Now()
	booking := models.Booking{
		BookingID:       utils.GetUUID(),
		TourID:          req.TourID,
		Name:            req.Name,
		Email:           req.Email,
		Date:            date,
		Phone:           req.Phone,
		SpecialRequests: req.SpecialRequests,
		TotalAmount:     price,
		Status:          models.BookingPending,
		Persisted:       true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := h.Bookings.Insert(ctx, booking); err != nil {
		// Durability traded for availability: synthesize a marked id, keep
		// the payload in the log for manual recovery, and still answer 201.
		booking.BookingID = fmt.Sprintf("%s%d", TempIDPrefix, now.UnixMilli())
		booking.Persisted = false
		payload, _ := json.Marshal(booking)
		logger.Log.Error().Err(err).RawJSON("booking", payload).Msg("booking not persisted, accepted for manual recovery")
	} else {
		logger.Log.Info().Str("bookingId", booking.BookingID).Str("tourId", booking.TourID).Msg("booking created")
	}

	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	booking, err := h.Bookings.FindByID(ctx, ps.ByName("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		logger.Log.Error().Err(err).Msg("booking lookup failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}
