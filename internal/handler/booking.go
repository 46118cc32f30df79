package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/catalog"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/queue"
)

type bookingReq struct {
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	ConsultationType string  `json:"consultationType"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Notes            *string `json:"notes"`
}

// CreateBooking validates and persists a consultation booking. The
// client enforces terms acceptance before submitting; it is not part of
// the stored record.
func (h *FormsHandler) CreateBooking(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fieldLen(req.FirstName) < 2 {
		return badRequest(c, "First name must be at least 2 characters.")
	}
	if fieldLen(req.LastName) < 2 {
		return badRequest(c, "Last name must be at least 2 characters.")
	}
	if !validEmail(req.Email) {
		return badRequest(c, "Please enter a valid email address.")
	}
	if fieldLen(req.Phone) < 7 {
		return badRequest(c, "Please enter a valid phone number.")
	}
	if !catalog.ValidConsultationType(req.ConsultationType) {
		return badRequest(c, "Please select a valid consultation type.")
	}
	if !validDate(req.Date) {
		return badRequest(c, "Please enter a valid date.")
	}
	if !catalog.ValidTimeSlot(req.Time) {
		return badRequest(c, "Please select one of the available time slots.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booking, err := h.Store.CreateBooking(ctx, model.NewBooking{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		ConsultationType: req.ConsultationType,
		Date:             req.Date,
		Time:             req.Time,
		Notes:            req.Notes,
	})
	if err != nil {
		c.Logger().Errorf("create booking: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create booking"})
	}

	h.publish(c, queue.SubmissionReceivedEvent{
		Kind:       "booking",
		ID:         booking.ID,
		Email:      booking.Email,
		Summary:    fmt.Sprintf("%s on %s at %s", booking.ConsultationType, booking.Date, booking.Time),
		ReceivedAt: booking.CreatedAt.Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, booking)
}
