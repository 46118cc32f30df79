package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/queue"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/storage"
)

type newsletterReq struct {
	Email string `json:"email"`
}

// CreateNewsletterSubscription validates and persists a newsletter
// signup. The existing-subscription read gives duplicate signups a
// friendly answer; the store's uniqueness guarantee is what actually
// prevents a second row when two identical signups race.
func (h *FormsHandler) CreateNewsletterSubscription(c echo.Context) error {
	var req newsletterReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !validEmail(req.Email) {
		return badRequest(c, "Please enter a valid email address.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	existing, err := h.Store.GetNewsletterSubscriptionByEmail(ctx, req.Email)
	if err != nil {
		c.Logger().Errorf("lookup newsletter subscription: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to subscribe to newsletter"})
	}
	if existing != nil {
		return badRequest(c, "Email is already subscribed to the newsletter")
	}

	sub, err := h.Store.CreateNewsletterSubscription(ctx, req.Email)
	if err != nil {
		if err == storage.ErrDuplicateEmail {
			return badRequest(c, "Email is already subscribed to the newsletter")
		}
		c.Logger().Errorf("create newsletter subscription: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to subscribe to newsletter"})
	}

	h.publish(c, queue.SubmissionReceivedEvent{
		Kind:       "newsletter",
		ID:         sub.ID,
		Email:      sub.Email,
		Summary:    "newsletter signup",
		ReceivedAt: sub.CreatedAt.Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, sub)
}
