package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/queue"
)

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateContactMessage validates and persists a contact form message.
func (h *FormsHandler) CreateContactMessage(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fieldLen(req.Name) < 2 {
		return badRequest(c, "Name must be at least 2 characters.")
	}
	if !validEmail(req.Email) {
		return badRequest(c, "Please enter a valid email address.")
	}
	if fieldLen(req.Subject) < 5 {
		return badRequest(c, "Subject must be at least 5 characters.")
	}
	if fieldLen(req.Message) < 10 {
		return badRequest(c, "Message must be at least 10 characters.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	msg, err := h.Store.CreateContactMessage(ctx, model.NewContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Logger().Errorf("create contact message: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to send message"})
	}

	h.publish(c, queue.SubmissionReceivedEvent{
		Kind:       "contact",
		ID:         msg.ID,
		Email:      msg.Email,
		Summary:    msg.Subject,
		ReceivedAt: msg.CreatedAt.Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, msg)
}
