package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/catalog"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/queue"
)

type courseInquiryReq struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	CourseInterest string `json:"courseInterest"`
	Newsletter     bool   `json:"newsletter"`
}

// CreateCourseInquiry validates and persists a course inquiry form
// submission, returning the stored record with its assigned id.
func (h *FormsHandler) CreateCourseInquiry(c echo.Context) error {
	var req courseInquiryReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if fieldLen(req.FullName) < 2 {
		return badRequest(c, "Full name must be at least 2 characters.")
	}
	if !validEmail(req.Email) {
		return badRequest(c, "Please enter a valid email address.")
	}
	if !catalog.ValidCourseInterest(req.CourseInterest) {
		return badRequest(c, "Please select a valid course option.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	inquiry, err := h.Store.CreateCourseInquiry(ctx, model.NewCourseInquiry{
		FullName:       req.FullName,
		Email:          req.Email,
		CourseInterest: req.CourseInterest,
		Newsletter:     req.Newsletter,
	})
	if err != nil {
		c.Logger().Errorf("create course inquiry: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create course inquiry"})
	}

	h.publish(c, queue.SubmissionReceivedEvent{
		Kind:       "course_inquiry",
		ID:         inquiry.ID,
		Email:      inquiry.Email,
		Summary:    inquiry.CourseInterest,
		ReceivedAt: inquiry.CreatedAt.Format(time.RFC3339),
	})
	return c.JSON(http.StatusCreated, inquiry)
}
