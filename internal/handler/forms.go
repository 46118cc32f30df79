// Package handler implements the HTTP surface: catalog reads, the four
// public form endpoints, the panchang lookup and the minimal account
// endpoints. Request bodies are validated here, field by field, before
// storage is touched; a failing field short-circuits with a 400 and a
// message naming the problem.
package handler

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/queue"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/storage"
)

// FormsHandler bundles dependencies for the form submission endpoints.
// Publish is optional; when nil no events are emitted. Publishing is
// best effort and never fails the request.
type FormsHandler struct {
	Store   storage.Storage
	Publish func(context.Context, queue.SubmissionReceivedEvent) error
}

func NewFormsHandler(s storage.Storage, publish func(context.Context, queue.SubmissionReceivedEvent) error) *FormsHandler {
	return &FormsHandler{Store: s, Publish: publish}
}

// publish emits a submission event if a publisher is configured.
func (h *FormsHandler) publish(c echo.Context, evt queue.SubmissionReceivedEvent) {
	if h.Publish == nil {
		return
	}
	_ = h.Publish(c.Request().Context(), evt)
}

// badRequest is the 400 shape shared by all validation failures.
func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
}

// ----- field validators -----

// fieldLen counts runes after trimming; validation minimums are about
// visible characters, not bytes.
func fieldLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
