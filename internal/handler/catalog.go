package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/storage"
)

// CatalogHandler serves the read-only reference data: services, courses
// and testimonials. The store lazily seeds itself on first read, so
// these handlers never distinguish "fresh" from "seeded" state.
type CatalogHandler struct {
	Store storage.Storage
}

func NewCatalogHandler(s storage.Storage) *CatalogHandler { return &CatalogHandler{Store: s} }

// GetServices returns all services.
func (h *CatalogHandler) GetServices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	services, err := h.Store.GetServices(ctx)
	if err != nil {
		c.Logger().Errorf("fetch services: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch services"})
	}
	return c.JSON(http.StatusOK, services)
}

// GetService returns one service by id, 404 when absent.
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid service ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	service, err := h.Store.GetService(ctx, id)
	if err != nil {
		c.Logger().Errorf("fetch service %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch service"})
	}
	if service == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Service not found"})
	}
	return c.JSON(http.StatusOK, service)
}

// GetCourses returns all courses.
func (h *CatalogHandler) GetCourses(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	courses, err := h.Store.GetCourses(ctx)
	if err != nil {
		c.Logger().Errorf("fetch courses: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch courses"})
	}
	return c.JSON(http.StatusOK, courses)
}

// GetCourse returns one course by id, 404 when absent.
func (h *CatalogHandler) GetCourse(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid course ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	course, err := h.Store.GetCourse(ctx, id)
	if err != nil {
		c.Logger().Errorf("fetch course %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch course"})
	}
	if course == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Course not found"})
	}
	return c.JSON(http.StatusOK, course)
}

// GetTestimonials returns all testimonials.
func (h *CatalogHandler) GetTestimonials(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	testimonials, err := h.Store.GetTestimonials(ctx)
	if err != nil {
		c.Logger().Errorf("fetch testimonials: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch testimonials"})
	}
	return c.JSON(http.StatusOK, testimonials)
}
