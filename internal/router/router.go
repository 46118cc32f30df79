// Package router wires the HTTP routes to their handlers. Everything
// the public site consumes lives under /api; only the health check sits
// at the root.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/handler"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/middleware"
)

// Deps carries everything route registration needs. CacheMW and
// LimitMW may be pass-through middlewares when redis is unavailable.
type Deps struct {
	Catalog   *handler.CatalogHandler
	Forms     *handler.FormsHandler
	Auth      *handler.AuthHandler
	JWTSecret string
	CacheMW   echo.MiddlewareFunc
	LimitMW   echo.MiddlewareFunc
}

// Register mounts all routes on the provided Echo instance.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// Catalog reads; cached because the data is immutable after seed.
	api.GET("/services", d.Catalog.GetServices, d.CacheMW)
	api.GET("/services/:id", d.Catalog.GetService, d.CacheMW)
	api.GET("/courses", d.Catalog.GetCourses, d.CacheMW)
	api.GET("/courses/:id", d.Catalog.GetCourse, d.CacheMW)
	api.GET("/testimonials", d.Catalog.GetTestimonials, d.CacheMW)

	// Form submissions; rate limited per client IP.
	api.POST("/course-inquiry", d.Forms.CreateCourseInquiry, d.LimitMW)
	api.POST("/booking", d.Forms.CreateBooking, d.LimitMW)
	api.POST("/contact", d.Forms.CreateContactMessage, d.LimitMW)
	api.POST("/newsletter", d.Forms.CreateNewsletterSubscription, d.LimitMW)

	// Almanac lookup; pure computation, no storage behind it.
	api.POST("/panchang", handler.Panchang)

	// Account endpoints.
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.GET("/auth/me", d.Auth.Me, middleware.JWTAuth(d.JWTSecret))
}
