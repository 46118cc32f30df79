// Package storage defines the single persistence abstraction behind the
// API and its two interchangeable backends: a transient in-memory store
// and a MySQL-backed store. Callers must not be able to tell them apart;
// both assign ids and createdAt timestamps themselves, seed the catalog
// tables from package catalog, and surface the same sentinel errors.
package storage

import (
	"context"
	"errors"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
)

// ErrDuplicateEmail is returned when a newsletter subscription already
// exists for the given email. Handlers translate this into an HTTP 400
// with an actionable message. The check-then-act race between two
// identical signups is closed inside the store (lock or unique key),
// so the handler pre-check is a courtesy, not the guarantee.
var ErrDuplicateEmail = errors.New("email already subscribed")

// ErrDuplicateUsername is returned when a user with the given username
// already exists. Handlers translate it into an HTTP 409.
var ErrDuplicateUsername = errors.New("username already exists")

// Storage is the CRUD contract shared by both backends. Lookups that
// miss return (nil, nil): absence is a result, not an error. Catalog
// reads lazily seed an empty store before returning; seeding is
// idempotent under concurrent first access.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error)

	// Catalog (immutable after seed)
	GetServices(ctx context.Context) ([]model.Service, error)
	GetService(ctx context.Context, id uint64) (*model.Service, error)
	GetCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, id uint64) (*model.Course, error)
	GetTestimonials(ctx context.Context) ([]model.Testimonial, error)

	// Submissions (append-only; id and createdAt assigned here)
	CreateCourseInquiry(ctx context.Context, in model.NewCourseInquiry) (*model.CourseInquiry, error)
	CreateBooking(ctx context.Context, in model.NewBooking) (*model.ConsultationBooking, error)
	CreateContactMessage(ctx context.Context, in model.NewContactMessage) (*model.ContactMessage, error)
	CreateNewsletterSubscription(ctx context.Context, email string) (*model.NewsletterSubscription, error)
	GetNewsletterSubscriptionByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error)
}
