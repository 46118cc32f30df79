package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/catalog"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
)

// MemoryStore keeps everything in process memory. State is lost on
// restart, which is fine for development and tests. The catalog is
// seeded unconditionally at construction, so catalog reads never hit
// the lazy-seed path. Every mutation takes the store lock, making the
// counter increment and map insert a single atomic step per entity.
type MemoryStore struct {
	mu sync.Mutex

	users        map[uint64]model.User
	services     map[uint64]model.Service
	courses      map[uint64]model.Course
	testimonials map[uint64]model.Testimonial
	inquiries    map[uint64]model.CourseInquiry
	bookings     map[uint64]model.ConsultationBooking
	messages     map[uint64]model.ContactMessage
	subs         map[uint64]model.NewsletterSubscription

	// Per-kind id counters; the next id to hand out, starting at 1.
	nextUser    uint64
	nextInquiry uint64
	nextBooking uint64
	nextMessage uint64
	nextSub     uint64
}

// NewMemoryStore builds a store pre-seeded with the static catalog.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:        make(map[uint64]model.User),
		services:     make(map[uint64]model.Service),
		courses:      make(map[uint64]model.Course),
		testimonials: make(map[uint64]model.Testimonial),
		inquiries:    make(map[uint64]model.CourseInquiry),
		bookings:     make(map[uint64]model.ConsultationBooking),
		messages:     make(map[uint64]model.ContactMessage),
		subs:         make(map[uint64]model.NewsletterSubscription),
		nextUser:     1,
		nextInquiry:  1,
		nextBooking:  1,
		nextMessage:  1,
		nextSub:      1,
	}
	for _, sv := range catalog.Services() {
		s.services[sv.ID] = sv
	}
	for _, cr := range catalog.Courses() {
		s.courses[cr.ID] = cr
	}
	for _, tm := range catalog.Testimonials() {
		s.testimonials[tm.ID] = tm
	}
	return s
}

var _ Storage = (*MemoryStore)(nil)

// ----- Users -----

func (s *MemoryStore) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return nil, ErrDuplicateUsername
		}
	}
	u := model.User{ID: s.nextUser, Username: username, Password: passwordHash}
	s.nextUser++
	s.users[u.ID] = u
	return &u, nil
}

// ----- Catalog -----

func (s *MemoryStore) GetServices(ctx context.Context) ([]model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Service, 0, len(s.services))
	for _, sv := range s.services {
		out = append(out, sv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetService(ctx context.Context, id uint64) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sv, ok := s.services[id]; ok {
		return &sv, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetCourses(ctx context.Context) ([]model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Course, 0, len(s.courses))
	for _, cr := range s.courses {
		out = append(out, cr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetCourse(ctx context.Context, id uint64) (*model.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cr, ok := s.courses[id]; ok {
		return &cr, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Testimonial, 0, len(s.testimonials))
	for _, tm := range s.testimonials {
		out = append(out, tm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ----- Submissions -----

func (s *MemoryStore) CreateCourseInquiry(ctx context.Context, in model.NewCourseInquiry) (*model.CourseInquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := model.CourseInquiry{
		ID:             s.nextInquiry,
		FullName:       in.FullName,
		Email:          in.Email,
		CourseInterest: in.CourseInterest,
		Newsletter:     in.Newsletter,
		CreatedAt:      time.Now().UTC(),
	}
	s.nextInquiry++
	s.inquiries[rec.ID] = rec
	return &rec, nil
}

func (s *MemoryStore) CreateBooking(ctx context.Context, in model.NewBooking) (*model.ConsultationBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := model.ConsultationBooking{
		ID:               s.nextBooking,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		ConsultationType: in.ConsultationType,
		Date:             in.Date,
		Time:             in.Time,
		Notes:            in.Notes,
		CreatedAt:        time.Now().UTC(),
	}
	s.nextBooking++
	s.bookings[rec.ID] = rec
	return &rec, nil
}

func (s *MemoryStore) CreateContactMessage(ctx context.Context, in model.NewContactMessage) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := model.ContactMessage{
		ID:        s.nextMessage,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.nextMessage++
	s.messages[rec.ID] = rec
	return &rec, nil
}

func (s *MemoryStore) CreateNewsletterSubscription(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	// Uniqueness is enforced here, under the lock, so two concurrent
	// signups for the same address cannot both insert.
	for _, sub := range s.subs {
		if sub.Email == email {
			return nil, ErrDuplicateEmail
		}
	}
	rec := model.NewsletterSubscription{
		ID:        s.nextSub,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	s.nextSub++
	s.subs[rec.ID] = rec
	return &rec, nil
}

func (s *MemoryStore) GetNewsletterSubscriptionByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sub := range s.subs {
		if sub.Email == email {
			sub := sub
			return &sub, nil
		}
	}
	return nil, nil
}
