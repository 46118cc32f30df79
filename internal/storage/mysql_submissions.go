package storage

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
)

// Submission inserts assign created_at in Go rather than relying on a
// column default so both backends stamp records the same way.

func (s *MySQLStore) CreateCourseInquiry(ctx context.Context, in model.NewCourseInquiry) (*model.CourseInquiry, error) {
	now := time.Now().UTC()
	const q = `INSERT INTO course_inquiries (full_name, email, course_interest, newsletter, created_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := s.DB.ExecContext(ctx, q, in.FullName, in.Email, in.CourseInterest, in.Newsletter, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.CourseInquiry{
		ID:             uint64(id),
		FullName:       in.FullName,
		Email:          in.Email,
		CourseInterest: in.CourseInterest,
		Newsletter:     in.Newsletter,
		CreatedAt:      now,
	}, nil
}

func (s *MySQLStore) CreateBooking(ctx context.Context, in model.NewBooking) (*model.ConsultationBooking, error) {
	now := time.Now().UTC()
	const q = `INSERT INTO consultation_bookings
		(first_name, last_name, email, phone, consultation_type, date, time, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.DB.ExecContext(ctx, q,
		in.FirstName, in.LastName, in.Email, in.Phone, in.ConsultationType, in.Date, in.Time, in.Notes, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.ConsultationBooking{
		ID:               uint64(id),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		ConsultationType: in.ConsultationType,
		Date:             in.Date,
		Time:             in.Time,
		Notes:            in.Notes,
		CreatedAt:        now,
	}, nil
}

func (s *MySQLStore) CreateContactMessage(ctx context.Context, in model.NewContactMessage) (*model.ContactMessage, error) {
	now := time.Now().UTC()
	const q = `INSERT INTO contact_messages (name, email, subject, message, created_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := s.DB.ExecContext(ctx, q, in.Name, in.Email, in.Subject, in.Message, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.ContactMessage{
		ID:        uint64(id),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: now,
	}, nil
}

func (s *MySQLStore) CreateNewsletterSubscription(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().UTC()
	res, err := s.DB.ExecContext(ctx,
		"INSERT INTO newsletter_subscriptions (email, created_at) VALUES (?, ?)",
		email, now)
	if err != nil {
		// The UNIQUE KEY on email is the real uniqueness guarantee;
		// a racing duplicate lands here as a 1062.
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.NewsletterSubscription{ID: uint64(id), Email: email, CreatedAt: now}, nil
}

func (s *MySQLStore) GetNewsletterSubscriptionByEmail(ctx context.Context, email string) (*model.NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var sub model.NewsletterSubscription
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, email, created_at FROM newsletter_subscriptions WHERE email=? LIMIT 1",
		email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
