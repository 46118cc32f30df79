package storage_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/storage"
)

// runStorageContract exercises the behavior both backends must share.
// It avoids assumptions about absolute submission ids so it can run
// against a database that already holds rows.
func runStorageContract(t *testing.T, s storage.Storage) {
	t.Helper()
	ctx := context.Background()
	tag := fmt.Sprintf("%d", time.Now().UnixNano())

	t.Run("catalog seed is idempotent", func(t *testing.T) {
		first, err := s.GetServices(ctx)
		if err != nil {
			t.Fatalf("get services: %v", err)
		}
		second, err := s.GetServices(ctx)
		if err != nil {
			t.Fatalf("get services again: %v", err)
		}
		if len(first) != 3 || len(second) != 3 {
			t.Fatalf("service counts = %d, %d; want 3, 3", len(first), len(second))
		}
		for i := range first {
			if first[i].ID != second[i].ID || first[i].Title != second[i].Title {
				t.Fatalf("seed not stable: %+v vs %+v", first[i], second[i])
			}
		}
		if first[0].ID != 1 || first[1].ID != 2 || first[2].ID != 3 {
			t.Fatalf("service ids not stable: %v %v %v", first[0].ID, first[1].ID, first[2].ID)
		}

		courses, err := s.GetCourses(ctx)
		if err != nil {
			t.Fatalf("get courses: %v", err)
		}
		if len(courses) != 1 || courses[0].ID != 1 {
			t.Fatalf("unexpected course seed: %+v", courses)
		}

		testimonials, err := s.GetTestimonials(ctx)
		if err != nil {
			t.Fatalf("get testimonials: %v", err)
		}
		if len(testimonials) != 3 {
			t.Fatalf("testimonial count = %d, want 3", len(testimonials))
		}
		for _, tm := range testimonials {
			if tm.Rating < 1 || tm.Rating > 5 {
				t.Fatalf("rating %d out of range for %q", tm.Rating, tm.Name)
			}
		}
	})

	t.Run("catalog lookup miss is not an error", func(t *testing.T) {
		sv, err := s.GetService(ctx, 9999)
		if err != nil {
			t.Fatalf("get service: %v", err)
		}
		if sv != nil {
			t.Fatalf("expected absent service, got %+v", sv)
		}
		cr, err := s.GetCourse(ctx, 9999)
		if err != nil {
			t.Fatalf("get course: %v", err)
		}
		if cr != nil {
			t.Fatalf("expected absent course, got %+v", cr)
		}
	})

	t.Run("catalog lookup by id", func(t *testing.T) {
		sv, err := s.GetService(ctx, 2)
		if err != nil {
			t.Fatalf("get service: %v", err)
		}
		if sv == nil || sv.Type != "commercial" {
			t.Fatalf("service 2 = %+v, want commercial", sv)
		}
		if len(sv.Features) != 3 {
			t.Fatalf("service 2 features = %v", sv.Features)
		}
	})

	t.Run("booking ids are store-assigned and increasing", func(t *testing.T) {
		var prev uint64
		for i := 0; i < 3; i++ {
			b, err := s.CreateBooking(ctx, model.NewBooking{
				FirstName:        "Jo",
				LastName:         "Lee",
				Email:            "jo@example.com",
				Phone:            "1234567",
				ConsultationType: "residential",
				Date:             "2025-06-01",
				Time:             "9:00 AM",
			})
			if err != nil {
				t.Fatalf("create booking: %v", err)
			}
			if b.ID == 0 || b.ID <= prev {
				t.Fatalf("booking id %d not strictly increasing after %d", b.ID, prev)
			}
			if b.CreatedAt.IsZero() {
				t.Fatal("createdAt not assigned")
			}
			prev = b.ID
		}
	})

	t.Run("course inquiry round trip", func(t *testing.T) {
		in, err := s.CreateCourseInquiry(ctx, model.NewCourseInquiry{
			FullName:       "Asha Nair",
			Email:          "asha-" + tag + "@example.com",
			CourseInterest: "foundations",
			Newsletter:     true,
		})
		if err != nil {
			t.Fatalf("create inquiry: %v", err)
		}
		if in.ID == 0 || !in.Newsletter || in.CreatedAt.IsZero() {
			t.Fatalf("unexpected inquiry: %+v", in)
		}
	})

	t.Run("contact message round trip", func(t *testing.T) {
		msg, err := s.CreateContactMessage(ctx, model.NewContactMessage{
			Name:    "Ravi",
			Email:   "ravi-" + tag + "@example.com",
			Subject: "Hello there",
			Message: "I would like a consultation.",
		})
		if err != nil {
			t.Fatalf("create message: %v", err)
		}
		if msg.ID == 0 || msg.CreatedAt.IsZero() {
			t.Fatalf("unexpected message: %+v", msg)
		}
	})

	t.Run("newsletter email is unique", func(t *testing.T) {
		email := "sub-" + tag + "@example.com"

		missing, err := s.GetNewsletterSubscriptionByEmail(ctx, email)
		if err != nil {
			t.Fatalf("lookup subscription: %v", err)
		}
		if missing != nil {
			t.Fatalf("expected no subscription yet, got %+v", missing)
		}

		first, err := s.CreateNewsletterSubscription(ctx, email)
		if err != nil {
			t.Fatalf("create subscription: %v", err)
		}
		if first.ID == 0 || first.Email != email {
			t.Fatalf("unexpected subscription: %+v", first)
		}

		if _, err := s.CreateNewsletterSubscription(ctx, email); err != storage.ErrDuplicateEmail {
			t.Fatalf("duplicate insert error = %v, want ErrDuplicateEmail", err)
		}

		found, err := s.GetNewsletterSubscriptionByEmail(ctx, email)
		if err != nil {
			t.Fatalf("lookup subscription: %v", err)
		}
		if found == nil || found.ID != first.ID {
			t.Fatalf("lookup after duplicate = %+v, want id %d", found, first.ID)
		}
	})

	t.Run("user records", func(t *testing.T) {
		username := "admin-" + tag
		u, err := s.CreateUser(ctx, username, "bcrypt-hash-placeholder")
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		if u.ID == 0 {
			t.Fatal("user id not assigned")
		}

		if _, err := s.CreateUser(ctx, username, "other-hash"); err != storage.ErrDuplicateUsername {
			t.Fatalf("duplicate username error = %v, want ErrDuplicateUsername", err)
		}

		byName, err := s.GetUserByUsername(ctx, username)
		if err != nil {
			t.Fatalf("get by username: %v", err)
		}
		if byName == nil || byName.ID != u.ID {
			t.Fatalf("get by username = %+v, want id %d", byName, u.ID)
		}

		byID, err := s.GetUser(ctx, u.ID)
		if err != nil {
			t.Fatalf("get by id: %v", err)
		}
		if byID == nil || byID.Username != username {
			t.Fatalf("get by id = %+v", byID)
		}

		none, err := s.GetUserByUsername(ctx, "nobody-"+tag)
		if err != nil {
			t.Fatalf("get unknown user: %v", err)
		}
		if none != nil {
			t.Fatalf("expected absent user, got %+v", none)
		}
	})
}
