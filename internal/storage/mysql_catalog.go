package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/catalog"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
)

// Catalog reads follow the fill-if-empty pattern: select, and when the
// table turns out to be empty, seed it from package catalog and select
// again. The seed inserts use INSERT IGNORE with explicit ids, so two
// requests racing through the empty-table branch insert each row once.

func (s *MySQLStore) GetServices(ctx context.Context) ([]model.Service, error) {
	list, err := s.selectServices(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		if err := s.seedServices(ctx); err != nil {
			return nil, err
		}
		return s.selectServices(ctx)
	}
	return list, nil
}

func (s *MySQLStore) selectServices(ctx context.Context) ([]model.Service, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, title, description, price, type, features, image_url FROM services ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Service{}
	for rows.Next() {
		var sv model.Service
		var features []byte
		if err := rows.Scan(&sv.ID, &sv.Title, &sv.Description, &sv.Price, &sv.Type, &features, &sv.ImageURL); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(features, &sv.Features); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func (s *MySQLStore) seedServices(ctx context.Context) error {
	const q = `INSERT IGNORE INTO services (id, title, description, price, type, features, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, sv := range catalog.Services() {
		features, err := json.Marshal(sv.Features)
		if err != nil {
			return err
		}
		if _, err := s.DB.ExecContext(ctx, q,
			sv.ID, sv.Title, sv.Description, sv.Price, sv.Type, features, sv.ImageURL); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) GetService(ctx context.Context, id uint64) (*model.Service, error) {
	var sv model.Service
	var features []byte
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, title, description, price, type, features, image_url FROM services WHERE id=? LIMIT 1",
		id).Scan(&sv.ID, &sv.Title, &sv.Description, &sv.Price, &sv.Type, &features, &sv.ImageURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(features, &sv.Features); err != nil {
		return nil, err
	}
	return &sv, nil
}

func (s *MySQLStore) GetCourses(ctx context.Context) ([]model.Course, error) {
	list, err := s.selectCourses(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		if err := s.seedCourses(ctx); err != nil {
			return nil, err
		}
		return s.selectCourses(ctx)
	}
	return list, nil
}

func (s *MySQLStore) selectCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, title, description, price, duration, hours, level, learnings FROM courses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Course{}
	for rows.Next() {
		var cr model.Course
		var learnings []byte
		if err := rows.Scan(&cr.ID, &cr.Title, &cr.Description, &cr.Price, &cr.Duration, &cr.Hours, &cr.Level, &learnings); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(learnings, &cr.Learnings); err != nil {
			return nil, err
		}
		out = append(out, cr)
	}
	return out, rows.Err()
}

func (s *MySQLStore) seedCourses(ctx context.Context) error {
	const q = `INSERT IGNORE INTO courses (id, title, description, price, duration, hours, level, learnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for _, cr := range catalog.Courses() {
		learnings, err := json.Marshal(cr.Learnings)
		if err != nil {
			return err
		}
		if _, err := s.DB.ExecContext(ctx, q,
			cr.ID, cr.Title, cr.Description, cr.Price, cr.Duration, cr.Hours, cr.Level, learnings); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLStore) GetCourse(ctx context.Context, id uint64) (*model.Course, error) {
	var cr model.Course
	var learnings []byte
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, title, description, price, duration, hours, level, learnings FROM courses WHERE id=? LIMIT 1",
		id).Scan(&cr.ID, &cr.Title, &cr.Description, &cr.Price, &cr.Duration, &cr.Hours, &cr.Level, &learnings)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(learnings, &cr.Learnings); err != nil {
		return nil, err
	}
	return &cr, nil
}

func (s *MySQLStore) GetTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	list, err := s.selectTestimonials(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		if err := s.seedTestimonials(ctx); err != nil {
			return nil, err
		}
		return s.selectTestimonials(ctx)
	}
	return list, nil
}

func (s *MySQLStore) selectTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, name, role, content, rating FROM testimonials ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Testimonial{}
	for rows.Next() {
		var tm model.Testimonial
		if err := rows.Scan(&tm.ID, &tm.Name, &tm.Role, &tm.Content, &tm.Rating); err != nil {
			return nil, err
		}
		out = append(out, tm)
	}
	return out, rows.Err()
}

func (s *MySQLStore) seedTestimonials(ctx context.Context) error {
	const q = `INSERT IGNORE INTO testimonials (id, name, role, content, rating) VALUES (?, ?, ?, ?, ?)`
	// Ratings arrive already floor-truncated from catalog.Testimonials.
	for _, tm := range catalog.Testimonials() {
		if _, err := s.DB.ExecContext(ctx, q, tm.ID, tm.Name, tm.Role, tm.Content, tm.Rating); err != nil {
			return err
		}
	}
	return nil
}
