package model

import "time"

// CourseInquiry is an append-only record of a "tell me more" form
// submission from the courses page. ID and CreatedAt are assigned by
// the store at write time, never by the caller.
type CourseInquiry struct {
	ID             uint64    `json:"id"`             // course_inquiries.id
	FullName       string    `json:"fullName"`       // course_inquiries.full_name
	Email          string    `json:"email"`          // course_inquiries.email
	CourseInterest string    `json:"courseInterest"` // course_inquiries.course_interest
	Newsletter     bool      `json:"newsletter"`     // course_inquiries.newsletter
	CreatedAt      time.Time `json:"createdAt"`      // course_inquiries.created_at
}

// NewCourseInquiry carries the caller-supplied fields of an inquiry.
type NewCourseInquiry struct {
	FullName       string
	Email          string
	CourseInterest string
	Newsletter     bool
}
