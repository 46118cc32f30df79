package model

import "time"

// ConsultationBooking is an append-only record of a booking form
// submission. Date and Time are kept as the display strings the client
// selected; no scheduling logic interprets them server-side.
type ConsultationBooking struct {
	ID               uint64    `json:"id"`               // consultation_bookings.id
	FirstName        string    `json:"firstName"`        // consultation_bookings.first_name
	LastName         string    `json:"lastName"`         // consultation_bookings.last_name
	Email            string    `json:"email"`            // consultation_bookings.email
	Phone            string    `json:"phone"`            // consultation_bookings.phone
	ConsultationType string    `json:"consultationType"` // consultation_bookings.consultation_type
	Date             string    `json:"date"`             // consultation_bookings.date (calendar date string)
	Time             string    `json:"time"`             // consultation_bookings.time (published slot)
	Notes            *string   `json:"notes"`            // consultation_bookings.notes, optional
	CreatedAt        time.Time `json:"createdAt"`        // consultation_bookings.created_at
}

// NewBooking carries the caller-supplied fields of a booking.
type NewBooking struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	ConsultationType string
	Date             string
	Time             string
	Notes            *string
}
