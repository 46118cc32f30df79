package model

// Testimonial is a client quote displayed on the home page. The rating
// is stored as a whole number; fractional source ratings are floored at
// seed time, never rounded.
type Testimonial struct {
	ID      uint64 `json:"id"`      // testimonials.id
	Name    string `json:"name"`    // testimonials.name
	Role    string `json:"role"`    // testimonials.role ("Residential Client")
	Content string `json:"content"` // testimonials.content
	Rating  int    `json:"rating"`  // testimonials.rating, 1..5
}
