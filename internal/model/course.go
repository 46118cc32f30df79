package model

// Course represents a class offered by the practice. Like services,
// courses are immutable catalog rows seeded with stable ids.
type Course struct {
	ID          uint64   `json:"id"`          // courses.id
	Title       string   `json:"title"`       // courses.title
	Description string   `json:"description"` // courses.description
	Price       string   `json:"price"`       // courses.price (display string)
	Duration    string   `json:"duration"`    // courses.duration ("8 Weekends")
	Hours       string   `json:"hours"`       // courses.hours ("12 Hours")
	Level       string   `json:"level"`       // courses.level (beginner|intermediate|advanced)
	Learnings   []string `json:"learnings"`   // courses.learnings (JSON column)
}
