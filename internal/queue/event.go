// Package queue defines the message payloads exchanged over the broker
// and the background consumer that drains them.
package queue

// SubmissionReceivedEvent is published after a form submission is
// persisted. It carries enough for downstream consumers to notify or
// log without querying the store. Kind is one of "course_inquiry",
// "booking", "contact" or "newsletter".
type SubmissionReceivedEvent struct {
	Kind       string `json:"kind"`
	ID         uint64 `json:"id"`
	Email      string `json:"email"`
	Summary    string `json:"summary"`
	ReceivedAt string `json:"received_at"`
}
