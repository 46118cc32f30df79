package model

import "time"

// NewsletterSubscription records an email signup. Email is unique
// across all subscriptions; the store enforces it.
type NewsletterSubscription struct {
	ID        uint64    `json:"id"`        // newsletter_subscriptions.id
	Email     string    `json:"email"`     // newsletter_subscriptions.email (unique)
	CreatedAt time.Time `json:"createdAt"` // newsletter_subscriptions.created_at
}
