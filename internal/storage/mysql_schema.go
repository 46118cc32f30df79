package storage

import "context"

// schemaStatements creates every table the store touches. Statements
// are idempotent so EnsureSchema can run on every startup. Catalog
// tables use plain BIGINT primary keys because their ids come from the
// seed data; submission tables auto-increment.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username)
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id BIGINT UNSIGNED NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price VARCHAR(255) NOT NULL,
		type VARCHAR(32) NOT NULL,
		features JSON NOT NULL,
		image_url TEXT NOT NULL,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id BIGINT UNSIGNED NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price VARCHAR(255) NOT NULL,
		duration VARCHAR(255) NOT NULL,
		hours VARCHAR(255) NOT NULL,
		level VARCHAR(32) NOT NULL,
		learnings JSON NOT NULL,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id BIGINT UNSIGNED NOT NULL,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		rating INT NOT NULL,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS course_inquiries (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		course_interest VARCHAR(255) NOT NULL,
		newsletter TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS consultation_bookings (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL,
		consultation_type VARCHAR(32) NOT NULL,
		date VARCHAR(32) NOT NULL,
		time VARCHAR(32) NOT NULL,
		notes TEXT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		subject VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS newsletter_subscriptions (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		email VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_newsletter_email (email)
	)`,
}

// EnsureSchema creates any missing tables.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
