package model

// User mirrors the 'users' table. Only the minimal account endpoints
// touch it; the public form and catalog surface requires no login.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID       uint64 `json:"id"`       // users.id
	Username string `json:"username"` // users.username (unique)
	Password string `json:"-"`        // users.password (bcrypt hash)
}
