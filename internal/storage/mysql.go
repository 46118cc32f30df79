package storage

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/model"
)

// MySQLStore persists everything in MySQL. Ids come from auto-increment
// primary keys, newsletter uniqueness from a UNIQUE KEY on the email
// column, and the lazy catalog seed uses INSERT IGNORE keyed by the
// stable catalog ids so concurrent first reads cannot duplicate rows.
type MySQLStore struct {
	DB *sql.DB
}

// NewMySQLStore wraps an open database handle. Call EnsureSchema before
// serving traffic.
func NewMySQLStore(db *sql.DB) *MySQLStore { return &MySQLStore{DB: db} }

var _ Storage = (*MySQLStore)(nil)

// isDuplicateKey reports whether err is a MySQL 1062 duplicate-entry
// violation.
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// ----- Users -----

func (s *MySQLStore) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	var u model.User
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MySQLStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var u model.User
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, username, password FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MySQLStore) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	res, err := s.DB.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?,?)",
		username, passwordHash)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.User{ID: uint64(id), Username: username, Password: passwordHash}, nil
}
