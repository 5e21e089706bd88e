package repository

import (
	"database/sql"

	"github.com/enrollpay/enrollpay-backend/models"
)

// UserRepository handles user account data operations
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new account; the unique email constraint surfaces
// duplicate registrations as a conflict
func (r *UserRepository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, student_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(query, user.ID, user.Email, user.PasswordHash, user.FullName,
		user.Role, user.StudentNumber, user.CreatedAt)
	return err
}

// GetUserByEmail retrieves an account by email
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, student_number, created_at
		FROM users
		WHERE email = $1
	`
	return scanUser(r.db.QueryRow(query, email))
}

// GetUserByID retrieves an account by ID
func (r *UserRepository) GetUserByID(userID string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, full_name, role, student_number, created_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRow(query, userID))
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FullName,
		&user.Role, &user.StudentNumber, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
