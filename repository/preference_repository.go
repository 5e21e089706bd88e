package repository

import (
	"database/sql"
)

// PreferenceRepository is a per-user key-value store for client
// acknowledgment state (remembered email, read flags). Injected where
// needed; no global singleton.
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get retrieves a preference value; sql.ErrNoRows when unset
func (r *PreferenceRepository) Get(userID, key string) (string, error) {
	var value string
	err := r.db.QueryRow(
		`SELECT pref_value FROM user_preferences WHERE user_id = $1 AND pref_key = $2`,
		userID, key).Scan(&value)
	return value, err
}

// Set upserts a preference value
func (r *PreferenceRepository) Set(userID, key, value string) error {
	query := `
		INSERT INTO user_preferences (user_id, pref_key, pref_value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, pref_key)
		DO UPDATE SET pref_value = EXCLUDED.pref_value, updated_at = now()
	`
	_, err := r.db.Exec(query, userID, key, value)
	return err
}

// Clear removes a preference
func (r *PreferenceRepository) Clear(userID, key string) error {
	_, err := r.db.Exec(
		`DELETE FROM user_preferences WHERE user_id = $1 AND pref_key = $2`,
		userID, key)
	return err
}
