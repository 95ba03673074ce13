package model

import "time"

// Admin represents an administrator credential record.
// PasswordHash is never serialized in API responses.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the administrator identity embedded in a session token.
// It is carried by value; verification never touches the database.
type Identity struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}
