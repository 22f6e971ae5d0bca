package domain

import "time"

// User is the legacy credential record. Kept for compatibility with
// the old integer-keyed users table; not referenced by any current
// page. Do not extend.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// Account is an authentication identity. UserProfile rows are keyed
// by the account id.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
