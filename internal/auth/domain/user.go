package domain

import "time"

// User is an authenticated principal. The phone number is the unique
// identity attribute and doubles as the display claim embedded in
// credentials.
type User struct {
	ID           string
	Name         string
	PhoneNumber  string
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
