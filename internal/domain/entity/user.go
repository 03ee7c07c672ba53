package entity

import (
	"time"
)

// User is the aggregate root for the account domain
// Passwords are stored as bcrypt hashes in PasswordHash.
// Profile fields are nullable; nil means the column is NULL.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        *string
	Phone        *string
	Address      *string
	AvatarPath   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public projection of a user. Avatar and hash are excluded.
type Profile struct {
	Username string  `json:"username"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func (u *User) Profile() Profile {
	return Profile{Username: u.Username, Email: u.Email, Phone: u.Phone, Address: u.Address}
}
