package model

import "time"

// User represents a traveller account
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	CreatedAt    time.Time `json:"created_at"`
}

// UserProfile is the public view of a user together with their booking count
type UserProfile struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	MemberSince    string `json:"member_since"` // Year the account was created
	TripsCompleted int64  `json:"trips_completed"`
}
