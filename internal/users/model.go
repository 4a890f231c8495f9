package users

import "time"

// User is an account record. Users are immutable after signup; there are no
// update or delete operations.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
