package user

import "time"

// User is an account that may sign in to the back office. There are no
// roles; every signed-in user sees everything.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
