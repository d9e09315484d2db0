package entities

import "time"

// WaitlistEntry is a captured launch-waitlist email
type WaitlistEntry struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
