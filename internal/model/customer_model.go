package model

import "time"

type Customer struct {
	CustomerID    int64      `json:"-"`
	UUID          string     `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name,omitempty"`
	Email         string     `json:"email_address"`
	ContactNumber string     `json:"contact_number"`
	Password      string     `json:"-"` // salted hash, never JSON-encode
	Salt          string     `json:"-"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}
