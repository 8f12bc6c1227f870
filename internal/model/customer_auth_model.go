package model

import "time"

// CustomerAuth is one login session. A session is active while LogoutAt is
// nil and the current time is before ExpiresAt; expired and logged-out rows
// are kept as an audit trail, never deleted.
type CustomerAuth struct {
	AuthID      int64      `json:"-"`
	UUID        string     `json:"id"`
	CustomerID  int64      `json:"-"`
	AccessToken string     `json:"-"` // returned via the access-token header, not the body
	LoginAt     time.Time  `json:"login_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	LogoutAt    *time.Time `json:"logout_at,omitempty"`

	Customer *Customer `json:"-"`
}
