package users

import "time"

// User is a registered account. ResetTokenDigest and ResetExpiresAt are only
// set between a forgot-password request and a successful reset; an empty
// digest means no reset is pending.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	ResetTokenDigest string
	ResetExpiresAt   time.Time
	CreatedAt        time.Time
}
