package sessions

import "journal-api/internal/server/models"

// Session binds the single live refresh token to its owner identity.
type Session struct {
	Owner        models.Owner
	RefreshToken string
}
