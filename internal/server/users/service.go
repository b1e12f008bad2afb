// Package users implements the credential store and the authentication
// service: registration, login, session rotation, token renewal, logout,
// and the password-reset flow.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"journal-api/internal/common"
	"journal-api/internal/cryptox"
	"journal-api/internal/server/auth"
	"journal-api/internal/server/config"
	"journal-api/internal/server/mail"
	"journal-api/internal/server/models"
	"journal-api/internal/server/sessions"
)

const (
	bcryptCost         = 10
	resetTokenValidity = 15 * time.Minute
	resetTokenBytes    = 20
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service provides authentication-related operations:
// - Register / Login: create users, verify credentials, mint token pairs
// - Renew: exchange a stored refresh token for a new access token
// - Logout: delete the stored session
// - ForgotPassword / ResetPassword: the mail-based reset flow
type Service struct {
	repo                         Repository
	sessionRepo                  sessions.Repository
	cipher                       *cryptox.Cipher
	mailer                       mail.Mailer
	accessTokenSecret            []byte
	refreshTokenSecret           []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	publicBaseURL                string
}

// NewService constructs a Service from repositories, the field cipher,
// a mailer, and server config.
func NewService(repo Repository, sessionRepo sessions.Repository, cipher *cryptox.Cipher, mailer mail.Mailer, cfg *config.Config) *Service {
	return &Service{
		repo:                         repo,
		sessionRepo:                  sessionRepo,
		cipher:                       cipher,
		mailer:                       mailer,
		accessTokenSecret:            []byte(cfg.AccessTokenSecret),
		refreshTokenSecret:           []byte(cfg.RefreshTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		publicBaseURL:                cfg.PublicBaseURL,
	}
}

// Register creates a new user with a bcrypt-hashed password and starts a
// session for it. A duplicate email yields common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, name, email, password string) (*TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{Name: name, Email: email, PasswordHash: string(hash)}
	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.rotateSession(ctx, models.Owner{Name: user.Name, Email: user.Email})
}

// Login verifies the credentials and rotates the user's session. A missing
// user yields common.ErrorNotFound; a wrong password common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.rotateSession(ctx, models.Owner{Name: user.Name, Email: user.Email})
}

// Renew exchanges a presented refresh token for a fresh access token. The
// token must be found in the session store (common.ErrNoSuchSession
// otherwise) and must verify against the refresh secret
// (common.ErrInvalidToken otherwise). The new access token is minted from
// the verified claims; ownership is not re-checked against the stored
// session record.
func (s *Service) Renew(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", common.ErrNoRefreshToken
	}

	if _, err := s.sessionRepo.FindByToken(ctx, refreshToken); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrNoSuchSession
		}
		return "", common.ErrorInternal
	}

	claims, err := auth.ParseToken(refreshToken, s.refreshTokenSecret)
	if err != nil {
		return "", common.ErrInvalidToken
	}

	accessToken, err := auth.GenerateToken(claims.Name, claims.Email, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return accessToken, nil
}

// Logout deletes the session holding the presented refresh token.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return common.ErrNoRefreshToken
	}

	if _, err := s.sessionRepo.FindByToken(ctx, refreshToken); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrNoSuchSession
		}
		return common.ErrorInternal
	}

	if err := s.sessionRepo.DeleteByToken(ctx, refreshToken); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// ForgotPassword stores a keyed digest of a fresh reset token against the
// user and mails the reset link. The plaintext token leaves the process only
// inside the mail.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	token, err := common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return common.ErrorInternal
	}

	digest := s.cipher.DigestToken(token)
	if err := s.repo.SetResetToken(ctx, user.ID, digest, time.Now().Add(resetTokenValidity)); err != nil {
		return common.ErrorInternal
	}

	link := fmt.Sprintf("%s/authentication/resetPassword/%s", s.publicBaseURL, token)
	body := fmt.Sprintf("You requested a password reset.\n\nFollow this link to choose a new password:\n%s\n\nThe link expires in %d minutes.", link, int(resetTokenValidity.Minutes()))
	if err := s.mailer.Send(ctx, user.Email, "Password reset", body); err != nil {
		return fmt.Errorf("error sending reset mail: %w", err)
	}
	return nil
}

// ResetPassword looks the user up by the digest of the presented token,
// checks expiry, replaces the password hash, and clears the reset state.
// Invalid or expired tokens yield common.ErrResetLinkInvalid.
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.repo.GetByResetDigest(ctx, s.cipher.DigestToken(token))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrResetLinkInvalid
		}
		return common.ErrorInternal
	}

	if user.ResetExpiresAt.Before(time.Now()) {
		return common.ErrResetLinkInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return common.ErrorInternal
	}
	if err := s.repo.SetPasswordHash(ctx, user.ID, string(hash)); err != nil {
		return common.ErrorInternal
	}
	if err := s.repo.ClearResetToken(ctx, user.ID); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// --- helpers below ---

// rotateSession mints a fresh token pair and upserts the owner's session
// record. This is the single place the one-refresh-token-per-user invariant
// is enforced.
func (s *Service) rotateSession(ctx context.Context, owner models.Owner) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(owner.Name, owner.Email, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := auth.GenerateToken(owner.Name, owner.Email, s.refreshTokenSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.sessionRepo.Upsert(ctx, owner, refreshToken); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
