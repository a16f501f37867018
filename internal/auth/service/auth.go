package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/lanternchat/lantern/internal/auth/domain"
	"github.com/lanternchat/lantern/internal/auth/session"
	"github.com/lanternchat/lantern/internal/auth/store"
	"github.com/lanternchat/lantern/pkg/cryptox"
	"github.com/lanternchat/lantern/pkg/idx"
	"github.com/lanternchat/lantern/pkg/jwtx"
	"github.com/lanternchat/lantern/pkg/slogx"
)

var (
	ErrDuplicateIdentity  = errors.New("duplicate_identity")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrPasswordMismatch   = errors.New("password_mismatch")
	ErrSessionRevoked     = errors.New("session_revoked")
	ErrTokenMismatch      = errors.New("token_mismatch")
)

// AuthService owns the credential lifecycle: account creation, token
// pair issuance, rotation on refresh, and revocation. Exactly one
// refresh session exists per principal at any time.
type AuthService struct {
	Users    store.Users
	Sessions session.Store
	Codec    *jwtx.Codec

	// RefreshTTLSeconds bounds the session record's lifetime. It should
	// match the refresh token's own expiry so neither outlives the other.
	RefreshTTLSeconds int64
}

// Register creates a new account and immediately opens its first
// session. The phone number is the login identity and must be unused.
func (s *AuthService) Register(ctx context.Context, name, phoneNumber, password, passwordRepeat string) (*domain.TokenPair, error) {
	name = strings.TrimSpace(name)
	phoneNumber = strings.TrimSpace(phoneNumber)

	if password != passwordRepeat {
		return nil, ErrPasswordMismatch
	}

	hash, err := cryptox.Hash(password)
	if err != nil {
		return nil, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		PhoneNumber:  phoneNumber,
		PasswordHash: hash,
	}

	if err := s.Users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	pair, refreshHash, err := s.issuePair(u.ID, u.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Set(ctx, u.ID, refreshHash, s.RefreshTTLSeconds); err != nil {
		return nil, err
	}

	return pair, nil
}

// Login verifies the password and starts a fresh session, replacing any
// previous one. Unknown identity and wrong password produce the same
// error so callers cannot probe which phone numbers exist.
func (s *AuthService) Login(ctx context.Context, phoneNumber, password string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Users.GetUserByPhoneNumber(ctx, strings.TrimSpace(phoneNumber))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !cryptox.Compare(password, u.PasswordHash) {
		l.Info("login password verification failed", slog.String("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}

	pair, refreshHash, err := s.issuePair(u.ID, u.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Set(ctx, u.ID, refreshHash, s.RefreshTTLSeconds); err != nil {
		return nil, err
	}

	return pair, nil
}

// Refresh rotates the session: the presented refresh token is consumed
// and a new pair is issued. rawToken must already be signature-verified
// by the caller; Refresh checks it against the stored session.
//
// A token that fails the stored-hash comparison is treated as evidence
// of replay and revokes the whole session. A swap that loses to a
// concurrent refresh does not: the winner's session stays intact and
// the loser just gets ErrTokenMismatch.
func (s *AuthService) Refresh(ctx context.Context, userID, phoneNumber, rawToken string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	currentHash, err := s.Sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, ErrSessionRevoked
		}
		return nil, err
	}

	if !cryptox.Compare(cryptox.FingerprintToken(rawToken), currentHash) {
		l.Warn("refresh token does not match stored session, revoking", slog.String("user_id", userID))
		if err := s.Sessions.Delete(ctx, userID); err != nil {
			return nil, err
		}
		return nil, ErrTokenMismatch
	}

	pair, newHash, err := s.issuePair(userID, phoneNumber)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Replace(ctx, userID, currentHash, newHash, s.RefreshTTLSeconds); err != nil {
		if errors.Is(err, session.ErrConflict) {
			return nil, ErrTokenMismatch
		}
		return nil, err
	}

	return pair, nil
}

// Logout ends the session. Logging out twice, or with no session at
// all, succeeds the same way.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.Sessions.Delete(ctx, userID)
}

// Info returns the account behind a verified access token.
func (s *AuthService) Info(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	return u, nil
}

// issuePair signs a fresh access/refresh pair and returns the bcrypt
// hash of the refresh token's fingerprint for session storage.
func (s *AuthService) issuePair(userID, phoneNumber string) (*domain.TokenPair, string, error) {
	accessToken, err := s.Codec.IssueAccess(userID, phoneNumber)
	if err != nil {
		return nil, "", err
	}

	refreshToken, err := s.Codec.IssueRefresh(userID, phoneNumber)
	if err != nil {
		return nil, "", err
	}

	refreshHash, err := cryptox.Hash(cryptox.FingerprintToken(refreshToken))
	if err != nil {
		return nil, "", err
	}

	pair := &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.Codec.AccessTTL.Seconds()),
	}
	return pair, refreshHash, nil
}
