package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sushe-online/sushe-server/internal/logger"
	"github.com/sushe-online/sushe-server/internal/models"
)

var (
	// ErrExtensionTokenInvalid is returned for unknown, expired or revoked tokens.
	ErrExtensionTokenInvalid = errors.New("extension token is invalid or expired")
	// ErrExtensionTokenNotFound is returned when revoking a token that does not exist.
	ErrExtensionTokenNotFound = errors.New("extension token not found")
)

// ExtensionTokenReader defines read operations for extension tokens.
type ExtensionTokenReader interface {
	GetActiveByHash(ctx context.Context, tokenHash string) (*models.ExtensionTokenDB, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExtensionTokenDB, error)
}

// ExtensionTokenWriter defines write operations for extension tokens.
type ExtensionTokenWriter interface {
	Save(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (uuid.UUID, error)
	Revoke(ctx context.Context, userID, tokenID uuid.UUID) error
	TouchLastUsed(ctx context.Context, tokenID uuid.UUID) error
}

// ExtensionTokenService issues and validates bearer credentials for the
// browser extension. Tokens are 32 random bytes, hex-encoded; only the
// SHA-256 hash is stored, so the plaintext is shown exactly once.
type ExtensionTokenService struct {
	reader ExtensionTokenReader
	writer ExtensionTokenWriter
	ttl    time.Duration
}

// NewExtensionTokenService creates a new ExtensionTokenService.
func NewExtensionTokenService(reader ExtensionTokenReader, writer ExtensionTokenWriter, ttl time.Duration) *ExtensionTokenService {
	return &ExtensionTokenService{
		reader: reader,
		writer: writer,
		ttl:    ttl,
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Issue creates a new token for the user and returns the plaintext token,
// its id and expiry.
func (s *ExtensionTokenService) Issue(ctx context.Context, userID uuid.UUID) (token string, tokenID uuid.UUID, expiresAt time.Time, err error) {
	raw := make([]byte, 32)
	if _, err = rand.Read(raw); err != nil {
		logger.Log.Errorw("failed to generate extension token", "err", err)
		return "", uuid.Nil, time.Time{}, err
	}

	token = hex.EncodeToString(raw)
	expiresAt = time.Now().Add(s.ttl)

	tokenID, err = s.writer.Save(ctx, userID, hashToken(token), expiresAt)
	if err != nil {
		logger.Log.Errorw("failed to store extension token", "userID", userID, "err", err)
		return "", uuid.Nil, time.Time{}, err
	}

	return token, tokenID, expiresAt, nil
}

// Validate resolves a plaintext token to its owning user. Unknown, expired
// and revoked tokens all map to ErrExtensionTokenInvalid.
func (s *ExtensionTokenService) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	row, err := s.reader.GetActiveByHash(ctx, hashToken(token))
	if err != nil {
		logger.Log.Errorw("failed to look up extension token", "err", err)
		return uuid.Nil, err
	}
	if row == nil {
		return uuid.Nil, ErrExtensionTokenInvalid
	}

	if err := s.writer.TouchLastUsed(ctx, row.TokenID); err != nil {
		// Validation already succeeded; a failed touch only loses telemetry.
		logger.Log.Warnw("failed to touch extension token", "tokenID", row.TokenID, "err", err)
	}

	return row.UserID, nil
}

// List returns all of the user's tokens.
func (s *ExtensionTokenService) List(ctx context.Context, userID uuid.UUID) ([]models.ExtensionTokenDB, error) {
	return s.reader.GetByUserID(ctx, userID)
}

// Revoke invalidates one of the user's tokens.
func (s *ExtensionTokenService) Revoke(ctx context.Context, userID, tokenID uuid.UUID) error {
	err := s.writer.Revoke(ctx, userID, tokenID)
	if err != nil {
		if isNoRows(err) {
			return ErrExtensionTokenNotFound
		}
		logger.Log.Errorw("failed to revoke extension token", "tokenID", tokenID, "err", err)
		return err
	}
	return nil
}
