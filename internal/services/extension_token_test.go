package services_test

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/sushe-online/sushe-server/internal/models"
	"github.com/sushe-online/sushe-server/internal/services"
)

func TestExtensionTokenService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockExtensionTokenReader(ctrl)
	mockWriter := services.NewMockExtensionTokenWriter(ctrl)
	svc := services.NewExtensionTokenService(mockReader, mockWriter, 24*time.Hour)

	userID := uuid.New()
	tokenID := uuid.New()

	var storedHash string
	mockWriter.EXPECT().
		Save(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string, _ time.Time) (uuid.UUID, error) {
			storedHash = hash
			return tokenID, nil
		})

	token, gotID, expiresAt, err := svc.Issue(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, gotID)
	assert.Len(t, token, 64) // 32 random bytes, hex encoded
	assert.True(t, expiresAt.After(time.Now()))

	// only the SHA-256 of the plaintext is persisted
	sum := sha256.Sum256([]byte(token))
	assert.Equal(t, hex.EncodeToString(sum[:]), storedHash)
}

func TestExtensionTokenService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	tokenID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		mockReader := services.NewMockExtensionTokenReader(ctrl)
		mockWriter := services.NewMockExtensionTokenWriter(ctrl)
		svc := services.NewExtensionTokenService(mockReader, mockWriter, time.Hour)

		mockReader.EXPECT().GetActiveByHash(gomock.Any(), gomock.Any()).
			Return(&models.ExtensionTokenDB{TokenID: tokenID, UserID: userID}, nil)
		mockWriter.EXPECT().TouchLastUsed(gomock.Any(), tokenID).Return(nil)

		got, err := svc.Validate(context.Background(), "sometoken")
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		mockReader := services.NewMockExtensionTokenReader(ctrl)
		mockWriter := services.NewMockExtensionTokenWriter(ctrl)
		svc := services.NewExtensionTokenService(mockReader, mockWriter, time.Hour)

		mockReader.EXPECT().GetActiveByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.Validate(context.Background(), "expiredtoken")
		assert.ErrorIs(t, err, services.ErrExtensionTokenInvalid)
	})

	t.Run("touch failure does not fail validation", func(t *testing.T) {
		mockReader := services.NewMockExtensionTokenReader(ctrl)
		mockWriter := services.NewMockExtensionTokenWriter(ctrl)
		svc := services.NewExtensionTokenService(mockReader, mockWriter, time.Hour)

		mockReader.EXPECT().GetActiveByHash(gomock.Any(), gomock.Any()).
			Return(&models.ExtensionTokenDB{TokenID: tokenID, UserID: userID}, nil)
		mockWriter.EXPECT().TouchLastUsed(gomock.Any(), tokenID).
			Return(errors.New("db error"))

		got, err := svc.Validate(context.Background(), "sometoken")
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})
}

func TestExtensionTokenService_Revoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	tokenID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockReader := services.NewMockExtensionTokenReader(ctrl)
		mockWriter := services.NewMockExtensionTokenWriter(ctrl)
		svc := services.NewExtensionTokenService(mockReader, mockWriter, time.Hour)

		mockWriter.EXPECT().Revoke(gomock.Any(), userID, tokenID).Return(nil)

		assert.NoError(t, svc.Revoke(context.Background(), userID, tokenID))
	})

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockExtensionTokenReader(ctrl)
		mockWriter := services.NewMockExtensionTokenWriter(ctrl)
		svc := services.NewExtensionTokenService(mockReader, mockWriter, time.Hour)

		mockWriter.EXPECT().Revoke(gomock.Any(), userID, tokenID).Return(sql.ErrNoRows)

		err := svc.Revoke(context.Background(), userID, tokenID)
		assert.ErrorIs(t, err, services.ErrExtensionTokenNotFound)
	})
}
