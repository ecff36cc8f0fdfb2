// File: internal/session/service.go
package session

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"huglu_mobile_backend/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/nacl/secretbox"
)

// Store is the server-side session key-value store. Every value is sealed at
// rest; the older split between a plain and a secure variant is gone.
type Store interface {
	Begin(ctx context.Context, userID string, values map[string]string) (uuid.UUID, error)
	Set(ctx context.Context, sessionID uuid.UUID, userID, key, value string) error
	Get(ctx context.Context, sessionID uuid.UUID, key string) (string, bool, error)
	Values(ctx context.Context, sessionID uuid.UUID) (map[string]string, error)
	Destroy(ctx context.Context, sessionID uuid.UUID) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// Service implements Store on top of the repository, sealing values with a
// secretbox key from config.
type Service struct {
	repo     Repository
	sealKey  [32]byte
	lifetime time.Duration
	logger   *zap.Logger
}

// NewService creates a session store service.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) (*Service, error) {
	key, err := cfg.SealKeyBytes()
	if err != nil {
		return nil, err
	}
	return &Service{
		repo:     repo,
		sealKey:  key,
		lifetime: cfg.SessionLifetime,
		logger:   logger.Named("session"),
	}, nil
}

// Begin creates a new session seeded with the given values and returns its ID.
func (s *Service) Begin(ctx context.Context, userID string, values map[string]string) (uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, errors.New("cannot begin a session without a user ID")
	}
	sessionID := uuid.New()
	for key, value := range values {
		if err := s.Set(ctx, sessionID, userID, key, value); err != nil {
			// Half-seeded sessions are unusable; clean up before reporting.
			_ = s.repo.DeleteSession(ctx, sessionID)
			return uuid.Nil, err
		}
	}
	return sessionID, nil
}

// Set seals and stores one value.
func (s *Service) Set(ctx context.Context, sessionID uuid.UUID, userID, key, value string) error {
	sealed, err := s.seal([]byte(value))
	if err != nil {
		return fmt.Errorf("failed to seal session value %s: %w", key, err)
	}
	now := time.Now()
	return s.repo.Upsert(ctx, &Entry{
		SessionID:   sessionID,
		Key:         key,
		SealedValue: sealed,
		UserID:      userID,
		ExpiresAt:   now.Add(s.lifetime),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Get returns the unsealed value and whether the key exists.
func (s *Service) Get(ctx context.Context, sessionID uuid.UUID, key string) (string, bool, error) {
	entry, err := s.repo.Find(ctx, sessionID, key)
	if err != nil {
		return "", false, err
	}
	if entry == nil {
		return "", false, nil
	}
	value, err := s.open(entry.SealedValue)
	if err != nil {
		// A value that no longer unseals (key rotation, corruption) is
		// treated as absent; the caller re-authenticates.
		s.logger.Warn("Dropping session value that failed to unseal",
			zap.String("key", key), zap.String("session_id", sessionID.String()))
		return "", false, nil
	}
	return string(value), true, nil
}

// Values returns all unsealed key-value pairs of a session.
func (s *Service) Values(ctx context.Context, sessionID uuid.UUID) (map[string]string, error) {
	entries, err := s.repo.FindSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		value, err := s.open(entry.SealedValue)
		if err != nil {
			s.logger.Warn("Dropping session value that failed to unseal",
				zap.String("key", entry.Key), zap.String("session_id", sessionID.String()))
			continue
		}
		values[entry.Key] = string(value)
	}
	return values, nil
}

// Destroy removes a session entirely (logout).
func (s *Service) Destroy(ctx context.Context, sessionID uuid.UUID) error {
	return s.repo.DeleteSession(ctx, sessionID)
}

// PurgeExpired removes expired entries; called from the cron job.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.PurgeExpired(ctx, time.Now())
}

// seal encrypts value with a random nonce prefixed to the ciphertext.
func (s *Service) seal(value []byte) ([]byte, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], value, &nonce, &s.sealKey), nil
}

// open decrypts a sealed value produced by seal.
func (s *Service) open(sealed []byte) ([]byte, error) {
	if len(sealed) < 24 {
		return nil, errors.New("sealed value too short")
	}
	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	value, ok := secretbox.Open(nil, sealed[24:], &nonce, &s.sealKey)
	if !ok {
		return nil, errors.New("failed to open sealed value")
	}
	return value, nil
}
