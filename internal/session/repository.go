// File: internal/session/repository.go
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists session entries.
type Repository interface {
	Upsert(ctx context.Context, entry *Entry) error
	Find(ctx context.Context, sessionID uuid.UUID, key string) (*Entry, error)
	FindSession(ctx context.Context, sessionID uuid.UUID) ([]Entry, error)
	Delete(ctx context.Context, sessionID uuid.UUID, key string) error
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// GORMRepository implements the Repository interface using GORM.
type GORMRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM session repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &GORMRepository{db: db}
}

// Upsert inserts or replaces a session entry.
func (r *GORMRepository) Upsert(ctx context.Context, entry *Entry) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"sealed_value", "expires_at", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert session entry %s: %w", entry.Key, err)
	}
	return nil
}

// Find retrieves a single non-expired entry.
func (r *GORMRepository) Find(ctx context.Context, sessionID uuid.UUID, key string) (*Entry, error) {
	var entry Entry
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND key = ? AND expires_at > ?", sessionID, key, time.Now()).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session entry %s: %w", key, err)
	}
	return &entry, nil
}

// FindSession retrieves all non-expired entries of a session.
func (r *GORMRepository) FindSession(ctx context.Context, sessionID uuid.UUID) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND expires_at > ?", sessionID, time.Now()).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	return entries, nil
}

// Delete removes a single entry.
func (r *GORMRepository) Delete(ctx context.Context, sessionID uuid.UUID, key string) error {
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete session entry %s: %w", key, err)
	}
	return nil
}

// DeleteSession removes every entry of a session (logout).
func (r *GORMRepository) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&Entry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

// PurgeExpired removes expired entries and returns how many were deleted.
func (r *GORMRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&Entry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired session entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
