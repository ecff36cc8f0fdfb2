// File: internal/session/model.go
package session

import (
	"time"

	"github.com/google/uuid"
)

// Well-known session keys. These mirror the keys the mobile client kept in
// device storage before session state moved server-side.
const (
	KeyUserID            = "userId"
	KeyUserName          = "userName"
	KeyUserEmail         = "userEmail"
	KeyUserPhone         = "userPhone"
	KeyTenantID          = "tenantId"
	KeyIsLoggedIn        = "isLoggedIn"
	KeyHasSeenOnboarding = "hasSeenOnboarding"
	KeyTwoFactorEnabled  = "twoFactorEnabled"
	KeyTwoFactorState    = "twoFactorState"
	KeyTwoFactorPhone    = "twoFactorPhone"
)

// Entry is one sealed key-value pair belonging to a session. Values are
// encrypted at rest; there is no plain variant.
type Entry struct {
	SessionID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"session_id"`
	Key         string    `gorm:"primaryKey;size:64" json:"key"`
	SealedValue []byte    `gorm:"not null" json:"-"`
	UserID      string    `gorm:"size:64;index:idx_session_user" json:"user_id"`
	ExpiresAt   time.Time `gorm:"not null;index:idx_session_expiry" json:"expires_at"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Entry) TableName() string {
	return "session_entries"
}
