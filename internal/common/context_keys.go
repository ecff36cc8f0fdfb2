// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
	// UserIDKey is the context key for storing the authenticated user's ID
	UserIDKey = "userID"
	// SessionIDKey is the context key for storing the session ID the token was minted for
	SessionIDKey = "sessionID"
	// TenantIDKey is the context key for storing the tenant the user belongs to
	TenantIDKey = "tenantID"
)
