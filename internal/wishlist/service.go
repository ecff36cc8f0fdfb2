// File: internal/wishlist/service.go
package wishlist

import (
	"context"
	"fmt"

	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/gateway"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Gateway is the slice of the commerce client this module needs.
type Gateway interface {
	GetFavorites(ctx context.Context, userID string) ([]gateway.FavoriteEntry, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID string) error
}

// RemoveRequest identifies the row to remove. Older clients send the key
// under different names, so all three are accepted.
type RemoveRequest struct {
	ID         string `json:"id"`
	FavoriteID string `json:"favoriteId"`
	LegacyID   string `json:"_id"`
}

// DeletionKey resolves the identifier used for deletion, in priority order.
// Returns an empty string when no alias carries a value.
func (r RemoveRequest) DeletionKey() string {
	for _, candidate := range []string{r.ID, r.FavoriteID, r.LegacyID} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// Service exposes the wishlist screen operations.
type Service interface {
	GetSummary(ctx context.Context, userID string) (*Summary, error)
	Remove(ctx context.Context, userID string, req RemoveRequest) error
	ClearAll(ctx context.Context, userID string) (*ClearResult, error)
}

type service struct {
	gw     Gateway
	logger *zap.Logger
}

// NewService creates the wishlist service.
func NewService(gw Gateway, logger *zap.Logger) Service {
	return &service{gw: gw, logger: logger.Named("wishlist")}
}

// GetSummary fetches favorites and derives the aggregate view model.
func (s *service) GetSummary(ctx context.Context, userID string) (*Summary, error) {
	entries, err := s.gw.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading favorites for user %s: %w", userID, err)
	}
	summary := BuildSummary(entries)
	return &summary, nil
}

// Remove deletes one favorite. The deletion key is resolved client-side; when
// every alias is absent the request never reaches the network.
func (s *service) Remove(ctx context.Context, userID string, req RemoveRequest) error {
	key := req.DeletionKey()
	if key == "" {
		return common.NewValidationAPIError(map[string]string{
			"id": "The favorite is missing an identifier and cannot be removed.",
		})
	}
	if err := s.gw.RemoveFavorite(ctx, userID, key); err != nil {
		return fmt.Errorf("removing favorite %s for user %s: %w", key, userID, err)
	}
	return nil
}

// ClearAll removes every favorite one by one; the upstream has no bulk
// endpoint. Every row is attempted regardless of earlier failures and the
// outcome is reported once, per item, with no rollback.
func (s *service) ClearAll(ctx context.Context, userID string) (*ClearResult, error) {
	entries, err := s.gw.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading favorites for clear-all: %w", err)
	}

	result := &ClearResult{
		Requested:  len(entries),
		RemovedIDs: make([]string, 0, len(entries)),
		FailedIDs:  make([]string, 0),
	}
	for _, entry := range entries {
		key := resolveEntryKey(entry)
		if key == "" {
			result.FailedIDs = append(result.FailedIDs, entry.ProductID.String())
			continue
		}
		if err := s.gw.RemoveFavorite(ctx, userID, key); err != nil {
			s.logger.Warn("Failed to remove favorite during clear-all",
				zap.String("user_id", userID),
				zap.String("favorite_id", key),
				zap.Error(err))
			result.FailedIDs = append(result.FailedIDs, key)
			continue
		}
		result.RemovedIDs = append(result.RemovedIDs, key)
	}
	return result, nil
}

// resolveEntryKey applies the same id -> favoriteId -> _id priority to a raw
// upstream row.
func resolveEntryKey(entry gateway.FavoriteEntry) string {
	return RemoveRequest{
		ID:         entry.ID.String(),
		FavoriteID: entry.FavoriteID.String(),
		LegacyID:   entry.LegacyID.String(),
	}.DeletionKey()
}

// BuildSummary normalizes raw favorite rows and computes the aggregate total.
// A malformed price contributes zero but never excludes the row, so the total
// is always finite and non-negative.
func BuildSummary(entries []gateway.FavoriteEntry) Summary {
	summary := Summary{
		Entries: make([]Entry, 0, len(entries)),
	}
	for _, raw := range entries {
		entry := Entry{
			FavoriteID: resolveEntryKey(raw),
			ProductID:  raw.ProductID.String(),
			Slug:       slug.Make(raw.Name),
			Name:       raw.Name,
			Price:      raw.Price.PriceValue(),
			ImageURL:   raw.ImageURL,
		}
		summary.Entries = append(summary.Entries, entry)
		summary.TotalValue += entry.Price
	}
	summary.ItemCount = len(summary.Entries)
	return summary
}
