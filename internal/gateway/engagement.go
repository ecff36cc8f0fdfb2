// File: internal/gateway/engagement.go
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// decodeList unmarshals a raw payload that is expected to be a JSON array.
func decodeList(raw json.RawMessage, out interface{}) error {
	return json.Unmarshal(raw, out)
}

// GetNotifications fetches and normalizes the user's notifications. The
// payload may arrive under "data" or the legacy "notifications" key.
func (c *Client) GetNotifications(ctx context.Context, userID string) ([]Notification, error) {
	env, err := c.get(ctx, "/notifications", userQuery(userID))
	if err != nil {
		return nil, err
	}

	var raw []rawNotification
	if payload, ok := env.Payload("notifications"); ok {
		if err := decodeList(payload, &raw); err != nil {
			return nil, fmt.Errorf("notifications response: %w", err)
		}
	}

	now := time.Now()
	notifications := make([]Notification, 0, len(raw))
	for _, r := range raw {
		notifications = append(notifications, r.normalize(now))
	}
	return notifications, nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	_, err := c.post(ctx, "/notifications/"+notificationID+"/read", map[string]string{
		"userId": userID,
	})
	return err
}

// MarkAllNotificationsRead marks every unread notification as read and
// returns how many the upstream updated.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID string) (int, error) {
	env, err := c.post(ctx, "/notifications/read-all", map[string]string{
		"userId": userID,
	})
	if err != nil {
		return 0, err
	}
	var result struct {
		Updated int `json:"updated"`
	}
	if raw, ok := env.Payload(); ok {
		// Count is informational; a missing payload is not an error.
		_ = json.Unmarshal(raw, &result)
	}
	return result.Updated, nil
}

// GetFavorites fetches the user's wishlist rows. The payload may arrive
// under "data" or the legacy "favorites" key.
func (c *Client) GetFavorites(ctx context.Context, userID string) ([]FavoriteEntry, error) {
	env, err := c.get(ctx, "/favorites", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var entries []FavoriteEntry
	if payload, ok := env.Payload("favorites"); ok {
		if err := decodeList(payload, &entries); err != nil {
			return nil, fmt.Errorf("favorites response: %w", err)
		}
	}
	return entries, nil
}

// RemoveFavorite deletes one wishlist row by its favorite ID.
func (c *Client) RemoveFavorite(ctx context.Context, userID, favoriteID string) error {
	_, err := c.delete(ctx, "/favorites/"+favoriteID, userQuery(userID))
	return err
}
