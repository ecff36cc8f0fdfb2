// File: internal/notification/service.go
package notification

import (
	"context"
	"fmt"
	"time"

	"huglu_mobile_backend/internal/gateway"

	"go.uber.org/zap"
)

// todayWindow bounds the "today" bucket. Membership is a direct elapsed-time
// comparison against the item timestamp; the display label plays no part in
// bucketing.
const todayWindow = 24 * time.Hour

// Gateway is the slice of the commerce client this module needs.
type Gateway interface {
	GetNotifications(ctx context.Context, userID string) ([]gateway.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) (int, error)
}

// Service exposes the notifications screen operations.
type Service interface {
	GetFeed(ctx context.Context, userID string) (*Feed, error)
	MarkRead(ctx context.Context, userID, notificationID string) bool
	MarkAllRead(ctx context.Context, userID string) int
}

type service struct {
	gw     Gateway
	logger *zap.Logger
}

// NewService creates the notification service.
func NewService(gw Gateway, logger *zap.Logger) Service {
	return &service{gw: gw, logger: logger.Named("notification")}
}

// GetFeed fetches the user's notifications and derives the bucketed view model.
func (s *service) GetFeed(ctx context.Context, userID string) (*Feed, error) {
	notifications, err := s.gw.GetNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading notifications for user %s: %w", userID, err)
	}
	feed := BuildFeed(notifications, time.Now())
	return &feed, nil
}

// MarkRead forwards a single mark-as-read. Failures are logged and reported
// as "not updated" rather than failing the screen; the read toggle is not
// worth an error dialog.
func (s *service) MarkRead(ctx context.Context, userID, notificationID string) bool {
	if err := s.gw.MarkNotificationRead(ctx, userID, notificationID); err != nil {
		s.logger.Warn("Failed to mark notification as read",
			zap.String("user_id", userID),
			zap.String("notification_id", notificationID),
			zap.Error(err))
		return false
	}
	return true
}

// MarkAllRead forwards a bulk mark-as-read under the same non-blocking policy
// and returns how many notifications were updated.
func (s *service) MarkAllRead(ctx context.Context, userID string) int {
	updated, err := s.gw.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to mark all notifications as read",
			zap.String("user_id", userID),
			zap.Error(err))
		return 0
	}
	return updated
}

// BuildFeed partitions notifications into today/earlier buckets and counts
// unread items. It is a pure function of its inputs: every item lands in
// exactly one bucket, so len(Today)+len(Earlier) always equals len(input).
func BuildFeed(notifications []gateway.Notification, now time.Time) Feed {
	feed := Feed{
		Today:   make([]Item, 0, len(notifications)),
		Earlier: make([]Item, 0),
	}
	for _, n := range notifications {
		item := Item{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			CreatedAt: n.CreatedAt,
			IsRead:    n.IsRead,
			TimeLabel: RelativeLabel(n.CreatedAt, now),
			Display:   TypeDescriptor(n.Type),
		}
		if now.Sub(n.CreatedAt) < todayWindow {
			feed.Today = append(feed.Today, item)
		} else {
			feed.Earlier = append(feed.Earlier, item)
		}
		if !n.IsRead {
			feed.UnreadCount++
		}
	}
	return feed
}

// RelativeLabel renders a human-readable age for display only.
func RelativeLabel(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		// Clock skew between us and the upstream; show the friendliest label.
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		minutes := int(elapsed.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case elapsed < todayWindow:
		hours := int(elapsed.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case elapsed < 48*time.Hour:
		return "yesterday"
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(elapsed.Hours()/24))
	default:
		return createdAt.Format("Jan 2, 2006")
	}
}
