// File: internal/notification/model.go
package notification

import (
	"time"

	"huglu_mobile_backend/internal/display"
)

// Notification types the backend sends. Anything else degrades to the
// default presentation.
const (
	TypeOrder     = "order"
	TypePromotion = "promotion"
	TypeWishlist  = "wishlist"
	TypeDelivery  = "delivery"
	TypeSuccess   = "success"
	TypeInfo      = "info"
	TypeWarning   = "warning"
)

// typeTable maps a notification type to its icon/color pair.
var typeTable = display.NewTable(map[string]display.Descriptor{
	TypeOrder:     {Label: "Order", Color: "#2563EB", Icon: "package"},
	TypePromotion: {Label: "Promotion", Color: "#DB2777", Icon: "tag"},
	TypeWishlist:  {Label: "Wishlist", Color: "#E11D48", Icon: "heart"},
	TypeDelivery:  {Label: "Delivery", Color: "#0D9488", Icon: "truck"},
	TypeSuccess:   {Label: "Success", Color: "#16A34A", Icon: "check-circle"},
	TypeInfo:      {Label: "Info", Color: "#0284C7", Icon: "info"},
	TypeWarning:   {Label: "Warning", Color: "#D97706", Icon: "alert-triangle"},
}, display.Descriptor{Label: "Notification", Color: "#6B7280", Icon: "bell"})

// TypeDescriptor returns the display tuple for a notification type.
func TypeDescriptor(notificationType string) display.Descriptor {
	return typeTable.Lookup(notificationType)
}

// Item is one screen-ready notification.
type Item struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Type      string             `json:"type"`
	CreatedAt time.Time          `json:"createdAt"`
	IsRead    bool               `json:"isRead"`
	TimeLabel string             `json:"timeLabel"`
	Display   display.Descriptor `json:"display"`
}

// Feed is the bucketed view model the notifications screen renders.
type Feed struct {
	Today       []Item `json:"today"`
	Earlier     []Item `json:"earlier"`
	UnreadCount int    `json:"unreadCount"`
}
