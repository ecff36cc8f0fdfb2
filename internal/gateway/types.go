// File: internal/gateway/types.go
package gateway

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// FlexString unmarshals either a JSON string or a JSON number into a string.
// Older commerce endpoints send numeric identifiers; newer ones send strings.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Notification is the normalized notification shape. Legacy field aliases
// (isRead/read, createdAt/date) are resolved here, at the gateway boundary,
// so no downstream code repeats the fallback chain.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	IsRead    bool      `json:"isRead"`
}

type rawNotification struct {
	ID        FlexString `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	CreatedAt string     `json:"createdAt"`
	Date      string     `json:"date"`
	IsRead    *bool      `json:"isRead"`
	Read      *bool      `json:"read"`
}

// timestampLayouts are tried in order when parsing upstream timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string, fallback time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return fallback
}

// normalize resolves the legacy aliases. An item is unread only when both
// isRead and read are absent or false; a missing or unparseable timestamp
// degrades to "now" so the item still buckets deterministically.
func (r rawNotification) normalize(now time.Time) Notification {
	isRead := false
	if r.IsRead != nil && *r.IsRead {
		isRead = true
	}
	if r.Read != nil && *r.Read {
		isRead = true
	}

	created := r.CreatedAt
	if created == "" {
		created = r.Date
	}

	return Notification{
		ID:        r.ID.String(),
		Title:     r.Title,
		Message:   r.Message,
		Type:      r.Type,
		CreatedAt: parseTimestamp(created, now),
		IsRead:    isRead,
	}
}

// FavoriteEntry is a wishlist row as the upstream sends it. The three ID
// aliases are kept raw; the wishlist service resolves the deletion key.
type FavoriteEntry struct {
	ID         FlexString `json:"id"`
	FavoriteID FlexString `json:"favoriteId"`
	LegacyID   FlexString `json:"_id"`
	ProductID  FlexString `json:"productId"`
	Name       string     `json:"name"`
	Price      FlexString `json:"price"`
	ImageURL   string     `json:"image"`
}

// QuestReward is the reward attached to a quest.
type QuestReward struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// Quest is a gamification quest as reported upstream.
type Quest struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Progress  float64     `json:"progress"`
	Target    float64     `json:"target"`
	Reward    QuestReward `json:"reward"`
	Completed bool        `json:"completed"`
}

// Badge is an earned or earnable achievement.
type Badge struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rarity   string `json:"rarity"`
	Earned   bool   `json:"earned"`
	EarnedAt string `json:"earnedAt,omitempty"`
}

// DailyReward is one day of the login reward calendar.
type DailyReward struct {
	Day     int     `json:"day"`
	Type    string  `json:"type"`
	Amount  float64 `json:"amount"`
	Claimed bool    `json:"claimed"`
}

// Streak is the user's activity streak.
type Streak struct {
	CurrentDays  int    `json:"currentDays"`
	LongestDays  int    `json:"longestDays"`
	LastActivity string `json:"lastActivity,omitempty"`
}

// ReferralInfo is the user's referral programme state.
type ReferralInfo struct {
	ReferralCode   string `json:"referralCode"`
	TotalCredits   int    `json:"totalCredits"`
	TotalReferrals int    `json:"totalReferrals"`
}

// ReturnRequest is a product return as reported upstream.
type ReturnRequest struct {
	ID           FlexString `json:"id"`
	Status       string     `json:"status"`
	CreatedAt    string     `json:"createdAt"`
	ItemCount    int        `json:"itemCount"`
	RefundAmount float64    `json:"refundAmount"`
	Reason       string     `json:"reason"`
}

// Account is the identity payload returned by the auth endpoints.
type Account struct {
	UserID   FlexString `json:"userId"`
	Name     string     `json:"userName"`
	Email    string     `json:"userEmail"`
	Phone    string     `json:"userPhone"`
	TenantID string     `json:"tenantId"`
}

// Profile is the user's editable profile.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Address is a delivery address.
type Address struct {
	ID       FlexString `json:"id"`
	Title    string     `json:"title"`
	FullName string     `json:"fullName"`
	Phone    string     `json:"phone"`
	City     string     `json:"city"`
	District string     `json:"district"`
	Line1    string     `json:"line1"`
	Line2    string     `json:"line2,omitempty"`
}

// PriceValue parses a lenient price representation. Malformed, missing or
// non-finite prices contribute zero; the item itself is never dropped.
func (f FlexString) PriceValue() float64 {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
