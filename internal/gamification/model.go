// File: internal/gamification/model.go
package gamification

import (
	"huglu_mobile_backend/internal/display"
	"huglu_mobile_backend/internal/gateway"
)

// Badge rarities the backend sends.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

var rarityTable = display.NewTable(map[string]display.Descriptor{
	RarityCommon:    {Label: "Common", Color: "#9CA3AF", Icon: "circle"},
	RarityRare:      {Label: "Rare", Color: "#3B82F6", Icon: "star"},
	RarityEpic:      {Label: "Epic", Color: "#8B5CF6", Icon: "zap"},
	RarityLegendary: {Label: "Legendary", Color: "#F59E0B", Icon: "award"},
}, display.Descriptor{Label: "Badge", Color: "#6B7280", Icon: "shield"})

// RarityDescriptor returns the display tuple for a badge rarity.
func RarityDescriptor(rarity string) display.Descriptor {
	return rarityTable.Lookup(rarity)
}

// Reward types attached to quests and daily rewards.
const (
	RewardPoints       = "points"
	RewardCoupon       = "coupon"
	RewardFreeShipping = "freeShipping"
	RewardGift         = "gift"
)

var rewardTable = display.NewTable(map[string]display.Descriptor{
	RewardPoints:       {Label: "Points", Color: "#F59E0B", Icon: "star"},
	RewardCoupon:       {Label: "Coupon", Color: "#10B981", Icon: "ticket"},
	RewardFreeShipping: {Label: "Free Shipping", Color: "#0EA5E9", Icon: "truck"},
	RewardGift:         {Label: "Gift", Color: "#EC4899", Icon: "gift"},
}, display.Descriptor{Label: "Reward", Color: "#6B7280", Icon: "box"})

// RewardDescriptor returns the display tuple for a reward type.
func RewardDescriptor(rewardType string) display.Descriptor {
	return rewardTable.Lookup(rewardType)
}

// QuestView is one screen-ready quest.
type QuestView struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Progress      float64             `json:"progress"`
	Target        float64             `json:"target"`
	Percent       float64             `json:"percent"`
	Reward        gateway.QuestReward `json:"reward"`
	RewardDisplay display.Descriptor  `json:"rewardDisplay"`
	Completed     bool                `json:"completed"`
	CanClaim      bool                `json:"canClaim"`
}

// QuestBoard partitions quests for the quests screen. A quest that reached
// its target but has an unclaimed reward belongs to neither the active nor
// the completed list; it gets its own "ready to claim" section.
type QuestBoard struct {
	Active    []QuestView `json:"active"`
	Claimable []QuestView `json:"claimable"`
	Completed []QuestView `json:"completed"`
	Synthetic bool        `json:"synthetic,omitempty"`
}

// BadgeView is one screen-ready badge.
type BadgeView struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Rarity   string             `json:"rarity"`
	Display  display.Descriptor `json:"display"`
	Earned   bool               `json:"earned"`
	EarnedAt string             `json:"earnedAt,omitempty"`
}

// BadgeCase is the badges screen view model.
type BadgeCase struct {
	Badges      []BadgeView `json:"badges"`
	EarnedCount int         `json:"earnedCount"`
	Synthetic   bool        `json:"synthetic,omitempty"`
}

// RewardCalendar is the daily login reward view model.
type RewardCalendar struct {
	Days      []DayView `json:"days"`
	Synthetic bool      `json:"synthetic,omitempty"`
}

// DayView is one day of the reward calendar.
type DayView struct {
	Day     int                `json:"day"`
	Type    string             `json:"type"`
	Amount  float64            `json:"amount"`
	Claimed bool               `json:"claimed"`
	Display display.Descriptor `json:"display"`
}

// StreakView is the streak widget view model.
type StreakView struct {
	CurrentDays  int    `json:"currentDays"`
	LongestDays  int    `json:"longestDays"`
	LastActivity string `json:"lastActivity,omitempty"`
	Synthetic    bool   `json:"synthetic,omitempty"`
}

// Overview is the gamification home screen: quests and streak loaded
// together, both awaited before the screen renders.
type Overview struct {
	Quests *QuestBoard `json:"quests"`
	Streak *StreakView `json:"streak"`
}
