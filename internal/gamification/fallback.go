// File: internal/gamification/fallback.go
package gamification

import "huglu_mobile_backend/internal/gateway"

// FallbackPolicy records, per data source, whether a failed read may be
// replaced with the canned sample dataset below. Gamification screens prefer
// plausible content over an error state; claims and every correctness-
// sensitive flow elsewhere never use this.
type FallbackPolicy struct {
	Quests       bool
	Badges       bool
	DailyRewards bool
	Streak       bool
}

// DefaultFallbackPolicy enables the fallback for every gamification read.
func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{
		Quests:       true,
		Badges:       true,
		DailyRewards: true,
		Streak:       true,
	}
}

func sampleQuests() []gateway.Quest {
	return []gateway.Quest{
		{
			ID:       "sample-first-order",
			Title:    "Place your first order",
			Progress: 0,
			Target:   1,
			Reward:   gateway.QuestReward{Type: RewardPoints, Amount: 100},
		},
		{
			ID:       "sample-wishlist-5",
			Title:    "Add 5 products to your wishlist",
			Progress: 2,
			Target:   5,
			Reward:   gateway.QuestReward{Type: RewardCoupon, Amount: 25},
		},
		{
			ID:        "sample-profile",
			Title:     "Complete your profile",
			Progress:  1,
			Target:    1,
			Completed: true,
			Reward:    gateway.QuestReward{Type: RewardPoints, Amount: 50},
		},
	}
}

func sampleBadges() []gateway.Badge {
	return []gateway.Badge{
		{ID: "sample-newcomer", Name: "Newcomer", Rarity: RarityCommon, Earned: true},
		{ID: "sample-explorer", Name: "Explorer", Rarity: RarityRare, Earned: false},
		{ID: "sample-collector", Name: "Collector", Rarity: RarityEpic, Earned: false},
		{ID: "sample-legend", Name: "Huglu Legend", Rarity: RarityLegendary, Earned: false},
	}
}

func sampleDailyRewards() []gateway.DailyReward {
	return []gateway.DailyReward{
		{Day: 1, Type: RewardPoints, Amount: 10, Claimed: true},
		{Day: 2, Type: RewardPoints, Amount: 20, Claimed: false},
		{Day: 3, Type: RewardCoupon, Amount: 10, Claimed: false},
		{Day: 4, Type: RewardPoints, Amount: 40, Claimed: false},
		{Day: 5, Type: RewardFreeShipping, Amount: 1, Claimed: false},
		{Day: 6, Type: RewardPoints, Amount: 60, Claimed: false},
		{Day: 7, Type: RewardGift, Amount: 1, Claimed: false},
	}
}

func sampleStreak() gateway.Streak {
	return gateway.Streak{CurrentDays: 1, LongestDays: 3}
}
