// File: internal/gateway/loyalty.go
package gateway

import (
	"context"
	"fmt"
)

// GetQuests fetches the user's gamification quests.
func (c *Client) GetQuests(ctx context.Context, userID string) ([]Quest, error) {
	env, err := c.get(ctx, "/quests", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var quests []Quest
	if payload, ok := env.Payload("quests"); ok {
		if err := decodeList(payload, &quests); err != nil {
			return nil, fmt.Errorf("quests response: %w", err)
		}
	}
	return quests, nil
}

// ClaimQuestReward claims the reward of a completed quest. The upstream is
// the source of truth for eligibility.
func (c *Client) ClaimQuestReward(ctx context.Context, userID, questID string) error {
	_, err := c.post(ctx, "/quests/"+questID+"/claim", map[string]string{
		"userId": userID,
	})
	return err
}

// GetBadges fetches the user's badges.
func (c *Client) GetBadges(ctx context.Context, userID string) ([]Badge, error) {
	env, err := c.get(ctx, "/badges", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var badges []Badge
	if payload, ok := env.Payload("badges"); ok {
		if err := decodeList(payload, &badges); err != nil {
			return nil, fmt.Errorf("badges response: %w", err)
		}
	}
	return badges, nil
}

// GetDailyRewards fetches the login reward calendar.
func (c *Client) GetDailyRewards(ctx context.Context, userID string) ([]DailyReward, error) {
	env, err := c.get(ctx, "/daily-rewards", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var rewards []DailyReward
	if payload, ok := env.Payload("dailyRewards"); ok {
		if err := decodeList(payload, &rewards); err != nil {
			return nil, fmt.Errorf("daily rewards response: %w", err)
		}
	}
	return rewards, nil
}

// ClaimDailyReward claims today's login reward.
func (c *Client) ClaimDailyReward(ctx context.Context, userID string) error {
	_, err := c.post(ctx, "/daily-rewards/claim", map[string]string{
		"userId": userID,
	})
	return err
}

// GetStreak fetches the user's activity streak.
func (c *Client) GetStreak(ctx context.Context, userID string) (*Streak, error) {
	env, err := c.get(ctx, "/streaks", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var streak Streak
	if err := env.DecodeInto(&streak, "streak"); err != nil {
		return nil, fmt.Errorf("streak response: %w", err)
	}
	return &streak, nil
}

// GetReferralInfo fetches the user's referral programme state.
func (c *Client) GetReferralInfo(ctx context.Context, userID string) (*ReferralInfo, error) {
	env, err := c.get(ctx, "/referrals", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var info ReferralInfo
	if err := env.DecodeInto(&info, "referral"); err != nil {
		return nil, fmt.Errorf("referral response: %w", err)
	}
	return &info, nil
}

// GetReturnRequests fetches the user's product returns. The payload may
// arrive under "data" or the legacy "returnRequests" key.
func (c *Client) GetReturnRequests(ctx context.Context, userID string) ([]ReturnRequest, error) {
	env, err := c.get(ctx, "/return-requests", userQuery(userID))
	if err != nil {
		return nil, err
	}
	var requests []ReturnRequest
	if payload, ok := env.Payload("returnRequests"); ok {
		if err := decodeList(payload, &requests); err != nil {
			return nil, fmt.Errorf("return requests response: %w", err)
		}
	}
	return requests, nil
}

// CancelReturnRequest cancels a pending return request.
func (c *Client) CancelReturnRequest(ctx context.Context, userID, requestID string) error {
	_, err := c.post(ctx, "/return-requests/"+requestID+"/cancel", map[string]string{
		"userId": userID,
	})
	return err
}
