// File: internal/gamification/service.go
package gamification

import (
	"context"
	"fmt"

	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/gateway"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Gateway is the slice of the commerce client this module needs.
type Gateway interface {
	GetQuests(ctx context.Context, userID string) ([]gateway.Quest, error)
	ClaimQuestReward(ctx context.Context, userID, questID string) error
	GetBadges(ctx context.Context, userID string) ([]gateway.Badge, error)
	GetDailyRewards(ctx context.Context, userID string) ([]gateway.DailyReward, error)
	ClaimDailyReward(ctx context.Context, userID string) error
	GetStreak(ctx context.Context, userID string) (*gateway.Streak, error)
}

// Service exposes the gamification screen operations.
type Service interface {
	GetOverview(ctx context.Context, userID string) (*Overview, error)
	GetQuestBoard(ctx context.Context, userID string) (*QuestBoard, error)
	ClaimQuest(ctx context.Context, userID, questID string) error
	GetBadgeCase(ctx context.Context, userID string) (*BadgeCase, error)
	GetRewardCalendar(ctx context.Context, userID string) (*RewardCalendar, error)
	ClaimDailyReward(ctx context.Context, userID string) error
	GetStreak(ctx context.Context, userID string) (*StreakView, error)
}

type service struct {
	gw     Gateway
	policy FallbackPolicy
	logger *zap.Logger
}

// NewService creates the gamification service with the default fallback policy.
func NewService(gw Gateway, logger *zap.Logger) Service {
	return NewServiceWithPolicy(gw, DefaultFallbackPolicy(), logger)
}

// NewServiceWithPolicy creates the gamification service with an explicit
// fallback policy; tests use this to assert which sources may substitute
// sample data.
func NewServiceWithPolicy(gw Gateway, policy FallbackPolicy, logger *zap.Logger) Service {
	return &service{gw: gw, policy: policy, logger: logger.Named("gamification")}
}

// GetOverview loads quests and streak concurrently and waits for both before
// returning, mirroring the screen's join-all initial load.
func (s *service) GetOverview(ctx context.Context, userID string) (*Overview, error) {
	var (
		board  *QuestBoard
		streak *StreakView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := s.GetQuestBoard(gctx, userID)
		if err != nil {
			return err
		}
		board = b
		return nil
	})
	g.Go(func() error {
		st, err := s.GetStreak(gctx, userID)
		if err != nil {
			return err
		}
		streak = st
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{Quests: board, Streak: streak}, nil
}

// GetQuestBoard fetches quests, falling back to the sample dataset when the
// policy allows, and derives the partitioned view model.
func (s *service) GetQuestBoard(ctx context.Context, userID string) (*QuestBoard, error) {
	synthetic := false
	quests, err := s.gw.GetQuests(ctx, userID)
	if err != nil {
		if !s.policy.Quests {
			return nil, fmt.Errorf("loading quests for user %s: %w", userID, err)
		}
		s.logger.Warn("Quest fetch failed, serving sample dataset",
			zap.String("user_id", userID), zap.Error(err))
		quests = sampleQuests()
		synthetic = true
	}
	board := BuildQuestBoard(quests)
	board.Synthetic = synthetic
	return &board, nil
}

// ClaimQuest claims a quest reward. Eligibility is checked here before any
// network call, but the upstream stays the source of truth.
func (s *service) ClaimQuest(ctx context.Context, userID, questID string) error {
	quests, err := s.gw.GetQuests(ctx, userID)
	if err != nil {
		// Claims are never served from sample data.
		return fmt.Errorf("loading quests before claim: %w", err)
	}
	var target *gateway.Quest
	for i := range quests {
		if quests[i].ID == questID {
			target = &quests[i]
			break
		}
	}
	if target == nil {
		return common.ErrNotFound.WithDetails("Quest not found.")
	}
	if !CanClaim(*target) {
		return common.ErrUnprocessableEntity.WithDetails("This quest reward cannot be claimed yet.")
	}
	if err := s.gw.ClaimQuestReward(ctx, userID, questID); err != nil {
		return fmt.Errorf("claiming quest %s: %w", questID, err)
	}
	return nil
}

// GetBadgeCase fetches badges, falling back to the sample dataset when allowed.
func (s *service) GetBadgeCase(ctx context.Context, userID string) (*BadgeCase, error) {
	synthetic := false
	badges, err := s.gw.GetBadges(ctx, userID)
	if err != nil {
		if !s.policy.Badges {
			return nil, fmt.Errorf("loading badges for user %s: %w", userID, err)
		}
		s.logger.Warn("Badge fetch failed, serving sample dataset",
			zap.String("user_id", userID), zap.Error(err))
		badges = sampleBadges()
		synthetic = true
	}

	badgeCase := BadgeCase{
		Badges:    make([]BadgeView, 0, len(badges)),
		Synthetic: synthetic,
	}
	for _, b := range badges {
		badgeCase.Badges = append(badgeCase.Badges, BadgeView{
			ID:       b.ID,
			Name:     b.Name,
			Rarity:   b.Rarity,
			Display:  RarityDescriptor(b.Rarity),
			Earned:   b.Earned,
			EarnedAt: b.EarnedAt,
		})
		if b.Earned {
			badgeCase.EarnedCount++
		}
	}
	return &badgeCase, nil
}

// GetRewardCalendar fetches the daily reward calendar, falling back to the
// sample dataset when allowed.
func (s *service) GetRewardCalendar(ctx context.Context, userID string) (*RewardCalendar, error) {
	synthetic := false
	rewards, err := s.gw.GetDailyRewards(ctx, userID)
	if err != nil {
		if !s.policy.DailyRewards {
			return nil, fmt.Errorf("loading daily rewards for user %s: %w", userID, err)
		}
		s.logger.Warn("Daily reward fetch failed, serving sample dataset",
			zap.String("user_id", userID), zap.Error(err))
		rewards = sampleDailyRewards()
		synthetic = true
	}

	calendar := RewardCalendar{
		Days:      make([]DayView, 0, len(rewards)),
		Synthetic: synthetic,
	}
	for _, r := range rewards {
		calendar.Days = append(calendar.Days, DayView{
			Day:     r.Day,
			Type:    r.Type,
			Amount:  r.Amount,
			Claimed: r.Claimed,
			Display: RewardDescriptor(r.Type),
		})
	}
	return &calendar, nil
}

// ClaimDailyReward claims today's login reward; never served from sample data.
func (s *service) ClaimDailyReward(ctx context.Context, userID string) error {
	if err := s.gw.ClaimDailyReward(ctx, userID); err != nil {
		return fmt.Errorf("claiming daily reward: %w", err)
	}
	return nil
}

// GetStreak fetches the activity streak, falling back to the sample dataset
// when allowed.
func (s *service) GetStreak(ctx context.Context, userID string) (*StreakView, error) {
	synthetic := false
	streak, err := s.gw.GetStreak(ctx, userID)
	if err != nil {
		if !s.policy.Streak {
			return nil, fmt.Errorf("loading streak for user %s: %w", userID, err)
		}
		s.logger.Warn("Streak fetch failed, serving sample dataset",
			zap.String("user_id", userID), zap.Error(err))
		sample := sampleStreak()
		streak = &sample
		synthetic = true
	}
	return &StreakView{
		CurrentDays:  streak.CurrentDays,
		LongestDays:  streak.LongestDays,
		LastActivity: streak.LastActivity,
		Synthetic:    synthetic,
	}, nil
}

// CanClaim reports claim eligibility: the target is reached and the reward
// has not been collected.
func CanClaim(q gateway.Quest) bool {
	return q.Progress >= q.Target && !q.Completed
}

// ProgressPercent clamps the displayed completion percentage to [0, 100].
func ProgressPercent(progress, target float64) float64 {
	if target <= 0 {
		return 0
	}
	percent := progress / target * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// BuildQuestBoard partitions quests into active, claimable and completed.
// Every quest lands in exactly one list.
func BuildQuestBoard(quests []gateway.Quest) QuestBoard {
	board := QuestBoard{
		Active:    make([]QuestView, 0, len(quests)),
		Claimable: make([]QuestView, 0),
		Completed: make([]QuestView, 0),
	}
	for _, q := range quests {
		view := QuestView{
			ID:            q.ID,
			Title:         q.Title,
			Progress:      q.Progress,
			Target:        q.Target,
			Percent:       ProgressPercent(q.Progress, q.Target),
			Reward:        q.Reward,
			RewardDisplay: RewardDescriptor(q.Reward.Type),
			Completed:     q.Completed,
			CanClaim:      CanClaim(q),
		}
		switch {
		case q.Completed:
			board.Completed = append(board.Completed, view)
		case view.CanClaim:
			board.Claimable = append(board.Claimable, view)
		default:
			board.Active = append(board.Active, view)
		}
	}
	return board
}
