package service

import (
	"errors"
	"fmt"
	"time"

	"chorequest/internal/level"
	"chorequest/internal/model"
)

// Common errors for play operations.
var (
	ErrQuestAlreadyDone = errors.New("quest already completed today")
)

// CompletionResult describes the outcome of a quest completion, including the
// level movement it caused. Evolved flags a milestone crossing; it is a
// one-shot signal for the caller and is never persisted.
type CompletionResult struct {
	Entry           model.HistoryItem
	Quest           model.Quest
	Balance         int
	PrevLevel       int
	Level           int
	Evolved         bool
	ProgressPercent float64
	PointsToNext    int
}

// RedemptionResult describes the outcome of a reward redemption. Clamped is
// set when the cost exceeded the balance and the balance bottomed out at
// zero; the ledger entry still records the full cost.
type RedemptionResult struct {
	Entry   model.HistoryItem
	Reward  model.Reward
	Balance int
	Clamped bool
}

// PlayService coordinates the quest completion and reward redemption flows:
// catalog lookup, once-per-day enforcement, ledger movement and level
// progression in one place.
type PlayService struct {
	catalog *CatalogService
	ledger  *LedgerService
	daily   *DailyQuestService
	levels  *level.Calculator
	clock   func() time.Time
}

// NewPlayService creates a new PlayService instance.
func NewPlayService(catalog *CatalogService, ledger *LedgerService, daily *DailyQuestService, levels *level.Calculator) *PlayService {
	return &PlayService{
		catalog: catalog,
		ledger:  ledger,
		daily:   daily,
		levels:  levels,
		clock:   time.Now,
	}
}

// CompleteQuest credits the quest's points to the owner, snapshotting the
// quest title into the ledger entry. Once-per-day quests are rejected on a
// repeat completion within the same local day.
func (s *PlayService) CompleteQuest(owner model.Owner, questID string) (*CompletionResult, error) {
	quest, ok := s.catalog.QuestByID(questID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotFound, questID)
	}
	if quest.OncePerDay && s.daily.CompletedToday(owner, questID) {
		return nil, fmt.Errorf("%w: %s", ErrQuestAlreadyDone, questID)
	}

	now := s.clock()
	before, err := s.ledger.MonthlyQuestPoints(owner, now)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledger.Credit(owner, quest.Points, model.KindQuest, quest.ID, quest.Title)
	if err != nil {
		return nil, err
	}

	after, err := s.ledger.MonthlyQuestPoints(owner, now)
	if err != nil {
		return nil, err
	}
	balance, _, err := s.ledger.Balance(owner)
	if err != nil {
		return nil, err
	}

	prevLevel := s.levels.Level(before)
	curLevel := s.levels.Level(after)
	return &CompletionResult{
		Entry:           entry,
		Quest:           quest,
		Balance:         balance,
		PrevLevel:       prevLevel,
		Level:           curLevel,
		Evolved:         level.MilestoneCrossed(prevLevel, curLevel),
		ProgressPercent: s.levels.ProgressPercent(after),
		PointsToNext:    s.levels.PointsToNextLevel(after),
	}, nil
}

// RedeemReward debits the reward's cost from the owner. Spending more than
// the current balance is not an error: the balance clamps at zero and the
// result reports the clamp.
func (s *PlayService) RedeemReward(owner model.Owner, rewardID string) (*RedemptionResult, error) {
	reward, ok := s.catalog.RewardByID(rewardID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRewardNotFound, rewardID)
	}

	before, _, err := s.ledger.Balance(owner)
	if err != nil {
		return nil, err
	}

	entry, err := s.ledger.Debit(owner, reward.Cost, model.KindReward, reward.ID, reward.Title)
	if err != nil {
		return nil, err
	}

	balance, _, err := s.ledger.Balance(owner)
	if err != nil {
		return nil, err
	}
	return &RedemptionResult{
		Entry:   entry,
		Reward:  reward,
		Balance: balance,
		Clamped: reward.Cost > before,
	}, nil
}

// Adjust applies a parent-side manual point adjustment: positive amounts are
// credits, negative amounts debits (with the usual clamp at zero).
func (s *PlayService) Adjust(owner model.Owner, amount int, note string) (model.HistoryItem, error) {
	if amount > 0 {
		return s.ledger.Credit(owner, amount, model.KindManualAdjust, "", note)
	}
	if amount < 0 {
		return s.ledger.Debit(owner, -amount, model.KindManualAdjust, "", note)
	}
	return model.HistoryItem{}, ErrInvalidAmount
}
