// Package model defines the data models for the chore quest tracker.
package model

import "time"

// HistoryKind categorizes a ledger entry.
type HistoryKind string

// History entry kinds.
const (
	KindQuest        HistoryKind = "quest"         // quest completion (credit)
	KindReward       HistoryKind = "reward"        // reward redemption (debit)
	KindManualAdjust HistoryKind = "manual_adjust" // parent-side manual credit or debit
)

// Quest is a catalog entry for a chore a child can complete.
// JSON tags follow the persisted wire format so exported backups stay
// compatible across versions.
type Quest struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	TitleEn    string `json:"titleEn,omitempty"`
	Points     int    `json:"point"`
	Icon       string `json:"icon"`
	OncePerDay bool   `json:"oncePerDay,omitempty"`
	AlwaysShow bool   `json:"mustShow,omitempty"`
}

// Reward is a catalog entry a child can spend points on.
type Reward struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	TitleEn string `json:"titleEn,omitempty"`
	Cost    int    `json:"cost"`
	Icon    string `json:"icon"`
}

// HistoryItem is a single ledger entry. Immutable once created; deletion
// reverses its effect and removes it. ItemID is a weak reference into the
// catalog and may dangle after a catalog entry is deleted, which is why
// ItemTitle snapshots the display title at transaction time.
type HistoryItem struct {
	ID        string      `json:"id"`
	Date      time.Time   `json:"date"`
	Kind      HistoryKind `json:"type"`
	ItemID    string      `json:"itemId,omitempty"`
	ItemTitle string      `json:"itemTitle,omitempty"`
	PointDiff int         `json:"pointDiff"`
	ProfileID string      `json:"profileId,omitempty"`
}

// Profile is one child's ledger: balance, lifetime earnings and history
// (newest entry first).
type Profile struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Icon              string        `json:"icon"`
	CurrentPoints     int           `json:"currentPoints"`
	TotalPointsEarned int           `json:"totalPointsEarned"`
	History           []HistoryItem `json:"history"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// DailyQuestState is the per-profile, per-day quest selection cache. It is
// superseded (not pruned) once Date no longer matches the current day.
type DailyQuestState struct {
	Date             string   `json:"date"`
	SelectedQuestIDs []string `json:"selectedQuestIds"`
	ResetCount       int      `json:"resetCount"`
}

// AppState is the single persisted state blob. The top-level CurrentPoints,
// TotalPointsEarned and History fields are the legacy profile-less ledger,
// retained for backward compatibility with installations that predate
// multi-profile support.
type AppState struct {
	Profiles        []Profile                  `json:"profiles"`
	ActiveProfileID string                     `json:"activeProfileId"`
	Quests          []Quest                    `json:"quests"`
	Rewards         []Reward                   `json:"rewards"`
	DailyQuestState map[string]DailyQuestState `json:"dailyQuestStates"`

	// Legacy single-profile ledger.
	CurrentPoints     int           `json:"currentPoints"`
	TotalPointsEarned int           `json:"totalPointsEarned"`
	History           []HistoryItem `json:"history"`
}

// FindProfile returns a pointer into Profiles for the given id, or nil.
func (s *AppState) FindProfile(id string) *Profile {
	for i := range s.Profiles {
		if s.Profiles[i].ID == id {
			return &s.Profiles[i]
		}
	}
	return nil
}

// ActiveProfile returns the active profile, or nil when no profile is active.
func (s *AppState) ActiveProfile() *Profile {
	if s.ActiveProfileID == "" {
		return nil
	}
	return s.FindProfile(s.ActiveProfileID)
}

// QuestByID looks up a catalog quest. The second return value reports whether
// the id still exists; history and daily selections may reference deleted ids.
func (s *AppState) QuestByID(id string) (Quest, bool) {
	for _, q := range s.Quests {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

// RewardByID looks up a catalog reward.
func (s *AppState) RewardByID(id string) (Reward, bool) {
	for _, r := range s.Rewards {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}

// Clone returns a deep copy of the state, safe to use outside the store lock.
func (s *AppState) Clone() *AppState {
	out := *s
	out.Profiles = make([]Profile, len(s.Profiles))
	for i, p := range s.Profiles {
		p.History = append([]HistoryItem(nil), p.History...)
		out.Profiles[i] = p
	}
	out.Quests = append([]Quest(nil), s.Quests...)
	out.Rewards = append([]Reward(nil), s.Rewards...)
	out.History = append([]HistoryItem(nil), s.History...)
	out.DailyQuestState = make(map[string]DailyQuestState, len(s.DailyQuestState))
	for k, v := range s.DailyQuestState {
		v.SelectedQuestIDs = append([]string(nil), v.SelectedQuestIDs...)
		out.DailyQuestState[k] = v
	}
	return &out
}
