package service

import (
	"sort"
	"time"

	"chorequest/internal/model"
	"chorequest/internal/pkg/dates"
	"chorequest/internal/store"
)

// Granularity selects the unit of a history viewport.
type Granularity string

// Viewport granularities.
const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// Shift moves a reference date by delta units of the given granularity, with
// normal calendar rollover (a month-end shift wraps into the next month).
func Shift(ref time.Time, g Granularity, delta int) time.Time {
	switch g {
	case GranularityYear:
		return ref.AddDate(delta, 0, 0)
	case GranularityMonth:
		return ref.AddDate(0, delta, 0)
	default:
		return ref.AddDate(0, 0, delta)
	}
}

// DayBucket is one day-of-month rollup of quest points.
type DayBucket struct {
	Day    int
	Points int
}

// MonthBucket is one month rollup of quest points.
type MonthBucket struct {
	Month  time.Month
	Points int
}

// MonthlySummary aggregates one calendar month of activity.
type MonthlySummary struct {
	Year         int
	Month        time.Month
	QuestCount   int
	RewardCount  int
	PointsEarned int
	PointsSpent  int
}

// DayGroup is the per-date grouped history view: one calendar day's entries,
// newest first.
type DayGroup struct {
	Day     string // YYYY-MM-DD
	Entries []model.HistoryItem
}

// HistoryService derives reporting views from an owner's ledger history. All
// derivations are recomputed from current state on every read; nothing here
// is cached or persisted. A missing owner yields empty views.
type HistoryService struct {
	store *store.Store
}

// NewHistoryService creates a new HistoryService instance.
func NewHistoryService(st *store.Store) *HistoryService {
	return &HistoryService{store: st}
}

// ownerHistory snapshots the owner's history out of the store.
func (s *HistoryService) ownerHistory(owner model.Owner) []model.HistoryItem {
	var out []model.HistoryItem
	s.store.View(func(state *model.AppState) {
		out = append(out, state.OwnerHistory(owner)...)
	})
	return out
}

// DayEntries returns the entries falling on one local calendar date, sorted
// newest first.
func (s *HistoryService) DayEntries(owner model.Owner, day time.Time) []model.HistoryItem {
	var entries []model.HistoryItem
	for _, item := range s.ownerHistory(owner) {
		if dates.SameDay(item.Date, day) {
			entries = append(entries, item)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries
}

// MonthBuckets returns one bucket per day of the given month, summing quest
// credits only. Reward redemptions are excluded from this rollup.
func (s *HistoryService) MonthBuckets(owner model.Owner, year int, month time.Month) []DayBucket {
	buckets := make([]DayBucket, dates.DaysInMonth(year, month))
	for i := range buckets {
		buckets[i].Day = i + 1
	}
	for _, item := range s.ownerHistory(owner) {
		d := item.Date.Local()
		if item.Kind == model.KindQuest && d.Year() == year && d.Month() == month {
			buckets[d.Day()-1].Points += item.PointDiff
		}
	}
	return buckets
}

// YearBuckets returns one bucket per month of the given year, quest credits
// only.
func (s *HistoryService) YearBuckets(owner model.Owner, year int) []MonthBucket {
	buckets := make([]MonthBucket, 12)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1)
	}
	for _, item := range s.ownerHistory(owner) {
		d := item.Date.Local()
		if item.Kind == model.KindQuest && d.Year() == year {
			buckets[d.Month()-1].Points += item.PointDiff
		}
	}
	return buckets
}

// Summary aggregates the calendar month of ref: quest completion and reward
// redemption counts plus the points earned and spent (spent as a positive
// number).
func (s *HistoryService) Summary(owner model.Owner, ref time.Time) MonthlySummary {
	out := MonthlySummary{Year: ref.Year(), Month: ref.Month()}
	for _, item := range s.ownerHistory(owner) {
		if !dates.SameMonth(item.Date, ref) {
			continue
		}
		switch item.Kind {
		case model.KindQuest:
			out.QuestCount++
			out.PointsEarned += item.PointDiff
		case model.KindReward:
			out.RewardCount++
			if item.PointDiff < 0 {
				out.PointsSpent += -item.PointDiff
			}
		}
	}
	return out
}

// GroupedByDay returns the owner's full history grouped by calendar day,
// newest day first, entries within a day newest first.
func (s *HistoryService) GroupedByDay(owner model.Owner) []DayGroup {
	byDay := map[string][]model.HistoryItem{}
	for _, item := range s.ownerHistory(owner) {
		key := dates.DayKey(item.Date)
		byDay[key] = append(byDay[key], item)
	}

	groups := make([]DayGroup, 0, len(byDay))
	for day, entries := range byDay {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
		groups = append(groups, DayGroup{Day: day, Entries: entries})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Day > groups[j].Day })
	return groups
}
