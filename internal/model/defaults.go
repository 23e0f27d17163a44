package model

import (
	"time"

	"github.com/google/uuid"
)

// Default profile identity used on first launch and after a full reset.
const (
	DefaultProfileName = "ゆうしゃ"
	DefaultProfileIcon = "🦸"
)

// AvatarEmojis are the selectable profile avatars.
var AvatarEmojis = []string{"🦸", "🧙", "🧚", "🦊", "🐻"}

// DefaultQuests is the starter chore catalog, bilingual titles included.
func DefaultQuests() []Quest {
	return []Quest{
		{ID: "q1", Title: "おさらあらい", TitleEn: "Wash Dishes", Points: 50, Icon: "🍽️"},
		{ID: "q2", Title: "おふろそうじ", TitleEn: "Clean Bathroom", Points: 100, Icon: "🛁"},
		{ID: "q3", Title: "くつそろえ", TitleEn: "Organize Shoes", Points: 10, Icon: "👟"},
		{ID: "q4", Title: "せんたくたたみ", TitleEn: "Fold Laundry", Points: 30, Icon: "👕"},
		{ID: "q5", Title: "しゅくだい", TitleEn: "Homework", Points: 80, Icon: "📚", OncePerDay: true, AlwaysShow: true},
		{ID: "q6", Title: "あしたのじゅんび", TitleEn: "Prepare for Tomorrow", Points: 50, Icon: "🎒", OncePerDay: true},
		{ID: "q7", Title: "じかんわりあわせ", TitleEn: "Check Schedule", Points: 30, Icon: "📅", OncePerDay: true},
		{ID: "q8", Title: "れんらくちょうをみせる", TitleEn: "Show Contact Book", Points: 20, Icon: "📓", OncePerDay: true},
	}
}

// DefaultRewards is the starter reward catalog.
func DefaultRewards() []Reward {
	return []Reward{
		{ID: "r1", Title: "Youtube 30ぷん", TitleEn: "YouTube 30min", Cost: 300, Icon: "📺"},
		{ID: "r2", Title: "おやつ 1つ", TitleEn: "One Snack", Cost: 150, Icon: "🍭"},
		{ID: "r3", Title: "ゲーム 1じかん", TitleEn: "Gaming 1hr", Cost: 500, Icon: "🎮"},
	}
}

// NewProfile creates an empty profile with a generated id. Empty name or icon
// fall back to the defaults.
func NewProfile(name, icon string, now time.Time) Profile {
	if name == "" {
		name = DefaultProfileName
	}
	if icon == "" {
		icon = DefaultProfileIcon
	}
	return Profile{
		ID:        uuid.NewString(),
		Name:      name,
		Icon:      icon,
		History:   []HistoryItem{},
		CreatedAt: now,
	}
}

// NewState returns the initial application state: default catalog, no
// profiles, empty legacy ledger.
func NewState() *AppState {
	return &AppState{
		Profiles:        []Profile{},
		Quests:          DefaultQuests(),
		Rewards:         DefaultRewards(),
		DailyQuestState: map[string]DailyQuestState{},
		History:         []HistoryItem{},
	}
}
