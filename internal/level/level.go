// Package level computes level progression from monthly point totals.
// Progress is derived entirely from the current month's quest credits; nothing
// in this package is persisted.
package level

// Default progression constants.
const (
	// DefaultMaxLevel is the level cap.
	DefaultMaxLevel = 50

	// DefaultPointsForMax is the monthly point total that reaches the cap.
	DefaultPointsForMax = 4800

	// MilestoneInterval is the level spacing of evolution milestones.
	MilestoneInterval = 5
)

// Config holds configuration for the level curve.
type Config struct {
	MaxLevel     int
	PointsForMax int
}

// Calculator maps monthly point totals to levels and progress values.
type Calculator struct {
	maxLevel       int
	pointsPerLevel int
}

// New creates a Calculator with the given configuration. Nil or non-positive
// fields fall back to the defaults.
func New(cfg *Config) *Calculator {
	maxLevel := DefaultMaxLevel
	pointsForMax := DefaultPointsForMax

	if cfg != nil {
		if cfg.MaxLevel > 1 {
			maxLevel = cfg.MaxLevel
		}
		if cfg.PointsForMax > 0 {
			pointsForMax = cfg.PointsForMax
		}
	}

	return &Calculator{
		maxLevel:       maxLevel,
		pointsPerLevel: pointsForMax / (maxLevel - 1),
	}
}

// MaxLevel returns the level cap.
func (c *Calculator) MaxLevel() int {
	return c.maxLevel
}

// PointsPerLevel returns the point cost of one level.
func (c *Calculator) PointsPerLevel() int {
	return c.pointsPerLevel
}

// Level returns the level for a monthly point total, in [1, MaxLevel].
func (c *Calculator) Level(monthlyPoints int) int {
	if monthlyPoints < 0 {
		monthlyPoints = 0
	}
	lvl := monthlyPoints/c.pointsPerLevel + 1
	if lvl > c.maxLevel {
		return c.maxLevel
	}
	return lvl
}

// ProgressPercent returns the progress within the current level, 0-100.
// At the level cap it is pinned to 100.
func (c *Calculator) ProgressPercent(monthlyPoints int) float64 {
	if monthlyPoints < 0 {
		monthlyPoints = 0
	}
	if c.Level(monthlyPoints) >= c.maxLevel {
		return 100
	}
	return float64(monthlyPoints%c.pointsPerLevel) / float64(c.pointsPerLevel) * 100
}

// PointsToNextLevel returns how many more monthly points reach the next
// level, or 0 at the cap.
func (c *Calculator) PointsToNextLevel(monthlyPoints int) int {
	if monthlyPoints < 0 {
		monthlyPoints = 0
	}
	if c.Level(monthlyPoints) >= c.maxLevel {
		return 0
	}
	return c.pointsPerLevel - monthlyPoints%c.pointsPerLevel
}

// LevelsToNextMilestone returns how many levels remain until the next
// evolution milestone (every MilestoneInterval levels), or 0 at the cap.
func (c *Calculator) LevelsToNextMilestone(lvl int) int {
	if lvl >= c.maxLevel {
		return 0
	}
	next := lvl/MilestoneInterval*MilestoneInterval + MilestoneInterval
	return next - lvl
}

// MilestoneCrossed reports whether moving from prev to cur crossed an
// evolution milestone. This is the one-shot "evolution" event; it is detected
// by the caller after a credit and never persisted.
func MilestoneCrossed(prev, cur int) bool {
	return cur > prev && cur/MilestoneInterval > prev/MilestoneInterval
}
