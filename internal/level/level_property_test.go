// Property-based tests for the level curve.
package level

import (
	"testing"

	"pgregory.net/rapid"
)

// TestLevelMonotonicProperty checks that Level never decreases as monthly
// points grow, and stays within [1, MaxLevel].
func TestLevelMonotonicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(nil)

		a := rapid.IntRange(0, 20000).Draw(t, "a")
		b := rapid.IntRange(0, 20000).Draw(t, "b")
		if a > b {
			a, b = b, a
		}

		la, lb := c.Level(a), c.Level(b)
		if la > lb {
			t.Fatalf("Level not monotonic: Level(%d)=%d > Level(%d)=%d", a, la, b, lb)
		}
		if la < 1 || lb > c.MaxLevel() {
			t.Fatalf("Level out of bounds: Level(%d)=%d, Level(%d)=%d, cap=%d", a, la, b, lb, c.MaxLevel())
		}
	})
}

// TestProgressBoundsProperty checks that progress stays in [0, 100] and that
// points-to-next is 0 exactly at the cap and in (0, PointsPerLevel] below it.
func TestProgressBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(nil)
		mp := rapid.IntRange(0, 20000).Draw(t, "monthlyPoints")

		progress := c.ProgressPercent(mp)
		if progress < 0 || progress > 100 {
			t.Fatalf("ProgressPercent(%d) = %v out of [0,100]", mp, progress)
		}

		toNext := c.PointsToNextLevel(mp)
		if c.Level(mp) >= c.MaxLevel() {
			if toNext != 0 {
				t.Fatalf("PointsToNextLevel(%d) = %d at cap, want 0", mp, toNext)
			}
		} else if toNext <= 0 || toNext > c.PointsPerLevel() {
			t.Fatalf("PointsToNextLevel(%d) = %d out of (0,%d]", mp, toNext, c.PointsPerLevel())
		}
	})
}

// TestMilestoneDistanceProperty checks that the milestone distance is always
// in [1, MilestoneInterval] below the cap and that walking that many levels
// forward crosses a milestone.
func TestMilestoneDistanceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := New(nil)
		lvl := rapid.IntRange(1, c.MaxLevel()-1).Draw(t, "level")

		dist := c.LevelsToNextMilestone(lvl)
		if dist < 1 || dist > MilestoneInterval {
			t.Fatalf("LevelsToNextMilestone(%d) = %d out of [1,%d]", lvl, dist, MilestoneInterval)
		}
		if !MilestoneCrossed(lvl, lvl+dist) {
			t.Fatalf("advancing %d levels from %d did not cross a milestone", dist, lvl)
		}
	})
}
