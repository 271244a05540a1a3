package game

import (
	"fmt"
	"time"
)

// PointsPerLevel is the score needed to advance one level.
const PointsPerLevel = 1000

var clearPoints = [...]int{0, 100, 300, 500, 800}

// Points returns the award for clearing lines rows with a single lock. Counts
// above four pay the four-line value.
func Points(lines int) int {
	if lines <= 0 {
		return 0
	}
	if lines >= len(clearPoints) {
		return clearPoints[len(clearPoints)-1]
	}
	return clearPoints[lines]
}

// LevelFor returns the level reached at score.
func LevelFor(score int) int {
	return score/PointsPerLevel + 1
}

// DropIntervalFor returns the gravity interval at level: each level above the
// first adds a quarter of the base speed.
func DropIntervalFor(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return time.Duration(float64(base) / (1 + float64(level-1)*0.25))
}

// FormatTime renders seconds as MM:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
