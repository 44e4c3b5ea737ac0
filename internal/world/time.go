// Game-time calendar: converts raw tick counts into hours and the day/night
// phase the condition evaluator keys on.
// See DESIGN.md Section 4.
package world

import "fmt"

// TicksPerDay is the length of one in-game day in ticks (1 tick = 1 minute).
const TicksPerDay = 24 * 60

// Day runs 06:00–18:00; everything else is night.
const (
	dawnHour = 6
	duskHour = 18
)

// Phase is the coarse day/night classification of a game time.
type Phase string

const (
	PhaseDay   Phase = "day"
	PhaseNight Phase = "night"
)

// HourOfDay returns the in-game hour (0–23) for a tick count.
func HourOfDay(tick uint64) int {
	return int(tick % TicksPerDay / 60)
}

// TimeOfDay returns the day/night phase for a tick count.
func TimeOfDay(tick uint64) Phase {
	h := HourOfDay(tick)
	if h >= dawnHour && h < duskHour {
		return PhaseDay
	}
	return PhaseNight
}

// ClockTime formats a tick count as an in-game wall clock, for logs and the
// demo CLI.
func ClockTime(tick uint64) string {
	minuteOfDay := tick % TicksPerDay
	return fmt.Sprintf("day %d, %02d:%02d", tick/TicksPerDay+1, minuteOfDay/60, minuteOfDay%60)
}
