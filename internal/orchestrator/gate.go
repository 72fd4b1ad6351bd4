package orchestrator

import "time"

// Gate modes.
const (
	GateAlways   = "always"
	GateHour     = "hour"
	GateHourOnce = "hour_once"
)

// RunGate decides whether the summary notification may be sent on this run.
// It guards only the notification step; fetch, compare and persist always
// run regardless of the gate.
type RunGate struct {
	Mode     string
	SendHour int
}

// ShouldSendNow applies the configured mode. lastSentDate is the persisted
// YYYY-MM-DD of the most recent successful send, empty when never sent.
func (g RunGate) ShouldSendNow(now time.Time, lastSentDate string) bool {
	switch g.Mode {
	case GateHour:
		return now.Hour() == g.SendHour
	case GateHourOnce:
		if now.Hour() != g.SendHour {
			return false
		}
		return lastSentDate != now.Format("2006-01-02")
	default:
		return true
	}
}
