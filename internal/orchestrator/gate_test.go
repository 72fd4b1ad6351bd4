package orchestrator

import (
	"testing"
	"time"
)

func TestGateAlwaysMode(t *testing.T) {
	g := RunGate{Mode: GateAlways}
	for hour := 0; hour < 24; hour++ {
		now := time.Date(2026, 8, 31, hour, 0, 0, 0, time.UTC)
		if !g.ShouldSendNow(now, "") {
			t.Errorf("Always gate closed at hour %d", hour)
		}
	}
}

func TestGateHourMode(t *testing.T) {
	g := RunGate{Mode: GateHour, SendHour: 18}

	at := func(hour int) time.Time {
		return time.Date(2026, 8, 31, hour, 5, 0, 0, time.UTC)
	}
	if !g.ShouldSendNow(at(18), "") {
		t.Error("Gate closed at the configured hour")
	}
	if g.ShouldSendNow(at(17), "") {
		t.Error("Gate open one hour early")
	}
	if g.ShouldSendNow(at(19), "") {
		t.Error("Gate open one hour late")
	}
	// Plain hour mode re-sends even when already sent today.
	if !g.ShouldSendNow(at(18), "2026-08-31") {
		t.Error("Hour mode must not dedupe by date")
	}
}

func TestGateHourOnceMode(t *testing.T) {
	g := RunGate{Mode: GateHourOnce, SendHour: 18}
	now := time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)

	if !g.ShouldSendNow(now, "") {
		t.Error("Gate closed on the first send of the day")
	}
	if g.ShouldSendNow(now, "2026-08-31") {
		t.Error("Gate open after already sending today")
	}
	if !g.ShouldSendNow(now, "2026-08-30") {
		t.Error("Gate closed although last send was yesterday")
	}
	if g.ShouldSendNow(time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC), "") {
		t.Error("Gate open outside the configured hour")
	}
}
