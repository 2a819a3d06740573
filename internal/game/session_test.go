package game

import (
	"testing"
	"time"

	"github.com/Faultbox/voidharvest/internal/config"
)

func testGameConfig() config.GameConfig {
	return config.GameConfig{
		TimeLimit:    time.Minute,
		StartEnergy:  100,
		StartHealth:  100,
		EnergyDrain:  10,
		ImpactDamage: 40,
	}
}

func TestSessionStartsPlaying(t *testing.T) {
	s := NewSession(testGameConfig())
	if s.Over() {
		t.Error("fresh session is over")
	}
	if s.Energy != 100 || s.Health != 100 || s.Score != 0 {
		t.Errorf("fresh session: energy %v, health %v, score %d", s.Energy, s.Health, s.Score)
	}
}

func TestSessionEnergyDrain(t *testing.T) {
	s := NewSession(testGameConfig())

	s.Update(1, true)
	if s.Energy != 90 {
		t.Errorf("energy = %v after 1s thrust, want 90", s.Energy)
	}
	s.Update(1, false)
	if s.Energy != 90 {
		t.Errorf("energy = %v after coasting, want 90", s.Energy)
	}

	// Run the tank dry.
	for i := 0; i < 20 && !s.Over(); i++ {
		s.Update(1, true)
	}
	if s.Outcome() != OutcomeLostEnergy {
		t.Errorf("outcome = %v, want energy loss", s.Outcome())
	}
	if s.Energy != 0 {
		t.Errorf("energy = %v at loss, want 0", s.Energy)
	}
}

func TestSessionTimeLimit(t *testing.T) {
	s := NewSession(testGameConfig())
	s.Update(59, false)
	if s.Over() {
		t.Fatal("session over before the limit")
	}
	if s.Remaining() > time.Second || s.Remaining() <= 0 {
		t.Errorf("Remaining = %v, want about 1s", s.Remaining())
	}
	s.Update(2, false)
	if s.Outcome() != OutcomeLostTime {
		t.Errorf("outcome = %v, want time loss", s.Outcome())
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining = %v after expiry, want 0", s.Remaining())
	}
}

func TestSessionImpacts(t *testing.T) {
	s := NewSession(testGameConfig())
	s.Impact()
	s.Impact()
	if s.Over() {
		t.Fatal("session over at 20 health")
	}
	s.Impact()
	if s.Outcome() != OutcomeLostHealth {
		t.Errorf("outcome = %v, want health loss", s.Outcome())
	}
	if s.Health != 0 {
		t.Errorf("health = %v, want 0", s.Health)
	}
}

func TestSessionCollectCapsEnergy(t *testing.T) {
	s := NewSession(testGameConfig())
	s.Update(2, true) // down to 80
	s.Collect(100, 50)
	if s.Score != 100 {
		t.Errorf("score = %d, want 100", s.Score)
	}
	if s.Energy != 100 {
		t.Errorf("energy = %v, want capped at 100", s.Energy)
	}
}

func TestSessionWin(t *testing.T) {
	s := NewSession(testGameConfig())
	s.Win()
	if s.Outcome() != OutcomeWon {
		t.Errorf("outcome = %v, want won", s.Outcome())
	}

	// Terminal state is sticky: later losses do not overwrite a win.
	s.Impact()
	s.Impact()
	s.Impact()
	s.Update(120, true)
	if s.Outcome() != OutcomeWon {
		t.Errorf("outcome changed after win: %v", s.Outcome())
	}

	// And a finished run ignores further collection.
	s.Collect(100, 10)
	if s.Score != 0 {
		t.Errorf("score = %d after win, want 0", s.Score)
	}
}

func TestSessionLossBeatsLateWin(t *testing.T) {
	s := NewSession(testGameConfig())
	s.Impact()
	s.Impact()
	s.Impact()
	s.Win()
	if s.Outcome() != OutcomeLostHealth {
		t.Errorf("outcome = %v, want health loss to stick", s.Outcome())
	}
}

func TestSessionNoTimeLimit(t *testing.T) {
	cfg := testGameConfig()
	cfg.TimeLimit = 0
	s := NewSession(cfg)
	s.Update(3600, false)
	if s.Over() {
		t.Error("session with no time limit expired")
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining = %v with no limit, want 0", s.Remaining())
	}
}
