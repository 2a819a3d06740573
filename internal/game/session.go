package game

import (
	"time"

	"github.com/Faultbox/voidharvest/internal/config"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLostTime
	OutcomeLostEnergy
	OutcomeLostHealth
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLostTime:
		return "out of time"
	case OutcomeLostEnergy:
		return "out of energy"
	case OutcomeLostHealth:
		return "ship destroyed"
	}
	return "unknown"
}

// Session tracks score, resources and the run clock. It decides when the
// run ends; the loop only reports what happened.
type Session struct {
	cfg config.GameConfig

	Score   int
	Energy  float32
	Health  float32
	Elapsed time.Duration

	outcome Outcome
}

// NewSession starts a fresh run.
func NewSession(cfg config.GameConfig) *Session {
	return &Session{
		cfg:    cfg,
		Energy: cfg.StartEnergy,
		Health: cfg.StartHealth,
	}
}

// Update advances the clock and drains energy while thrusting. Once the
// session has ended further updates are ignored.
func (s *Session) Update(dt float64, thrusting bool) {
	if s.outcome != OutcomePlaying {
		return
	}

	s.Elapsed += time.Duration(dt * float64(time.Second))
	if thrusting {
		s.Energy -= s.cfg.EnergyDrain * float32(dt)
	}

	switch {
	case s.cfg.TimeLimit > 0 && s.Elapsed >= s.cfg.TimeLimit:
		s.outcome = OutcomeLostTime
	case s.Energy <= 0:
		s.Energy = 0
		s.outcome = OutcomeLostEnergy
	}
}

// Collect credits a picked-up fuel cell.
func (s *Session) Collect(score int, energy float32) {
	if s.outcome != OutcomePlaying {
		return
	}
	s.Score += score
	s.Energy += energy
	if s.Energy > s.cfg.StartEnergy {
		s.Energy = s.cfg.StartEnergy
	}
}

// Impact applies asteroid collision damage.
func (s *Session) Impact() {
	if s.outcome != OutcomePlaying {
		return
	}
	s.Health -= s.cfg.ImpactDamage
	if s.Health <= 0 {
		s.Health = 0
		s.outcome = OutcomeLostHealth
	}
}

// Win marks the run as won. Losing conditions that already fired win the
// race; a dead ship does not clear the field.
func (s *Session) Win() {
	if s.outcome == OutcomePlaying {
		s.outcome = OutcomeWon
	}
}

// Outcome returns the current run state.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Over reports whether the run has ended.
func (s *Session) Over() bool {
	return s.outcome != OutcomePlaying
}

// Remaining returns time left on the run clock, zero when expired or when
// no limit is set.
func (s *Session) Remaining() time.Duration {
	if s.cfg.TimeLimit <= 0 {
		return 0
	}
	left := s.cfg.TimeLimit - s.Elapsed
	if left < 0 {
		return 0
	}
	return left
}
