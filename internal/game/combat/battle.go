package combat

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/rng"
)

// BattleResult is the tally of a finished battle.
type BattleResult struct {
	Strategy   FocusStrategy
	Rounds     int
	Group1Wins int
	Group2Wins int
	WinPct1    float64
	WinPct2    float64
}

func (r BattleResult) String() string {
	return fmt.Sprintf("%s over %d rounds: group 1 won %d (%.1f%%), group 2 won %d (%.1f%%)",
		r.Strategy, r.Rounds, r.Group1Wins, r.WinPct1, r.Group2Wins, r.WinPct2)
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRestoreMana restores every combatant's mana at the start of each round.
// By default mana is restored once per battle and then carries over between
// rounds.
func WithRestoreMana(restore bool) Option {
	return func(s *Simulator) { s.restoreMana = restore }
}

// WithObserver installs a callback receiving every combat event.
// The callback runs synchronously on the battle goroutine.
func WithObserver(fn func(Event)) Option {
	return func(s *Simulator) { s.observer = fn }
}

// Simulator runs battles between two groups.
//
// A Simulator is not safe for concurrent use: it owns a random source and
// mutates the combatants it is given. Run concurrent battles on separate
// Simulators and separate copies of the groups (see CompareStrategies).
type Simulator struct {
	src         rng.Source
	restoreMana bool
	observer    func(Event)
}

// NewSimulator creates a simulator drawing all randomness from src.
func NewSimulator(src rng.Source, opts ...Option) *Simulator {
	s := &Simulator{src: src}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunBattle runs rounds independent rounds and tallies the winners.
// See Simulator.RunBattle.
func RunBattle(group1, group2 []*model.Combatant, strategy FocusStrategy, rounds int, src rng.Source) (BattleResult, error) {
	return NewSimulator(src).RunBattle(group1, group2, strategy, rounds)
}

// RunBattle runs rounds independent rounds between group1 and group2.
//
// Health is restored before every round. Mana is restored once when the
// battle starts and, unless WithRestoreMana is set, persists between rounds.
// Win percentages are wins / rounds × 100.
func (s *Simulator) RunBattle(group1, group2 []*model.Combatant, strategy FocusStrategy, rounds int) (BattleResult, error) {
	if err := ValidateBattle(group1, group2, strategy, rounds); err != nil {
		return BattleResult{}, fmt.Errorf("validating battle: %w", err)
	}

	for _, g := range [][]*model.Combatant{group1, group2} {
		for _, c := range g {
			c.ResetMana()
		}
	}

	res := BattleResult{Strategy: strategy, Rounds: rounds}
	for i := range rounds {
		switch s.playRound(i+1, group1, group2, strategy) {
		case OutcomeSide1Won:
			res.Group1Wins++
		case OutcomeSide2Won:
			res.Group2Wins++
		}
	}

	res.WinPct1 = float64(res.Group1Wins) / float64(rounds) * 100
	res.WinPct2 = float64(res.Group2Wins) / float64(rounds) * 100

	slog.Debug("battle finished",
		"strategy", strategy,
		"rounds", rounds,
		"group1_wins", res.Group1Wins,
		"group2_wins", res.Group2Wins)

	return res, nil
}

// PlayRound resolves a single round numbered n and returns its outcome.
// Battle preconditions are checked first; health is restored, mana is
// restored only if WithRestoreMana is set.
func (s *Simulator) PlayRound(n int, group1, group2 []*model.Combatant, strategy FocusStrategy) (Outcome, error) {
	if err := ValidateBattle(group1, group2, strategy, 1); err != nil {
		return OutcomeInProgress, fmt.Errorf("validating round: %w", err)
	}
	return s.playRound(n, group1, group2, strategy), nil
}

func (s *Simulator) playRound(n int, group1, group2 []*model.Combatant, strategy FocusStrategy) Outcome {
	if s.restoreMana {
		for _, g := range [][]*model.Combatant{group1, group2} {
			for _, c := range g {
				c.ResetMana()
			}
		}
	}

	rc := &roundContext{
		number:   n,
		groups:   [2][]*model.Combatant{group1, group2},
		strategy: strategy,
		src:      s.src,
		emit:     s.observer,
	}
	out := rc.resolve()

	slog.Debug("round finished", "round", n, "outcome", out.String())
	return out
}

// CloneGroup deep-copies a group so it can be fought over independently.
func CloneGroup(group []*model.Combatant) []*model.Combatant {
	out := make([]*model.Combatant, len(group))
	for i, c := range group {
		out[i] = c.Clone()
	}
	return out
}
