package combat

import (
	"fmt"
	"strings"

	"github.com/udisondev/skirmish/internal/model"
)

// FocusStrategy decides which opposing combatant an attacker focuses on.
type FocusStrategy int32

const (
	StrategyLowestHP FocusStrategy = iota
	StrategyHighestHP
	StrategyLowestDamage
	StrategyHighestDamage
)

var strategyNames = [...]string{
	StrategyLowestHP:      "lowest_hp",
	StrategyHighestHP:     "highest_hp",
	StrategyLowestDamage:  "lowest_damage",
	StrategyHighestDamage: "highest_damage",
}

// Strategies returns every focus strategy in declaration order.
func Strategies() []FocusStrategy {
	return []FocusStrategy{StrategyLowestHP, StrategyHighestHP, StrategyLowestDamage, StrategyHighestDamage}
}

// Valid reports whether s is a known strategy.
func (s FocusStrategy) Valid() bool {
	return s >= StrategyLowestHP && s <= StrategyHighestDamage
}

func (s FocusStrategy) String() string {
	if s.Valid() {
		return strategyNames[s]
	}
	return fmt.Sprintf("FocusStrategy(%d)", int32(s))
}

// ParseFocusStrategy accepts "lowest_hp", "lowest-hp", "LowestHP" and so on.
func ParseFocusStrategy(s string) (FocusStrategy, error) {
	norm := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	for i, name := range strategyNames {
		if strings.ReplaceAll(name, "_", "") == norm {
			return FocusStrategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *FocusStrategy) UnmarshalText(text []byte) error {
	v, err := ParseFocusStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SelectTarget picks a living candidate according to strategy.
// Returns false when no candidate is alive. Ties go to the first candidate
// in slice order. Candidates are only read.
func SelectTarget(candidates []*model.Combatant, strategy FocusStrategy) (*model.Combatant, bool) {
	i := selectIndex(candidates, strategy)
	if i < 0 {
		return nil, false
	}
	return candidates[i], true
}

// selectIndex is SelectTarget returning the candidate index, or -1.
func selectIndex(candidates []*model.Combatant, strategy FocusStrategy) int {
	best := -1
	for i, c := range candidates {
		if c == nil || !c.IsAlive() {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		if better(c, candidates[best], strategy) {
			best = i
		}
	}
	return best
}

// better reports whether c strictly beats cur under strategy.
func better(c, cur *model.Combatant, strategy FocusStrategy) bool {
	switch strategy {
	case StrategyLowestHP:
		return c.Health() < cur.Health()
	case StrategyHighestHP:
		return c.Health() > cur.Health()
	case StrategyLowestDamage:
		return c.DamagePotential() < cur.DamagePotential()
	case StrategyHighestDamage:
		return c.DamagePotential() > cur.DamagePotential()
	}
	return false
}
