package combat

import (
	"errors"
	"fmt"

	"github.com/udisondev/skirmish/internal/model"
)

var (
	ErrEmptyGroup      = errors.New("group has no combatants")
	ErrNilCombatant    = errors.New("nil combatant in group")
	ErrSharedCombatant = errors.New("combatant listed more than once")
	ErrInvalidRounds   = errors.New("rounds must be positive")
	ErrUnknownStrategy = errors.New("unknown focus strategy")
)

// ValidateBattle checks battle preconditions before any round runs.
//
// Checks:
//   - both groups are non-empty and contain no nil entries
//   - no combatant appears twice (groups own their members exclusively)
//   - rounds > 0
//   - strategy is known
func ValidateBattle(group1, group2 []*model.Combatant, strategy FocusStrategy, rounds int) error {
	if err := validateGroup(1, group1); err != nil {
		return err
	}
	if err := validateGroup(2, group2); err != nil {
		return err
	}

	seen := make(map[*model.Combatant]struct{}, len(group1)+len(group2))
	for _, g := range [][]*model.Combatant{group1, group2} {
		for _, c := range g {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("%w: %s", ErrSharedCombatant, c.Name())
			}
			seen[c] = struct{}{}
		}
	}

	if rounds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRounds, rounds)
	}
	if !strategy.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStrategy, int32(strategy))
	}
	return nil
}

func validateGroup(n int, group []*model.Combatant) error {
	if len(group) == 0 {
		return fmt.Errorf("group %d: %w", n, ErrEmptyGroup)
	}
	for i, c := range group {
		if c == nil {
			return fmt.Errorf("group %d slot %d: %w", n, i, ErrNilCombatant)
		}
	}
	return nil
}
