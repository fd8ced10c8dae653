package combat

import (
	"cmp"
	"slices"

	"github.com/udisondev/skirmish/internal/model"
)

// FocusMap maps each attacker to the target it would pick right now.
// It is derived data: rebuilt at the start of every round and never used to
// resolve damage.
type FocusMap map[Handle]Handle

// FocusEntry is one attacker → target pair of a FocusMap.
type FocusEntry struct {
	Attacker Handle
	Target   Handle
}

// BuildFocusMap computes the focus of every living combatant of both groups.
// Attackers without a living opponent are omitted.
func BuildFocusMap(group1, group2 []*model.Combatant, strategy FocusStrategy) FocusMap {
	fm := make(FocusMap, len(group1)+len(group2))
	fm.add(Side1, group1, group2, strategy)
	fm.add(Side2, group2, group1, strategy)
	return fm
}

func (fm FocusMap) add(side Side, attackers, defenders []*model.Combatant, strategy FocusStrategy) {
	for i, a := range attackers {
		if a == nil || !a.IsAlive() {
			continue
		}
		if j := selectIndex(defenders, strategy); j >= 0 {
			fm[Handle{Side: side, Index: i}] = Handle{Side: side.Opponent(), Index: j}
		}
	}
}

// Entries returns the map sorted by attacker side, then slot.
func (fm FocusMap) Entries() []FocusEntry {
	out := make([]FocusEntry, 0, len(fm))
	for a, t := range fm {
		out = append(out, FocusEntry{Attacker: a, Target: t})
	}
	slices.SortFunc(out, func(x, y FocusEntry) int {
		if c := cmp.Compare(x.Attacker.Side, y.Attacker.Side); c != 0 {
			return c
		}
		return cmp.Compare(x.Attacker.Index, y.Attacker.Index)
	})
	return out
}
