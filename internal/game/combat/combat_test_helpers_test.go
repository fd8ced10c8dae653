package combat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/rng"
)

// newTestCombatant создаёт бойца без снаряжения.
func newTestCombatant(t *testing.T, name string, class model.ClassKind, level int32) *model.Combatant {
	t.Helper()
	c, err := model.NewCombatant(name, class, level, nil, nil)
	require.NoError(t, err, "NewCombatant(%s, %s, %d)", name, class, level)
	return c
}

// eventRecorder собирает события боя для проверок в тестах.
type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) observe(e Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *eventRecorder) ofKind(kind EventKind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// alwaysCast forces every spell coin flip to succeed; neverCast forces it to fail.
func alwaysCast() *rng.Fixed { return &rng.Fixed{Values: []int{0}} }
func neverCast() *rng.Fixed { return &rng.Fixed{Values: []int{1}} }
