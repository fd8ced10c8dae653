package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/udisondev/skirmish/internal/model"
)

func TestSelectTarget_ByStrategy(t *testing.T) {
	// Health: Warrior L5 140, Archer L5 100, Mage L5 90.
	// Damage potential: Warrior 35, Archer 40, Mage 50.
	warrior := newTestCombatant(t, "Warrior", model.ClassWarrior, 5)
	archer := newTestCombatant(t, "Archer", model.ClassArcher, 5)
	mage := newTestCombatant(t, "Mage", model.ClassMage, 5)
	candidates := []*model.Combatant{warrior, archer, mage}

	tests := []struct {
		strategy FocusStrategy
		want     *model.Combatant
	}{
		{StrategyLowestHP, mage},
		{StrategyHighestHP, warrior},
		{StrategyLowestDamage, warrior},
		{StrategyHighestDamage, mage},
	}

	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			got, ok := SelectTarget(candidates, tt.strategy)
			require.True(t, ok)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestSelectTarget_SkipsDead(t *testing.T) {
	weak := newTestCombatant(t, "Weak", model.ClassMage, 1)
	strong := newTestCombatant(t, "Strong", model.ClassWarrior, 50)
	weak.TakeDamage(1000)

	got, ok := SelectTarget([]*model.Combatant{weak, strong}, StrategyLowestHP)
	require.True(t, ok)
	assert.Same(t, strong, got)
}

func TestSelectTarget_AllDead(t *testing.T) {
	a := newTestCombatant(t, "A", model.ClassArcher, 3)
	b := newTestCombatant(t, "B", model.ClassMage, 3)
	a.TakeDamage(10_000)
	b.TakeDamage(10_000)

	for _, s := range Strategies() {
		got, ok := SelectTarget([]*model.Combatant{a, b}, s)
		assert.False(t, ok, s.String())
		assert.Nil(t, got, s.String())
	}

	got, ok := SelectTarget(nil, StrategyHighestHP)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSelectTarget_TieKeepsFirst(t *testing.T) {
	first := newTestCombatant(t, "First", model.ClassWarrior, 7)
	second := newTestCombatant(t, "Second", model.ClassWarrior, 7)

	for _, s := range Strategies() {
		got, ok := SelectTarget([]*model.Combatant{first, second}, s)
		require.True(t, ok)
		assert.Same(t, first, got, s.String())
	}
}

func TestSelectTarget_SingleLivingCandidate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		alive := rapid.IntRange(0, n-1).Draw(t, "alive")
		strategy := rapid.SampledFrom(Strategies()).Draw(t, "strategy")

		candidates := make([]*model.Combatant, n)
		for i := range candidates {
			class := rapid.SampledFrom([]model.ClassKind{model.ClassWarrior, model.ClassArcher, model.ClassMage}).Draw(t, "class")
			level := rapid.Int32Range(model.MinLevel, model.MaxLevel).Draw(t, "level")
			c, err := model.NewCombatant("c", class, level, nil, nil)
			if err != nil {
				t.Fatalf("NewCombatant: %v", err)
			}
			if i != alive {
				c.TakeDamage(c.MaxHealth())
			}
			candidates[i] = c
		}

		got, ok := SelectTarget(candidates, strategy)
		if !ok || got != candidates[alive] {
			t.Fatalf("SelectTarget picked %v, want slot %d", got, alive)
		}
	})
}

func TestSelectTarget_DoesNotMutate(t *testing.T) {
	a := newTestCombatant(t, "A", model.ClassArcher, 9)
	b := newTestCombatant(t, "B", model.ClassMage, 4)
	b.TakeDamage(12)
	before := []string{a.String(), b.String()}

	for _, s := range Strategies() {
		first, _ := SelectTarget([]*model.Combatant{a, b}, s)
		second, _ := SelectTarget([]*model.Combatant{a, b}, s)
		assert.Same(t, first, second)
	}
	assert.Equal(t, before, []string{a.String(), b.String()})
}

func TestParseFocusStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want FocusStrategy
	}{
		{"lowest_hp", StrategyLowestHP},
		{"Highest-HP", StrategyHighestHP},
		{"LowestDamage", StrategyLowestDamage},
		{"highest damage", StrategyHighestDamage},
	}
	for _, tt := range tests {
		got, err := ParseFocusStrategy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFocusStrategy("random")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}
