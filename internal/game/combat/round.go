package combat

import (
	"log/slog"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/rng"
)

// roundContext holds the state of one round being resolved.
type roundContext struct {
	number   int
	groups   [2][]*model.Combatant
	strategy FocusStrategy
	src      rng.Source
	emit     func(Event)
}

func (rc *roundContext) group(side Side) []*model.Combatant {
	return rc.groups[side-1]
}

// resolve plays the round to completion and returns the terminal outcome.
//
// Workflow:
//  1. Restore health of every combatant
//  2. Publish the focus map for the round
//  3. Alternate passes group 1 → group 2 until one side finds no living target
func (rc *roundContext) resolve() Outcome {
	for _, g := range rc.groups {
		for _, c := range g {
			c.ResetHealth()
		}
	}

	if rc.emit != nil {
		for _, e := range BuildFocusMap(rc.groups[0], rc.groups[1], rc.strategy).Entries() {
			rc.emit(Event{
				Round:        rc.number,
				Kind:         EventFocus,
				Attacker:     e.Attacker,
				Defender:     e.Target,
				AttackerName: rc.combatant(e.Attacker).Name(),
				DefenderName: rc.combatant(e.Target).Name(),
			})
		}
	}

	for {
		for _, side := range [2]Side{Side1, Side2} {
			if out := rc.pass(side); out != OutcomeInProgress {
				if rc.emit != nil {
					rc.emit(Event{Round: rc.number, Kind: EventRoundEnd, Winner: side})
				}
				return out
			}
		}
	}
}

func (rc *roundContext) combatant(h Handle) *model.Combatant {
	return rc.group(h.Side)[h.Index]
}

// pass lets every living member of side act once, in slot order.
// Returns the side's win as soon as an attacker finds no living target.
func (rc *roundContext) pass(side Side) Outcome {
	defenders := rc.group(side.Opponent())
	for i, attacker := range rc.group(side) {
		if !attacker.IsAlive() {
			continue
		}
		j := selectIndex(defenders, rc.strategy)
		if j < 0 {
			return winOutcome(side)
		}
		rc.turn(
			Handle{Side: side, Index: i}, attacker,
			Handle{Side: side.Opponent(), Index: j}, defenders[j],
		)
	}
	return OutcomeInProgress
}

// turn resolves one attacker's action: a basic attack, then, if the target
// survived, a coin flip for the primary spell.
func (rc *roundContext) turn(ah Handle, attacker *model.Combatant, dh Handle, defender *model.Combatant) {
	hit := attacker.Attack(defender)
	rc.record(EventAttack, ah, attacker, dh, "", hit.Raw, hit.Hit)
	if hit.Hit.Killed {
		return
	}

	if !rng.CoinFlip(rc.src) {
		return
	}
	spell := attacker.PrimarySpell()
	if !attacker.CanCast(spell) {
		return
	}
	cast, err := attacker.CastSpell(spell, defender)
	if err != nil {
		slog.Debug("spell skipped", "caster", attacker.Name(), "spell", spell.Name, "err", err)
		return
	}
	rc.record(EventSpell, ah, attacker, dh, spell.Name, spell.Damage, cast.Hit)
}

func (rc *roundContext) record(kind EventKind, ah Handle, attacker *model.Combatant, dh Handle, spell string, raw int32, hit model.DamageResult) {
	if rc.emit == nil {
		return
	}
	e := Event{
		Round:          rc.number,
		Kind:           kind,
		Attacker:       ah,
		Defender:       dh,
		AttackerName:   attacker.Name(),
		DefenderName:   hit.Target,
		Spell:          spell,
		Raw:            raw,
		Amount:         hit.Amount,
		DefenderHealth: hit.Health,
	}
	rc.emit(e)
	if hit.Killed {
		e.Kind = EventDeath
		rc.emit(e)
	}
}
