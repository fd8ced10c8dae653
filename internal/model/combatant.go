package model

import (
	"fmt"
	"strings"
)

// Combatant — боевая единица симулятора: класс, уровень, производные статы,
// опциональное снаряжение и два заклинания.
//
// Stats are fixed at construction from (class, level). Only health and mana
// change, and only through TakeDamage, CastSpell and the Reset methods.
// Not safe for concurrent use: a combatant is driven by one round at a time.
type Combatant struct {
	name  string
	class ClassKind
	level int32

	strength     int32
	dexterity    int32
	intelligence int32

	health    int32
	maxHealth int32
	mana      int32
	maxMana   int32

	weapon *Weapon
	armor  *Armor
	spells [2]Spell
}

// NewCombatant creates a combatant at full health and mana.
// weapon and armor may be nil.
func NewCombatant(name string, class ClassKind, level int32, weapon *Weapon, armor *Armor) (*Combatant, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("creating %q: %w: %d", name, ErrUnknownClass, int32(class))
	}
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("creating %q: %w: %d not in [%d, %d]", name, ErrInvalidLevel, level, MinLevel, MaxLevel)
	}

	st := classTable[class]
	c := &Combatant{
		name:         name,
		class:        class,
		level:        level,
		strength:     st.strength.at(level),
		dexterity:    st.dexterity.at(level),
		intelligence: st.intelligence.at(level),
		weapon:       weapon,
		armor:        armor,
		spells:       signatureSpells(class, level),
	}
	c.maxHealth = st.healthBase + 4*c.strength
	c.maxMana = 2 * c.intelligence
	c.health = c.maxHealth
	c.mana = c.maxMana
	return c, nil
}

func (c *Combatant) Name() string { return c.name }
func (c *Combatant) Class() ClassKind { return c.class }
func (c *Combatant) Level() int32 { return c.level }
func (c *Combatant) Strength() int32 { return c.strength }
func (c *Combatant) Dexterity() int32 { return c.dexterity }
func (c *Combatant) Intelligence() int32 { return c.intelligence }
func (c *Combatant) Health() int32 { return c.health }
func (c *Combatant) MaxHealth() int32 { return c.maxHealth }
func (c *Combatant) Mana() int32 { return c.mana }
func (c *Combatant) MaxMana() int32 { return c.maxMana }

// Weapon returns the equipped weapon or nil.
func (c *Combatant) Weapon() *Weapon { return c.weapon }

// Armor returns the equipped armor or nil.
func (c *Combatant) Armor() *Armor { return c.armor }

// Spells returns a copy of the known spells, primary first.
func (c *Combatant) Spells() []Spell {
	out := make([]Spell, len(c.spells))
	copy(out, c.spells[:])
	return out
}

// PrimarySpell returns the first known spell (the one used in rounds).
func (c *Combatant) PrimarySpell() Spell { return c.spells[0] }

// IsAlive reports health > 0.
func (c *Combatant) IsAlive() bool { return c.health > 0 }

// DamagePotential returns the class base attack without the weapon bonus.
// Used only to rank targets; actual hits go through Attack.
func (c *Combatant) DamagePotential() int32 {
	st := classTable[c.class]
	var stat int32
	switch st.attackStat {
	case attackByStrength:
		stat = c.strength
	case attackByDexterity:
		stat = c.dexterity
	case attackByIntelligence:
		stat = c.intelligence
	}
	return stat + st.attackPerLevel*c.level
}

// AttackDamage returns the raw damage of a basic attack (before target armor).
func (c *Combatant) AttackDamage() int32 {
	dmg := c.DamagePotential()
	if c.weapon != nil {
		dmg += c.weapon.DamageBonus
	}
	return dmg
}

// AttackResult describes one basic attack.
type AttackResult struct {
	Attacker string
	Verb     string
	Raw      int32 // damage rolled by the attacker
	Hit      DamageResult
}

func (r AttackResult) String() string {
	return fmt.Sprintf("%s %s %s, dealing %d damage! %s", r.Attacker, r.Verb, r.Hit.Target, r.Raw, r.Hit)
}

// Attack performs a basic attack and applies it to target.
func (c *Combatant) Attack(target *Combatant) AttackResult {
	raw := c.AttackDamage()
	return AttackResult{
		Attacker: c.name,
		Verb:     classTable[c.class].attackVerb,
		Raw:      raw,
		Hit:      target.TakeDamage(raw),
	}
}

// CastResult describes a successful spell cast.
type CastResult struct {
	Caster string
	Spell  Spell
	Hit    DamageResult
}

func (r CastResult) String() string {
	return fmt.Sprintf("%s casts %s on %s, dealing %d damage! %s", r.Caster, r.Spell.Name, r.Hit.Target, r.Spell.Damage, r.Hit)
}

// CastSpell spends mana and applies the spell's damage to target.
// Returns ErrInsufficientMana, with no state change, if mana < cost.
func (c *Combatant) CastSpell(spell Spell, target *Combatant) (CastResult, error) {
	if c.mana < spell.ManaCost {
		return CastResult{}, fmt.Errorf("%s casting %s (%d/%d): %w", c.name, spell.Name, c.mana, spell.ManaCost, ErrInsufficientMana)
	}
	c.mana -= spell.ManaCost
	return CastResult{
		Caster: c.name,
		Spell:  spell,
		Hit:    target.TakeDamage(spell.Damage),
	}, nil
}

// CanCast reports whether the spell is affordable right now.
func (c *Combatant) CanCast(spell Spell) bool {
	return c.mana >= spell.ManaCost
}

// DamageResult describes the outcome of TakeDamage.
type DamageResult struct {
	Target string
	Amount int32 // damage actually taken, after armor
	Health int32 // health after the hit
	Killed bool  // health reached 0 on this hit
}

func (r DamageResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s takes %d damage. Health is now %d.", r.Target, r.Amount, r.Health)
	if r.Killed {
		fmt.Fprintf(&b, " %s dies!", r.Target)
	}
	return b.String()
}

// TakeDamage applies raw damage through armor and clamps health at 0.
// Non-positive damage is ignored.
func (c *Combatant) TakeDamage(raw int32) DamageResult {
	if raw <= 0 {
		return DamageResult{Target: c.name, Health: c.health}
	}
	actual := raw
	if c.armor != nil {
		actual = c.armor.ReduceDamage(raw)
	}

	wasAlive := c.health > 0
	c.health = max(c.health-actual, 0)

	return DamageResult{
		Target: c.name,
		Amount: actual,
		Health: c.health,
		Killed: wasAlive && c.health == 0,
	}
}

// ResetHealth restores health to maximum.
func (c *Combatant) ResetHealth() {
	c.health = c.maxHealth
}

// ResetMana restores mana to maximum.
func (c *Combatant) ResetMana() {
	c.mana = c.maxMana
}

// Clone returns an independent copy with the same current health and mana.
// Equipment is immutable and shared.
func (c *Combatant) Clone() *Combatant {
	cp := *c
	return &cp
}

func (c *Combatant) String() string {
	return fmt.Sprintf("%s (%s L%d) HP %d/%d MP %d/%d", c.name, c.class, c.level, c.health, c.maxHealth, c.mana, c.maxMana)
}
