package model

import "math"

// Weapon adds a flat bonus to every basic attack of its holder.
type Weapon struct {
	Name        string
	DamageBonus int32
}

// NewWeapon creates a weapon. Negative bonuses are treated as zero.
func NewWeapon(name string, damageBonus int32) *Weapon {
	return &Weapon{Name: name, DamageBonus: max(damageBonus, 0)}
}

// Armor attenuates incoming damage along a saturating exponential curve.
type Armor struct {
	Name         string
	DefenseBonus int32
}

// NewArmor creates an armor piece. Negative bonuses are treated as zero.
func NewArmor(name string, defenseBonus int32) *Armor {
	return &Armor{Name: name, DefenseBonus: max(defenseBonus, 0)}
}

// armorCurve is the exponent coefficient of the mitigation curve.
const armorCurve = 0.01

// Reduction returns the fraction of damage absorbed, in [0, 1).
//
// Formula: 1 - e^(-0.01 × defenseBonus).
func (a *Armor) Reduction() float64 {
	return 1 - math.Exp(-armorCurve*float64(a.DefenseBonus))
}

// ReduceDamage returns the damage that passes through the armor.
// Result is floor(incoming × (1 - reduction)), minimum 1: armor never fully
// nullifies a hit.
func (a *Armor) ReduceDamage(incoming int32) int32 {
	reduced := int32(math.Floor(float64(incoming) * (1 - a.Reduction())))
	if reduced < 1 {
		reduced = 1
	}
	return reduced
}
