package model

// Spell is a named damaging ability. Value type: copies are independent.
type Spell struct {
	Name     string
	Damage   int32
	ManaCost int32
}

// Signature spell costs, identical for every class.
const (
	PrimarySpellCost   int32 = 5
	SecondarySpellCost int32 = 8
)

// signatureSpells derives the two spells a class learns at the given level.
// Damage: 3×level+10 and 4×level+10.
func signatureSpells(class ClassKind, level int32) [2]Spell {
	names := classTable[class].spellNames
	return [2]Spell{
		{Name: names[0], Damage: 3*level + 10, ManaCost: PrimarySpellCost},
		{Name: names[1], Damage: 4*level + 10, ManaCost: SecondarySpellCost},
	}
}
