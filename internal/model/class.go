package model

import (
	"fmt"
	"strings"
)

// ClassKind identifies a combatant class.
type ClassKind int32

const (
	ClassWarrior ClassKind = iota
	ClassArcher
	ClassMage
)

// Level bounds accepted by NewCombatant.
const (
	MinLevel int32 = 1
	MaxLevel int32 = 100
)

// linear is a coefficient pair for value = base + per×level.
type linear struct {
	base, per int32
}

func (l linear) at(level int32) int32 {
	return l.base + l.per*level
}

// attackStat selects the attribute driving a class's basic attack.
type attackStat int

const (
	attackByStrength attackStat = iota
	attackByDexterity
	attackByIntelligence
)

// classStats holds per-class formula coefficients.
//
// maxHealth = healthBase + 4×STR, maxMana = 2×INT,
// basic attack = <attackStat> + attackPerLevel×level.
type classStats struct {
	name           string
	strength       linear
	dexterity      linear
	intelligence   linear
	healthBase     int32
	attackStat     attackStat
	attackPerLevel int32
	attackVerb     string
	spellNames     [2]string
}

var classTable = map[ClassKind]classStats{
	ClassWarrior: {
		name:           "Warrior",
		strength:       linear{0, 5},
		dexterity:      linear{5, 1},
		intelligence:   linear{2, 2},
		healthBase:     40,
		attackStat:     attackByStrength,
		attackPerLevel: 2,
		attackVerb:     "swings a sword at",
		spellNames:     [2]string{"Heavy Slash", "Smite"},
	},
	ClassArcher: {
		name:           "Archer",
		strength:       linear{5, 2},
		dexterity:      linear{10, 5},
		intelligence:   linear{2, 1},
		healthBase:     40,
		attackStat:     attackByDexterity,
		attackPerLevel: 1,
		attackVerb:     "shoots an arrow at",
		spellNames:     [2]string{"Power Shot", "Bear Trap"},
	},
	ClassMage: {
		name:           "Mage",
		strength:       linear{5, 1},
		dexterity:      linear{2, 2},
		intelligence:   linear{10, 5},
		healthBase:     50,
		attackStat:     attackByIntelligence,
		attackPerLevel: 3,
		attackVerb:     "shoots a firebolt at",
		spellNames:     [2]string{"Ice Shard", "Fire Blast"},
	},
}

// Valid reports whether c is a known class.
func (c ClassKind) Valid() bool {
	_, ok := classTable[c]
	return ok
}

func (c ClassKind) String() string {
	if s, ok := classTable[c]; ok {
		return s.name
	}
	return fmt.Sprintf("ClassKind(%d)", int32(c))
}

// ParseClassKind parses a class name (case-insensitive).
func ParseClassKind(s string) (ClassKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warrior":
		return ClassWarrior, nil
	case "archer":
		return ClassArcher, nil
	case "mage":
		return ClassMage, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}
