package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/rng"
)

// RandomPick in a weapon/armor slot asks for a random catalog entry.
const RandomPick = "random"

var ErrGroupCount = errors.New("scenario must define exactly two groups")

// Scenario describes the two rosters of a battle.
//
//	catalog:            # optional, replaces the built-in catalog
//	  weapons: [{name: Iron Sword, bonus: 5}]
//	  armors:  [{name: Cloak, bonus: 1}]
//	groups:
//	  - name: Alliance
//	    members:
//	      - {name: Aldric, class: warrior, level: 10, weapon: random, armor: Chainmail}
//	  - name: Horde
//	    members:
//	      - {name: Thrall, class: mage, level: 12}
type Scenario struct {
	Catalog *CatalogSpec `yaml:"catalog"`
	Groups  []GroupSpec  `yaml:"groups"`
}

// CatalogSpec overrides the equipment catalog.
type CatalogSpec struct {
	Weapons []EquipmentDef `yaml:"weapons"`
	Armors  []EquipmentDef `yaml:"armors"`
}

// GroupSpec is one roster.
type GroupSpec struct {
	Name    string          `yaml:"name"`
	Members []CombatantSpec `yaml:"members"`
}

// CombatantSpec is one roster entry. Weapon and Armor hold a catalog name,
// RandomPick, or nothing.
type CombatantSpec struct {
	Name   string `yaml:"name"`
	Class  string `yaml:"class"`
	Level  int32  `yaml:"level"`
	Weapon string `yaml:"weapon"`
	Armor  string `yaml:"armor"`
}

// LoadScenario reads a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes scenario YAML and checks its shape.
func ParseScenario(raw []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, err
	}
	if len(sc.Groups) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGroupCount, len(sc.Groups))
	}
	return &sc, nil
}

// CatalogOrDefault returns the scenario's catalog, or the built-in one.
func (sc *Scenario) CatalogOrDefault() *Catalog {
	if sc.Catalog == nil {
		return DefaultCatalog()
	}
	return NewCatalog(sc.Catalog.Weapons, sc.Catalog.Armors)
}

// Build creates both groups. Random equipment picks draw from src in roster
// order, so a fixed seed gives the same loadout.
func (sc *Scenario) Build(src rng.Source) (group1, group2 []*model.Combatant, err error) {
	if len(sc.Groups) != 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrGroupCount, len(sc.Groups))
	}
	cat := sc.CatalogOrDefault()

	groups := make([][]*model.Combatant, 2)
	for gi, g := range sc.Groups {
		for mi, member := range g.Members {
			c, err := member.build(cat, src)
			if err != nil {
				return nil, nil, fmt.Errorf("group %d (%s) member %d: %w", gi+1, g.Name, mi, err)
			}
			groups[gi] = append(groups[gi], c)
		}
		slog.Debug("roster built", "group", gi+1, "name", g.Name, "members", len(groups[gi]))
	}
	return groups[0], groups[1], nil
}

func (cs CombatantSpec) build(cat *Catalog, src rng.Source) (*model.Combatant, error) {
	class, err := model.ParseClassKind(cs.Class)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cs.Name, err)
	}

	var weapon *model.Weapon
	switch w := strings.TrimSpace(cs.Weapon); {
	case w == "":
	case strings.EqualFold(w, RandomPick):
		weapon = cat.RandomWeapon(src)
	default:
		if weapon, err = cat.Weapon(w); err != nil {
			return nil, err
		}
	}

	var armor *model.Armor
	switch a := strings.TrimSpace(cs.Armor); {
	case a == "":
	case strings.EqualFold(a, RandomPick):
		armor = cat.RandomArmor(src)
	default:
		if armor, err = cat.Armor(a); err != nil {
			return nil, err
		}
	}

	return model.NewCombatant(cs.Name, class, cs.Level, weapon, armor)
}
