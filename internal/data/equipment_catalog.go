package data

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/rng"
)

// ErrUnknownItem is returned when a catalog lookup misses.
var ErrUnknownItem = errors.New("unknown catalog item")

// EquipmentDef — запись каталога: имя и бонус (урон для оружия, защита для брони).
type EquipmentDef struct {
	Name  string `yaml:"name"`
	Bonus int32  `yaml:"bonus"`
}

// Default catalog entries.
var (
	weaponDefs = []EquipmentDef{
		{Name: "Iron Sword", Bonus: 5},
		{Name: "Steel Axe", Bonus: 7},
		{Name: "Long Bow", Bonus: 6},
		{Name: "Magic Staff", Bonus: 8},
		{Name: "Dagger", Bonus: 4},
	}
	armorDefs = []EquipmentDef{
		{Name: "Leather Armor", Bonus: 3},
		{Name: "Chainmail", Bonus: 5},
		{Name: "Plate Armor", Bonus: 7},
		{Name: "Mage Robes", Bonus: 2},
		{Name: "Cloak", Bonus: 1},
	}
)

// Catalog is the fixed list of weapons and armors combatants can be given.
// Read-only after construction; safe for concurrent use.
type Catalog struct {
	weapons []EquipmentDef
	armors  []EquipmentDef
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(weaponDefs, armorDefs)
}

// NewCatalog builds a catalog from the given entries (copied).
func NewCatalog(weapons, armors []EquipmentDef) *Catalog {
	return &Catalog{
		weapons: append([]EquipmentDef(nil), weapons...),
		armors:  append([]EquipmentDef(nil), armors...),
	}
}

// Weapons returns a copy of the weapon entries.
func (c *Catalog) Weapons() []EquipmentDef { return append([]EquipmentDef(nil), c.weapons...) }

// Armors returns a copy of the armor entries.
func (c *Catalog) Armors() []EquipmentDef { return append([]EquipmentDef(nil), c.armors...) }

// Weapon looks a weapon up by name (case-insensitive).
func (c *Catalog) Weapon(name string) (*model.Weapon, error) {
	def, ok := find(c.weapons, name)
	if !ok {
		return nil, fmt.Errorf("weapon %q: %w", name, ErrUnknownItem)
	}
	return model.NewWeapon(def.Name, def.Bonus), nil
}

// Armor looks an armor piece up by name (case-insensitive).
func (c *Catalog) Armor(name string) (*model.Armor, error) {
	def, ok := find(c.armors, name)
	if !ok {
		return nil, fmt.Errorf("armor %q: %w", name, ErrUnknownItem)
	}
	return model.NewArmor(def.Name, def.Bonus), nil
}

// RandomWeapon picks a weapon uniformly. Returns nil for an empty catalog.
func (c *Catalog) RandomWeapon(src rng.Source) *model.Weapon {
	if len(c.weapons) == 0 {
		return nil
	}
	def := c.weapons[src.IntN(len(c.weapons))]
	return model.NewWeapon(def.Name, def.Bonus)
}

// RandomArmor picks an armor piece uniformly. Returns nil for an empty catalog.
func (c *Catalog) RandomArmor(src rng.Source) *model.Armor {
	if len(c.armors) == 0 {
		return nil
	}
	def := c.armors[src.IntN(len(c.armors))]
	return model.NewArmor(def.Name, def.Bonus)
}

func find(defs []EquipmentDef, name string) (EquipmentDef, bool) {
	for _, d := range defs {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d, true
		}
	}
	return EquipmentDef{}, false
}
