package combat

import "fmt"

// Row is a formation row
type Row string

const (
	RowFront Row = "front"
	RowBack  Row = "back"
)

// AttackType is how an attack reaches its target
type AttackType string

const (
	AttackMelee  AttackType = "melee"
	AttackRanged AttackType = "ranged"
	AttackReach  AttackType = "reach"
	AttackSpell  AttackType = "spell"
)

// Dice describes an NdS roll
type Dice struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
}

// OrDefault returns d, or 1d6 when unset
func (d Dice) OrDefault() Dice {
	if d.Count < 1 || d.Sides < 1 {
		return Dice{Count: 1, Sides: 6}
	}
	return d
}

func (d Dice) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}

// Weapon is an equipped weapon reference
type Weapon struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Range       AttackType `json:"range"`
	Damage      Dice       `json:"damage"`
	HitBonus    int        `json:"hit_bonus"`
	DamageBonus int        `json:"damage_bonus"`
}

// AttackType returns the weapon's attack type, melee when unset
func (w *Weapon) AttackType() AttackType {
	if w == nil || w.Range == "" {
		return AttackMelee
	}
	return w.Range
}

// Armor is an equipped armor reference
type Armor struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	ArmorBonus int    `json:"armor_bonus"`
}

// Shield is an equipped shield reference
type Shield struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	ShieldBonus int    `json:"shield_bonus"`
}

// Equipment holds the references combat reads
type Equipment struct {
	Weapon *Weapon `json:"weapon,omitempty"`
	Armor  *Armor  `json:"armor,omitempty"`
	Shield *Shield `json:"shield,omitempty"`
}

// AttackType returns the attack type of the wielded weapon, melee when unarmed
func (e Equipment) AttackType() AttackType {
	return e.Weapon.AttackType()
}

func (e Equipment) ArmorBonus() int {
	if e.Armor == nil {
		return 0
	}
	return e.Armor.ArmorBonus
}

func (e Equipment) ShieldBonus() int {
	if e.Shield == nil {
		return 0
	}
	return e.Shield.ShieldBonus
}
