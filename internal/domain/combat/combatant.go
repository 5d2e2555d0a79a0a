package combat

import "fmt"

// Kind discriminates the combatant union. It is fixed by the constructor.
type Kind string

const (
	KindPlayer  Kind = "player"
	KindMonster Kind = "monster"
)

// Side is the team a combatant fights for
type Side string

const (
	SideNone  Side = ""
	SideParty Side = "party"
	SideEnemy Side = "enemy"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	switch s {
	case SideParty:
		return SideEnemy
	case SideEnemy:
		return SideParty
	default:
		return SideNone
	}
}

// Status is the vitality state of a combatant
type Status string

const (
	StatusOK          Status = "ok"
	StatusUnconscious Status = "unconscious"
	StatusDead        Status = "dead"
)

// DeathThreshold is the raw hit point value at or below which a combatant dies
const DeathThreshold = -10

// Class is a player class
type Class string

const (
	ClassFighter Class = "fighter"
	ClassThief   Class = "thief"
	ClassNinja   Class = "ninja"
	ClassMage    Class = "mage"
	ClassPriest  Class = "priest"
	ClassLord    Class = "lord"
	ClassSamurai Class = "samurai"
	ClassBishop  Class = "bishop"
)

// IsWarrior reports whether the class uses the full level as attack bonus
func (c Class) IsWarrior() bool {
	switch c {
	case ClassFighter, ClassLord, ClassSamurai, ClassNinja:
		return true
	}
	return false
}

// Attributes is the six-stat block shared by players and monsters
type Attributes struct {
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Piety        int `json:"piety"`
	Vitality     int `json:"vitality"`
	Agility      int `json:"agility"`
	Luck         int `json:"luck"`
}

// Modifier converts an attribute score into a bonus: floor((score-10)/2)
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// PlayerTraits holds the player-only half of the union
type PlayerTraits struct {
	Class Class `json:"class"`
	// Memorized holds prepared spell IDs per school; duplicates are separate charges.
	Memorized map[School][]string `json:"memorized,omitempty"`
}

// MonsterTraits holds the monster-only half of the union
type MonsterTraits struct {
	ExperienceValue int      `json:"experience_value"`
	AttackBonus     int      `json:"attack_bonus"`
	DamageDice      Dice     `json:"damage_dice"`
	PreferredRow    Row      `json:"preferred_row"`
	Undead          bool     `json:"undead,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// DefaultExperienceValue is awarded for monsters without an explicit value
const DefaultExperienceValue = 10

// Experience returns the experience value, falling back to the default
func (m *MonsterTraits) Experience() int {
	if m == nil || m.ExperienceValue <= 0 {
		return DefaultExperienceValue
	}
	return m.ExperienceValue
}

// Combatant is a participant in combat. Exactly one of Player or Monster is
// set, matching Kind. Combat mutates hit points, status and conditions only.
type Combatant struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Kind       Kind           `json:"kind"`
	Level      int            `json:"level"`
	HP         int            `json:"hp"`
	MaxHP      int            `json:"max_hp"`
	Status     Status         `json:"status"`
	Attributes Attributes     `json:"attributes"`
	Equipment  Equipment      `json:"equipment"`
	Conditions []*Condition   `json:"conditions,omitempty"`
	Defending  bool           `json:"defending,omitempty"`
	Player     *PlayerTraits  `json:"player,omitempty"`
	Monster    *MonsterTraits `json:"monster,omitempty"`
}

// NewPlayer creates a player combatant at full health
func NewPlayer(id, name string, class Class, level, maxHP int, attrs Attributes) *Combatant {
	return &Combatant{
		ID:         id,
		Name:       name,
		Kind:       KindPlayer,
		Level:      level,
		HP:         maxHP,
		MaxHP:      maxHP,
		Status:     StatusOK,
		Attributes: attrs,
		Player: &PlayerTraits{
			Class:     class,
			Memorized: make(map[School][]string),
		},
	}
}

// NewMonster creates a monster combatant at full health
func NewMonster(id, name string, level, maxHP int, attrs Attributes, traits MonsterTraits) *Combatant {
	return &Combatant{
		ID:         id,
		Name:       name,
		Kind:       KindMonster,
		Level:      level,
		HP:         maxHP,
		MaxHP:      maxHP,
		Status:     StatusOK,
		Attributes: attrs,
		Monster:    &traits,
	}
}

func (c *Combatant) String() string {
	return fmt.Sprintf("%s(%s)", c.Name, c.ID)
}

// IsPlayer reports whether the combatant is the player half of the union
func (c *Combatant) IsPlayer() bool {
	return c.Kind == KindPlayer
}

// Side returns the team fixed by Kind
func (c *Combatant) Side() Side {
	if c.Kind == KindPlayer {
		return SideParty
	}
	return SideEnemy
}

// Class returns the player class, empty for monsters
func (c *Combatant) Class() Class {
	if c.Player == nil {
		return ""
	}
	return c.Player.Class
}

// IsAlive is the combat "alive" flag: conscious with hit points left
func (c *Combatant) IsAlive() bool {
	return c.Status == StatusOK && c.HP > 0
}

// IsDead reports permanent death
func (c *Combatant) IsDead() bool {
	return c.Status == StatusDead
}

// ApplyDamage reduces hit points. Raw hit points at or below DeathThreshold
// kill; otherwise zero hit points knock the combatant unconscious. Stored hit
// points never drop below zero.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.HP
	raw := c.HP - amount
	if raw <= DeathThreshold {
		c.Status = StatusDead
	}
	if raw < 0 {
		raw = 0
	}
	c.HP = raw
	if c.HP == 0 && c.Status != StatusDead {
		c.Status = StatusUnconscious
	}
	return before - c.HP
}

// Heal restores hit points up to MaxHP, reviving an unconscious combatant.
// The dead are not healed.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 || c.Status == StatusDead {
		return 0
	}
	before := c.HP
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	if c.HP > 0 && c.Status == StatusUnconscious {
		c.Status = StatusOK
	}
	return c.HP - before
}

// Kill forces zero hit points and death
func (c *Combatant) Kill() {
	c.HP = 0
	c.Status = StatusDead
}

// KnockOut forces zero hit points and unconsciousness
func (c *Combatant) KnockOut() {
	c.HP = 0
	if c.Status != StatusDead {
		c.Status = StatusUnconscious
	}
}

// Revive restores a fallen combatant to the given hit points
func (c *Combatant) Revive(hp int) {
	if hp < 1 {
		hp = 1
	}
	if hp > c.MaxHP {
		hp = c.MaxHP
	}
	c.HP = hp
	c.Status = StatusOK
}

// HasMemorized reports whether a charge of the spell is prepared
func (c *Combatant) HasMemorized(spell *Spell) bool {
	if c.Player == nil || spell == nil {
		return false
	}
	for _, id := range c.Player.Memorized[spell.School] {
		if id == spell.ID {
			return true
		}
	}
	return false
}

// Memorize prepares one charge of a spell
func (c *Combatant) Memorize(spell *Spell) {
	if c.Player == nil || spell == nil {
		return
	}
	if c.Player.Memorized == nil {
		c.Player.Memorized = make(map[School][]string)
	}
	c.Player.Memorized[spell.School] = append(c.Player.Memorized[spell.School], spell.ID)
}

// ConsumeMemorized removes one charge of the spell
func (c *Combatant) ConsumeMemorized(spell *Spell) bool {
	if c.Player == nil || spell == nil {
		return false
	}
	list := c.Player.Memorized[spell.School]
	for i, id := range list {
		if id == spell.ID {
			c.Player.Memorized[spell.School] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}
