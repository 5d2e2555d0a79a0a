package combat

// ConditionKey names a condition
type ConditionKey string

const (
	// ConditionConfused is applied permanently by a successful escape and blocks further escapes.
	ConditionConfused  ConditionKey = "confused"
	ConditionBlessed   ConditionKey = "blessed"
	ConditionShielded  ConditionKey = "shielded"
	ConditionConcealed ConditionKey = "concealed"
	ConditionAsleep    ConditionKey = "asleep"
)

// Permanent marks a condition that never expires
const Permanent = -1

// Condition is a status effect carried by a combatant
type Condition struct {
	Key         ConditionKey `json:"key"`
	RoundsLeft  int          `json:"rounds_left"`
	ACBonus     int          `json:"ac_bonus,omitempty"`
	AttackBonus int          `json:"attack_bonus,omitempty"`
}

// IsPermanent reports whether the condition never ticks down
func (c *Condition) IsPermanent() bool {
	return c.RoundsLeft == Permanent
}

// HasCondition reports whether the combatant carries the condition
func (c *Combatant) HasCondition(key ConditionKey) bool {
	return c.Condition(key) != nil
}

// Condition returns the named condition or nil
func (c *Combatant) Condition(key ConditionKey) *Condition {
	for _, cond := range c.Conditions {
		if cond.Key == key {
			return cond
		}
	}
	return nil
}

// AddCondition applies a condition. Reapplying keeps the longer duration.
func (c *Combatant) AddCondition(cond *Condition) {
	if existing := c.Condition(cond.Key); existing != nil {
		if existing.IsPermanent() {
			return
		}
		if cond.IsPermanent() || cond.RoundsLeft > existing.RoundsLeft {
			existing.RoundsLeft = cond.RoundsLeft
		}
		existing.ACBonus = cond.ACBonus
		existing.AttackBonus = cond.AttackBonus
		return
	}
	c.Conditions = append(c.Conditions, cond)
}

// RemoveCondition drops the named condition
func (c *Combatant) RemoveCondition(key ConditionKey) bool {
	for i, cond := range c.Conditions {
		if cond.Key == key {
			c.Conditions = append(c.Conditions[:i], c.Conditions[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTimedConditions strips every non-permanent condition and returns their keys
func (c *Combatant) RemoveTimedConditions() []ConditionKey {
	var removed []ConditionKey
	kept := c.Conditions[:0]
	for _, cond := range c.Conditions {
		if cond.IsPermanent() {
			kept = append(kept, cond)
			continue
		}
		removed = append(removed, cond.Key)
	}
	c.Conditions = kept
	return removed
}

// TickConditions counts timed conditions down by one round and returns the expired keys
func (c *Combatant) TickConditions() []ConditionKey {
	var expired []ConditionKey
	kept := c.Conditions[:0]
	for _, cond := range c.Conditions {
		if !cond.IsPermanent() {
			cond.RoundsLeft--
			if cond.RoundsLeft <= 0 {
				expired = append(expired, cond.Key)
				continue
			}
		}
		kept = append(kept, cond)
	}
	c.Conditions = kept
	return expired
}

// ConditionACBonus sums armor bonuses granted by conditions
func (c *Combatant) ConditionACBonus() int {
	total := 0
	for _, cond := range c.Conditions {
		total += cond.ACBonus
	}
	return total
}

// ConditionAttackBonus sums attack bonuses granted by conditions
func (c *Combatant) ConditionAttackBonus() int {
	total := 0
	for _, cond := range c.Conditions {
		total += cond.AttackBonus
	}
	return total
}
