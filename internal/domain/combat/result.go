package combat

// Validation failure reasons surfaced in ActionResult.Reason
const (
	ReasonNotAccepting      = "session is not accepting actions"
	ReasonMissingType       = "action type is required"
	ReasonUnknownType       = "unknown action type"
	ReasonMissingActor      = "actor is required"
	ReasonActorNotActive    = "actor is not an active combatant"
	ReasonActorDown         = "actor cannot act"
	ReasonNotYourTurn       = "it is not this combatant's turn"
	ReasonMissingTarget     = "target is required"
	ReasonTargetNotActive   = "target is not an active combatant"
	ReasonTargetDead        = "target is already dead"
	ReasonIllegalPosition   = "attack not possible from this position"
	ReasonMissingSpell      = "spell is required"
	ReasonSpellNotMemorized = "spell is not memorized"
	ReasonSpellsUnavailable = "spell system is not ready"
	ReasonMissingItem       = "item is required"
	ReasonConfused          = "confused characters cannot escape"
	ReasonNoTargetForEffect = "spell effect needs a target"
	ReasonNotPartyMember    = "only party members can be resurrected"
)

// EffectOutcome is the variant specific result of a spell effect
type EffectOutcome struct {
	Effect    Effect         `json:"effect"`
	Message   string         `json:"message"`
	Amount    int            `json:"amount,omitempty"`
	Condition ConditionKey   `json:"condition,omitempty"`
	Resisted  bool           `json:"resisted,omitempty"`
	Destroyed bool           `json:"destroyed,omitempty"`
	Revived   bool           `json:"revived,omitempty"`
	Removed   []ConditionKey `json:"removed,omitempty"`
}

// ActionResult is the tagged outcome of one action. Success false with a
// Reason is a validation failure and leaves the session untouched.
type ActionResult struct {
	Type     ActionType `json:"type"`
	Success  bool       `json:"success"`
	Reason   string     `json:"reason,omitempty"`
	Message  string     `json:"message,omitempty"`
	ActorID  string     `json:"actor_id,omitempty"`
	TargetID string     `json:"target_id,omitempty"`

	Hit          bool   `json:"hit,omitempty"`
	Critical     bool   `json:"critical,omitempty"`
	InstantKill  bool   `json:"instant_kill,omitempty"`
	AttackRoll   int    `json:"attack_roll,omitempty"`
	ArmorClass   int    `json:"armor_class,omitempty"`
	ConfirmRoll  int    `json:"confirm_roll,omitempty"`
	Damage       int    `json:"damage,omitempty"`
	TargetStatus Status `json:"target_status,omitempty"`

	SpellChance int            `json:"spell_chance,omitempty"`
	SpellCast   bool           `json:"spell_cast,omitempty"`
	Effect      *EffectOutcome `json:"effect,omitempty"`

	Blocked     bool          `json:"blocked,omitempty"`
	Escaped     bool          `json:"escaped,omitempty"`
	Retaliation *ActionResult `json:"retaliation,omitempty"`
}

// Invalid builds a validation failure
func Invalid(actionType ActionType, reason string) *ActionResult {
	return &ActionResult{Type: actionType, Success: false, Reason: reason}
}

// OutcomeKind classifies how combat ended
type OutcomeKind string

const (
	OutcomeVictory       OutcomeKind = "victory"
	OutcomePartialDefeat OutcomeKind = "partial_defeat"
	OutcomeTotalDefeat   OutcomeKind = "total_defeat"
	// OutcomeUnusual covers endings with living party members on a defeat path,
	// or an ending with both sides still standing.
	OutcomeUnusual OutcomeKind = "unusual"
)

// IsDefeat reports whether the party lost
func (k OutcomeKind) IsDefeat() bool {
	return k == OutcomePartialDefeat || k == OutcomeTotalDefeat
}

// Rewards aggregates experience, gold and loot across all waves
type Rewards struct {
	Experience      int     `json:"experience"`
	Gold            int     `json:"gold"`
	Loot            []*Item `json:"loot"`
	DefeatedEnemies int     `json:"defeated_enemies"`
}

// Outcome is the terminal result of a session
type Outcome struct {
	SessionID    string       `json:"session_id"`
	Kind         OutcomeKind  `json:"kind"`
	Winner       Side         `json:"winner"`
	Rewards      *Rewards     `json:"rewards"`
	Disconnected []*Combatant `json:"disconnected"`
	Rounds       int          `json:"rounds"`
	WavesCleared int          `json:"waves_cleared"`
	Log          []string     `json:"log"`
}

// TurnResult is returned by every processed action
type TurnResult struct {
	Result       *ActionResult
	NextActor    *Combatant
	WaveAdvanced bool
	CombatEnded  bool
	Winner       Side
	Outcome      *Outcome
}
