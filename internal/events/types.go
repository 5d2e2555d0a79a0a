package events

import (
	"time"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
)

// EventType names a combat notification
type EventType string

const (
	EventTypeCombatStarted         EventType = "combat_started"
	EventTypeCharacterUpdated      EventType = "character_updated"
	EventTypeCharacterDisconnected EventType = "character_disconnected"
	EventTypeCombatEnded           EventType = "combat_ended"
	EventTypePartyDefeated         EventType = "party_defeated"
)

// AllEventTypes lists every type the encounter emits
var AllEventTypes = []EventType{
	EventTypeCombatStarted,
	EventTypeCharacterUpdated,
	EventTypeCharacterDisconnected,
	EventTypeCombatEnded,
	EventTypePartyDefeated,
}

// Priority levels for listener ordering, lower runs first
const (
	PriorityPersistence = 100
	PriorityArchive     = 200
	PriorityRelay       = 300
)

// Event is a combat notification. Only the fields relevant to Type are set.
type Event struct {
	Type       EventType
	SessionID  string
	Round      int
	Wave       int
	OccurredAt time.Time

	// Combatant is set for character_updated and character_disconnected
	Combatant *combat.Combatant
	// Combatants and Surprise are set for combat_started
	Combatants []*combat.Combatant
	Surprise   combat.Side
	// Outcome is set for combat_ended and party_defeated
	Outcome *combat.Outcome
}
