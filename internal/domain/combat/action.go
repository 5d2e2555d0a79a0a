package combat

// ActionType tags the action variant
type ActionType string

const (
	ActionAttack ActionType = "attack"
	ActionSpell  ActionType = "spell"
	ActionDefend ActionType = "defend"
	ActionItem   ActionType = "item"
	// ActionEscape covers both fleeing and disconnecting.
	ActionEscape ActionType = "escape"
)

// ItemKind classifies an item
type ItemKind string

const (
	ItemConsumable ItemKind = "consumable"
	ItemEquipment  ItemKind = "equipment"
	ItemCurrency   ItemKind = "currency"
)

// Item is a usable or lootable item
type Item struct {
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Kind  ItemKind `json:"kind"`
	Value int      `json:"value"`
}

// Action is a submitted action. Actor and target are referenced by combatant ID.
type Action struct {
	Type     ActionType
	ActorID  string
	TargetID string
	Spell    *Spell
	Item     *Item
}

func Attack(actorID, targetID string) *Action {
	return &Action{Type: ActionAttack, ActorID: actorID, TargetID: targetID}
}

func Cast(actorID string, spell *Spell, targetID string) *Action {
	return &Action{Type: ActionSpell, ActorID: actorID, TargetID: targetID, Spell: spell}
}

func Defend(actorID string) *Action {
	return &Action{Type: ActionDefend, ActorID: actorID}
}

func UseItem(actorID string, item *Item, targetID string) *Action {
	return &Action{Type: ActionItem, ActorID: actorID, TargetID: targetID, Item: item}
}

func Escape(actorID string) *Action {
	return &Action{Type: ActionEscape, ActorID: actorID}
}
