package terminology

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
)

// Canonical keys
const (
	KeyAttack = "action.attack"
	KeySpell  = "action.spell"
	KeyDefend = "action.defend"
	KeyItem   = "action.item"
	KeyEscape = "action.escape"

	KeyConfused    = "status.confused"
	KeyBlessed     = "status.blessed"
	KeyShielded    = "status.shielded"
	KeyConcealed   = "status.concealed"
	KeyAsleep      = "status.asleep"
	KeyUnconscious = "status.unconscious"
	KeyDead        = "status.dead"

	KeyDisconnected = "log.disconnected"
	KeySurprise     = "log.surprise"

	KeyVictory       = "outcome.victory"
	KeyPartialDefeat = "outcome.partial_defeat"
	KeyTotalDefeat   = "outcome.total_defeat"
	KeyUnusual       = "outcome.unusual"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		KeyAttack:        "Attack",
		KeySpell:         "Cast Spell",
		KeyDefend:        "Defend",
		KeyItem:          "Use Item",
		KeyEscape:        "Escape",
		KeyConfused:      "Confused",
		KeyBlessed:       "Blessed",
		KeyShielded:      "Shielded",
		KeyConcealed:     "Concealed",
		KeyAsleep:        "Asleep",
		KeyUnconscious:   "Unconscious",
		KeyDead:          "Dead",
		KeyDisconnected:  "left the battle",
		KeySurprise:      "Surprise!",
		KeyVictory:       "Victory",
		KeyPartialDefeat: "Defeat (some escaped)",
		KeyTotalDefeat:   "Total Defeat",
		KeyUnusual:       "Combat ended unusually",
	},
	language.German: {
		KeyAttack:        "Angriff",
		KeySpell:         "Zauber wirken",
		KeyDefend:        "Verteidigen",
		KeyItem:          "Gegenstand benutzen",
		KeyEscape:        "Flucht",
		KeyConfused:      "Verwirrt",
		KeyBlessed:       "Gesegnet",
		KeyShielded:      "Geschützt",
		KeyConcealed:     "Verborgen",
		KeyAsleep:        "Schlafend",
		KeyUnconscious:   "Bewusstlos",
		KeyDead:          "Tot",
		KeyDisconnected:  "hat den Kampf verlassen",
		KeySurprise:      "Überraschung!",
		KeyVictory:       "Sieg",
		KeyPartialDefeat: "Niederlage (einige entkamen)",
		KeyTotalDefeat:   "Vernichtende Niederlage",
		KeyUnusual:       "Der Kampf endete ungewöhnlich",
	},
}

// Provider resolves display strings from a message catalog
type Provider struct {
	tag     language.Tag
	printer *message.Printer
}

// NewProvider builds a provider for a BCP 47 locale. Unsupported locales
// fall back to English.
func NewProvider(locale string) (*Provider, error) {
	requested, err := language.Parse(locale)
	if err != nil {
		return nil, combaterr.InvalidArgumentf("invalid locale %q", locale).WithMeta("locale", locale)
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, text := range entries {
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, combaterr.Wrapf(err, "failed to register %s for %s", key, tag)
			}
		}
	}

	supported := builder.Languages()
	tag := language.English
	if _, index, confidence := language.NewMatcher(supported).Match(requested); confidence != language.No {
		tag = supported[index]
	}

	return &Provider{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// Default returns the English provider
func Default() *Provider {
	p, err := NewProvider("en")
	if err != nil {
		panic(err)
	}
	return p
}

// Language returns the matched catalog language
func (p *Provider) Language() language.Tag {
	return p.tag
}

// Term returns the display string for key, or the key itself when unknown
func (p *Provider) Term(key string) string {
	return p.printer.Sprintf(key)
}

// ConditionKey maps a condition to its status key
func ConditionKey(key combat.ConditionKey) string {
	return "status." + string(key)
}

// OutcomeKey maps an outcome kind to its key
func OutcomeKey(kind combat.OutcomeKind) string {
	return "outcome." + string(kind)
}
