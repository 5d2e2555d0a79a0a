// Package discord relays combat notifications to a Discord channel.
package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/events"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
	"github.com/KirkDiggler/dungeon-combat/internal/services/terminology"
)

//go:generate mockgen -destination=mock/mock_sender.go -package=mockdiscord -source=notifier.go

// Sender is the slice of *discordgo.Session the notifier uses
type Sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

const (
	colorActive  = 0xe74c3c
	colorVictory = 0x2ecc71
	colorDefeat  = 0x95a5a6
	colorUnusual = 0xf1c40f
)

// Notifier posts combat progress to one channel
type Notifier struct {
	sender    Sender
	channelID string
	terms     interfaces.TerminologyProvider
}

// NotifierConfig holds configuration for the notifier
type NotifierConfig struct {
	Sender    Sender
	ChannelID string
	// Terminology is optional; English is used without it
	Terminology interfaces.TerminologyProvider
}

// NewNotifier creates a notifier
func NewNotifier(cfg *NotifierConfig) *Notifier {
	if cfg == nil || cfg.Sender == nil {
		panic("discord sender is required")
	}
	if cfg.ChannelID == "" {
		panic("discord channel is required")
	}

	terms := cfg.Terminology
	if terms == nil {
		terms = terminology.Default()
	}

	return &Notifier{
		sender:    cfg.Sender,
		channelID: cfg.ChannelID,
		terms:     terms,
	}
}

// Register subscribes the notifier to the events it relays
func (n *Notifier) Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypeCombatStarted, n)
	bus.Subscribe(events.EventTypeCharacterUpdated, n)
	bus.Subscribe(events.EventTypeCharacterDisconnected, n)
	bus.Subscribe(events.EventTypeCombatEnded, n)
}

func (n *Notifier) HandleEvent(event *events.Event) error {
	message := n.render(event)
	if message == nil {
		return nil
	}

	if _, err := n.sender.ChannelMessageSendComplex(n.channelID, message); err != nil {
		return combaterr.WrapWithCode(err, combaterr.CodeUnavailable, "failed to send combat notification").
			WithMeta("event", string(event.Type))
	}
	return nil
}

func (n *Notifier) Priority() int { return events.PriorityRelay }
func (n *Notifier) ID() string    { return "discord-notifier" }

// render builds the message for an event, nil when nothing should be posted
func (n *Notifier) render(event *events.Event) *discordgo.MessageSend {
	switch event.Type {
	case events.EventTypeCombatStarted:
		return &discordgo.MessageSend{Embed: n.startedEmbed(event)}
	case events.EventTypeCharacterUpdated:
		c := event.Combatant
		if c == nil || c.IsAlive() {
			return nil
		}
		key := terminology.KeyUnconscious
		if c.IsDead() {
			key = terminology.KeyDead
		}
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("💀 Round %d: **%s** is %s", event.Round, c.Name, n.terms.Term(key)),
		}
	case events.EventTypeCharacterDisconnected:
		if event.Combatant == nil {
			return nil
		}
		return &discordgo.MessageSend{
			Content: fmt.Sprintf("🏃 Round %d: **%s** %s", event.Round, event.Combatant.Name, n.terms.Term(terminology.KeyDisconnected)),
		}
	case events.EventTypeCombatEnded:
		if event.Outcome == nil {
			return nil
		}
		return &discordgo.MessageSend{Embed: n.endedEmbed(event.Outcome)}
	}
	return nil
}

func (n *Notifier) startedEmbed(event *events.Event) *discordgo.MessageEmbed {
	var party, enemies strings.Builder
	for _, c := range event.Combatants {
		line := fmt.Sprintf("• **%s** HP: %d/%d\n", c.Name, c.HP, c.MaxHP)
		if c.IsPlayer() {
			party.WriteString(line)
		} else {
			enemies.WriteString(line)
		}
	}

	description := fmt.Sprintf("Wave %d", event.Wave)
	if event.Surprise != combat.SideNone {
		description = fmt.Sprintf("%s (%s %s)", description, n.terms.Term(terminology.KeySurprise), event.Surprise)
	}

	return &discordgo.MessageEmbed{
		Title:       "⚔️ Combat begins",
		Description: description,
		Color:       colorActive,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Party", Value: orNone(party.String()), Inline: true},
			{Name: "Enemies", Value: orNone(enemies.String()), Inline: true},
		},
	}
}

func (n *Notifier) endedEmbed(outcome *combat.Outcome) *discordgo.MessageEmbed {
	color := colorUnusual
	switch {
	case outcome.Kind == combat.OutcomeVictory:
		color = colorVictory
	case outcome.Kind.IsDefeat():
		color = colorDefeat
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Rounds", Value: fmt.Sprintf("%d", outcome.Rounds), Inline: true},
		{Name: "Waves cleared", Value: fmt.Sprintf("%d", outcome.WavesCleared), Inline: true},
	}
	if r := outcome.Rewards; r != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Rewards",
			Value:  fmt.Sprintf("%d XP, %d gold, %d items", r.Experience, r.Gold, len(r.Loot)),
			Inline: false,
		})
	}
	if len(outcome.Disconnected) > 0 {
		names := make([]string, 0, len(outcome.Disconnected))
		for _, c := range outcome.Disconnected {
			names = append(names, c.Name)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Escaped",
			Value: strings.Join(names, ", "),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "🏁 " + n.terms.Term(terminology.OutcomeKey(outcome.Kind)),
		Color:  color,
		Fields: fields,
	}
}

func orNone(value string) string {
	if value == "" {
		return "None"
	}
	return value
}
