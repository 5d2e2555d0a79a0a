package encounter

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/dungeon-combat/internal/dice"
	"github.com/KirkDiggler/dungeon-combat/internal/domain/combat"
	combaterr "github.com/KirkDiggler/dungeon-combat/internal/errors"
	"github.com/KirkDiggler/dungeon-combat/internal/events"
	"github.com/KirkDiggler/dungeon-combat/internal/interfaces"
	"github.com/KirkDiggler/dungeon-combat/internal/services/formation"
	"github.com/KirkDiggler/dungeon-combat/internal/services/initiative"
	"github.com/KirkDiggler/dungeon-combat/internal/services/resolver"
	"github.com/KirkDiggler/dungeon-combat/internal/services/terminology"
	"github.com/KirkDiggler/dungeon-combat/internal/services/wave"
)

const tracerName = "github.com/KirkDiggler/dungeon-combat/internal/services/encounter"

// Session is the combat state machine. It is single-writer: callers submit one
// action at a time and must not share a session across goroutines.
type Session struct {
	id string

	initiative *initiative.Engine
	resolver   *resolver.Resolver
	waves      *wave.Manager
	sink       interfaces.PersistenceSink
	bus        interfaces.NotificationBus
	terms      interfaces.TerminologyProvider
	tracer     trace.Tracer

	frontCapacity int
	backCapacity  int

	party     interfaces.PartyProvider
	phase     combat.Phase
	round     int
	turnIndex int
	turnOrder []*combat.TurnEntry
	active    []*combat.Combatant
	field     *formation.Battlefield

	// surprise holds the favored side's entries while a surprise round runs
	surprise      []*combat.TurnEntry
	surpriseIndex int
	favored       combat.Side

	disconnected []*combat.Combatant
	log          []string
	outcome      *combat.Outcome
}

// SessionConfig holds the session's collaborators. Only Roller is required.
type SessionConfig struct {
	ID          string
	Roller      dice.Roller
	Persistence interfaces.PersistenceSink
	Bus         interfaces.NotificationBus
	Loot        interfaces.LootGenerator
	Spells      interfaces.SpellEffectExecutor
	Items       interfaces.ItemEffectHandler
	Terminology interfaces.TerminologyProvider
	// FrontCapacity and BackCapacity size the party formation; zero uses the defaults
	FrontCapacity int
	BackCapacity  int
}

// NewSession creates an idle session
func NewSession(cfg *SessionConfig) *Session {
	if cfg == nil || cfg.Roller == nil {
		panic("dice roller is required")
	}

	terms := cfg.Terminology
	if terms == nil {
		terms = terminology.Default()
	}

	s := &Session{
		id: cfg.ID,
		initiative: initiative.NewEngine(&initiative.EngineConfig{
			Roller: cfg.Roller,
		}),
		resolver: resolver.New(&resolver.Config{
			Roller:      cfg.Roller,
			Spells:      cfg.Spells,
			Items:       cfg.Items,
			Persistence: cfg.Persistence,
			Bus:         cfg.Bus,
			Terminology: terms,
		}),
		waves: wave.NewManager(&wave.Config{
			Roller: cfg.Roller,
			Loot:   cfg.Loot,
		}),
		sink:          cfg.Persistence,
		bus:           cfg.Bus,
		terms:         terms,
		tracer:        otel.Tracer(tracerName),
		frontCapacity: cfg.FrontCapacity,
		backCapacity:  cfg.BackCapacity,
		phase:         combat.PhaseIdle,
	}
	if s.frontCapacity <= 0 {
		s.frontCapacity = formation.DefaultFrontCapacity
	}
	if s.backCapacity <= 0 {
		s.backCapacity = formation.DefaultBackCapacity
	}
	return s
}

// Options tunes a single Start
type Options struct {
	// Surprise overrides the surprise check; the zero value rolls for it
	Surprise combat.SurpriseMode
}

// ID returns the session ID
func (s *Session) ID() string { return s.id }

// Phase returns the current phase
func (s *Session) Phase() combat.Phase { return s.phase }

// Round returns the round counter; the surprise round is round 0
func (s *Session) Round() int { return s.round }

// WaveNumber is the 1-based active wave
func (s *Session) WaveNumber() int { return s.waves.Number() }

// Waves exposes the wave manager
func (s *Session) Waves() *wave.Manager { return s.waves }

// Battlefield returns both formations of the active wave
func (s *Session) Battlefield() *formation.Battlefield { return s.field }

// Outcome returns the terminal outcome of the last combat, nil before one ends
func (s *Session) Outcome() *combat.Outcome { return s.outcome }

// SurpriseSide is the favored side while a surprise round runs
func (s *Session) SurpriseSide() combat.Side { return s.favored }

// Active returns the active combatants; escaped combatants are excluded
func (s *Session) Active() []*combat.Combatant {
	out := make([]*combat.Combatant, len(s.active))
	copy(out, s.active)
	return out
}

// TurnOrder returns the turn order of the active wave
func (s *Session) TurnOrder() []*combat.TurnEntry {
	out := make([]*combat.TurnEntry, len(s.turnOrder))
	copy(out, s.turnOrder)
	return out
}

// Disconnected returns the combatants that escaped, in order
func (s *Session) Disconnected() []*combat.Combatant {
	out := make([]*combat.Combatant, len(s.disconnected))
	copy(out, s.disconnected)
	return out
}

// Log returns the append-only combat log
func (s *Session) Log() []string {
	out := make([]string, len(s.log))
	copy(out, s.log)
	return out
}

// Start begins combat with the party's living members against the first wave
// and returns the first actor.
func (s *Session) Start(ctx context.Context, party interfaces.PartyProvider, waves []*combat.Wave, opts *Options) (*combat.Combatant, error) {
	if s.phase != combat.PhaseIdle {
		return nil, combaterr.FailedPreconditionf("session %s is already in phase %s", s.id, s.phase)
	}
	if party == nil {
		return nil, combaterr.InvalidArgument("party is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	members := party.LivingMembers()
	if len(members) == 0 {
		return nil, combaterr.Validationf("party has no living members")
	}
	if err := s.waves.Load(waves); err != nil {
		return nil, err
	}

	s.reset()
	s.party = party
	s.phase = combat.PhaseInitializing

	first, err := s.begin(ctx, members, opts)
	if err != nil {
		s.reset()
		s.phase = combat.PhaseIdle
		return nil, err
	}
	return first, nil
}

func (s *Session) begin(ctx context.Context, members []*combat.Combatant, opts *Options) (*combat.Combatant, error) {
	current := s.waves.Current()
	if err := s.arrange(members, current); err != nil {
		return nil, err
	}

	var surprise *initiative.Surprise
	if opts.Surprise == combat.SurpriseAuto {
		checked, err := s.initiative.CheckSurprise(members, current.Enemies())
		if err != nil {
			return nil, err
		}
		surprise = checked
	} else {
		surprise = initiative.Forced(opts.Surprise)
	}

	if err := s.rollInitiative(); err != nil {
		return nil, err
	}

	if surprise.Triggered {
		s.favored = surprise.Favored
		for _, entry := range s.turnOrder {
			if entry.Side == s.favored {
				s.surprise = append(s.surprise, entry)
			}
		}
		s.round = 0
		s.phase = combat.PhaseSurpriseRound
		s.appendLog(fmt.Sprintf("%s %s", s.terms.Term(terminology.KeySurprise), sideName(s.favored)))
	} else {
		s.round = 1
		s.phase = combat.PhaseActionSelection
	}

	s.appendLog(fmt.Sprintf("Combat begins: %d combatants, wave 1 of %d", len(s.active), s.waves.Count()))
	s.publish(&events.Event{
		Type:       events.EventTypeCombatStarted,
		Combatants: s.Active(),
		Surprise:   s.favored,
	})

	return s.CurrentActor(), nil
}

// arrange places the members and the wave's enemies and makes them active
func (s *Session) arrange(members []*combat.Combatant, w *combat.Wave) error {
	partyFormation := formation.New(s.frontCapacity, s.backCapacity)
	if err := partyFormation.Arrange(members); err != nil {
		return err
	}
	if err := partyFormation.Validate(); err != nil {
		return err
	}

	enemyFormation := formation.NewEnemyFormation(w, s.frontCapacity, s.backCapacity)
	if err := enemyFormation.Validate(); err != nil {
		return err
	}

	s.field = &formation.Battlefield{Party: partyFormation, Enemy: enemyFormation}
	s.active = append(append([]*combat.Combatant{}, members...), w.Enemies()...)
	return nil
}

// rollInitiative rebuilds the turn order. It runs exactly once per wave.
func (s *Session) rollInitiative() error {
	order, err := s.initiative.Order(s.active)
	if err != nil {
		return err
	}
	s.turnOrder = order
	s.turnIndex = 0
	return nil
}

// CurrentActor returns the combatant whose turn it is, or nil when no one can
// act. Down combatants are skipped and passing the end of the order starts a
// new round. Repeated calls without an action return the same combatant.
func (s *Session) CurrentActor() *combat.Combatant {
	if !s.phase.AcceptsActions() {
		return nil
	}

	if s.phase == combat.PhaseSurpriseRound {
		for s.surpriseIndex < len(s.surprise) {
			entry := s.surprise[s.surpriseIndex]
			if entry.Combatant.IsAlive() {
				return entry.Combatant
			}
			s.surpriseIndex++
		}
		s.endSurprise()
	}

	n := len(s.turnOrder)
	for i := 0; i < n; i++ {
		j := s.turnIndex + i
		if j >= n {
			j -= n
		}
		if s.turnOrder[j].Combatant.IsAlive() {
			if j < s.turnIndex {
				s.round++
			}
			s.turnIndex = j
			return s.turnOrder[j].Combatant
		}
	}
	return nil
}

func (s *Session) endSurprise() {
	s.surprise = nil
	s.surpriseIndex = 0
	s.favored = combat.SideNone
	s.turnIndex = 0
	s.round = 1
	if s.phase == combat.PhaseSurpriseRound {
		s.phase = combat.PhaseActionSelection
	}
}

// ProcessAction validates and resolves one action from the current actor.
// Validation failures are reported in the result and change nothing. The
// returned error is reserved for dice failures.
func (s *Session) ProcessAction(ctx context.Context, action *combat.Action) (*combat.TurnResult, error) {
	ctx, span := s.tracer.Start(ctx, "encounter.ProcessAction", trace.WithAttributes(
		attribute.String("session.id", s.id),
	))
	defer span.End()

	if action != nil {
		span.SetAttributes(
			attribute.String("action.type", string(action.Type)),
			attribute.String("action.actor", action.ActorID),
			attribute.String("action.target", action.TargetID),
		)
	}

	if reason := s.validate(action); reason != "" {
		var actionType combat.ActionType
		if action != nil {
			actionType = action.Type
		}
		span.SetAttributes(attribute.String("action.rejected", reason))
		return s.rejected(combat.Invalid(actionType, reason)), nil
	}

	if invalid := s.resolver.Validate(s.state(), action); invalid != nil {
		span.SetAttributes(attribute.String("action.rejected", invalid.Reason))
		return s.rejected(invalid), nil
	}

	acceptPhase := s.phase
	actor := s.find(action.ActorID)
	s.phase = combat.PhaseResolution

	var result *combat.ActionResult
	if actor.HasCondition(combat.ConditionAsleep) && action.Type != combat.ActionEscape {
		result = &combat.ActionResult{
			Type:    action.Type,
			Success: true,
			ActorID: actor.ID,
			Message: fmt.Sprintf("%s is %s", actor.Name, s.terms.Term(terminology.KeyAsleep)),
		}
	} else {
		resolved, err := s.resolver.Resolve(ctx, s.state(), action)
		if err != nil {
			s.phase = acceptPhase
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		result = resolved
	}

	if !result.Success && result.Reason != "" && !result.Blocked {
		s.phase = acceptPhase
		span.SetAttributes(attribute.String("action.rejected", result.Reason))
		return s.rejected(result), nil
	}

	s.appendLog(result.Message)

	if action.Type == combat.ActionEscape {
		if result.Escaped {
			s.disconnect(ctx, actor)
		}
	} else {
		s.consumeTurn(actor, acceptPhase)
	}
	s.phase = acceptPhase

	turn, err := s.progress(ctx, result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Bool("combat.ended", turn.CombatEnded))
	return turn, nil
}

// validate performs the checks common to every action type
func (s *Session) validate(action *combat.Action) string {
	if !s.phase.AcceptsActions() {
		return combat.ReasonNotAccepting
	}
	if action == nil || action.Type == "" {
		return combat.ReasonMissingType
	}
	if action.ActorID == "" {
		return combat.ReasonMissingActor
	}
	actor := s.find(action.ActorID)
	if actor == nil {
		return combat.ReasonActorNotActive
	}
	if !actor.IsAlive() {
		return combat.ReasonActorDown
	}
	if current := s.CurrentActor(); current == nil || current.ID != actor.ID {
		return combat.ReasonNotYourTurn
	}
	return ""
}

func (s *Session) rejected(result *combat.ActionResult) *combat.TurnResult {
	return &combat.TurnResult{
		Result:    result,
		NextActor: s.CurrentActor(),
	}
}

// consumeTurn ends the actor's turn: timed conditions tick and the index moves
// on. phase is the phase the action was accepted in.
func (s *Session) consumeTurn(actor *combat.Combatant, phase combat.Phase) {
	if expired := actor.TickConditions(); len(expired) > 0 {
		for _, key := range expired {
			s.appendLog(fmt.Sprintf("%s is no longer %s", actor.Name, s.terms.Term(terminology.ConditionKey(key))))
		}
	}

	if phase == combat.PhaseSurpriseRound {
		s.surpriseIndex++
		return
	}

	s.turnIndex++
	if s.turnIndex >= len(s.turnOrder) {
		s.turnIndex = 0
		s.round++
	}
}

// disconnect removes an escaped combatant from the active list, the turn
// order and the battlefield. Party membership is untouched.
func (s *Session) disconnect(ctx context.Context, c *combat.Combatant) {
	s.active = removeCombatant(s.active, c.ID)

	for i, entry := range s.turnOrder {
		if entry.Combatant.ID != c.ID {
			continue
		}
		s.turnOrder = append(s.turnOrder[:i], s.turnOrder[i+1:]...)
		if i < s.turnIndex {
			s.turnIndex--
		}
		if s.turnIndex >= len(s.turnOrder) && len(s.turnOrder) > 0 {
			s.turnIndex = 0
			s.round++
		}
		break
	}
	for i, entry := range s.surprise {
		if entry.Combatant.ID != c.ID {
			continue
		}
		s.surprise = append(s.surprise[:i], s.surprise[i+1:]...)
		if i < s.surpriseIndex {
			s.surpriseIndex--
		}
		break
	}

	if s.field != nil {
		s.field.Remove(c)
	}
	if !c.IsPlayer() {
		s.waves.MarkEscaped(c.ID)
	}
	s.disconnected = append(s.disconnected, c)

	if c.IsPlayer() {
		if outer, ok := s.party.(interfaces.PhaseOuter); ok {
			if err := outer.PhaseOut(c.ID); err != nil {
				log.Printf("Encounter: failed to phase out %s: %v", c.ID, err)
			}
		}
	}

	s.persist(ctx, c)
	s.publish(&events.Event{
		Type:      events.EventTypeCharacterDisconnected,
		Combatant: c,
	})
}

// progress checks for a party wipe, a cleared wave or a stalled turn order
func (s *Session) progress(ctx context.Context, result *combat.ActionResult) (*combat.TurnResult, error) {
	turn := &combat.TurnResult{Result: result}

	if s.standingParty() == 0 {
		return s.finish(ctx, turn, false)
	}

	if s.waves.IsCurrentWaveDefeated() {
		s.phase = combat.PhaseWaveCleared
		s.appendLog(fmt.Sprintf("Wave %d cleared", s.waves.Number()))

		next := s.waves.AdvanceWave()
		if next == nil {
			return s.finish(ctx, turn, true)
		}
		if err := s.nextWave(ctx, next); err != nil {
			return nil, err
		}
		turn.WaveAdvanced = true
	}

	turn.NextActor = s.CurrentActor()
	if turn.NextActor == nil {
		return s.finish(ctx, turn, false)
	}
	return turn, nil
}

// nextWave repopulates the active list with the standing party and the next
// wave, then re-sorts the turn order
func (s *Session) nextWave(ctx context.Context, next *combat.Wave) error {
	var survivors []*combat.Combatant
	for _, c := range s.active {
		if c.IsPlayer() && c.IsAlive() {
			survivors = append(survivors, c)
		}
	}

	s.persistAll(ctx, s.active)

	if err := s.arrange(survivors, next); err != nil {
		return err
	}
	if err := s.rollInitiative(); err != nil {
		return err
	}
	s.surprise = nil
	s.surpriseIndex = 0
	s.favored = combat.SideNone
	s.round = 1
	s.phase = combat.PhaseActionSelection
	s.appendLog(fmt.Sprintf("Wave %d of %d begins", s.waves.Number(), s.waves.Count()))
	return nil
}

func (s *Session) finish(ctx context.Context, turn *combat.TurnResult, victory bool) (*combat.TurnResult, error) {
	outcome, err := s.end(ctx, victory)
	if err != nil {
		return nil, err
	}
	turn.CombatEnded = true
	turn.Winner = outcome.Winner
	turn.Outcome = outcome
	turn.NextActor = nil
	return turn, nil
}

// EndCombat ends an active combat early. Rewards cover the enemies defeated so far.
func (s *Session) EndCombat(ctx context.Context) (*combat.Outcome, error) {
	if s.phase == combat.PhaseIdle || s.phase == combat.PhaseEnded {
		return nil, combaterr.FailedPreconditionf("session %s has no active combat", s.id)
	}
	return s.end(ctx, false)
}

// end aggregates rewards, classifies the outcome, emits the terminal events
// and returns the session to idle
func (s *Session) end(ctx context.Context, victory bool) (*combat.Outcome, error) {
	rewards, err := s.waves.Rewards(ctx)
	if err != nil {
		return nil, err
	}

	kind, winner := s.classify(victory)
	s.phase = combat.PhaseEnded
	s.appendLog(s.terms.Term(terminology.OutcomeKey(kind)))

	outcome := &combat.Outcome{
		SessionID:    s.id,
		Kind:         kind,
		Winner:       winner,
		Rewards:      rewards,
		Disconnected: s.Disconnected(),
		Rounds:       s.round,
		WavesCleared: s.waves.Cleared(),
		Log:          s.Log(),
	}
	s.outcome = outcome

	s.persistAll(ctx, s.participants())
	s.publish(&events.Event{Type: events.EventTypeCombatEnded, Outcome: outcome})
	if kind.IsDefeat() {
		s.publish(&events.Event{Type: events.EventTypePartyDefeated, Outcome: outcome})
	}

	s.phase = combat.PhaseIdle
	return outcome, nil
}

// classify maps the end state to an outcome. Endings that fit neither
// victory nor a clean defeat are reported as unusual.
func (s *Session) classify(victory bool) (combat.OutcomeKind, combat.Side) {
	if victory {
		return combat.OutcomeVictory, combat.SideParty
	}
	if s.standingParty() > 0 {
		return combat.OutcomeUnusual, combat.SideNone
	}

	escaped := 0
	for _, c := range s.disconnected {
		if c.IsPlayer() {
			escaped++
		}
	}
	if escaped > 0 {
		return combat.OutcomePartialDefeat, combat.SideEnemy
	}
	if !s.reserveStanding() {
		return combat.OutcomeTotalDefeat, combat.SideEnemy
	}
	return combat.OutcomeUnusual, combat.SideNone
}

func (s *Session) standingParty() int {
	standing := 0
	for _, c := range s.active {
		if c.IsPlayer() && c.IsAlive() {
			standing++
		}
	}
	return standing
}

// reserveStanding reports whether the roster has a living member outside this fight
func (s *Session) reserveStanding() bool {
	if s.party == nil {
		return false
	}
	for _, m := range s.party.Members() {
		if !m.IsAlive() || s.find(m.ID) != nil || s.wasDisconnected(m.ID) {
			continue
		}
		return true
	}
	return false
}

func (s *Session) wasDisconnected(id string) bool {
	for _, c := range s.disconnected {
		if c.ID == id {
			return true
		}
	}
	return false
}

// participants is every combatant touched by this combat
func (s *Session) participants() []*combat.Combatant {
	out := append([]*combat.Combatant{}, s.active...)
	return append(out, s.disconnected...)
}

func (s *Session) state() *resolver.State {
	return &resolver.State{
		SessionID: s.id,
		Round:     s.round,
		Wave:      s.waves.Number(),
		Field:     s.field,
		Active:    s.active,
	}
}

func (s *Session) find(id string) *combat.Combatant {
	for _, c := range s.active {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Session) appendLog(message string) {
	if message == "" {
		return
	}
	s.log = append(s.log, fmt.Sprintf("Round %d: %s", s.round, message))
}

func (s *Session) reset() {
	s.party = nil
	s.round = 0
	s.turnIndex = 0
	s.turnOrder = nil
	s.active = nil
	s.field = nil
	s.surprise = nil
	s.surpriseIndex = 0
	s.favored = combat.SideNone
	s.disconnected = nil
	s.log = nil
	s.outcome = nil
}

func (s *Session) persist(ctx context.Context, c *combat.Combatant) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Persist(ctx, c); err != nil {
		log.Printf("Encounter: failed to persist %s: %v", c.ID, err)
	}
}

func (s *Session) publish(event *events.Event) {
	if s.bus == nil {
		return
	}
	event.SessionID = s.id
	event.Round = s.round
	event.Wave = s.waves.Number()
	event.OccurredAt = time.Now().UTC()
	if err := s.bus.Publish(event); err != nil {
		log.Printf("Encounter: failed to publish %s: %v", event.Type, err)
	}
}

func removeCombatant(list []*combat.Combatant, id string) []*combat.Combatant {
	out := list[:0]
	for _, c := range list {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func sideName(side combat.Side) string {
	if side == combat.SideParty {
		return "The party strikes first"
	}
	return "The enemies strike first"
}
