package combat

// TurnEntry is one slot in the turn order, rebuilt every wave
type TurnEntry struct {
	Combatant  *Combatant
	Initiative int
	Side       Side
}

// Phase is the state of a combat session
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseInitializing    Phase = "initializing"
	PhaseSurpriseRound   Phase = "surprise_round"
	PhaseActionSelection Phase = "action_selection"
	PhaseResolution      Phase = "resolution"
	PhaseWaveCleared     Phase = "wave_cleared"
	PhaseEnded           Phase = "ended"
)

// AcceptsActions reports whether actions may be submitted in this phase
func (p Phase) AcceptsActions() bool {
	return p == PhaseActionSelection || p == PhaseSurpriseRound
}

// SurpriseMode overrides the surprise check at start
type SurpriseMode string

const (
	SurpriseAuto    SurpriseMode = ""
	SurpriseNone    SurpriseMode = "none"
	SurpriseParty   SurpriseMode = "party"
	SurpriseEnemies SurpriseMode = "enemies"
)

// Group is a named cluster of enemies inside a wave
type Group struct {
	Name    string       `json:"name"`
	Members []*Combatant `json:"members"`
}

// Wave is one sequential enemy group set of an encounter
type Wave struct {
	Groups []*Group `json:"groups"`
}

// NewWave builds a single-group wave
func NewWave(name string, members ...*Combatant) *Wave {
	return &Wave{Groups: []*Group{{Name: name, Members: members}}}
}

// Enemies flattens the wave in group order
func (w *Wave) Enemies() []*Combatant {
	var out []*Combatant
	for _, g := range w.Groups {
		out = append(out, g.Members...)
	}
	return out
}
