package dice

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller with a seeded math/rand source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller that replays the same sequence for a seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	raw := 0
	for i := 0; i < count; i++ {
		rolls[i] = r.rng.Intn(sides) + 1
		raw += rolls[i]
	}

	return &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}, nil
}
