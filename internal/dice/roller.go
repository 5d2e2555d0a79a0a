package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject scripted implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Sum of dice without bonus
}

// D20 rolls a single twenty sided die
func D20(r Roller) (int, error) {
	return single(r, 20)
}

// D6 rolls a single six sided die
func D6(r Roller) (int, error) {
	return single(r, 6)
}

// Percent rolls 1..100
func Percent(r Roller) (int, error) {
	return single(r, 100)
}

// Chance reports whether a percentile roll lands at or under percent.
// No die is rolled when the outcome is already certain.
func Chance(r Roller, percent int) (bool, error) {
	if percent <= 0 {
		return false, nil
	}
	if percent >= 100 {
		return true, nil
	}
	roll, err := Percent(r)
	if err != nil {
		return false, err
	}
	return roll <= percent, nil
}

// Pick returns a uniformly random index in [0, n)
func Pick(r Roller, n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}
	roll, err := single(r, n)
	if err != nil {
		return 0, err
	}
	return roll - 1, nil
}

func single(r Roller, sides int) (int, error) {
	result, err := r.Roll(1, sides, 0)
	if err != nil {
		return 0, err
	}
	return result.RawTotal, nil
}
