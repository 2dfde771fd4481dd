package rules

// Outcome names the rule that decided a cell's next state.
type Outcome uint8

const (
	// Unchanged means no rule matched and the cell keeps its state.
	Unchanged Outcome = iota
	// Birth: a dead cell with exactly three live neighbors comes alive.
	Birth
	// Survival: a live cell with two or three live neighbors stays alive.
	Survival
	// Underpopulation: a live cell with one or fewer live neighbors dies.
	Underpopulation
	// Overpopulation: a live cell with four or more live neighbors dies.
	Overpopulation
)

func (o Outcome) String() string {
	switch o {
	case Birth:
		return "birth"
	case Survival:
		return "survival"
	case Underpopulation:
		return "underpopulation"
	case Overpopulation:
		return "overpopulation"
	default:
		return "unchanged"
	}
}

// Alive reports whether the outcome leaves the cell alive, given its current state.
func (o Outcome) Alive(current bool) bool {
	switch o {
	case Birth, Survival:
		return true
	case Underpopulation, Overpopulation:
		return false
	default:
		return current
	}
}

/*
Classify evaluates Conway's B3/S23 rules in order: birth, survival,
underpopulation, overpopulation. The first matching rule wins.
*/
func Classify(alive bool, neighbors int) Outcome {
	switch {
	case !alive && neighbors == 3:
		return Birth
	case alive && (neighbors == 2 || neighbors == 3):
		return Survival
	case alive && neighbors <= 1:
		return Underpopulation
	case alive && neighbors >= 4:
		return Overpopulation
	}
	return Unchanged
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Classify(alive, neighbors).Alive(alive)
}
