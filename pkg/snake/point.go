// Package snake implements a deterministic, UI-agnostic snake simulation.
// All state transitions are synchronous and replayable: a fixed seed plus a
// fixed sequence of queued directions always produces the same game.
package snake

// Point is an integer grid coordinate. X grows rightward, Y grows downward.
type Point struct {
	X, Y int
}

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// IsOpposite reports whether o is the 180-degree reversal of d.
func (d Direction) IsOpposite(o Direction) bool {
	switch {
	case d == Up && o == Down, d == Down && o == Up:
		return true
	case d == Left && o == Right, d == Right && o == Left:
		return true
	}
	return false
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Right"
	}
}

// Status is the lifecycle state of a game.
type Status uint8

const (
	// Running means the game accepts further steps.
	Running Status = iota
	// Dead is terminal; only an explicit Reset leaves it.
	Dead
)

// String returns the status name.
func (s Status) String() string {
	if s == Dead {
		return "Dead"
	}
	return "Running"
}

// TickResult reports the outcome of a single Step.
type TickResult struct {
	AteFood bool
	Status  Status
	Score   int
}
