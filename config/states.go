package config

// StateID identifies a locomotion state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Jump

	// StateCount sizes state dispatch tables.
	StateCount
)

var stateNames = [StateCount]string{
	StateNone: "None",
	Idle:      "Idle",
	Walk:      "Walk",
	Jump:      "Jump",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "Unknown"
	}
	return stateNames[s]
}
