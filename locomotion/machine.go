package locomotion

import (
	"fmt"
	"log"

	"github.com/automoto/strider/config"
)

// Machine dispatches to the active state through a table indexed by StateID.
type Machine struct {
	Name string

	states  [config.StateCount]State
	current State

	// OnChange runs after a transition completes.
	OnChange func(from, to config.StateID)
}

func NewMachine(name string) *Machine {
	return &Machine{Name: name}
}

// Register adds s to the dispatch table, replacing any state with the same ID.
func (m *Machine) Register(s State) error {
	id := s.ID()
	if id <= config.StateNone || id >= config.StateCount {
		return fmt.Errorf("register state: %w: %v", ErrUnknownState, id)
	}
	m.states[id] = s
	return nil
}

// Current returns the active state ID, or StateNone before the first transition.
func (m *Machine) Current() config.StateID {
	if m.current == nil {
		return config.StateNone
	}
	return m.current.ID()
}

// State returns the active state.
func (m *Machine) State() State { return m.current }

// ChangeState exits the active state and enters next. Requesting the active
// state does nothing. An unregistered next is reported and leaves the active
// state in place.
func (m *Machine) ChangeState(next config.StateID) error {
	from := m.Current()
	if m.current != nil && from == next {
		return nil
	}
	if next <= config.StateNone || next >= config.StateCount || m.states[next] == nil {
		log.Printf("[locomotion] %s: state %v does not exist, staying in %v", m.Name, next, from)
		return fmt.Errorf("change state to %v: %w", next, ErrUnknownState)
	}

	if m.current != nil {
		m.current.ExitState()
	}
	m.current = m.states[next]
	m.current.EnterState()

	if config.Debug.LogTransitions {
		log.Printf("[locomotion] %s: %v -> %v", m.Name, from, next)
	}
	if m.OnChange != nil {
		m.OnChange(from, next)
	}
	return nil
}

func (m *Machine) UpdatePhysics() {
	if m.current != nil {
		m.current.UpdatePhysics()
	}
}

func (m *Machine) UpdateLogic() {
	if m.current != nil {
		m.current.UpdateLogic()
	}
}
