package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained overlay that owns its own Update/View lifecycle.
// Modals are kept on a stack; the topmost one receives all input and
// renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	View(width, height int) string
}

type modalStack struct {
	modals []Modal
}

// PushModal adds m unless a modal with the same ID is already open.
func (s *modalStack) PushModal(m Modal) {
	for _, existing := range s.modals {
		if existing.ID() == m.ID() {
			return
		}
	}
	s.modals = append(s.modals, m)
}

func (s *modalStack) PopModal() {
	if len(s.modals) > 0 {
		s.modals = s.modals[:len(s.modals)-1]
	}
}

func (s *modalStack) TopModal() Modal {
	if len(s.modals) == 0 {
		return nil
	}
	return s.modals[len(s.modals)-1]
}
