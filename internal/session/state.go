// Package session keeps per-visitor form state and drives the translate and
// clear actions against the translation service.
package session

import "github.com/valpere/bhasha/internal/language"

// Placeholder is shown in the output pane before anything is translated.
const Placeholder = "Your translation will appear here..."

// State is what survives between two interactions of one visitor.
// Language is only the selector position; it does not affect stored results.
type State struct {
	InputText  string
	LastResult string
	Language   language.Language
}

func NewState() State {
	return State{
		InputText:  "",
		LastResult: Placeholder,
		Language:   language.Default,
	}
}

// Reset clears the input and the result. The language selection is kept.
func (s *State) Reset() {
	s.InputText = ""
	s.LastResult = Placeholder
}
