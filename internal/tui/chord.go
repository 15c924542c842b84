package tui

import tea "github.com/charmbracelet/bubbletea"

// Transition tells the input loop what to do with the key buffer after
// an evaluation.
type Transition int

const (
	// TransitionClear consumes the buffer and returns to idle.
	TransitionClear Transition = iota
	// TransitionContinue retains the buffer: a recognised leader key is
	// awaiting its follow-up. There is no timeout on a pending prefix.
	TransitionContinue
)

// BindingMatch is the outcome of evaluating a buffered key sequence.
// Msg is nil when the sequence maps to no command.
type BindingMatch struct {
	Msg        tea.Msg
	Transition Transition
}

// ChordMatcher buffers raw keys and recognises single keys and
// leader-prefixed two-key chords. It is idle whenever the buffer is
// empty; a lone leader key moves it to the prefix state.
type ChordMatcher struct {
	pressed []string
}

// Feed appends one key (in tea.KeyMsg.String() form) to the buffer,
// evaluates the whole sequence and applies the resulting transition.
func (m *ChordMatcher) Feed(key string) BindingMatch {
	m.pressed = append(m.pressed, key)
	match := MatchBinding(m.pressed)
	if match.Transition == TransitionClear {
		m.pressed = nil
	}
	return match
}

// Pending reports whether a prefix is awaiting its follow-up key.
func (m *ChordMatcher) Pending() bool { return len(m.pressed) > 0 }

// MatchBinding evaluates a full buffered key sequence against the
// dashboard's bindings. Unmatched sequences clear unless the sequence
// is exactly a recognised leader key.
func MatchBinding(pressed []string) BindingMatch {
	if len(pressed) == 1 {
		switch pressed[0] {
		case "right", "l", "ctrl+f":
			return clear(nextPipelineMsg{})
		case "left", "h", "ctrl+b":
			return clear(previousPipelineMsg{})
		case "down", "j":
			return clear(nextIssueMsg{})
		case "up", "k":
			return clear(previousIssueMsg{})
		case "enter":
			return clear(editSelectedIssueMsg{})
		case "ctrl+h":
			return clear(hideSelectedPipelineMsg{})
		case "ctrl+x":
			return BindingMatch{Transition: TransitionContinue}
		}
		return clear(nil)
	}
	if len(pressed) == 2 && pressed[0] == "ctrl+x" {
		switch pressed[1] {
		case "ctrl+h":
			return clear(showAllPipelinesMsg{})
		case "ctrl+c":
			return clear(quitMsg{})
		}
	}
	return clear(nil)
}

func clear(msg tea.Msg) BindingMatch {
	return BindingMatch{Msg: msg, Transition: TransitionClear}
}
