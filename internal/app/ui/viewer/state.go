package viewer

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/looplab/fsm"

	"logweave/internal/config/logger"
)

// FSM states
const (
	Browsing  = "browsing"
	Searching = "searching"
)

// FSM events
const (
	OpenSearch = "open_search"
	Submit     = "submit"
	Cancel     = "cancel"
)

// FSM callbacks
const (
	OnSearching = "enter_" + Searching
	OnBrowsing  = "enter_" + Browsing
)

// newModeFSM creates the state machine switching between scrolling and query input
func newModeFSM(input *textinput.Model, log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Browsing,
		fsm.Events{
			{Name: OpenSearch, Src: []string{Browsing}, Dst: Searching},
			{Name: Submit, Src: []string{Searching}, Dst: Browsing},
			{Name: Cancel, Src: []string{Searching}, Dst: Browsing},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("MODE %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
			OnSearching: func(ctx context.Context, e *fsm.Event) {
				input.SetValue("")
				input.Focus()
			},
			OnBrowsing: func(ctx context.Context, e *fsm.Event) {
				input.Blur()
			},
		},
	)
}
