package wire

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"logweave/internal/app/ui/viewer"
	"logweave/internal/app/window"
	"logweave/internal/chunk"
	"logweave/internal/config"
	"logweave/internal/config/logger"
)

// UI creates a Bubble Tea program viewing the chunks of source
type UI func(ctx context.Context, source <-chan chunk.Chunk, opts viewer.Options) *tea.Program

// Module provides the window and the UI factory
var Module = fx.Options(
	window.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config *config.Config
	Window *window.Window
	Logger logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, source <-chan chunk.Chunk, opts viewer.Options) *tea.Program {
		if opts.Output == nil {
			opts.Output = os.Stdout
		}

		params.Window.Reset()

		model := viewer.NewModel(ctx, params.Config, source, params.Window, opts, params.Logger)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p
	}
}
