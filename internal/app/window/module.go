package window

import "go.uber.org/fx"

// Module provides the chunk window
var Module = fx.Options(
	fx.Provide(NewWindow),
)
