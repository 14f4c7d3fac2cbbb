package loader

import "go.uber.org/fx"

// Module provides the log loader
var Module = fx.Options(
	fx.Provide(NewLoader),
)
