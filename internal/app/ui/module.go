package ui

import (
	"go.uber.org/fx"

	"logweave/internal/app/ui/wire"
)

// Module provides the fx dependency injection options for the ui package
var Module = fx.Options(
	wire.Module,
)
