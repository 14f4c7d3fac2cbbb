package app

import (
	"go.uber.org/fx"

	"logweave/internal/app/cli"
	"logweave/internal/app/loader"
	"logweave/internal/app/ui"
	"logweave/internal/app/worker"
	"logweave/internal/config/logger"
)

var Module = fx.Options(
	logger.Module,
	loader.Module,
	worker.Module,
	ui.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
