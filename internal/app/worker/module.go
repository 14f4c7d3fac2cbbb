package worker

import "go.uber.org/fx"

// Module provides the worker pool
var Module = fx.Options(
	fx.Provide(NewWorkerPool),
)
