package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrConfigExists        = errors.New("config file already exists")

	ErrInvalidChunkLines   = errors.New("chunk lines must be positive")
	ErrInvalidShadowPolicy = errors.New("invalid shadow policy")
	ErrInvalidShadowRatio  = errors.New("shadow ratio must be between 0 and 1")
	ErrInvalidLogType      = errors.New("invalid log type")
	ErrInvalidMergeLines   = errors.New("merge lines must not be smaller than chunk lines")
	ErrInvalidDebounce     = errors.New("follow debounce must not be negative")
	ErrInvalidWorkers      = errors.New("search workers must be positive")
	ErrHighlightClassEmpty = errors.New("highlight match class is required")

	ErrFailedToOpenLog   = errors.New("failed to open log")
	ErrFailedToReadLog   = errors.New("failed to read log")
	ErrFailedToWatchLog  = errors.New("failed to watch log")
	ErrNoFilesMatched    = errors.New("no files matched")
	ErrInvalidGlob       = errors.New("invalid glob pattern")
	ErrOverlappingChunk  = errors.New("chunk overlaps loaded lines")
	ErrInvalidRegex      = errors.New("invalid regex pattern")
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrInvalidColorMode  = errors.New("invalid color mode")
	ErrMissingArgument   = errors.New("missing argument")
	ErrFailedToRender    = errors.New("failed to render log")
	ErrFailedToStartView = errors.New("failed to start viewer")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
