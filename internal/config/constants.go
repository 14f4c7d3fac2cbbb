package config

import "time"

// app constants
const (
	AppName        = "logweave"
	AppDescription = "Chunked ANSI log rendering, search and following"
	ConfigFile     = "logweave.yaml"

	LogLevel  = "info"
	LogFormat = "console"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	Version = "0.3.0"
)

// chunk constants
const (
	ChunkLines  = 1000
	MergeLines  = 20000
	ShadowRatio = 0.25

	ShadowNever  = "never"
	ShadowAlways = "always"
	ShadowAuto   = "auto"

	LogTypeStdio = "s"
	LogTypeText  = "t"
)

// search constants
const (
	SearchWorkers = 4
)

// highlight constants
const (
	HighlightBegin = "search-begin"
	HighlightMatch = "search-match"
	HighlightEnd   = "search-end"

	StyleSelector = ".log"
)

// follow constants
const (
	FollowDebounce = 150 * time.Millisecond
	ReadBufferSize = 64 * 1024
)
