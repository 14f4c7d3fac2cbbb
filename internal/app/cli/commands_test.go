package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logweave/internal/app/loader"
	"logweave/internal/app/render"
	"logweave/internal/config"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected func(o *Options)
	}{
		{
			name:     "no args - help",
			args:     []string{},
			expected: func(o *Options) { o.Type = CommandHelp },
		},
		{
			name:     "render stdin",
			args:     []string{"render"},
			expected: func(o *Options) { o.Type = CommandRender },
		},
		{
			name: "render html document",
			args: []string{"render", "build.log", "-f", "html", "--standalone", "--title", "Build"},
			expected: func(o *Options) {
				o.Type = CommandRender
				o.Path = "build.log"
				o.Format = render.FormatHTML
				o.Standalone = true
				o.Title = "Build"
			},
		},
		{
			name: "render alias with highlight",
			args: []string{"r", "app.log", "-n", "--highlight", "err", "-i", "--color", "never"},
			expected: func(o *Options) {
				o.Type = CommandRender
				o.Path = "app.log"
				o.LineNumbers = true
				o.Highlight = "err"
				o.CaseInsensitive = true
				o.Color = ColorNever
			},
		},
		{
			name: "search with patterns",
			args: []string{"search", "time.*out", "a.log", "logs/**/*.log", "--ignore", "logs/old/**", "-e"},
			expected: func(o *Options) {
				o.Type = CommandSearch
				o.Query = "time.*out"
				o.Patterns = []string{"a.log", "logs/**/*.log"}
				o.Ignores = []string{"logs/old/**"}
				o.Regex = true
			},
		},
		{
			name: "search stdin",
			args: []string{"s", "panic"},
			expected: func(o *Options) {
				o.Type = CommandSearch
				o.Query = "panic"
				o.Patterns = []string{}
			},
		},
		{
			name: "log level override",
			args: []string{"--log-level", "debug", "css"},
			expected: func(o *Options) {
				o.Type = CommandCSS
				o.LogLevel = "debug"
			},
		},
		{
			name: "search only matching",
			args: []string{"search", "-o", "id=[0-9]+", "-e"},
			expected: func(o *Options) {
				o.Type = CommandSearch
				o.Query = "id=[0-9]+"
				o.Patterns = []string{}
				o.OnlyMatching = true
				o.Regex = true
			},
		},
		{
			name: "view follow",
			args: []string{"view", "app.log", "-F"},
			expected: func(o *Options) {
				o.Type = CommandView
				o.Path = "app.log"
				o.Follow = true
			},
		},
		{
			name: "css with selector",
			args: []string{"css", ".out"},
			expected: func(o *Options) {
				o.Type = CommandCSS
				o.Selector = ".out"
			},
		},
		{
			name:     "init",
			args:     []string{"init"},
			expected: func(o *Options) { o.Type = CommandInit },
		},
		{
			name:     "version command",
			args:     []string{"version"},
			expected: func(o *Options) { o.Type = CommandVersion },
		},
		{
			name:     "version flag",
			args:     []string{"-v"},
			expected: func(o *Options) { o.Type = CommandVersion },
		},
		{
			name: "config flag",
			args: []string{"--config", "custom.yaml", "init"},
			expected: func(o *Options) {
				o.Type = CommandInit
				o.ConfigFile = "custom.yaml"
			},
		},
		{
			name:     "subcommand help",
			args:     []string{"render", "--help"},
			expected: func(o *Options) { o.Type = CommandHelp },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := &Options{
				Type:       CommandHelp,
				ConfigFile: config.ConfigFile,
				Path:       loader.Stdin,
				Format:     render.FormatTerminal,
				Color:      ColorAuto,
			}
			tt.expected(expected)

			result, err := Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"unknown"}},
		{name: "search without query", args: []string{"search"}},
		{name: "init with args", args: []string{"init", "extra"}},
		{name: "render two files", args: []string{"render", "a.log", "b.log"}},
		{name: "unknown flag", args: []string{"render", "--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.args)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}
