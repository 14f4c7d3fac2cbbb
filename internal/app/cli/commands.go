package cli

import (
	"github.com/spf13/cobra"

	"logweave/internal/app/loader"
	"logweave/internal/app/render"
	"logweave/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRender CommandType = iota
	CommandSearch
	CommandView
	CommandCSS
	CommandInit
	CommandVersion
	CommandHelp
)

// Color modes
const (
	ColorAuto   = config.ColorAuto
	ColorAlways = config.ColorAlways
	ColorNever  = config.ColorNever
)

// Options contains the parsed command-line arguments
type Options struct {
	Type       CommandType
	ConfigFile string
	LogLevel   string

	Path     string
	Query        string
	Patterns     []string
	Ignores      []string
	OnlyMatching bool

	Format      string
	Standalone  bool
	Title       string
	Color       string
	LineNumbers bool
	Highlight   string

	CaseInsensitive bool
	Regex           bool
	Follow          bool
	Selector        string
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:       CommandHelp,
		ConfigFile: config.ConfigFile,
		Path:       loader.Stdin,
		Format:     render.FormatTerminal,
		Color:      ColorAuto,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildRenderCommand(result),
		buildSearchCommand(result),
		buildViewCommand(result),
		buildCSSCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Render, search and follow logs with ANSI styling",
		Long: `Logweave splits logs into chunks, turns ANSI escape sequences into
style classes and renders them as HTML or terminal output. Large logs
can be searched and followed in an interactive viewer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandHelp
		},
	}

	cmd.PersistentFlags().StringVarP(&result.ConfigFile, "config", "c", config.ConfigFile, "Path to the config file")
	cmd.PersistentFlags().StringVar(&result.LogLevel, "log-level", "", "Override the configured log level")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildRenderCommand creates the render subcommand
func buildRenderCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render [file]",
		Aliases: []string{"r"},
		Short:   "Render a log as HTML, terminal or plain text",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRender
			if len(args) > 0 {
				result.Path = args[0]
			}
		},
	}

	cmd.Flags().StringVarP(&result.Format, "format", "f", render.FormatTerminal, "Output format: html, ansi or text")
	cmd.Flags().BoolVar(&result.Standalone, "standalone", false, "Wrap HTML output in a complete document")
	cmd.Flags().StringVar(&result.Title, "title", "", "Title of a standalone HTML document")
	cmd.Flags().StringVar(&result.Color, "color", ColorAuto, "Terminal colors: auto, always or never")
	cmd.Flags().BoolVarP(&result.LineNumbers, "line-numbers", "n", false, "Prefix lines with their number")
	cmd.Flags().StringVar(&result.Highlight, "highlight", "", "Highlight matches of a search query")
	cmd.Flags().BoolVarP(&result.CaseInsensitive, "ignore-case", "i", false, "Match the highlight query case-insensitively")
	cmd.Flags().BoolVarP(&result.Regex, "regex", "e", false, "Treat the highlight query as a regular expression")

	return cmd
}

// buildSearchCommand creates the search subcommand
func buildSearchCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search <query> [patterns...]",
		Aliases: []string{"s"},
		Short:   "Search logs matching glob patterns",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandSearch
			result.Query = args[0]
			result.Patterns = args[1:]
		},
	}

	cmd.Flags().BoolVarP(&result.CaseInsensitive, "ignore-case", "i", false, "Match case-insensitively")
	cmd.Flags().BoolVarP(&result.Regex, "regex", "e", false, "Treat the query as a regular expression")
	cmd.Flags().StringSliceVar(&result.Ignores, "ignore", nil, "Glob patterns to skip")
	cmd.Flags().BoolVarP(&result.OnlyMatching, "only-matching", "o", false, "Print only the matched parts of lines")
	cmd.Flags().StringVar(&result.Color, "color", ColorAuto, "Terminal colors: auto, always or never")

	return cmd
}

// buildViewCommand creates the view subcommand
func buildViewCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view [file]",
		Aliases: []string{"v"},
		Short:   "Browse and search a log interactively",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandView
			if len(args) > 0 {
				result.Path = args[0]
			}
		},
	}

	cmd.Flags().BoolVarP(&result.Follow, "follow", "F", false, "Keep reading as the file grows")

	return cmd
}

// buildCSSCommand creates the css subcommand
func buildCSSCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "css [selector]",
		Short: "Print the stylesheet for rendered HTML",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandCSS
			if len(args) > 0 {
				result.Selector = args[0]
			}
		},
	}

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate " + config.ConfigFile + " template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
