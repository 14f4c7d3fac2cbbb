//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"

	"logweave/internal/ansi"
	"logweave/internal/app/colors"
	"logweave/internal/app/errors"
	"logweave/internal/app/loader"
	"logweave/internal/app/render"
	"logweave/internal/app/ui/viewer"
	"logweave/internal/app/ui/wire"
	"logweave/internal/app/window"
	"logweave/internal/app/worker"
	"logweave/internal/chunk"
	"logweave/internal/config"
	"logweave/internal/config/logger"
	"logweave/internal/search"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// streams groups the standard streams a command reads and writes
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// cli represents the command-line interface for the application
type cli struct {
	cfg     *config.Config
	options *Options
	loader  loader.Loader
	win     *window.Window
	ui      wire.UI
	pool    worker.Pool
	io      streams
	log     logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	options *Options,
	loader loader.Loader,
	win *window.Window,
	ui wire.UI,
	pool worker.Pool,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:     cfg,
		options: options,
		loader:  loader,
		win:     win,
		ui:      ui,
		pool:    pool,
		io:      streams{in: os.Stdin, out: os.Stdout, err: os.Stderr},
		log:     log,
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.run(ctx); err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		fmt.Fprintf(c.io.err, "%s %v\n", colors.Error("Error:"), err)

		return 1, err
	}

	return 0, nil
}

func (c *cli) run(ctx context.Context) error {
	switch c.options.Type {
	case CommandRender:
		return c.handleRender(ctx)
	case CommandSearch:
		return c.handleSearch(ctx)
	case CommandView:
		return c.handleView(ctx)
	case CommandCSS:
		return c.handleCSS()
	case CommandInit:
		return c.handleInit()
	case CommandVersion:
		return c.handleVersion()
	default:
		return c.handleHelp()
	}
}

// handleRender writes the whole log in the requested format
func (c *cli) handleRender(ctx context.Context) error {
	if err := render.ValidateFormat(c.options.Format); err != nil {
		return err
	}

	if err := validateColor(c.options.Color); err != nil {
		return err
	}

	chunks, err := c.load(ctx, c.options.Path)
	if err != nil {
		return err
	}

	if err := fill(c.win, chunks); err != nil {
		return err
	}

	var results []search.ChunkResults
	if c.options.Highlight != "" {
		m, err := c.matcher(c.options.Highlight)
		if err != nil {
			return err
		}

		results = c.win.Search(m)
		c.log.Debug().Msgf("Highlighting %d matches of %q", search.Total(results), m.Query())
	}

	lines := c.lines(results)
	c.log.Info().Msgf("Rendering %d lines as %s", len(lines), c.options.Format)

	return c.renderer().Render(c.io.out, lines)
}

// renderer selects the Renderer for the requested format
func (c *cli) renderer() render.Renderer {
	switch c.options.Format {
	case render.FormatHTML:
		title := c.options.Title
		if title == "" {
			title = c.title(c.options.Path)
		}

		return render.NewHTML(render.HTMLOptions{
			Selector:   c.cfg.Style.Selector,
			Standalone: c.options.Standalone,
			Title:      title,
		})
	case render.FormatText:
		return render.NewText()
	}

	if c.options.Color == ColorNever {
		return render.NewText()
	}

	return render.NewTerminal(c.io.out, render.TerminalOptions{
		Color:       c.colorEnabled(),
		LineNumbers: c.options.LineNumbers,
		Highlight:   c.classes(),
	})
}

// hit is one matched substring of a log line
type hit struct {
	line int
	text string
}

// fileMatches holds the matching lines of one searched log
type fileMatches struct {
	count int
	lines []window.Line
	hits  []hit
}

// handleSearch prints every matching line of the files selected by the patterns
func (c *cli) handleSearch(ctx context.Context) error {
	if err := validateColor(c.options.Color); err != nil {
		return err
	}

	m, err := c.matcher(c.options.Query)
	if err != nil {
		return err
	}

	paths := []string{loader.Stdin}
	if len(c.options.Patterns) > 0 {
		paths, err = loader.Collect(".", c.options.Patterns, c.options.Ignores)
		if err != nil {
			return err
		}
	}

	found := make([]fileMatches, len(paths))

	err = c.pool.Run(ctx, len(paths), func(ctx context.Context, i int) error {
		fm, err := c.searchFile(ctx, paths[i], m)
		if err != nil {
			return err
		}

		found[i] = fm

		return nil
	})
	if err != nil {
		return err
	}

	color := c.colorEnabled()

	var styled *render.Terminal
	if color && !c.options.OnlyMatching {
		styled = render.NewTerminal(c.io.out, render.TerminalOptions{Color: true, Highlight: c.classes()})
	}

	total, files := 0, 0

	for i, fm := range found {
		for _, l := range fm.lines {
			c.printMatch(paths[i], l, styled)
		}

		for _, h := range fm.hits {
			c.printHit(paths[i], h, color)
		}

		if fm.count > 0 {
			files++
		}

		total += fm.count
	}

	c.log.Info().Msgf("Found %d matches in %d of %d files", total, files, len(paths))
	c.printSummary(paths, found, total, files, color)

	return nil
}

// searchFile collects the matching lines, or matched substrings, of one log
func (c *cli) searchFile(ctx context.Context, path string, m *search.Matcher) (fileMatches, error) {
	chunks, err := c.load(ctx, path)
	if err != nil {
		return fileMatches{}, err
	}

	win := window.NewWindow(c.cfg, c.log)
	if err := fill(win, chunks); err != nil {
		return fileMatches{}, err
	}

	results := win.Search(m)
	fm := fileMatches{count: search.Total(results)}
	if fm.count == 0 {
		return fm, nil
	}

	first, _ := win.Span()
	ci, ri := search.FindFirstSearchResultFrom(results, first)
	printed := search.NotFound
	classes := c.classes()

	for range fm.count {
		r, _ := search.Resolve(results, ci, ri)
		ci, ri = search.FindNextSearchResult(results, ci, ri)

		if c.options.OnlyMatching {
			if l, ok := win.Line(r.LineIndex); ok {
				fm.hits = append(fm.hits, hit{line: r.LineIndex, text: l.Text[r.LineStart:r.LineEnd]})
			}

			continue
		}

		if r.LineIndex == printed {
			continue
		}

		printed = r.LineIndex

		if l, ok := win.HighlightedLine(r.LineIndex, results, classes); ok {
			fm.lines = append(fm.lines, l)
		}
	}

	return fm, nil
}

func (c *cli) printMatch(path string, l window.Line, styled *render.Terminal) {
	if styled == nil {
		fmt.Fprintf(c.io.out, "%s:%d:%s\n", path, l.Index+1, l.Text)
		return
	}

	fmt.Fprintf(c.io.out, "%s:%s\n", colors.Location(path, l.Index+1), styled.Line(l))
}

func (c *cli) printHit(path string, h hit, color bool) {
	if !color {
		fmt.Fprintf(c.io.out, "%s:%d:%s\n", path, h.line+1, h.text)
		return
	}

	fmt.Fprintf(c.io.out, "%s:%s\n", colors.Location(path, h.line+1), colors.Match(h.text))
}

// printSummary writes match totals to the error stream, with a per-file
// breakdown when more than one log was searched
func (c *cli) printSummary(paths []string, found []fileMatches, total, files int, color bool) {
	paint := func(fn func(string) string, text string) string {
		if !color {
			return text
		}

		return fn(text)
	}

	if total == 0 {
		fmt.Fprintf(c.io.err, "%s %s\n", paint(colors.Warning, colors.StatusMissing),
			paint(colors.Warning, fmt.Sprintf("no matches in %d files", len(paths))))

		return
	}

	fmt.Fprintf(c.io.err, "%s %s matches in %d files\n", paint(colors.Success, colors.StatusFound),
		paint(colors.Info, strconv.Itoa(total)), files)

	if len(paths) < 2 {
		return
	}

	for i, fm := range found {
		if fm.count == 0 {
			continue
		}

		fmt.Fprintf(c.io.err, "  %s %s %s\n", paint(colors.Muted, colors.ProgressArrow),
			paint(colors.Subtitle, paths[i]), paint(colors.Muted, fmt.Sprintf("(%d)", fm.count)))
	}
}

// handleView opens the interactive viewer
func (c *cli) handleView(ctx context.Context) error {
	path := c.options.Path
	if path == loader.Stdin {
		return fmt.Errorf("%w: view needs a file path", errors.ErrMissingArgument)
	}

	var (
		source <-chan chunk.Chunk
		err    error
	)

	if c.options.Follow {
		source, err = c.loader.Follow(ctx, path)
		if err != nil {
			return err
		}
	} else {
		chunks, err := c.loader.LoadFile(ctx, path)
		if err != nil {
			return err
		}

		source = prefilled(chunks)
	}

	level := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.Disabled)
	defer zerolog.SetGlobalLevel(level)

	p := c.ui(ctx, source, viewer.Options{
		Title:  c.title(path),
		Follow: c.options.Follow,
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToStartView, err)
	}

	return nil
}

// handleCSS prints the palette stylesheet
func (c *cli) handleCSS() error {
	selector := c.options.Selector
	if selector == "" {
		selector = c.cfg.Style.Selector
	}

	_, err := io.WriteString(c.io.out, ansi.GenerateStyle(selector))

	return err
}

// handleInit writes the config template
func (c *cli) handleInit() error {
	path := c.options.ConfigFile
	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	c.log.Info().Msgf("Created %s", path)
	fmt.Fprintf(c.io.out, "%s %s\n", colors.Success("Created"), path)

	return nil
}

// handleVersion displays version information
func (c *cli) handleVersion() error {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintf(c.io.out, "%s %s\n", colors.Title(config.AppName), colors.Success("v"+config.Version))

	return nil
}

// handleHelp displays help information
func (c *cli) handleHelp() error {
	c.log.Debug().Msg("Displaying help information")
	_, err := io.WriteString(c.io.out, renderHelp())

	return err
}

// load reads a log file, or standard input for loader.Stdin
func (c *cli) load(ctx context.Context, path string) ([]chunk.Chunk, error) {
	if path == loader.Stdin {
		return c.loader.Load(ctx, c.io.in)
	}

	return c.loader.LoadFile(ctx, path)
}

// fill replaces the window contents with chunks
func fill(win *window.Window, chunks []chunk.Chunk) error {
	win.Reset()

	for _, ch := range chunks {
		if err := win.Add(ch); err != nil {
			return err
		}
	}

	return nil
}

// lines collects every loaded line with its classes
func (c *cli) lines(results []search.ChunkResults) []window.Line {
	first, last := c.win.Span()
	classes := c.classes()

	lines := make([]window.Line, 0, last-first)
	for i := first; i < last; i++ {
		if l, ok := c.win.HighlightedLine(i, results, classes); ok {
			lines = append(lines, l)
		}
	}

	return lines
}

func (c *cli) matcher(query string) (*search.Matcher, error) {
	mode := search.ModeFor(
		c.options.CaseInsensitive || c.cfg.Search.CaseInsensitive,
		c.options.Regex || c.cfg.Search.Regex,
	)

	m, err := search.NewMatcher(query, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidRegex, err)
	}

	return m, nil
}

func (c *cli) classes() search.Classes {
	return search.Classes{
		Begin: c.cfg.Highlight.Begin,
		Match: c.cfg.Highlight.Match,
		End:   c.cfg.Highlight.End,
	}
}

// colorEnabled resolves the color mode against the output stream
func (c *cli) colorEnabled() bool {
	switch c.options.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	f, ok := c.io.out.(*os.File)

	return ok && term.IsTerminal(f.Fd())
}

func (c *cli) title(path string) string {
	if path == loader.Stdin {
		return "stdin"
	}

	return filepath.Base(path)
}

func validateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: '%s' (must be %s)", errors.ErrInvalidColorMode, mode,
			strings.Join([]string{ColorAuto, ColorAlways, ColorNever}, ", "))
	}
}

// prefilled returns a closed channel holding chunks
func prefilled(chunks []chunk.Chunk) <-chan chunk.Chunk {
	ch := make(chan chunk.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}

	close(ch)

	return ch
}
