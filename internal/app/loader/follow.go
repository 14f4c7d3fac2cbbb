package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"logweave/internal/app/errors"
	"logweave/internal/chunk"
	"logweave/internal/config"
	"logweave/internal/config/logger"
)

// follower tails one growing log file
type follower struct {
	path     string
	file     *os.File
	reader   *bufio.Reader
	offset   int64
	partial  string
	replaced bool
	chunker  *chunker
	out      chan chunk.Chunk
	log      logger.Logger
}

// Follow streams the chunks of path: first the existing content, then every
// complete line appended later. The channel is closed when ctx is done.
func (l *loader) Follow(ctx context.Context, path string) (<-chan chunk.Chunk, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFailedToOpenLog, err)
	}

	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFailedToOpenLog, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: %v", errors.ErrFailedToWatchLog, err)
	}

	// Watch the directory so that a file replaced by rename is noticed
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		file.Close()

		return nil, fmt.Errorf("%w: %v", errors.ErrFailedToWatchLog, err)
	}

	f := &follower{
		path:    abs,
		file:    file,
		reader:  bufio.NewReaderSize(file, config.ReadBufferSize),
		chunker: newChunker(l.cfg, 0),
		out:     make(chan chunk.Chunk, 16),
		log:     l.log,
	}

	wake := make(chan struct{}, 1)
	d := NewDebouncer(l.cfg.Follow.Debounce, func(events int) {
		f.log.Debug().Int("events", events).Msgf("Change detected in %s", abs)

		select {
		case wake <- struct{}{}:
		default:
		}
	})

	l.log.Info().Msgf("Following %s", abs)

	go f.run(ctx, fsw, d, wake)

	return f.out, nil
}

func (f *follower) run(ctx context.Context, fsw *fsnotify.Watcher, d Debouncer, wake <-chan struct{}) {
	defer func() {
		d.Stop()
		fsw.Close()
		f.file.Close()
		close(f.out)
	}()

	if !f.drain(ctx) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			if event.Name != f.path {
				continue
			}

			if event.Has(fsnotify.Create) {
				f.replaced = true
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				d.Trigger()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			f.log.Error().Err(err).Msg("Watcher error")
		case <-wake:
			if !f.drain(ctx) {
				return
			}
		}
	}
}

// drain reads everything appended since the last call and emits it. It
// returns false once ctx is done.
func (f *follower) drain(ctx context.Context) bool {
	f.rewind()

	for {
		line, err := f.reader.ReadString('\n')
		f.offset += int64(len(line))

		if err != nil {
			f.partial += line

			if err != io.EOF {
				f.log.Error().Err(err).Msgf("Failed to read %s", f.path)
			}

			break
		}

		line = f.partial + line
		f.partial = ""

		if ch, ok := f.chunker.add(line); ok && !f.emit(ctx, ch) {
			return false
		}
	}

	if ch, ok := f.chunker.flush(); ok {
		return f.emit(ctx, ch)
	}

	return true
}

// rewind restarts from the beginning when the file was truncated or replaced.
// Line numbering continues where it stopped.
func (f *follower) rewind() {
	if f.replaced {
		f.replaced = false

		file, err := os.Open(f.path)
		if err != nil {
			f.log.Warn().Err(err).Msgf("Failed to reopen %s", f.path)
			return
		}

		f.file.Close()
		f.file = file
		f.reset()
		f.log.Info().Msgf("Reopened replaced file %s", f.path)

		return
	}

	info, err := f.file.Stat()
	if err != nil || info.Size() >= f.offset {
		return
	}

	if _, err := f.file.Seek(0, io.SeekStart); err != nil {
		f.log.Warn().Err(err).Msgf("Failed to rewind %s", f.path)
		return
	}

	f.reset()
	f.log.Warn().Msgf("File %s was truncated, reading from start", f.path)
}

func (f *follower) reset() {
	f.reader.Reset(f.file)
	f.offset = 0
	f.partial = ""
}

func (f *follower) emit(ctx context.Context, ch chunk.Chunk) bool {
	select {
	case f.out <- ch:
		return true
	case <-ctx.Done():
		return false
	}
}
