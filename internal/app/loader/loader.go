package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"logweave/internal/app/errors"
	"logweave/internal/chunk"
	"logweave/internal/config"
	"logweave/internal/config/logger"
)

// Stdin is the path that selects standard input
const Stdin = "-"

// Loader turns log streams into chunks
type Loader interface {
	Load(ctx context.Context, r io.Reader) ([]chunk.Chunk, error)
	LoadFile(ctx context.Context, path string) ([]chunk.Chunk, error)
	Follow(ctx context.Context, path string) (<-chan chunk.Chunk, error)
}

// loader implements the Loader interface
type loader struct {
	cfg *config.Config
	log logger.Logger
}

// NewLoader creates a new Loader
func NewLoader(cfg *config.Config, log logger.Logger) Loader {
	return &loader{
		cfg: cfg,
		log: log.WithComponent("LOADER"),
	}
}

// Load reads r to the end and returns its lines as consecutive chunks
// starting at global line 0. A final line without terminator is kept.
func (l *loader) Load(ctx context.Context, r io.Reader) ([]chunk.Chunk, error) {
	reader := bufio.NewReaderSize(r, config.ReadBufferSize)
	c := newChunker(l.cfg, 0)

	var chunks []chunk.Chunk

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: %v", errors.ErrFailedToReadLog, err)
		}

		if line != "" {
			if line[len(line)-1] != '\n' {
				line += "\n"
			}

			if ch, ok := c.add(line); ok {
				chunks = append(chunks, ch)
			}
		}

		if err == io.EOF {
			break
		}
	}

	if ch, ok := c.flush(); ok {
		chunks = append(chunks, ch)
	}

	l.log.Debug().Int("chunks", len(chunks)).Int("lines", c.next).Msg("Log loaded")

	return chunks, nil
}

// LoadFile loads the file at path, or standard input for Stdin
func (l *loader) LoadFile(ctx context.Context, path string) ([]chunk.Chunk, error) {
	if path == Stdin {
		return l.Load(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFailedToOpenLog, err)
	}
	defer f.Close()

	return l.Load(ctx, f)
}
