// Package trace records the human-readable match transcript: board
// renders, move narrations, search reports and the final result. A game
// must never fail because its transcript cannot be written, so sinks
// swallow write errors after logging them.
package trace

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Sink receives transcript text in the order it happened
type Sink interface {
	WriteString(text string)
	Close() error
}

// Nop discards everything
type Nop struct{}

func (Nop) WriteString(string) {}

func (Nop) Close() error { return nil }

// FileName returns the conventional transcript name for a game setup,
// e.g. "gameTrace-true-5-100.txt"
func FileName(alphaBeta bool, maxTime time.Duration, maxTurns int) string {
	return fmt.Sprintf("gameTrace-%t-%d-%d.txt", alphaBeta, int(maxTime.Seconds()), maxTurns)
}

// FileSink appends transcript text to a file, truncating any leftover
// from a previous run when opened
type FileSink struct {
	file afero.File
}

// NewFileSink opens (and truncates) the transcript file on fs
func NewFileSink(fs afero.Fs, path string) (*FileSink, error) {
	file, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening trace file %s: %w", path, err)
	}
	return &FileSink{file: file}, nil
}

func (s *FileSink) WriteString(text string) {
	if _, err := s.file.WriteString(text); err != nil {
		log.Warn().Msgf("trace write to %s failed: %v", s.file.Name(), err)
	}
}

func (s *FileSink) Close() error {
	return s.file.Close()
}
