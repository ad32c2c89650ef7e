package logging

import (
	stderrs "errors"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/laas/hpp-util/indent"
	"go.uber.org/atomic"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrClosed is returned when writing to a closed journal.
var ErrClosed = stderrs.New("journal is closed")

// JournalOutput logs to a per-process file in the logging prefix and traces
// the calling context: whenever a message comes from a different function
// than the previous one, "exiting <previous>" and "entering <current>"
// lines are written first.
type JournalOutput struct {
	stem     string
	filename string

	mu          sync.Mutex
	lastContext string
	file        *lumberjack.Logger
	w           *indent.Writer
	closed      atomic.Bool
}

// NewJournalOutput opens the journal <prefix>/<stem>.<pid>.log. Missing
// directories are created; failures are returned.
func NewJournalOutput(stem string, cfg *Config) (*JournalOutput, error) {
	if cfg == nil {
		c := DefaultConfig()
		cfg = &c
	}
	path, err := resolveJournalPath(stem, cfg)
	if err != nil {
		return nil, err
	}
	file, err := openRollingFile(path, cfg)
	if err != nil {
		return nil, err
	}
	return &JournalOutput{
		stem:     stem,
		filename: path,
		file:     file,
		w:        indent.NewWriter(file),
	}, nil
}

// Filename returns the path of the journal file.
func (j *JournalOutput) Filename() string {
	return j.filename
}

// Stem returns the stem the journal was opened with.
func (j *JournalOutput) Stem() string {
	return j.stem
}

// Write implements Output.
func (j *JournalOutput) Write(ch *Channel, loc Location, message string) error {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed.Load() {
		return ErrClosed
	}

	if loc.Context != j.lastContext {
		if j.lastContext != emptyString {
			if err := writeMarker(j.w, ch, loc, "exiting", j.lastContext); err != nil {
				return err
			}
		}
		if loc.Context != emptyString {
			if err := writeMarker(j.w, ch, loc, "entering", loc.Context); err != nil {
				return err
			}
		}
		j.lastContext = loc.Context
	}

	return writeMessage(j.w, ch, loc, message)
}

// Rotate closes the current file, renames it with a timestamp and opens a
// fresh one.
func (j *JournalOutput) Rotate() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.closed.Load() {
		return ErrClosed
	}
	return j.file.Rotate()
}

// Close closes the journal file. It is safe to call Close multiple times.
func (j *JournalOutput) Close() error {
	const op errors.Op = "logging.JournalOutput.Close"
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := j.file.Close(); err != nil {
		return errors.New(op).Err(err).Msg(errMsgCloseJournal)
	}
	return nil
}
