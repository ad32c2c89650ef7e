package logging

import (
	stderrs "errors"
	"fmt"
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Service owns the default outputs and channels.
//
// Channels and outputs are nil until Initialize succeeds; writing to a nil
// channel is a no-op, so an uninitialized Service never panics.
type Service struct {
	Config *Config

	// Console logs to standard error.
	Console *ConsoleOutput
	// Journal logs to the main journal file (journal.<pid>.log).
	Journal *JournalOutput
	// BenchmarkJournal logs to the benchmark journal file (benchmark.<pid>.log).
	BenchmarkJournal *JournalOutput

	// Error is for fatal problems.
	Error *Channel
	// Warning is for non-fatal problems.
	Warning *Channel
	// Notice is for user-oriented information.
	Notice *Channel
	// Info is for technical information and debugging.
	Info *Channel
	// Benchmark is for benchmark information.
	Benchmark *Channel

	logger      atomic.Pointer[zerolog.Logger]
	mu          sync.Mutex
	initialized atomic.Bool
}

// NewService returns an initialized Service.
func NewService(cfg Config) (*Service, error) {
	s := &Service{Config: &cfg}
	if err := s.Initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Initialize validates the configuration, opens the journals and wires the
// default channels. Calling it again after success is a no-op; calling it
// after Close reopens the journals and replaces the channels.
func (s *Service) Initialize() error {
	const op errors.Op = "logging.Service.Initialize"
	if s == nil {
		return errors.New(op).Msg(errMsgNilService)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized.Load() {
		return nil
	}
	if s.Config == nil {
		cfg := DefaultConfig()
		s.Config = &cfg
	}
	if err := validateConfig(s.Config); err != nil {
		return err
	}

	level, err := parseLevel(s.Config.Level)
	if err != nil {
		return errors.New(op).Err(err).Msg(errMsgLevelInvalid)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: s.Config.diagnostics(), NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("component", ServiceName).
		Logger()
	s.logger.Store(&logger)

	journal, err := NewJournalOutput(JournalStem, s.Config)
	if err != nil {
		return err
	}
	benchmarkJournal, err := NewJournalOutput(BenchmarkStem, s.Config)
	if err != nil {
		_ = journal.Close()
		return err
	}

	s.Console = NewConsoleOutput(s.Config.console())
	s.Journal = journal
	s.BenchmarkJournal = benchmarkJournal

	s.Error = NewChannel(LabelError, s.Journal, s.Console)
	s.Warning = NewChannel(LabelWarning, s.Journal, s.Console)
	s.Notice = NewChannel(LabelNotice, s.Journal, s.Console)
	s.Info = NewChannel(LabelInfo, s.Journal)
	s.Benchmark = NewChannel(LabelBenchmark, s.BenchmarkJournal)

	s.initialized.Store(true)

	logger.Debug().
		Str("journal", journal.Filename()).
		Str("benchmark_journal", benchmarkJournal.Filename()).
		Msg("journals opened")
	return nil
}

// Close closes the journals and leaves the service uninitialized. Channels
// obtained before Close keep returning ErrClosed from their journals.
// It's safe to call Close multiple times.
func (s *Service) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized.CompareAndSwap(true, false) {
		return nil
	}

	var errs []error
	for _, j := range []*JournalOutput{s.Journal, s.BenchmarkJournal} {
		if err := j.Close(); err != nil {
			withErrorChain(s.diag().Error(), err).Str("journal", j.Filename()).Msg("closing journal")
			errs = append(errs, err)
		}
	}
	return stderrs.Join(errs...)
}

// Channels returns the default channels in severity order.
func (s *Service) Channels() []*Channel {
	return []*Channel{s.Error, s.Warning, s.Notice, s.Info, s.Benchmark}
}

// ChannelByLabel returns the default channel with the given label.
func (s *Service) ChannelByLabel(label string) (*Channel, bool) {
	for _, ch := range s.Channels() {
		if ch != nil && ch.Label() == label {
			return ch, true
		}
	}
	return nil, false
}

// Errorf writes to the error channel.
func (s *Service) Errorf(format string, args ...any) {
	s.emit(s.Error, Caller(1), fmt.Sprintf(format, args...))
}

// Warningf writes to the warning channel.
func (s *Service) Warningf(format string, args ...any) {
	s.emit(s.Warning, Caller(1), fmt.Sprintf(format, args...))
}

// Noticef writes to the notice channel.
func (s *Service) Noticef(format string, args ...any) {
	s.emit(s.Notice, Caller(1), fmt.Sprintf(format, args...))
}

// Infof writes to the info channel.
func (s *Service) Infof(format string, args ...any) {
	s.emit(s.Info, Caller(1), fmt.Sprintf(format, args...))
}

// Benchmarkf writes to the benchmark channel.
func (s *Service) Benchmarkf(format string, args ...any) {
	s.emit(s.Benchmark, Caller(1), fmt.Sprintf(format, args...))
}

// emit writes a message whose errors have no caller to go back to; they
// are reported on the diagnostics logger. Writes racing with Close are
// dropped.
func (s *Service) emit(ch *Channel, loc Location, message string) {
	if s == nil || ch == nil || !s.initialized.Load() {
		return
	}
	if err := ch.Write(loc, message); err != nil && !stderrs.Is(err, ErrClosed) {
		withErrorChain(s.diag().Warn(), err).
			Str("channel", ch.Label()).
			Str("file", loc.File).
			Int("line", loc.Line).
			Msg("write failed")
	}
}

// diag returns the diagnostics logger, a disabled one before Initialize.
func (s *Service) diag() *zerolog.Logger {
	if l := s.logger.Load(); l != nil {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}
