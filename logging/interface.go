package logging

// Output is a debugging output: a sink that can subscribe to channels.
// Implementations must be safe for concurrent use since one output is
// usually shared by several channels.
type Output interface {
	// Write renders one message sent to ch from loc.
	Write(ch *Channel, loc Location, message string) error
	// Close releases the output's resources.
	Close() error
}

// Logger is the message API consumers depend on. *Service implements it.
type Logger interface {
	Errorf(format string, args ...any)
	Warningf(format string, args ...any)
	Noticef(format string, args ...any)
	Infof(format string, args ...any)
	Benchmarkf(format string, args ...any)
}

var _ Logger = (*Service)(nil)
